package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"github.com/khoahotran/devconnector/internal/application/service"
	"github.com/khoahotran/devconnector/internal/config"
	"github.com/khoahotran/devconnector/pkg/logger"
)

// AccountEventHandler processes one decoded account event.
type AccountEventHandler func(ctx context.Context, payload service.AccountEventPayload) error

// messageReader is the part of *kafka.Reader the consumer needs.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

const (
	defaultRetryBase = 500 * time.Millisecond
	defaultRetryCap  = 30 * time.Second
)

type AccountEventConsumer struct {
	reader  messageReader
	handler AccountEventHandler
	log     logger.Logger

	retryBase time.Duration
	retryCap  time.Duration
}

func NewAccountEventConsumer(cfg config.Config, handler AccountEventHandler, log logger.Logger) (*AccountEventConsumer, error) {
	if len(cfg.Kafka.Brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Kafka.Brokers,
		GroupID: cfg.Kafka.GroupID,
		Topic:   TopicAccountEvents,
	})
	return newAccountEventConsumer(reader, handler, log), nil
}

func newAccountEventConsumer(reader messageReader, handler AccountEventHandler, log logger.Logger) *AccountEventConsumer {
	return &AccountEventConsumer{
		reader:    reader,
		handler:   handler,
		log:       log,
		retryBase: defaultRetryBase,
		retryCap:  defaultRetryCap,
	}
}

// Run consumes until ctx is cancelled. A message is retried with backoff
// until its handler succeeds, and only then committed and followed by the
// next one. Undecodable messages are committed and dropped.
func (c *AccountEventConsumer) Run(ctx context.Context) error {
	c.log.Info("Worker listening", zap.String("topic", TopicAccountEvents))
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("fetch message: %w", err)
		}

		var payload service.AccountEventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			c.log.Warn("Dropping malformed account event", zap.Int64("offset", msg.Offset), zap.Error(err))
			c.commit(ctx, msg)
			continue
		}

		if err := c.handle(ctx, msg, payload); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		c.commit(ctx, msg)
	}
}

func (c *AccountEventConsumer) handle(ctx context.Context, msg kafka.Message, payload service.AccountEventPayload) error {
	backoff := retry.WithCappedDuration(c.retryCap, retry.NewExponential(c.retryBase))
	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		if err := c.handler(ctx, payload); err != nil {
			c.log.Error("Account event handler failed, retrying", err,
				zap.String("event_id", payload.EventID.String()),
				zap.Int64("offset", msg.Offset),
				zap.Int("attempt", attempt),
			)
			return retry.RetryableError(err)
		}
		return nil
	})
}

func (c *AccountEventConsumer) commit(ctx context.Context, msg kafka.Message) {
	if err := c.reader.CommitMessages(ctx, msg); err != nil {
		c.log.Error("Failed to commit offset", err, zap.Int64("offset", msg.Offset))
	}
}

func (c *AccountEventConsumer) Close() error {
	return c.reader.Close()
}
