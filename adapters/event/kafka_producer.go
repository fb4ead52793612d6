package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/devconnector/internal/application/service"
	"github.com/khoahotran/devconnector/internal/config"
	"github.com/khoahotran/devconnector/pkg/logger"
)

const (
	TopicAccountEvents = "account.events"
	TopicPostEvents    = "post.events"
)

type KafkaProducerClient struct {
	AccountEventsWriter *kafka.Writer
	PostEventsWriter    *kafka.Writer
	log                 logger.Logger
}

func NewKafkaProducerClient(cfg config.Config, log logger.Logger) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	// writer 'account.events'
	accountWriter := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  TopicAccountEvents,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}

	// writer 'post.events'
	postWriter := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  TopicPostEvents,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}

	log.Info("Initialize Kafka Producers successfully.", zap.Strings("brokers", brokers))

	return &KafkaProducerClient{
		AccountEventsWriter: accountWriter,
		PostEventsWriter:    postWriter,
		log:                 log,
	}, nil
}

func (c *KafkaProducerClient) PublishAccountEvent(ctx context.Context, payload service.AccountEventPayload) error {
	return c.write(ctx, c.AccountEventsWriter, payload.UserID.String(), payload)
}

func (c *KafkaProducerClient) PublishPostEvent(ctx context.Context, payload service.PostEventPayload) error {
	return c.write(ctx, c.PostEventsWriter, payload.PostID.String(), payload)
}

func (c *KafkaProducerClient) write(ctx context.Context, w *kafka.Writer, key string, payload any) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event for %s: %w", w.Topic, err)
	}
	if err := w.WriteMessages(ctx, kafka.Message{Key: []byte(key), Value: value}); err != nil {
		return fmt.Errorf("write event to %s: %w", w.Topic, err)
	}
	return nil
}

func (c *KafkaProducerClient) Close() error {
	var errs []error
	if c.AccountEventsWriter != nil {
		errs = append(errs, c.AccountEventsWriter.Close())
	}
	if c.PostEventsWriter != nil {
		errs = append(errs, c.PostEventsWriter.Close())
	}
	c.log.Info("Closed Kafka Producers")
	return errors.Join(errs...)
}
