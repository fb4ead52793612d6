package event

import (
	"context"

	"go.uber.org/zap"

	"github.com/khoahotran/devconnector/internal/application/service"
	"github.com/khoahotran/devconnector/pkg/logger"
)

// LogPublisher stands in for Kafka when no brokers are configured. Account
// events are handed straight to the in-process handlers.
type LogPublisher struct {
	log      logger.Logger
	handlers []AccountEventHandler
}

func NewLogPublisher(log logger.Logger, handlers ...AccountEventHandler) *LogPublisher {
	return &LogPublisher{log: log, handlers: handlers}
}

func (p *LogPublisher) PublishAccountEvent(ctx context.Context, payload service.AccountEventPayload) error {
	p.log.Info("account event",
		zap.String("event_type", string(payload.EventType)),
		zap.String("user_id", payload.UserID.String()),
	)
	for _, h := range p.handlers {
		if err := h(ctx, payload); err != nil {
			return err
		}
	}
	return nil
}

func (p *LogPublisher) PublishPostEvent(_ context.Context, payload service.PostEventPayload) error {
	p.log.Info("post event",
		zap.String("event_type", string(payload.EventType)),
		zap.String("post_id", payload.PostID.String()),
	)
	return nil
}
