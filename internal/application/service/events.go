package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type AccountEventType string

const (
	AccountEventTypeDeleted AccountEventType = "account.deleted"
)

type PostEventType string

const (
	PostEventTypeCreated PostEventType = "post.created"
	PostEventTypeDeleted PostEventType = "post.deleted"
)

type AccountEventPayload struct {
	EventID    uuid.UUID        `json:"event_id"`
	EventType  AccountEventType `json:"event_type"`
	UserID     uuid.UUID        `json:"user_id"`
	OccurredAt time.Time        `json:"occurred_at"`
}

type PostEventPayload struct {
	EventID    uuid.UUID     `json:"event_id"`
	EventType  PostEventType `json:"event_type"`
	PostID     uuid.UUID     `json:"post_id"`
	UserID     uuid.UUID     `json:"user_id"`
	OccurredAt time.Time     `json:"occurred_at"`
}

// EventPublisher ships domain events to downstream consumers.
type EventPublisher interface {
	PublishAccountEvent(ctx context.Context, payload AccountEventPayload) error
	PublishPostEvent(ctx context.Context, payload PostEventPayload) error
}

// EventDeduplicator remembers processed event ids. MarkProcessed reports
// false when the id was already seen.
type EventDeduplicator interface {
	MarkProcessed(ctx context.Context, eventID uuid.UUID) (bool, error)
	Forget(ctx context.Context, eventID uuid.UUID) error
}
