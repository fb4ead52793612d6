package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const processedEventTTL = 24 * time.Hour

// RedisEventDeduplicator remembers handled event ids so redelivered
// messages are skipped.
type RedisEventDeduplicator struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisEventDeduplicator(rdb *redis.Client) *RedisEventDeduplicator {
	return &RedisEventDeduplicator{rdb: rdb, ttl: processedEventTTL}
}

func processedKey(eventID uuid.UUID) string {
	return "event:processed:" + eventID.String()
}

// MarkProcessed reports true when this call claimed the event.
func (d *RedisEventDeduplicator) MarkProcessed(ctx context.Context, eventID uuid.UUID) (bool, error) {
	ok, err := d.rdb.SetNX(ctx, processedKey(eventID), time.Now().UTC().Format(time.RFC3339), d.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to mark event %s: %w", eventID, err)
	}
	return ok, nil
}

func (d *RedisEventDeduplicator) Forget(ctx context.Context, eventID uuid.UUID) error {
	if err := d.rdb.Del(ctx, processedKey(eventID)).Err(); err != nil {
		return fmt.Errorf("failed to forget event %s: %w", eventID, err)
	}
	return nil
}
