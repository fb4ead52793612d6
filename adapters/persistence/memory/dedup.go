package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Deduplicator is the in-process counterpart of the Redis event marker.
type Deduplicator struct {
	mu   sync.Mutex
	seen map[uuid.UUID]struct{}
}

func NewDeduplicator() *Deduplicator {
	return &Deduplicator{seen: make(map[uuid.UUID]struct{})}
}

func (d *Deduplicator) MarkProcessed(_ context.Context, eventID uuid.UUID) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.seen[eventID]; ok {
		return false, nil
	}
	d.seen[eventID] = struct{}{}
	return true, nil
}

func (d *Deduplicator) Forget(_ context.Context, eventID uuid.UUID) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.seen, eventID)
	return nil
}
