package ratelimit

import (
	"context"
	"sync"
	"time"

	"scrobbler/internal/domain/service"
	"scrobbler/internal/errors"
)

const (
	eventKeyPrefix = "scrobble-event:"
	// memorySweepInterval bounds how often expired in-memory entries are purged.
	memorySweepInterval = time.Minute
)

type redisEventDeduplicator struct {
	client setNXer
}

func newRedisEventDeduplicator(client setNXer) *redisEventDeduplicator {
	return &redisEventDeduplicator{client: client}
}

// FirstDelivery claims the event key; a second claim within ttl fails.
func (d *redisEventDeduplicator) FirstDelivery(ctx context.Context, eventID string, ttl time.Duration) (bool, error) {
	if eventID == "" {
		return true, nil
	}

	ok, err := d.client.SetNX(ctx, eventKeyPrefix+eventID, 1, ttl).Result()
	if err != nil {
		return false, errors.Wrap(err, "redis setnx failed")
	}

	return ok, nil
}

// memoryEventDeduplicator is used when redis is absent. It only sees this process's deliveries.
type memoryEventDeduplicator struct {
	mu        sync.Mutex
	now       func() time.Time
	seen      map[string]time.Time
	nextSweep time.Time
}

func newMemoryEventDeduplicator() *memoryEventDeduplicator {
	return &memoryEventDeduplicator{now: time.Now, seen: make(map[string]time.Time)}
}

func (d *memoryEventDeduplicator) FirstDelivery(_ context.Context, eventID string, ttl time.Duration) (bool, error) {
	if eventID == "" {
		return true, nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	if !now.Before(d.nextSweep) {
		d.sweep(now)
	}

	if expiry, ok := d.seen[eventID]; ok && now.Before(expiry) {
		return false, nil
	}
	d.seen[eventID] = now.Add(ttl)

	return true, nil
}

// sweep drops expired entries. Callers hold mu.
func (d *memoryEventDeduplicator) sweep(now time.Time) {
	for id, expiry := range d.seen {
		if !now.Before(expiry) {
			delete(d.seen, id)
		}
	}
	d.nextSweep = now.Add(memorySweepInterval)
}

// NewEventDeduplicator returns a redis-backed deduplicator, or a process-local one when redis is not configured.
func NewEventDeduplicator(params Params) service.EventDeduplicator {
	client, ok := newRedisClient(params, "event deduplication")
	if !ok {
		params.Logger.Info("Redis not configured, scrobble events are deduplicated per process")

		return newMemoryEventDeduplicator()
	}

	return newRedisEventDeduplicator(client)
}
