package service

import (
	"context"
	"time"
)

// EventDeduplicator remembers which scrobble events a consumer has already handled.
type EventDeduplicator interface {
	// FirstDelivery reports whether eventID is seen for the first time within ttl.
	FirstDelivery(ctx context.Context, eventID string, ttl time.Duration) (bool, error)
}
