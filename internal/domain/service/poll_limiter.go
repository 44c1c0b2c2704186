package service

import (
	"context"
	"time"
)

// PollLimiter enforces the polling interval advertised with a device code.
type PollLimiter interface {
	// Allow reports whether deviceCode may be polled now, given the advertised interval.
	Allow(ctx context.Context, deviceCode string, interval time.Duration) (bool, error)
}
