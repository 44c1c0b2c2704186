// Package ratelimit holds the redis-backed admission checks shared across instances:
// the device-code polling interval and scrobble event deduplication.
package ratelimit

import (
	"context"
	"time"

	"scrobbler/internal/domain/service"
	"scrobbler/internal/errors"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "device-poll:"

// setNXer is the slice of the redis client the limiter needs.
type setNXer interface {
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
}

// redisPollLimiter admits one poll per device code per interval. The key expires on its own,
// so a client polling on schedule always finds it gone.
type redisPollLimiter struct {
	client setNXer
}

func newRedisPollLimiter(client setNXer) *redisPollLimiter {
	return &redisPollLimiter{client: client}
}

// Allow sets the marker key only if it is absent.
func (l *redisPollLimiter) Allow(ctx context.Context, deviceCode string, interval time.Duration) (bool, error) {
	if interval <= 0 {
		return true, nil
	}

	ok, err := l.client.SetNX(ctx, pollKey(deviceCode), 1, interval).Result()
	if err != nil {
		return false, errors.Wrap(err, "redis setnx failed")
	}

	return ok, nil
}

func pollKey(deviceCode string) string {
	return keyPrefix + deviceCode
}

// noopPollLimiter admits every poll.
type noopPollLimiter struct{}

func (noopPollLimiter) Allow(context.Context, string, time.Duration) (bool, error) {
	return true, nil
}

// NewPollLimiter returns a redis-backed limiter, or one that admits everything when redis is not configured.
func NewPollLimiter(params Params) service.PollLimiter {
	client, ok := newRedisClient(params, "poll limiter")
	if !ok {
		params.Logger.Info("Redis not configured, device polling is not rate limited")

		return noopPollLimiter{}
	}

	return newRedisPollLimiter(client)
}
