package ratelimit

import (
	"context"
	"log/slog"

	"scrobbler/config"
	"scrobbler/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params holds dependencies for the redis-backed checks, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// newRedisClient opens a client for purpose and ties it to the fx lifecycle.
// It reports false when redis is not configured.
func newRedisClient(params Params, purpose string) (*redis.Client, bool) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		return nil, false
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrapf(err, "failed to connect to redis at %s", cfg.Addr)
			}
			params.Logger.Info("Redis ready", slog.String("addr", cfg.Addr), slog.String("purpose", purpose))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return client, true
}
