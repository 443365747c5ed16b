package main

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Code4GovTech/FAQ-Discord-Bot/internal/config"
	"github.com/Code4GovTech/FAQ-Discord-Bot/pkg/adapters/redis"
	"github.com/Code4GovTech/FAQ-Discord-Bot/pkg/api"
	"github.com/Code4GovTech/FAQ-Discord-Bot/pkg/session"
)

func newAPIClient(cfg *config.Config, logger *slog.Logger) *api.Client {
	return api.NewClient(cfg.APIURL,
		api.WithHTTPClient(&http.Client{Timeout: cfg.APITimeout}),
		api.WithLogger(logger),
	)
}

// newSessions serializes presses per prompt. With redis_addr set the locks are shared
// across replicas. The returned func releases the redis connection.
func newSessions(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*session.Manager, func(), error) {
	opts := []session.Option{session.WithLogger(logger)}
	closer := func() {}

	if cfg.RedisAddr != "" {
		client, err := redis.Dial(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, closer, err
		}
		opts = append(opts, session.WithLocker(redis.NewLocker(client, "")))
		closer = func() {
			if err := client.Close(); err != nil {
				logger.Warn("failed to close redis client", "err", err)
			}
		}
		logger.Info("distributed prompt locks enabled", "redis_addr", cfg.RedisAddr)
	}
	return session.NewManager(opts...), closer, nil
}
