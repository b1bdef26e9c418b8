package bootstrap

import (
	"context"
	"log/slog"

	"barberbook/internal/infra/cache"
	"barberbook/internal/pkg/config"

	redis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedis,
	),
)

// NewRedis returns nil when redis is unreachable; the catalog then reads
// straight from the database.
func NewRedis(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	client, cleanup, err := cache.NewClient(cfg.Redis)
	if err != nil {
		slog.Warn("redis unavailable, catalog cache disabled", "addr", cfg.Redis.Addr, "error", err.Error())
		return nil
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})
	return client
}
