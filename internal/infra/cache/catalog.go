package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	redis "github.com/redis/go-redis/v9"

	"barberbook/internal/domain/catalog"
	"barberbook/internal/pkg/config"
	"barberbook/internal/usecase/queries"
)

const catalogKey = "catalog:services"

func NewClient(cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, err
	}
	cleanup := func() { _ = client.Close() }
	return client, cleanup, nil
}

// CachedCatalogReadStore fronts the database catalog with a short-TTL redis
// cache. Cache failures degrade to the database, never to an error.
type CachedCatalogReadStore struct {
	next   queries.CatalogReadStore
	client *redis.Client
	ttl    time.Duration
}

func NewCachedCatalogReadStore(next queries.CatalogReadStore, client *redis.Client, ttl time.Duration) *CachedCatalogReadStore {
	return &CachedCatalogReadStore{next: next, client: client, ttl: ttl}
}

func (c *CachedCatalogReadStore) ListServices(ctx context.Context) ([]catalog.RawService, error) {
	val, err := c.client.Get(ctx, catalogKey).Result()
	if err == nil {
		var services []catalog.RawService
		if jsonErr := json.Unmarshal([]byte(val), &services); jsonErr == nil {
			return services, nil
		}
		slog.Warn("catalog cache entry corrupt, refreshing", "key", catalogKey)
	} else if err != redis.Nil {
		slog.Warn("catalog cache read failed", "error", err.Error())
	}

	services, err := c.next.ListServices(ctx)
	if err != nil {
		return nil, err
	}
	if payload, jsonErr := json.Marshal(services); jsonErr == nil {
		if setErr := c.client.Set(ctx, catalogKey, payload, c.ttl).Err(); setErr != nil {
			slog.Warn("catalog cache write failed", "error", setErr.Error())
		}
	}
	return services, nil
}
