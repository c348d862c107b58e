package cache

import (
	"context"

	"github.com/MKhiriev/go-nutri-track/internal/config"
)

// NewCache returns a Redis cache when an address is configured and an
// in-memory cache otherwise.
func NewCache(ctx context.Context, cfg config.Cache) (Cache, error) {
	if cfg.RedisAddress == "" {
		return NewMemoryCache(), nil
	}

	return NewRedisCache(ctx, RedisConfig{
		Addr:      cfg.RedisAddress,
		Password:  cfg.RedisPassword,
		DB:        cfg.RedisDB,
		KeyPrefix: cfg.KeyPrefix,
	})
}
