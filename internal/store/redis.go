package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-foodmap/internal/config"
	"github.com/MKhiriev/go-foodmap/internal/logger"
	"github.com/redis/go-redis/v9"
)

// NewRedisClient parses cfg.RedisURL, tunes the pool, and pings the server.
func NewRedisClient(ctx context.Context, cfg config.Cache, log *logger.Logger) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Err(err).Str("func", "NewRedisClient").Msg("invalid redis url")
		return nil, fmt.Errorf("%w: invalid redis url: %w", ErrCacheUnavailable, err)
	}

	opts.PoolSize = 10
	opts.MinIdleConns = 2
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err = client.Ping(pingCtx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisClient").Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}
	log.Info().Str("func", "NewRedisClient").Msg("connected to redis successfully")

	return client, nil
}
