package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-foodmap/internal/logger"
	"github.com/MKhiriev/go-foodmap/models"
	"github.com/redis/go-redis/v9"
)

const profileKeyPrefix = "foodmap:profile:"

func profileKey(id string) string {
	return profileKeyPrefix + id
}

// redisProfileCache stores JSON-encoded profiles in Redis with a fixed TTL.
// Profiles carry no password hash, so nothing secret reaches Redis.
type redisProfileCache struct {
	client redis.Cmdable
	ttl    time.Duration
	logger *logger.Logger
}

// NewRedisProfileCache returns a [ProfileCache] over client.
func NewRedisProfileCache(client redis.Cmdable, ttl time.Duration, logger *logger.Logger) ProfileCache {
	logger.Debug().Dur("ttl", ttl).Msg("creating redis profile cache")
	return &redisProfileCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *redisProfileCache) Get(ctx context.Context, id string) (models.Profile, error) {
	data, err := c.client.Get(ctx, profileKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Profile{}, ErrCacheMiss
	}
	if err != nil {
		return models.Profile{}, fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}

	var profile models.Profile
	if err = json.Unmarshal(data, &profile); err != nil {
		// a corrupt entry behaves like a miss and gets overwritten
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*redisProfileCache.Get").Msg("corrupt cached profile")
		return models.Profile{}, ErrCacheMiss
	}

	return profile, nil
}

func (c *redisProfileCache) Set(ctx context.Context, profile models.Profile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("error encoding profile: %w", err)
	}

	if err = c.client.Set(ctx, profileKey(profile.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}

	return nil
}

// nopProfileCache is used when no Redis URL is configured: every lookup
// misses and every write is dropped.
type nopProfileCache struct{}

// NewNopProfileCache returns a [ProfileCache] that caches nothing.
func NewNopProfileCache() ProfileCache {
	return nopProfileCache{}
}

func (nopProfileCache) Get(context.Context, string) (models.Profile, error) {
	return models.Profile{}, ErrCacheMiss
}

func (nopProfileCache) Set(context.Context, models.Profile) error {
	return nil
}
