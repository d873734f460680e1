package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iho/rollup/internal/domain"
	"github.com/iho/rollup/internal/usecase"
)

// Settings rarely change and are read on every supplier price dispatch, so
// hits are served from Redis and misses fall through to the backing store.
// A missing setting is cached too, under a sentinel value, to keep the
// default-enabled path off the database.
const missingSettingMarker = "\x00missing"

// SettingsCache implements usecase.SettingsRepository in front of another
// SettingsRepository.
type SettingsCache struct {
	client *redis.Client
	next   usecase.SettingsRepository
	prefix string
	ttl    time.Duration
}

// NewSettingsCache creates a new SettingsCache.
func NewSettingsCache(client *redis.Client, next usecase.SettingsRepository, ttl time.Duration) *SettingsCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return &SettingsCache{
		client: client,
		next:   next,
		prefix: "settings:",
		ttl:    ttl,
	}
}

// Get looks up one configuration value by section and key.
func (c *SettingsCache) Get(ctx context.Context, section, key string) (string, error) {
	cacheKey := c.prefix + section + ":" + key

	cached, err := c.client.Get(ctx, cacheKey).Result()
	if err == nil {
		if cached == missingSettingMarker {
			return "", domain.ErrSettingNotFound
		}

		return cached, nil
	}
	if !errors.Is(err, redis.Nil) {
		// Redis being down must not break dispatching.
		return c.next.Get(ctx, section, key)
	}

	value, err := c.next.Get(ctx, section, key)
	if err != nil {
		if errors.Is(err, domain.ErrSettingNotFound) {
			_ = c.client.Set(ctx, cacheKey, missingSettingMarker, c.ttl).Err()
		}

		return "", err
	}

	_ = c.client.Set(ctx, cacheKey, value, c.ttl).Err()

	return value, nil
}

// Invalidate drops a cached setting so the next read hits the backing
// store.
func (c *SettingsCache) Invalidate(ctx context.Context, section, key string) error {
	return c.client.Del(ctx, c.prefix+section+":"+key).Err()
}
