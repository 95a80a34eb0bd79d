// Package cache implements the analytics cache on Redis.
package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// keyPattern matches every analytics cache entry; Invalidate scans it.
const keyPattern = "analytics:*"

// redisAnalyticsCache implements adapter.AnalyticsCache on a Redis client.
// Cache failures degrade to misses; they never fail the request.
type redisAnalyticsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisAnalyticsCache creates an analytics cache backed by the given client.
func NewRedisAnalyticsCache(client *redis.Client, ttl time.Duration) adapter.AnalyticsCache {
	return &redisAnalyticsCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached payload for key, or ok=false on a miss.
func (c *redisAnalyticsCache) Get(ctx context.Context, key string) ([]byte, bool) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("Analytics cache read failed", "key", key, "error", err)
		}
		return nil, false
	}
	return payload, true
}

// Set stores the payload under key with the configured TTL.
func (c *redisAnalyticsCache) Set(ctx context.Context, key string, payload []byte) {
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		slog.Warn("Analytics cache write failed", "key", key, "error", err)
	}
}

// Invalidate drops all analytics entries.
func (c *redisAnalyticsCache) Invalidate(ctx context.Context) {
	iter := c.client.Scan(ctx, 0, keyPattern, 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		slog.Warn("Analytics cache scan failed", "error", err)
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		slog.Warn("Analytics cache invalidation failed", "error", err)
	}
}

// noopAnalyticsCache is used when no cache backend is configured.
type noopAnalyticsCache struct{}

// NewNoopAnalyticsCache creates a cache that never hits.
func NewNoopAnalyticsCache() adapter.AnalyticsCache {
	return noopAnalyticsCache{}
}

func (noopAnalyticsCache) Get(context.Context, string) ([]byte, bool) { return nil, false }
func (noopAnalyticsCache) Set(context.Context, string, []byte)       {}
func (noopAnalyticsCache) Invalidate(context.Context)                {}
