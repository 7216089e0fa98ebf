// Package cache provides an optional Redis-backed JSON cache. A nil client is
// a valid configuration: every operation degrades to a miss or a no-op, and a
// Redis failure is logged but never surfaced to the caller.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

type Cache struct {
	client *redis.Client
	logger *slog.Logger
}

// New builds a Cache over the given client. client may be nil, in which case
// the cache is disabled.
func New(client *redis.Client, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{client: client, logger: logger}
}

func (c *Cache) Enabled() bool {
	return c != nil && c.client != nil
}

// Get unmarshals the value stored under key into dest. Returns false on a
// miss, a disabled cache, or any Redis/decoding error.
func (c *Cache) Get(ctx context.Context, key string, dest any) bool {
	if !c.Enabled() {
		return false
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.WarnContext(ctx, "cache get failed", "key", key, "error", err)
		}
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		c.logger.WarnContext(ctx, "cache entry corrupt, ignoring", "key", key, "error", err)
		return false
	}

	return true
}

// Set stores value under key for ttl. No-op when the cache is disabled.
func (c *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	if !c.Enabled() {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		c.logger.WarnContext(ctx, "cache marshal failed", "key", key, "error", err)
		return
	}

	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "cache set failed", "key", key, "error", err)
	}
}

// DeleteByPrefix removes every key starting with prefix. Used for org-wide
// invalidation of listing entries after a write.
func (c *Cache) DeleteByPrefix(ctx context.Context, prefix string) {
	if !c.Enabled() {
		return
	}

	var keys []string
	iter := c.client.Scan(ctx, 0, prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.logger.WarnContext(ctx, "cache scan failed", "prefix", prefix, "error", err)
		return
	}

	if len(keys) == 0 {
		return
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.WarnContext(ctx, "cache delete failed", "prefix", prefix, "error", err)
	}
}

func (c *Cache) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Close()
}
