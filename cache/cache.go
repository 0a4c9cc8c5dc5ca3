package cache

import (
	"MedCenter/database"
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache wraps the shared Redis client with the small surface the
// repositories need: plain get/set plus single-key, batch, and
// pattern-based invalidation.
type Cache struct {
	client *redis.Client
}

// NewCache returns a Cache backed by the shared Redis client. The client
// must have been initialized first via database.InitializeRedis.
func NewCache() (*Cache, error) {
	if database.RedisClient == nil {
		return nil, errors.New("Redis client is not initialized")
	}
	return &Cache{client: database.RedisClient}, nil
}

func (c *Cache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if c.client == nil {
		return errors.New("Redis client is not initialized")
	}
	return c.client.Set(ctx, key, value, expiration).Err()
}

// Get returns the cached value for key, or "" when the key does not exist.
func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	if c.client == nil {
		return "", errors.New("Redis client is not initialized")
	}
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

func (c *Cache) Delete(ctx context.Context, key string) error {
	if c.client == nil {
		return errors.New("Redis client is not initialized")
	}
	return c.client.Del(ctx, key).Err()
}

// DeleteBatch removes several exact keys in a single round trip.
func (c *Cache) DeleteBatch(ctx context.Context, keys ...string) error {
	if c.client == nil {
		return errors.New("Redis client is not initialized")
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

// DeleteAll removes every key matching pattern. Keys are collected with
// SCAN rather than KEYS so large keyspaces do not block the server, then
// deleted in one batch.
func (c *Cache) DeleteAll(ctx context.Context, pattern string) error {
	if c.client == nil {
		return errors.New("Redis client is not initialized")
	}
	var matched []string
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		matched = append(matched, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	return c.DeleteBatch(ctx, matched...)
}
