package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	redis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrCacheMiss is returned when a key is absent (or the cache is disabled).
var ErrCacheMiss = errors.New("cache: key not found (miss)")

// Default is the process-wide cache. It stays nil when REDIS_ADDR is unset;
// all methods are nil-safe and behave like a permanent miss.
var Default *Cache

type Cache struct {
	client *redis.Client
}

// Init connects the default cache. A failed ping only logs: the storefront
// must keep serving from the database when redis is away.
func Init(addr string) {
	if addr == "" {
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logrus.Warnf("Redis unreachable at %s, storefront cache disabled: %v", addr, err)
	}

	Default = &Cache{client: client}
}

// GetJSON loads and unmarshals the value at key into dest.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) error {
	if c == nil {
		return ErrCacheMiss
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dest)
}

// SetJSON stores v at key for ttl. Failures are the caller's to ignore.
func (c *Cache) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	if c == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, raw, ttl).Err()
}

// Delete drops keys, best effort.
func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		logrus.Debugf("cache delete failed: %v", err)
	}
}
