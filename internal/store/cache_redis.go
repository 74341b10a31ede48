package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-mission-hub/internal/config"
)

// NewRedisClient creates a Redis client for the user cache. The client is
// not contacted until the first command.
func NewRedisClient(cfg config.Cache) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

// redisUserCache implements [UserCache] with plain GET/SET/DEL and a fixed
// expiry on every entry.
type redisUserCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisUserCache wraps client as a [UserCache].
func NewRedisUserCache(client *redis.Client, ttl time.Duration) UserCache {
	return &redisUserCache{client: client, ttl: ttl}
}

func (c *redisUserCache) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}

	return data, nil
}

func (c *redisUserCache) Set(ctx context.Context, key string, value []byte) error {
	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (c *redisUserCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}
