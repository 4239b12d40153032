package cache

import (
	"context"
	"time"

	"github.com/pthana/linkshort/pkg/ports"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// RedisCache shares the alias->URL mapping across instances.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(addr, password string, db int, ttl time.Duration) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return &RedisCache{client: client, ttl: ttl}, nil
}

const keyPrefix = "link:"

func (c *RedisCache) Get(code string) (string, bool) {
	originalURL, err := c.client.Get(context.Background(), keyPrefix+code).Result()
	if err != nil {
		return "", false
	}
	return originalURL, true
}

func (c *RedisCache) Set(code, originalURL string) {
	if err := c.client.Set(context.Background(), keyPrefix+code, originalURL, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("short_code", code).Msg("cache set failed")
	}
}

func (c *RedisCache) Delete(code string) {
	if err := c.client.Del(context.Background(), keyPrefix+code).Err(); err != nil {
		log.Warn().Err(err).Str("short_code", code).Msg("cache delete failed")
	}
}

func (c *RedisCache) Close() error { return c.client.Close() }

var _ ports.LinkCache = (*RedisCache)(nil)
