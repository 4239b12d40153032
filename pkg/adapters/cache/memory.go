// Package cache provides optional alias->URL read caches for the redirect
// path. Both backends sit behind ports.LinkCache and are safe to drop
// entirely; the store stays the source of truth.
package cache

import (
	"time"

	"github.com/pthana/linkshort/pkg/ports"

	"github.com/dgraph-io/ristretto"
)

// MemoryCache is an in-process cache backed by Ristretto.
type MemoryCache struct {
	client *ristretto.Cache
	ttl    time.Duration
}

func NewMemoryCache(maxSizeMB int, ttl time.Duration) (*MemoryCache, error) {
	client, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1_000_000,
		MaxCost:     int64(maxSizeMB) * 1024 * 1024,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &MemoryCache{client: client, ttl: ttl}, nil
}

func (c *MemoryCache) Get(code string) (string, bool) {
	v, ok := c.client.Get(code)
	if !ok {
		return "", false
	}
	originalURL, ok := v.(string)
	return originalURL, ok
}

func (c *MemoryCache) Set(code, originalURL string) {
	c.client.SetWithTTL(code, originalURL, int64(len(originalURL)), c.ttl)
}

func (c *MemoryCache) Delete(code string) {
	c.client.Del(code)
}

func (c *MemoryCache) Close() error {
	c.client.Close()
	return nil
}

var _ ports.LinkCache = (*MemoryCache)(nil)
