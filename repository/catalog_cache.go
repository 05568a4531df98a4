package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// CatalogCache keeps rendered catalog payloads in redis for a short TTL.
// Only the read-only catalog endpoints use it; the availability and booking
// engines always read the database so correctness never depends on the cache.
// A nil *CatalogCache is a valid no-op, used when REDIS_ADDR is unset.
type CatalogCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	if client == nil {
		return nil
	}
	return &CatalogCache{Client: client, TTL: ttl}
}

func (c *CatalogCache) CatalogKey() string { return "catalog:restaurants" }

// Get returns the cached payload, or ok=false on miss or redis error.
func (c *CatalogCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	raw, err := c.Client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return raw, true
}

// Set is best effort; a failed write just means the next read hits the database.
func (c *CatalogCache) Set(ctx context.Context, key string, payload []byte) {
	if c == nil {
		return
	}
	c.Client.Set(ctx, key, payload, c.TTL)
}

// Invalidate drops a cached payload after an admin mutation.
func (c *CatalogCache) Invalidate(ctx context.Context, key string) {
	if c == nil {
		return
	}
	c.Client.Del(ctx, key)
}
