// Package cache holds the Redis-backed read-through cache for the shoe
// catalog listing, the one hot read-mostly query in the service.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/solestore/storefront-service/internal/models"
)

const catalogKey = "cache:shoes"

// CatalogCache caches the full shoe listing. A nil *CatalogCache is valid
// and behaves as always-miss, so callers need no "is Redis configured" checks.
type CatalogCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCatalogCache(rdb *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{rdb: rdb, ttl: ttl}
}

func (c *CatalogCache) Get(ctx context.Context) ([]models.Shoe, bool) {
	if c == nil {
		return nil, false
	}

	data, err := c.rdb.Get(ctx, catalogKey).Bytes()
	if err != nil {
		return nil, false
	}

	var shoes []models.Shoe
	if err := json.Unmarshal(data, &shoes); err != nil {
		return nil, false
	}
	return shoes, true
}

// Set stores the listing. Failures are ignored: the cache is advisory and
// the caller already has the data.
func (c *CatalogCache) Set(ctx context.Context, shoes []models.Shoe) {
	if c == nil {
		return
	}

	data, err := json.Marshal(shoes)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, catalogKey, data, c.ttl)
}

func (c *CatalogCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	c.rdb.Del(ctx, catalogKey)
}
