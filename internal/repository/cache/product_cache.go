package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"styleLoop/domain"
	"styleLoop/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const productPoolTTL = 5 * time.Minute

// ProductSource is the repository the cache falls through to.
type ProductSource interface {
	FindActive(ctx context.Context, limit int) ([]domain.Product, error)
}

// ProductPoolCache is a read-through Redis cache for the active product
// pool. Cache failures degrade to the underlying source; they are never
// surfaced to callers.
type ProductPoolCache struct {
	client *redis.Client
	source ProductSource
	ttl    time.Duration
}

func NewProductPoolCache(client *redis.Client, source ProductSource) *ProductPoolCache {
	return &ProductPoolCache{
		client: client,
		source: source,
		ttl:    productPoolTTL,
	}
}

func (c *ProductPoolCache) FindActive(ctx context.Context, limit int) ([]domain.Product, error) {
	key := fmt.Sprintf("product_pool:active:%d", limit)

	val, err := c.client.Get(ctx, key).Result()
	if err == nil {
		var products []domain.Product
		if err := json.Unmarshal([]byte(val), &products); err == nil {
			return products, nil
		}
		logger.Warn("corrupt product pool cache entry, refreshing", "key", key)
	} else if !errors.Is(err, redis.Nil) {
		logger.Warn("product pool cache read failed", "error", err)
	}

	products, err := c.source.FindActive(ctx, limit)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(products)
	if err != nil {
		return products, nil
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		logger.Warn("product pool cache write failed", "error", err)
	}

	return products, nil
}
