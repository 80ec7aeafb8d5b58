package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"solar_pipeline/internal/domain/entities"
	"solar_pipeline/internal/infrastructure/logging"
	"solar_pipeline/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// CatalogKey holds the JSON-encoded product list.
const CatalogKey = "solar:catalog:products"

// ProductCatalogCache is a read-through cache over the product catalog.
// Only ListAll is cached; every write drops the cached list. Redis failures
// are logged and fall through to the wrapped repository.
type ProductCatalogCache struct {
	next  interfaces.IProductRepository
	redis *redis.Client
	ttl   time.Duration
}

var _ interfaces.IProductRepository = (*ProductCatalogCache)(nil)

func NewProductCatalogCache(next interfaces.IProductRepository, client *redis.Client, ttl time.Duration) *ProductCatalogCache {
	return &ProductCatalogCache{next: next, redis: client, ttl: ttl}
}

func (c *ProductCatalogCache) ListAll(ctx context.Context) ([]entities.Product, error) {
	cached, err := c.redis.Get(ctx, CatalogKey).Bytes()
	switch {
	case err == nil:
		var products []entities.Product
		jerr := json.Unmarshal(cached, &products)
		if jerr == nil {
			return products, nil
		}
		logging.LogError(logging.GetLogger(), "product_catalog_cache.go", "ListAll", "decode cached catalog", nil, jerr)
	case !errors.Is(err, redis.Nil):
		logging.LogError(logging.GetLogger(), "product_catalog_cache.go", "ListAll", "redis GET", CatalogKey, err)
	}

	products, err := c.next.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if payload, jerr := json.Marshal(products); jerr == nil {
		if serr := c.redis.Set(ctx, CatalogKey, payload, c.ttl).Err(); serr != nil {
			logging.LogError(logging.GetLogger(), "product_catalog_cache.go", "ListAll", "redis SET", CatalogKey, serr)
		}
	}
	return products, nil
}

func (c *ProductCatalogCache) GetByID(ctx context.Context, id string) (entities.Product, error) {
	return c.next.GetByID(ctx, id)
}

func (c *ProductCatalogCache) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	out, err := c.next.Create(ctx, p)
	if err == nil {
		c.invalidate(ctx)
	}
	return out, err
}

func (c *ProductCatalogCache) Update(ctx context.Context, p entities.Product) (entities.Product, error) {
	out, err := c.next.Update(ctx, p)
	if err == nil {
		c.invalidate(ctx)
	}
	return out, err
}

func (c *ProductCatalogCache) Delete(ctx context.Context, id string) error {
	err := c.next.Delete(ctx, id)
	if err == nil {
		c.invalidate(ctx)
	}
	return err
}

func (c *ProductCatalogCache) invalidate(ctx context.Context) {
	if err := c.redis.Del(ctx, CatalogKey).Err(); err != nil {
		logging.LogError(logging.GetLogger(), "product_catalog_cache.go", "invalidate", "redis DEL", CatalogKey, err)
	}
}
