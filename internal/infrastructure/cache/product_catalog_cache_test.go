package cache

import (
	"context"
	"testing"
	"time"

	"solar_pipeline/internal/adapter/persistence/memory"
	"solar_pipeline/internal/domain/entities"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})
	return client, mr
}

func TestProductCatalogCache_ReadThrough(t *testing.T) {
	client, mr := setupTestRedis(t)
	ctx := context.Background()
	repo := memory.NewProductRepository()
	_, err := repo.Create(ctx, entities.Product{ID: "p1", Category: entities.ProductCategoryInverter, Brand: "Fronius", Model: "Primo", Price: 2000})
	require.NoError(t, err)

	c := NewProductCatalogCache(repo, client, time.Minute)

	got, err := c.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, mr.Exists(CatalogKey))
	assert.Equal(t, time.Minute, mr.TTL(CatalogKey))

	// a write behind the cache's back is not visible until invalidation
	_, err = repo.Create(ctx, entities.Product{ID: "p2", Category: entities.ProductCategoryPanel, Brand: "Jinko", Model: "Tiger", Price: 200})
	require.NoError(t, err)
	got, err = c.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestProductCatalogCache_WritesInvalidate(t *testing.T) {
	client, mr := setupTestRedis(t)
	ctx := context.Background()
	c := NewProductCatalogCache(memory.NewProductRepository(), client, time.Minute)

	_, err := c.ListAll(ctx)
	require.NoError(t, err)
	require.True(t, mr.Exists(CatalogKey))

	_, err = c.Create(ctx, entities.Product{ID: "p1", Category: entities.ProductCategoryBattery, Brand: "BYD", Model: "HVS", Price: 9000})
	require.NoError(t, err)
	assert.False(t, mr.Exists(CatalogKey))

	got, err := c.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 9000.0, got[0].Price)

	p := got[0]
	p.Price = 8500
	_, err = c.Update(ctx, p)
	require.NoError(t, err)
	assert.False(t, mr.Exists(CatalogKey))

	_, err = c.ListAll(ctx)
	require.NoError(t, err)
	require.NoError(t, c.Delete(ctx, "p1"))
	assert.False(t, mr.Exists(CatalogKey))

	got, err = c.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestProductCatalogCache_RedisDown(t *testing.T) {
	client, mr := setupTestRedis(t)
	ctx := context.Background()
	repo := memory.NewProductRepository()
	_, err := repo.Create(ctx, entities.Product{ID: "p1", Category: entities.ProductCategoryPanel, Brand: "Jinko", Model: "Tiger", Price: 200})
	require.NoError(t, err)
	mr.Close()

	c := NewProductCatalogCache(repo, client, time.Minute)
	got, err := c.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
