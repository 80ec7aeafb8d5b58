// Package persistence selects and assembles the repositories for the
// configured store driver.
package persistence

import (
	"context"
	"fmt"

	"solar_pipeline/internal/adapter/persistence/memory"
	"solar_pipeline/internal/adapter/persistence/repository"
	"solar_pipeline/internal/infrastructure/cache"
	"solar_pipeline/internal/infrastructure/config"
	"solar_pipeline/internal/infrastructure/database"
	"solar_pipeline/internal/infrastructure/logging"
	"solar_pipeline/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

type Stores struct {
	Clients  interfaces.IClientRepository
	Products interfaces.IProductRepository
	Visits   interfaces.IVisitRepository
	Legacy   interfaces.ILegacyClientSource
	// VisitLinker is nil when the driver cannot hold lead_id-only visits.
	VisitLinker interfaces.ILegacyVisitLinker

	legacyFor func(table string) interfaces.ILegacyClientSource
	closers   []func() error
}

// LegacySource returns the legacy collection named table, or Legacy when
// table is empty. The memory driver has a single legacy collection.
func (s Stores) LegacySource(table string) interfaces.ILegacyClientSource {
	if table == "" || s.legacyFor == nil {
		return s.Legacy
	}
	return s.legacyFor(table)
}

// Close releases connections opened by Open.
func (s Stores) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Open builds the repositories for cfg.StoreDriver. When cfg.RedisURL is set
// the product catalog is served through the Redis cache.
func Open(ctx context.Context, cfg config.Config) (Stores, error) {
	var s Stores

	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		s.Clients = memory.NewClientRepository()
		s.Products = memory.NewProductRepository()
		s.Visits = memory.NewVisitRepository()
		s.Legacy = memory.NewClientRepository()
	case config.StoreDriverDynamoDB:
		ddb, err := database.NewDynamoDBClient(ctx, cfg)
		if err != nil {
			return Stores{}, err
		}
		s.Clients = repository.NewClientDynamoRepository(ddb, cfg.ClientsTable)
		s.Products = repository.NewProductDynamoRepository(ddb, cfg.ProductsTable)
		visits := repository.NewVisitDynamoRepository(ddb, cfg.VisitsTable)
		s.Visits = visits
		s.VisitLinker = visits
		s.Legacy = repository.NewLegacyLeadDynamoRepository(ddb, cfg.LegacyLeadsTable)
		s.legacyFor = func(table string) interfaces.ILegacyClientSource {
			return repository.NewLegacyLeadDynamoRepository(ddb, table)
		}
	default:
		return Stores{}, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}

	if cfg.RedisURL != "" {
		rdb, err := cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return Stores{}, err
		}
		s.Products = cache.NewProductCatalogCache(s.Products, rdb, cfg.CatalogCacheTTL)
		s.closers = append(s.closers, rdb.Close)
	}

	logging.GetLogger().WithFields(logrus.Fields{
		"driver":        cfg.StoreDriver,
		"catalog_cache": cfg.RedisURL != "",
	}).Info("stores opened")
	return s, nil
}
