package interfaces

import (
	"context"

	"solar_pipeline/internal/domain/entities"
)

//go:generate mockgen -source=product_repository_interface.go -destination=mocks/mock_product_repository.go -package=mock_interfaces

// IProductRepository abstracts the products collection. Same zero-value
// convention as IClientRepository.
type IProductRepository interface {
	ListAll(ctx context.Context) ([]entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	Update(ctx context.Context, p entities.Product) (entities.Product, error)
	Delete(ctx context.Context, id string) error
}
