package memory

import (
	"context"
	"sort"
	"sync"

	"solar_pipeline/internal/domain/entities"
	"solar_pipeline/internal/usecase/interfaces"
)

type ProductRepository struct {
	mu       sync.RWMutex
	products map[string]entities.Product
}

var _ interfaces.IProductRepository = (*ProductRepository)(nil)

func NewProductRepository() *ProductRepository {
	return &ProductRepository{products: make(map[string]entities.Product)}
}

func (r *ProductRepository) ListAll(_ context.Context) ([]entities.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ProductRepository) GetByID(_ context.Context, id string) (entities.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.products[id], nil
}

func (r *ProductRepository) Create(_ context.Context, p entities.Product) (entities.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.products[p.ID]; exists {
		return entities.Product{}, interfaces.ErrDocumentExists
	}
	r.products[p.ID] = p
	return p, nil
}

func (r *ProductRepository) Update(_ context.Context, p entities.Product) (entities.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.products[p.ID]; !exists {
		return entities.Product{}, nil
	}
	r.products[p.ID] = p
	return p, nil
}

func (r *ProductRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.products, id)
	return nil
}
