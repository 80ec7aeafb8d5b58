package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"solar_pipeline/internal/domain/entities"
	"solar_pipeline/internal/domain/normalize"
	"solar_pipeline/internal/infrastructure/logging"
	"solar_pipeline/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrInvalidProductID = errors.New("invalid product id")
)

// ProductDraft is a catalog entry as typed in the product form. Capacity and
// price are required and must parse as numbers.
type ProductDraft struct {
	Category string
	Brand    string
	Model    string
	Capacity string
	Price    string
}

type IProductUseCase interface {
	List(ctx context.Context, category string) ([]entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	Create(ctx context.Context, draft ProductDraft) (entities.Product, error)
	Update(ctx context.Context, id string, draft ProductDraft) (entities.Product, error)
	Delete(ctx context.Context, id string) error
}

type ProductUseCase struct {
	repo interfaces.IProductRepository
	log  *logrus.Logger
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(repo interfaces.IProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, log: logging.GetLogger()}
}

// List returns the catalog ordered by brand and model, optionally narrowed
// to one category.
func (u *ProductUseCase) List(ctx context.Context, category string) ([]entities.Product, error) {
	var filter entities.ProductCategory
	if c := strings.TrimSpace(category); c != "" {
		filter = entities.ProductCategory(strings.ToLower(c))
		if !filter.IsKnown() {
			return nil, invalid("category", "must be one of: inverter panel battery")
		}
	}

	products, err := u.repo.ListAll(ctx)
	if err != nil {
		logging.LogError(u.log, "product_usecase.go", "List", "repo.ListAll", nil, err)
		return nil, err
	}

	out := make([]entities.Product, 0, len(products))
	for _, p := range products {
		if filter == "" || p.Category == filter {
			out = append(out, p)
		}
	}
	sortProducts(out)
	return out, nil
}

func (u *ProductUseCase) GetByID(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		logging.LogError(u.log, "product_usecase.go", "GetByID", "repo.GetByID", id, err)
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *ProductUseCase) Create(ctx context.Context, draft ProductDraft) (entities.Product, error) {
	p, err := productFromDraft(draft)
	if err != nil {
		return entities.Product{}, err
	}

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		logging.LogError(u.log, "product_usecase.go", "Create", "repo.Create", p, err)
		return entities.Product{}, err
	}
	u.log.WithFields(logrus.Fields{"product_id": created.ID, "category": created.Category}).Info("product created")
	return created, nil
}

func (u *ProductUseCase) Update(ctx context.Context, id string, draft ProductDraft) (entities.Product, error) {
	p, err := productFromDraft(draft)
	if err != nil {
		return entities.Product{}, err
	}

	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	p.ID = current.ID
	p.CreatedAt = current.CreatedAt
	p.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		logging.LogError(u.log, "product_usecase.go", "Update", "repo.Update", p, err)
		return entities.Product{}, err
	}
	if updated.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return updated, nil
}

// Delete removes a product. Clients that selected it keep the dangling id.
func (u *ProductUseCase) Delete(ctx context.Context, id string) error {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, current.ID); err != nil {
		logging.LogError(u.log, "product_usecase.go", "Delete", "repo.Delete", current.ID, err)
		return err
	}
	u.log.WithFields(logrus.Fields{"product_id": current.ID}).Info("product deleted")
	return nil
}

func productFromDraft(d ProductDraft) (entities.Product, error) {
	capacity := normalize.ParseOptionalNumber(d.Capacity)
	if capacity == nil {
		return entities.Product{}, invalid("capacity", "is required")
	}
	price := normalize.ParseOptionalNumber(d.Price)
	if price == nil {
		return entities.Product{}, invalid("price", "is required")
	}

	p := entities.Product{
		Category: entities.ProductCategory(strings.ToLower(strings.TrimSpace(d.Category))),
		Brand:    strings.TrimSpace(d.Brand),
		Model:    strings.TrimSpace(d.Model),
		Capacity: *capacity,
		Price:    *price,
	}
	if err := validateStruct(p); err != nil {
		return entities.Product{}, err
	}
	return p, nil
}

func sortProducts(ps []entities.Product) {
	sort.SliceStable(ps, func(i, j int) bool {
		a, b := ps[i], ps[j]
		if ab, bb := strings.ToLower(a.Brand), strings.ToLower(b.Brand); ab != bb {
			return ab < bb
		}
		if am, bm := strings.ToLower(a.Model), strings.ToLower(b.Model); am != bm {
			return am < bm
		}
		return a.ID < b.ID
	})
}
