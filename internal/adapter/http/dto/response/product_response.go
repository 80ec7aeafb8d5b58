package response

import (
	"time"

	"solar_pipeline/internal/domain/entities"
)

type ProductResponse struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Brand     string    `json:"brand"`
	Model     string    `json:"model"`
	Capacity  float64   `json:"capacity"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		Category:  string(p.Category),
		Brand:     p.Brand,
		Model:     p.Model,
		Capacity:  p.Capacity,
		Price:     p.Price,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func FromProducts(ps []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProduct(p))
	}
	return out
}
