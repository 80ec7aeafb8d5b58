package request

import "solar_pipeline/internal/usecase"

type ProductRequest struct {
	Category string     `json:"category" binding:"required"`
	Brand    string     `json:"brand" binding:"required"`
	Model    string     `json:"model" binding:"required"`
	Capacity NumberText `json:"capacity"`
	Price    NumberText `json:"price"`
}

func (r ProductRequest) ToDraft() usecase.ProductDraft {
	return usecase.ProductDraft{
		Category: r.Category,
		Brand:    r.Brand,
		Model:    r.Model,
		Capacity: r.Capacity.String(),
		Price:    r.Price.String(),
	}
}
