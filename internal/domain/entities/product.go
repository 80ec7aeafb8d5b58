package entities

import "time"

type ProductCategory string

const (
	ProductCategoryInverter ProductCategory = "inverter"
	ProductCategoryPanel    ProductCategory = "panel"
	ProductCategoryBattery  ProductCategory = "battery"
)

// IsKnown reports whether c is a catalog category.
func (c ProductCategory) IsKnown() bool {
	switch c {
	case ProductCategoryInverter, ProductCategoryPanel, ProductCategoryBattery:
		return true
	}
	return false
}

// Product is a catalog entry selectable into the inverter, panels and
// battery line items. Clients only keep its id; deleting a product leaves
// those references dangling.
//
// Storage model (DynamoDB):
//   - PK: id
type Product struct {
	ID        string          `json:"id"`
	Category  ProductCategory `json:"category" validate:"required,oneof=inverter panel battery"`
	Brand     string          `json:"brand" validate:"required"`
	Model     string          `json:"model" validate:"required"`
	Capacity  float64         `json:"capacity" validate:"gte=0"`
	Price     float64         `json:"price" validate:"gte=0"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
