package pricing

import "solar_pipeline/internal/domain/entities"

// UnknownProduct is returned for dangling catalog references.
var UnknownProduct = entities.Product{Brand: "Unknown product"}

// ResolveProduct looks a product up by id. The second result is false when
// the reference is empty or dangling, in which case UnknownProduct is
// returned.
func ResolveProduct(id string, catalog []entities.Product) (entities.Product, bool) {
	if id == "" {
		return UnknownProduct, false
	}
	for _, p := range catalog {
		if p.ID == id {
			return p, true
		}
	}
	return UnknownProduct, false
}

// AutoFillUnitPrice returns the catalog price for the selected product. It
// reports false when the product is missing or has no price; callers keep
// the unit price they already have in that case.
func AutoFillUnitPrice(selectedProductID string, catalog []entities.Product) (float64, bool) {
	p, ok := ResolveProduct(selectedProductID, catalog)
	if !ok || p.Price <= 0 {
		return 0, false
	}
	return p.Price, true
}
