// Package pricing computes the priced total of a client's configured system
// and extras.
package pricing

import (
	"solar_pipeline/internal/domain/entities"
	"solar_pipeline/internal/domain/normalize"

	"github.com/shopspring/decimal"
)

// LineTotalEntry is one row of a client's price breakdown.
type LineTotalEntry struct {
	Key       entities.LineItemKey `json:"key"`
	Quantity  float64              `json:"quantity"`
	UnitPrice float64              `json:"unit_price"`
	Total     float64              `json:"total"`
}

// LineTotal returns quantity*unitPrice, or 0 when either operand is zero,
// negative or not a finite number.
func LineTotal(item entities.LineItem) float64 {
	return lineTotal(item).InexactFloat64()
}

func lineTotal(item entities.LineItem) decimal.Decimal {
	q := normalize.NonNegative(item.Quantity)
	p := normalize.NonNegative(item.UnitPrice)
	if q == 0 || p == 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(q).Mul(decimal.NewFromFloat(p))
}

// ClientTotal sums LineTotal over every fixed line-item key.
func ClientTotal(record entities.ClientRecord) float64 {
	total := decimal.Zero
	for _, key := range entities.LineItemKeys() {
		total = total.Add(lineTotal(record.Item(key)))
	}
	return total.InexactFloat64()
}

// Breakdown returns the per-key totals in fixed key order.
func Breakdown(record entities.ClientRecord) []LineTotalEntry {
	keys := entities.LineItemKeys()
	out := make([]LineTotalEntry, 0, len(keys))
	for _, key := range keys {
		item := record.Item(key)
		out = append(out, LineTotalEntry{
			Key:       key,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Total:     LineTotal(item),
		})
	}
	return out
}
