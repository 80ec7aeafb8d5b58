package pricing

import "solar_pipeline/internal/domain/entities"

var defaultUnitPrices = map[entities.LineItemKey]float64{
	entities.LineItemTiledRoof:     300,
	entities.LineItemCB:            50,
	entities.LineItemRCD:           100,
	entities.LineItemExportControl: 100,
	entities.LineItemNeutralLink:   75,
	entities.LineItemACIsolator:    100,
	entities.LineItemIsoLink:       75,
	entities.LineItemEnclosure:     100,
	entities.LineItemHWTimer:       200,
	entities.LineItemDCRun:         20,
	entities.LineItemACRun:         20,
	entities.LineItemSplitCircuit:  150,
}

// DefaultUnitPrice is the unit price a new draft starts with for an extra.
// System parts and the free "other" rows have none.
func DefaultUnitPrice(key entities.LineItemKey) (float64, bool) {
	v, ok := defaultUnitPrices[key]
	return v, ok
}

// NewLineItems returns a full line-item map seeded with default unit prices.
func NewLineItems() map[entities.LineItemKey]entities.LineItem {
	items := make(map[entities.LineItemKey]entities.LineItem, len(entities.LineItemKeys()))
	for _, key := range entities.LineItemKeys() {
		price, _ := DefaultUnitPrice(key)
		items[key] = entities.LineItem{UnitPrice: price}
	}
	return items
}
