package entities

import "time"

// LineItemKey names one priced component of a client's system.
type LineItemKey string

const (
	LineItemInverter      LineItemKey = "inverter"
	LineItemPanels        LineItemKey = "panels"
	LineItemBattery       LineItemKey = "battery"
	LineItemTiledRoof     LineItemKey = "tiledRoof"
	LineItemCB            LineItemKey = "cb"
	LineItemRCD           LineItemKey = "rcd"
	LineItemExportControl LineItemKey = "exportControl"
	LineItemNeutralLink   LineItemKey = "neutralLink"
	LineItemACIsolator    LineItemKey = "acIsolator"
	LineItemIsoLink       LineItemKey = "isoLink"
	LineItemEnclosure     LineItemKey = "enclosure"
	LineItemHWTimer       LineItemKey = "hwTimer"
	LineItemDCRun         LineItemKey = "dcRun"
	LineItemACRun         LineItemKey = "acRun"
	LineItemSplitCircuit  LineItemKey = "splitCircuit"
	LineItemOther1        LineItemKey = "other1"
	LineItemOther2        LineItemKey = "other2"
)

// LineItemKeys returns the fixed line-item keys in display order.
func LineItemKeys() []LineItemKey {
	return []LineItemKey{
		LineItemInverter, LineItemPanels, LineItemBattery,
		LineItemTiledRoof, LineItemCB, LineItemRCD, LineItemExportControl,
		LineItemNeutralLink, LineItemACIsolator, LineItemIsoLink, LineItemEnclosure,
		LineItemHWTimer, LineItemDCRun, LineItemACRun, LineItemSplitCircuit,
		LineItemOther1, LineItemOther2,
	}
}

// IsKnown reports whether k is one of the fixed keys.
func (k LineItemKey) IsKnown() bool {
	for _, known := range LineItemKeys() {
		if k == known {
			return true
		}
	}
	return false
}

// IsSystemPart reports whether the item is selected from the product catalog.
func (k LineItemKey) IsSystemPart() bool {
	return k == LineItemInverter || k == LineItemPanels || k == LineItemBattery
}

// CatalogCategory is the product category a system part is picked from.
func (k LineItemKey) CatalogCategory() (ProductCategory, bool) {
	switch k {
	case LineItemInverter:
		return ProductCategoryInverter, true
	case LineItemPanels:
		return ProductCategoryPanel, true
	case LineItemBattery:
		return ProductCategoryBattery, true
	}
	return "", false
}

// LineItem is one priced row. Quantity and UnitPrice are kept non-negative.
type LineItem struct {
	Quantity          float64 `json:"quantity"`
	UnitPrice         float64 `json:"unit_price"`
	Info              string  `json:"info,omitempty"`
	SelectedProductID string  `json:"selected_product_id,omitempty"`
}

// StageNotes holds the free-text notes written when a client enters and
// leaves a stage.
type StageNotes struct {
	StartNote string `json:"start_note"`
	FinalNote string `json:"final_note"`
}

// Profile is the contact part of a client record.
type Profile struct {
	Name         string `json:"name" validate:"required"`
	Address      string `json:"address,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
	Date         string `json:"date,omitempty"`
	Note         string `json:"note,omitempty"`
}

// ClientRecord is one prospect/customer document in the clients collection.
//
// Storage model (DynamoDB):
//   - PK: id
//
// The record is mutated in place by every flow; there is no versioning and a
// full update is last-write-wins.
type ClientRecord struct {
	ID            string                   `json:"id"`
	Stage         Stage                    `json:"stage,omitempty"`
	Profile       Profile                  `json:"profile"`
	SystemSize    *float64                 `json:"system_size,omitempty"`
	LineItems     map[LineItemKey]LineItem `json:"line_items"`
	StageNotes    map[Stage]StageNotes     `json:"stage_notes,omitempty"`
	ExtraServices string                   `json:"extra_services,omitempty"`
	CreatedAt     time.Time                `json:"created_at"`
	UpdatedAt     time.Time                `json:"updated_at"`
}

// Item returns the line item for key, or the zero item when unset.
func (c ClientRecord) Item(key LineItemKey) LineItem {
	if c.LineItems == nil {
		return LineItem{}
	}
	return c.LineItems[key]
}

// Clone returns a copy whose maps can be mutated without touching c.
func (c ClientRecord) Clone() ClientRecord {
	out := c
	if c.SystemSize != nil {
		v := *c.SystemSize
		out.SystemSize = &v
	}
	if c.LineItems != nil {
		out.LineItems = make(map[LineItemKey]LineItem, len(c.LineItems))
		for k, v := range c.LineItems {
			out.LineItems[k] = v
		}
	}
	if c.StageNotes != nil {
		out.StageNotes = make(map[Stage]StageNotes, len(c.StageNotes))
		for k, v := range c.StageNotes {
			out.StageNotes[k] = v
		}
	}
	return out
}
