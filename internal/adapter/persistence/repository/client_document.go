package repository

import (
	"math"
	"strings"
	"unicode"

	"solar_pipeline/internal/domain/entities"
	"solar_pipeline/internal/domain/normalize"
)

// clientItem is the canonical clients document. Every write uses this shape;
// reads go through decodeClientDocument so that documents saved by the old
// mobile screens still load.
type clientItem struct {
	ID            string                    `dynamodbav:"id"`
	Stage         string                    `dynamodbav:"stage"`
	Name          string                    `dynamodbav:"name"`
	Address       string                    `dynamodbav:"address"`
	Neighborhood  string                    `dynamodbav:"neighborhood"`
	Phone         string                    `dynamodbav:"phone"`
	Email         string                    `dynamodbav:"email"`
	Date          string                    `dynamodbav:"date"`
	Note          string                    `dynamodbav:"note"`
	SystemSize    *float64                  `dynamodbav:"systemSize,omitempty"`
	LineItems     map[string]lineItemItem   `dynamodbav:"lineItems"`
	StageNotes    map[string]stageNotesItem `dynamodbav:"stageNotes"`
	ExtraServices string                    `dynamodbav:"extraServices"`
	CreatedAt     string                    `dynamodbav:"createdAt"`
	UpdatedAt     string                    `dynamodbav:"updatedAt"`
}

type lineItemItem struct {
	Quantity          float64 `dynamodbav:"quantity"`
	UnitPrice         float64 `dynamodbav:"unitPrice"`
	Info              string  `dynamodbav:"info"`
	SelectedProductID string  `dynamodbav:"selectedProductId"`
}

type stageNotesItem struct {
	StartNote string `dynamodbav:"startNote"`
	FinalNote string `dynamodbav:"finalNote"`
}

func toClientItem(c entities.ClientRecord) clientItem {
	it := clientItem{
		ID:            c.ID,
		Stage:         string(entities.ParseStage(string(c.Stage))),
		Name:          c.Profile.Name,
		Address:       c.Profile.Address,
		Neighborhood:  c.Profile.Neighborhood,
		Phone:         c.Profile.Phone,
		Email:         c.Profile.Email,
		Date:          c.Profile.Date,
		Note:          c.Profile.Note,
		SystemSize:    c.SystemSize,
		LineItems:     make(map[string]lineItemItem, len(c.LineItems)),
		StageNotes:    make(map[string]stageNotesItem, len(c.StageNotes)),
		ExtraServices: c.ExtraServices,
		CreatedAt:     formatTime(c.CreatedAt),
		UpdatedAt:     formatTime(c.UpdatedAt),
	}
	for k, li := range c.LineItems {
		it.LineItems[string(k)] = lineItemItem{
			Quantity:          normalize.NonNegative(li.Quantity),
			UnitPrice:         normalize.NonNegative(li.UnitPrice),
			Info:              li.Info,
			SelectedProductID: li.SelectedProductID,
		}
	}
	for s, n := range c.StageNotes {
		it.StageNotes[string(s)] = stageNotesItem{StartNote: n.StartNote, FinalNote: n.FinalNote}
	}
	return it
}

// decodeClientDocument builds a ClientRecord from a raw document, accepting
// both the canonical schema and the field names used by older app versions:
//
//   - neighbourhood, system_size, extra_services
//   - inverterQty / inverterUnit / inverterSelected / inverterInfo (same for
//     panels and battery)
//   - snake_case battery_qty / tiled_roof_info / ... and nested {qty, info}
//   - extras.{key}.{qty, unit, info}
//   - visit_start_note / visitStartNote / ... per note stage
//   - numeric phone numbers and the "afterSales" stage alias
//
// Canonical fields win over legacy ones when both are present.
func decodeClientDocument(raw map[string]any) entities.ClientRecord {
	rec := entities.ClientRecord{
		ID:    stringValue(raw["id"]),
		Stage: entities.ParseStage(stringValue(raw["stage"])),
		Profile: entities.Profile{
			Name:         strings.TrimSpace(stringValue(raw["name"])),
			Address:      stringValue(raw["address"]),
			Neighborhood: firstString(raw, "neighborhood", "neighbourhood"),
			Phone:        stringValue(raw["phone"]),
			Email:        stringValue(raw["email"]),
			Date:         stringValue(raw["date"]),
			Note:         stringValue(raw["note"]),
		},
		ExtraServices: firstString(raw, "extraServices", "extra_services"),
		CreatedAt:     parseTime(stringValue(raw["createdAt"])),
		UpdatedAt:     parseTime(stringValue(raw["updatedAt"])),
		LineItems:     decodeLineItems(raw),
		StageNotes:    decodeStageNotes(raw),
	}
	if v := numberValue(raw["systemSize"]); v != nil {
		rec.SystemSize = v
	} else {
		rec.SystemSize = numberValue(raw["system_size"])
	}
	return rec
}

func decodeLineItems(raw map[string]any) map[entities.LineItemKey]entities.LineItem {
	out := make(map[entities.LineItemKey]entities.LineItem)
	extras, _ := raw["extras"].(map[string]any)
	canonical, _ := raw["lineItems"].(map[string]any)

	for _, key := range entities.LineItemKeys() {
		var (
			item  entities.LineItem
			found bool
		)
		apply := func(qty, unit, info, selected any) {
			if v := numberValue(qty); v != nil {
				item.Quantity = normalize.NonNegative(*v)
				found = true
			}
			if v := numberValue(unit); v != nil {
				item.UnitPrice = normalize.NonNegative(*v)
				found = true
			}
			if s, ok := info.(string); ok {
				item.Info = s
				found = true
			}
			if s, ok := selected.(string); ok {
				item.SelectedProductID = s
				found = true
			}
		}

		k := string(key)
		snake := toSnake(k)

		// nested {qty, info} written by the first client form
		if nested, ok := raw[snake].(map[string]any); ok {
			apply(nested["qty"], nested["unit"], nested["info"], nil)
		}
		apply(raw[snake+"_qty"], raw[snake+"_unit"], raw[snake+"_info"], nil)
		apply(raw[k+"Qty"], raw[k+"Unit"], raw[k+"Info"], raw[k+"Selected"])
		if e, ok := extras[k].(map[string]any); ok {
			apply(e["qty"], e["unit"], e["info"], nil)
		}
		if c, ok := canonical[k].(map[string]any); ok {
			apply(c["quantity"], c["unitPrice"], c["info"], c["selectedProductId"])
		}

		if found {
			out[key] = item
		}
	}
	return out
}

func decodeStageNotes(raw map[string]any) map[entities.Stage]entities.StageNotes {
	out := make(map[entities.Stage]entities.StageNotes)
	canonical, _ := raw["stageNotes"].(map[string]any)

	for _, stage := range entities.NoteStages() {
		var (
			notes entities.StageNotes
			found bool
		)
		apply := func(start, final any) {
			if s, ok := start.(string); ok {
				notes.StartNote = s
				found = true
			}
			if s, ok := final.(string); ok {
				notes.FinalNote = s
				found = true
			}
		}

		s := string(stage)
		camel := toCamel(s)
		apply(raw[s+"_start_note"], raw[s+"_final_note"])
		apply(raw[camel+"StartNote"], raw[camel+"FinalNote"])
		if stage == entities.StageAfterSales {
			if m, ok := canonical[string(entities.LegacyStageAfterSales)].(map[string]any); ok {
				apply(m["startNote"], m["finalNote"])
			}
		}
		if m, ok := canonical[s].(map[string]any); ok {
			apply(m["startNote"], m["finalNote"])
		}

		if found {
			out[stage] = notes
		}
	}
	return out
}

func firstString(raw map[string]any, keys ...string) string {
	for _, k := range keys {
		if s := stringValue(raw[k]); s != "" {
			return s
		}
	}
	return ""
}

// stringValue renders strings as-is and numbers without exponent, which is
// how phone numbers were stored before they became text.
func stringValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return ""
		}
		return floatToString(t)
	}
	return ""
}

func numberValue(v any) *float64 {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil
		}
		return &t
	case string:
		return normalize.ParseOptionalNumber(t)
	}
	return nil
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func toCamel(s string) string {
	parts := strings.Split(s, "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] == "" {
			continue
		}
		parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
	}
	return strings.Join(parts, "")
}
