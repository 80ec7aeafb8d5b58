package request

import (
	"strings"

	"solar_pipeline/internal/domain/entities"
	"solar_pipeline/internal/usecase"
)

type LineItemRequest struct {
	Quantity          NumberText `json:"quantity"`
	UnitPrice         NumberText `json:"unit_price"`
	Info              string     `json:"info"`
	SelectedProductID string     `json:"selected_product_id"`
}

// ClientRequest is the body of POST /clients and PUT /clients/:id. Line item
// keys are the fixed keys (inverter, panels, tiledRoof, ...).
type ClientRequest struct {
	Name          string                     `json:"name" binding:"required"`
	Address       string                     `json:"address"`
	Neighborhood  string                     `json:"neighborhood"`
	Phone         NumberText                 `json:"phone"`
	Email         string                     `json:"email"`
	Date          string                     `json:"date"`
	Note          string                     `json:"note"`
	SystemSize    NumberText                 `json:"system_size"`
	LineItems     map[string]LineItemRequest `json:"line_items"`
	ExtraServices string                     `json:"extra_services"`
}

func (r ClientRequest) ToDraft() usecase.ClientDraft {
	draft := usecase.ClientDraft{
		Profile: entities.Profile{
			Name:         r.Name,
			Address:      strings.TrimSpace(r.Address),
			Neighborhood: r.Neighborhood,
			Phone:        r.Phone.String(),
			Email:        r.Email,
			Date:         strings.TrimSpace(r.Date),
			Note:         r.Note,
		},
		SystemSize:    r.SystemSize.String(),
		LineItems:     make(map[entities.LineItemKey]usecase.LineItemDraft, len(r.LineItems)),
		ExtraServices: r.ExtraServices,
	}
	for k, li := range r.LineItems {
		draft.LineItems[entities.LineItemKey(strings.TrimSpace(k))] = usecase.LineItemDraft{
			Quantity:          li.Quantity.String(),
			UnitPrice:         li.UnitPrice.String(),
			Info:              li.Info,
			SelectedProductID: strings.TrimSpace(li.SelectedProductID),
		}
	}
	return draft
}

type StageRequest struct {
	Stage string `json:"stage" binding:"required"`
}

// NotesRequest merges into the stage notes; omitted fields are kept.
type NotesRequest struct {
	StartNote *string `json:"start_note"`
	FinalNote *string `json:"final_note"`
}

func (r NotesRequest) ToPatch() usecase.NotesPatch {
	return usecase.NotesPatch{StartNote: r.StartNote, FinalNote: r.FinalNote}
}

// SelectProductRequest selects a catalog product; an empty product_id clears
// the selection.
type SelectProductRequest struct {
	ProductID string `json:"product_id"`
}
