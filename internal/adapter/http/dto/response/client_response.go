package response

import (
	"time"

	"solar_pipeline/internal/domain/entities"
	"solar_pipeline/internal/domain/pipeline"
	"solar_pipeline/internal/domain/pricing"
	"solar_pipeline/internal/usecase"
)

type NotesResponse struct {
	StartNote string `json:"start_note"`
	FinalNote string `json:"final_note"`
}

type ClientResponse struct {
	ID            string                                     `json:"id"`
	Stage         string                                     `json:"stage"`
	StageLabel    string                                     `json:"stage_label"`
	Profile       entities.Profile                           `json:"profile"`
	SystemSize    *float64                                   `json:"system_size"`
	LineItems     map[entities.LineItemKey]entities.LineItem `json:"line_items"`
	StageNotes    map[entities.Stage]NotesResponse           `json:"stage_notes"`
	ExtraServices string                                     `json:"extra_services"`
	Total         float64                                    `json:"total"`
	CreatedAt     time.Time                                  `json:"created_at"`
	UpdatedAt     time.Time                                  `json:"updated_at"`
}

// FromClient renders a client with its computed total. The stage is the
// classified one, so records saved without a stage come back as lead.
func FromClient(c entities.ClientRecord) ClientResponse {
	stage := pipeline.Classify(c)
	out := ClientResponse{
		ID:            c.ID,
		Stage:         string(stage),
		StageLabel:    stage.Label(),
		Profile:       c.Profile,
		SystemSize:    c.SystemSize,
		LineItems:     c.LineItems,
		StageNotes:    make(map[entities.Stage]NotesResponse, len(c.StageNotes)),
		ExtraServices: c.ExtraServices,
		Total:         pricing.ClientTotal(c),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
	if out.LineItems == nil {
		out.LineItems = map[entities.LineItemKey]entities.LineItem{}
	}
	for s, n := range c.StageNotes {
		out.StageNotes[s] = NotesResponse{StartNote: n.StartNote, FinalNote: n.FinalNote}
	}
	return out
}

func FromClients(cs []entities.ClientRecord) []ClientResponse {
	out := make([]ClientResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromClient(c))
	}
	return out
}

type TotalResponse struct {
	ClientID  string                   `json:"client_id"`
	Total     float64                  `json:"total"`
	Breakdown []pricing.LineTotalEntry `json:"breakdown"`
}

func FromTotal(t usecase.ClientTotal) TotalResponse {
	return TotalResponse{ClientID: t.ClientID, Total: t.Total, Breakdown: t.Breakdown}
}

type StageResponse struct {
	Stage    string   `json:"stage"`
	Label    string   `json:"label"`
	HasNotes bool     `json:"has_notes"`
	Allowed  []string `json:"allowed"`
}

func FromStages(infos []usecase.StageInfo) []StageResponse {
	out := make([]StageResponse, 0, len(infos))
	for _, i := range infos {
		allowed := make([]string, 0, len(i.Allowed))
		for _, s := range i.Allowed {
			allowed = append(allowed, string(s))
		}
		out = append(out, StageResponse{Stage: string(i.Stage), Label: i.Label, HasNotes: i.HasNotes, Allowed: allowed})
	}
	return out
}

type BoardResponse struct {
	Count   int               `json:"count"`
	Columns []pipeline.Column `json:"columns"`
}

func FromBoard(b pipeline.Board) BoardResponse {
	cols := b.Columns
	if cols == nil {
		cols = []pipeline.Column{}
	}
	return BoardResponse{Count: b.Count(), Columns: cols}
}
