package response

import (
	"testing"

	"solar_pipeline/internal/domain/entities"
	"solar_pipeline/internal/usecase"
)

func TestFromClient(t *testing.T) {
	c := entities.ClientRecord{
		ID: "0503AnaSilvaWestEnd",
		LineItems: map[entities.LineItemKey]entities.LineItem{
			entities.LineItemInverter: {Quantity: 1, UnitPrice: 1500},
			entities.LineItemPanels:   {Quantity: 10, UnitPrice: 250},
		},
		StageNotes: map[entities.Stage]entities.StageNotes{
			entities.StageVisit: {StartNote: "call first"},
		},
	}

	got := FromClient(c)
	if got.Stage != string(entities.StageLead) {
		t.Fatalf("expected empty stage to render as lead, got %q", got.Stage)
	}
	if got.Total != 4000 {
		t.Fatalf("expected total 4000, got %v", got.Total)
	}
	if got.StageNotes[entities.StageVisit].StartNote != "call first" {
		t.Fatalf("unexpected notes: %+v", got.StageNotes)
	}

	empty := FromClient(entities.ClientRecord{ID: "x"})
	if empty.LineItems == nil || empty.StageNotes == nil {
		t.Fatalf("expected non-nil maps")
	}
}

func TestFromStages(t *testing.T) {
	got := FromStages([]usecase.StageInfo{{
		Stage:   entities.StageLead,
		Label:   "Lead",
		Allowed: []entities.Stage{entities.StageVisit},
	}})
	if len(got) != 1 || got[0].Stage != "lead" || len(got[0].Allowed) != 1 || got[0].Allowed[0] != "visit" {
		t.Fatalf("unexpected stages: %+v", got)
	}
}
