package request

import (
	"encoding/json"
	"errors"
	"testing"

	"solar_pipeline/internal/domain/entities"
)

func TestNumberText_UnmarshalJSON(t *testing.T) {
	cases := map[string]string{
		`12.5`:    "12.5",
		`"3"`:     "3",
		`" 7,5 "`: " 7,5 ",
		`null`:    "",
		`0`:       "0",
		`-2`:      "-2",
		`"abc"`:   "abc",
		`1e3`:     "1e3",
	}
	for in, want := range cases {
		var n NumberText
		if err := json.Unmarshal([]byte(in), &n); err != nil {
			t.Fatalf("%s: unexpected error: %v", in, err)
		}
		if n.String() != want {
			t.Fatalf("%s: expected %q, got %q", in, want, n)
		}
	}

	var n NumberText
	err := json.Unmarshal([]byte(`true`), &n)
	if !errors.Is(err, ErrInvalidNumberText) {
		t.Fatalf("expected ErrInvalidNumberText, got %v", err)
	}
}

func TestClientRequest_ToDraft(t *testing.T) {
	body := `{
		"name": " Ana Silva ",
		"neighborhood": "West End",
		"phone": 412345678,
		"system_size": "6.6",
		"line_items": {
			"inverter": {"quantity": 1, "unit_price": "1500", "selected_product_id": " p1 "},
			" tiledRoof ": {"quantity": "20", "info": "steep"}
		}
	}`
	var r ClientRequest
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	d := r.ToDraft()
	if d.Profile.Phone != "412345678" || d.SystemSize != "6.6" {
		t.Fatalf("unexpected draft: %+v", d)
	}
	inv := d.LineItems[entities.LineItemInverter]
	if inv.Quantity != "1" || inv.UnitPrice != "1500" || inv.SelectedProductID != "p1" {
		t.Fatalf("unexpected inverter: %+v", inv)
	}
	roof, ok := d.LineItems[entities.LineItemTiledRoof]
	if !ok || roof.Quantity != "20" || roof.Info != "steep" || roof.UnitPrice != "" {
		t.Fatalf("unexpected tiled roof: %+v", roof)
	}
}

func TestNotesRequest_ToPatch(t *testing.T) {
	var r NotesRequest
	if err := json.Unmarshal([]byte(`{"final_note":"done"}`), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := r.ToPatch()
	if p.StartNote != nil || p.FinalNote == nil || *p.FinalNote != "done" {
		t.Fatalf("unexpected patch: %+v", p)
	}
}
