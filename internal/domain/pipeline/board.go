package pipeline

import (
	"sort"
	"strings"

	"solar_pipeline/internal/domain/entities"
	"solar_pipeline/internal/domain/pricing"
)

// Card is the compact view of a client shown in a board column.
type Card struct {
	ID           string   `json:"id"`
	FirstName    string   `json:"first_name"`
	Name         string   `json:"name"`
	Neighborhood string   `json:"neighborhood,omitempty"`
	Date         string   `json:"date,omitempty"`
	SystemSize   *float64 `json:"system_size,omitempty"`
	Total        float64  `json:"total"`
	HasBattery   bool     `json:"has_battery"`
	HasTiledRoof bool     `json:"has_tiled_roof"`
}

type Column struct {
	Stage entities.Stage `json:"stage"`
	Label string         `json:"label"`
	Known bool           `json:"known"`
	Cards []Card         `json:"cards"`
}

// Board is the whole pipeline: one column per known stage in pipeline order,
// followed by one column per unrecognized stage string found in the data.
type Board struct {
	Columns []Column `json:"columns"`
}

// Count returns the number of cards across every column.
func (b Board) Count() int {
	n := 0
	for _, c := range b.Columns {
		n += len(c.Cards)
	}
	return n
}

// BuildBoard partitions records into columns. Every record lands in exactly
// one column.
func BuildBoard(records []entities.ClientRecord) Board {
	var board Board
	for _, stage := range entities.AllStages() {
		board.Columns = append(board.Columns, column(stage, true, records))
	}

	var extra []string
	seen := map[entities.Stage]bool{}
	for _, r := range records {
		s := Classify(r)
		if s.IsKnown() || seen[s] {
			continue
		}
		seen[s] = true
		extra = append(extra, string(s))
	}
	sort.Strings(extra)
	for _, s := range extra {
		board.Columns = append(board.Columns, column(entities.Stage(s), false, records))
	}
	return board
}

func column(stage entities.Stage, known bool, records []entities.ClientRecord) Column {
	matched := ListByStage(records, stage)
	cards := make([]Card, 0, len(matched))
	for _, r := range matched {
		cards = append(cards, NewCard(r))
	}
	return Column{Stage: stage, Label: stage.Label(), Known: known, Cards: cards}
}

// NewCard builds the board card for a record.
func NewCard(r entities.ClientRecord) Card {
	return Card{
		ID:           r.ID,
		FirstName:    FirstName(r.Profile.Name),
		Name:         r.Profile.Name,
		Neighborhood: r.Profile.Neighborhood,
		Date:         r.Profile.Date,
		SystemSize:   r.SystemSize,
		Total:        pricing.ClientTotal(r),
		HasBattery:   HasBattery(r),
		HasTiledRoof: HasTiledRoof(r),
	}
}

// FirstName returns the first word of name, or "No name".
func FirstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "No name"
	}
	return fields[0]
}

// HasBattery is true when a battery quantity is set or the battery row has
// a note.
func HasBattery(r entities.ClientRecord) bool {
	item := r.Item(entities.LineItemBattery)
	return item.Quantity > 0 || strings.TrimSpace(item.Info) != ""
}

// HasTiledRoof is true when a tiled-roof quantity is set or its note says
// "yes".
func HasTiledRoof(r entities.ClientRecord) bool {
	item := r.Item(entities.LineItemTiledRoof)
	return item.Quantity > 0 || strings.Contains(strings.ToLower(item.Info), "yes")
}
