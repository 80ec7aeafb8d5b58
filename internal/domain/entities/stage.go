package entities

import "strings"

// Stage is the pipeline phase a client record currently occupies.
//
// Stored values are the lowercase strings below. Records written by older
// screens may carry an empty stage (treated as lead) or the camel-cased
// "afterSales" alias, which the store boundary rewrites to StageAfterSales.
type Stage string

const (
	StageLead       Stage = "lead"
	StageVisit      Stage = "visit"
	StageContract   Stage = "contract"
	StageService    Stage = "service"
	StageBilling    Stage = "billing"
	StageAfterSales Stage = "after_sales"
)

// LegacyStageAfterSales is the alias used by the old pipeline board.
const LegacyStageAfterSales Stage = "afterSales"

// AllStages lists the known stages in forward pipeline order.
func AllStages() []Stage {
	return []Stage{StageLead, StageVisit, StageContract, StageService, StageBilling, StageAfterSales}
}

// IsKnown reports whether s is one of the six pipeline stages.
func (s Stage) IsKnown() bool {
	for _, k := range AllStages() {
		if s == k {
			return true
		}
	}
	return false
}

// Label is the board column heading.
func (s Stage) Label() string {
	switch s {
	case StageLead:
		return "LEADS"
	case StageVisit:
		return "VISIT"
	case StageContract:
		return "CONTRACT"
	case StageService:
		return "SERVICE"
	case StageBilling:
		return "BILLING"
	case StageAfterSales:
		return "AFTER SALES"
	default:
		return string(s)
	}
}

// NoteStages are the stages that carry start/final notes.
func NoteStages() []Stage {
	return []Stage{StageVisit, StageContract, StageService, StageBilling, StageAfterSales}
}

// HasNotes reports whether s carries start/final notes.
func (s Stage) HasNotes() bool {
	for _, k := range NoteStages() {
		if s == k {
			return true
		}
	}
	return false
}

// ParseStage trims s and maps the legacy "afterSales" alias. Other values,
// including unknown ones, are returned unchanged.
func ParseStage(s string) Stage {
	st := Stage(strings.TrimSpace(s))
	if st == LegacyStageAfterSales {
		return StageAfterSales
	}
	return st
}
