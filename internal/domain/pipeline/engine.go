// Package pipeline classifies client records into stages and executes stage
// transitions. It operates on in-memory values only; persistence is the
// caller's job.
package pipeline

import (
	"errors"

	"solar_pipeline/internal/domain/entities"
)

var ErrTransitionNotAllowed = errors.New("stage transition not allowed")

// Transitions is an adjacency set: from -> allowed targets.
type Transitions map[entities.Stage]map[entities.Stage]bool

// AllToAll allows every known stage to reach every known stage, itself
// included. This mirrors the screens, which offer forward and backward moves
// without any guard.
func AllToAll() Transitions {
	t := Transitions{}
	for _, from := range entities.AllStages() {
		t[from] = map[entities.Stage]bool{}
		for _, to := range entities.AllStages() {
			t[from][to] = true
		}
	}
	return t
}

type Engine struct {
	transitions Transitions
}

// NewEngine returns an engine with the all-to-all transition set.
func NewEngine() *Engine {
	return NewEngineWithTransitions(AllToAll())
}

// NewEngineWithTransitions returns an engine restricted to t.
func NewEngineWithTransitions(t Transitions) *Engine {
	return &Engine{transitions: t}
}

// Classify returns the record's stage, or lead when it has none. Unknown
// stage strings are returned verbatim.
func Classify(record entities.ClientRecord) entities.Stage {
	if record.Stage == "" {
		return entities.StageLead
	}
	return record.Stage
}

// ListByStage keeps the records classified as stage, in input order.
func ListByStage(records []entities.ClientRecord, stage entities.Stage) []entities.ClientRecord {
	out := make([]entities.ClientRecord, 0)
	for _, r := range records {
		if Classify(r) == stage {
			out = append(out, r)
		}
	}
	return out
}

// AllowedTransitions returns the stages reachable from from, in pipeline
// order. A record sitting in an unrecognized stage may move to any known
// stage.
func (e *Engine) AllowedTransitions(from entities.Stage) []entities.Stage {
	targets, ok := e.transitions[from]
	if !ok && !from.IsKnown() {
		return entities.AllStages()
	}
	out := make([]entities.Stage, 0, len(targets))
	for _, s := range entities.AllStages() {
		if targets[s] {
			out = append(out, s)
		}
	}
	return out
}

// CanTransition reports whether a record classified as from may move to to.
func (e *Engine) CanTransition(from, to entities.Stage) bool {
	for _, s := range e.AllowedTransitions(from) {
		if s == to {
			return true
		}
	}
	return false
}

// Transition returns a copy of record moved to target.
func (e *Engine) Transition(record entities.ClientRecord, target entities.Stage) (entities.ClientRecord, error) {
	if !e.CanTransition(Classify(record), target) {
		return entities.ClientRecord{}, ErrTransitionNotAllowed
	}
	out := record.Clone()
	out.Stage = target
	return out, nil
}
