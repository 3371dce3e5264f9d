package core

import "math/rand/v2"

// StepFunc computes the next generation from the current one. It must fully
// populate next and leave cur unmodified. fluctuation is the per-cell
// probability of inverting the rule-computed outcome, applied after the base
// rule; rng must be non-nil whenever fluctuation is greater than zero.
type StepFunc func(cur, next *Generation, fluctuation float64, rng *rand.Rand) error

// CellsChanged describes the grid region affected by a completed tick. Spans
// cover the full grid with the origin at (0,0).
type CellsChanged struct {
	OriginRow int
	OriginCol int
	RowSpan   int
	ColSpan   int
}

// Observer receives one notification per completed tick.
type Observer func(CellsChanged)

// DefaultRule names the rule a Controller falls back to when none is
// configured.
const DefaultRule = "life"

var rules = map[string]StepFunc{}

// RegisterRule adds a step function under the provided name.
func RegisterRule(name string, fn StepFunc) {
	if name == "" || fn == nil {
		return
	}
	rules[name] = fn
}

// Rules exposes the registry of available step functions.
func Rules() map[string]StepFunc {
	return rules
}
