package core

import "math/rand/v2"

// State holds the grid's double-buffered generations: current is the
// externally readable snapshot, scratch is the write target for the next
// step. Both buffers always share the same dimensions.
type State struct {
	cur     *Generation
	scratch *Generation
}

// NewState wraps the provided generation, deep-copying it into the scratch
// buffer. The state takes ownership of g.
func NewState(g *Generation) *State {
	return &State{cur: g, scratch: g.Clone()}
}

// Rows returns the row count of the current generation.
func (s *State) Rows() int { return s.cur.rows }

// Cols returns the column count of the current generation.
func (s *State) Cols() int { return s.cur.cols }

// Current returns the authoritative generation.
func (s *State) Current() *Generation { return s.cur }

// Read returns the cell at (row, col) of the current generation.
func (s *State) Read(row, col int) (Cell, error) {
	return s.cur.Read(row, col)
}

// Replace validates the matrix, installs it as the current generation and
// deep-copies it into scratch. The installed buffers adopt the matrix's
// dimensions.
func (s *State) Replace(m [][]Cell) error {
	g, err := FromMatrix(m)
	if err != nil {
		return err
	}
	s.cur = g
	s.scratch = g.Clone()
	return nil
}

// Step populates scratch from current via fn, then swaps the buffer roles so
// the computed generation becomes current. The swap is skipped when fn fails,
// leaving the current generation untouched.
func (s *State) Step(fn StepFunc, fluctuation float64, rng *rand.Rand) error {
	if err := fn(s.cur, s.scratch, fluctuation, rng); err != nil {
		return err
	}
	s.cur, s.scratch = s.scratch, s.cur
	return nil
}
