package core

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"
)

// invertStep flips every cell, a trivially checkable rule.
func invertStep(cur, next *Generation, _ float64, _ *rand.Rand) error {
	for i, v := range cur.Cells() {
		next.Cells()[i] = v ^ 1
	}
	return nil
}

func failingStep(cur, next *Generation, _ float64, _ *rand.Rand) error {
	// Dirty the scratch buffer before failing to prove a failed step never
	// publishes partial output.
	next.Cells()[0] = 1
	return errors.New("step exploded")
}

func mustState(t *testing.T, m [][]Cell) *State {
	t.Helper()
	g, err := FromMatrix(m)
	if err != nil {
		t.Fatal(err)
	}
	return NewState(g)
}

func TestStepSwapsBuffers(t *testing.T) {
	s := mustState(t, [][]Cell{{1, 0}, {0, 1}})
	if err := s.Step(invertStep, 0, nil); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(s.Current().Cells(), []Cell{0, 1, 1, 0}) {
		t.Fatalf("current after step = %v", s.Current().Cells())
	}
	// A second step must reuse the old buffer, not a stale copy.
	if err := s.Step(invertStep, 0, nil); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(s.Current().Cells(), []Cell{1, 0, 0, 1}) {
		t.Fatalf("current after second step = %v", s.Current().Cells())
	}
}

func TestFailedStepDoesNotSwap(t *testing.T) {
	s := mustState(t, [][]Cell{{0, 0}, {0, 0}})
	if err := s.Step(failingStep, 0, nil); err == nil {
		t.Fatal("expected step error")
	}
	if !slices.Equal(s.Current().Cells(), []Cell{0, 0, 0, 0}) {
		t.Fatalf("failed step leaked into current: %v", s.Current().Cells())
	}
}

func TestReplaceDeepCopies(t *testing.T) {
	s := mustState(t, [][]Cell{{0}})
	m := [][]Cell{{1, 1}, {0, 1}}
	if err := s.Replace(m); err != nil {
		t.Fatal(err)
	}
	m[0][0] = 0
	if v, _ := s.Read(0, 0); v != 1 {
		t.Fatal("replace aliases the caller's matrix")
	}
	if s.Rows() != 2 || s.Cols() != 2 {
		t.Fatalf("replace kept old dimensions %dx%d", s.Rows(), s.Cols())
	}
}

func TestReplaceRejectsJagged(t *testing.T) {
	s := mustState(t, [][]Cell{{1, 0}, {0, 1}})
	err := s.Replace([][]Cell{{1}, {0, 1}})
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("got %v, want ErrDimensionMismatch", err)
	}
	// State must be untouched on failure.
	if !slices.Equal(s.Current().Cells(), []Cell{1, 0, 0, 1}) {
		t.Fatalf("failed replace mutated state: %v", s.Current().Cells())
	}
}

func TestScratchStartsAsDeepCopy(t *testing.T) {
	s := mustState(t, [][]Cell{{1, 0}})
	if !slices.Equal(s.scratch.Cells(), s.cur.Cells()) {
		t.Fatal("scratch not initialized from current")
	}
	s.scratch.Set(0, 0, 0)
	if s.cur.At(0, 0) != 1 {
		t.Fatal("scratch shares current's cells")
	}
}
