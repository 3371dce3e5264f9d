package core

import (
	"errors"
	"slices"
	"testing"
)

func TestFromMatrixRejectsJagged(t *testing.T) {
	_, err := FromMatrix([][]Cell{{0, 1, 0}, {1, 1}, {0, 0, 0}})
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("got %v, want ErrDimensionMismatch", err)
	}
}

func TestFromMatrixRejectsEmpty(t *testing.T) {
	for _, m := range [][][]Cell{nil, {}, {{}}} {
		if _, err := FromMatrix(m); !errors.Is(err, ErrDimensionMismatch) {
			t.Fatalf("matrix %v: got %v, want ErrDimensionMismatch", m, err)
		}
	}
}

func TestFromMatrixCopiesInput(t *testing.T) {
	m := [][]Cell{{0, 1}, {1, 0}}
	g, err := FromMatrix(m)
	if err != nil {
		t.Fatal(err)
	}
	m[0][0] = 1
	if g.At(0, 0) != 0 {
		t.Fatal("generation aliases the caller's matrix")
	}
}

func TestNewGenerationRejectsBadDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}} {
		if _, err := NewGeneration(dims[0], dims[1]); !errors.Is(err, ErrDimensionMismatch) {
			t.Fatalf("%dx%d: got %v, want ErrDimensionMismatch", dims[0], dims[1], err)
		}
	}
}

func TestReadOutOfBounds(t *testing.T) {
	g, err := NewGeneration(3, 4)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range [][2]int{{3, 0}, {0, 4}, {-1, 0}, {0, -1}} {
		if _, err := g.Read(p[0], p[1]); !errors.Is(err, ErrIndexOutOfBounds) {
			t.Fatalf("Read(%d,%d): got %v, want ErrIndexOutOfBounds", p[0], p[1], err)
		}
	}
	if _, err := g.Read(2, 3); err != nil {
		t.Fatalf("Read(2,3): %v", err)
	}
}

func TestWrap(t *testing.T) {
	g, err := NewGeneration(4, 6)
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct{ r, c, wr, wc int }{
		{-1, -1, 3, 5},
		{4, 6, 0, 0},
		{0, 0, 0, 0},
		{7, -2, 3, 4},
	}
	for _, tc := range cases {
		if wr, wc := g.Wrap(tc.r, tc.c); wr != tc.wr || wc != tc.wc {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), want (%d,%d)", tc.r, tc.c, wr, wc, tc.wr, tc.wc)
		}
	}
}

func TestCloneAndMatrixRoundTrip(t *testing.T) {
	g, err := FromMatrix([][]Cell{{1, 0, 1}, {0, 1, 0}})
	if err != nil {
		t.Fatal(err)
	}
	clone := g.Clone()
	clone.Set(0, 0, 0)
	if g.At(0, 0) != 1 {
		t.Fatal("clone shares the original's cells")
	}

	back, err := FromMatrix(g.Matrix())
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(back.Cells(), g.Cells()) {
		t.Fatal("matrix export does not round-trip")
	}
	if g.Population() != 3 {
		t.Fatalf("population = %d, want 3", g.Population())
	}
}
