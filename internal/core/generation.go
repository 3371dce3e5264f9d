package core

import "fmt"

// Cell is a single grid cell value: Dead (0) or Alive (1).
type Cell = uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

// Generation stores one full grid snapshot of cell states in row-major order.
// Dimensions are fixed at construction.
type Generation struct {
	rows, cols int
	cells      []Cell
}

// NewGeneration allocates an all-dead generation with the given dimensions.
func NewGeneration(rows, cols int) (*Generation, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d grid", ErrDimensionMismatch, rows, cols)
	}
	return &Generation{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}, nil
}

// FromMatrix builds a generation from a row-of-rows matrix. The matrix must be
// non-empty and rectangular; the cell values are copied, not aliased.
func FromMatrix(m [][]Cell) (*Generation, error) {
	if len(m) == 0 || len(m[0]) == 0 {
		return nil, fmt.Errorf("%w: empty matrix", ErrDimensionMismatch)
	}
	cols := len(m[0])
	for r, row := range m {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrDimensionMismatch, r, len(row), cols)
		}
	}
	g := &Generation{rows: len(m), cols: cols, cells: make([]Cell, len(m)*cols)}
	for r, row := range m {
		copy(g.cells[r*cols:(r+1)*cols], row)
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Generation) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Generation) Cols() int { return g.cols }

// Cells exposes the backing slice so callers can read values directly.
func (g *Generation) Cells() []Cell { return g.cells }

// Index returns the linear slice index for coordinates (row, col).
func (g *Generation) Index(row, col int) int { return row*g.cols + col }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Generation) Wrap(row, col int) (int, int) {
	row = (row%g.rows + g.rows) % g.rows
	col = (col%g.cols + g.cols) % g.cols
	return row, col
}

// At returns the cell at (row, col) without bounds checking.
func (g *Generation) At(row, col int) Cell { return g.cells[g.Index(row, col)] }

// Set writes the cell at (row, col) without bounds checking.
func (g *Generation) Set(row, col int, v Cell) { g.cells[g.Index(row, col)] = v }

// Read returns the cell at (row, col), failing on out-of-range coordinates.
func (g *Generation) Read(row, col int) (Cell, error) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return Dead, fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrIndexOutOfBounds, row, col, g.rows, g.cols)
	}
	return g.cells[g.Index(row, col)], nil
}

// Clone returns a deep copy of the generation.
func (g *Generation) Clone() *Generation {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Generation{rows: g.rows, cols: g.cols, cells: cells}
}

// Matrix exports the generation as a freshly allocated row-of-rows matrix.
func (g *Generation) Matrix() [][]Cell {
	m := make([][]Cell, g.rows)
	for r := range m {
		m[r] = make([]Cell, g.cols)
		copy(m[r], g.cells[r*g.cols:(r+1)*g.cols])
	}
	return m
}

// Population counts the alive cells.
func (g *Generation) Population() int {
	n := 0
	for _, c := range g.cells {
		if c != Dead {
			n++
		}
	}
	return n
}
