package core

import "errors"

var (
	// ErrDimensionMismatch reports a generation matrix that is empty, jagged,
	// or otherwise has unusable dimensions.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrIndexOutOfBounds reports a cell read outside the grid.
	ErrIndexOutOfBounds = errors.New("index out of bounds")
)
