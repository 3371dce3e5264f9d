// Package life provides step functions for Life-family cellular automata
// on a toroidal grid.
package life

import (
	"fmt"
	"math/rand/v2"

	"torlife/internal/core"
)

var (
	conwayStep   = DefaultConfig().StepFunc()
	highLifeStep = HighLifeConfig().StepFunc()
)

// Step applies the standard Conway rule: a live cell survives with 2 or 3
// live neighbors, a dead cell becomes alive with exactly 3. Neighbors wrap
// toroidally. When fluctuation is greater than zero, each cell's computed
// outcome is independently inverted with that probability.
func Step(cur, next *core.Generation, fluctuation float64, rng *rand.Rand) error {
	return conwayStep(cur, next, fluctuation, rng)
}

// HighLifeStep applies the HighLife variant (B36/S23): identical to Conway's
// rule except a dead cell is also born with exactly 6 live neighbors.
func HighLifeStep(cur, next *core.Generation, fluctuation float64, rng *rand.Rand) error {
	return highLifeStep(cur, next, fluctuation, rng)
}

// stepFunc wraps a birth/survival predicate into the full neighbor-counting
// step over the torus.
func stepFunc(rule func(alive bool, neighbors int) bool) core.StepFunc {
	return func(cur, next *core.Generation, fluctuation float64, rng *rand.Rand) error {
		rows, cols := cur.Rows(), cur.Cols()
		if next.Rows() != rows || next.Cols() != cols {
			return fmt.Errorf("%w: input %dx%d, output %dx%d", core.ErrDimensionMismatch, rows, cols, next.Rows(), next.Cols())
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				neighbors := 0
				for dr := -1; dr <= 1; dr++ {
					for dc := -1; dc <= 1; dc++ {
						if dr == 0 && dc == 0 {
							continue
						}
						nr, nc := cur.Wrap(r+dr, c+dc)
						neighbors += int(cur.At(nr, nc))
					}
				}
				v := core.Dead
				if rule(cur.At(r, c) == core.Alive, neighbors) {
					v = core.Alive
				}
				if fluctuation > 0 && rng.Float64() < fluctuation {
					v ^= 1
				}
				next.Set(r, c, v)
			}
		}
		return nil
	}
}

func init() {
	core.RegisterRule("life", Step)
	core.RegisterRule("highlife", HighLifeStep)
}
