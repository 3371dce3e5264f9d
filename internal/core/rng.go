package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// FillBernoulli fills the buffer with independent alive draws at the given
// likelihood. Likelihood values outside [0,1] are clamped.
func FillBernoulli(r *rand.Rand, buf []Cell, likelihood float64) {
	if likelihood < 0 {
		likelihood = 0
	}
	if likelihood > 1 {
		likelihood = 1
	}
	for i := range buf {
		buf[i] = Dead
		if r.Float64() < likelihood {
			buf[i] = Alive
		}
	}
}

// RandomGeneration produces a rows x cols generation where each cell is
// independently alive with the given likelihood.
func RandomGeneration(rows, cols int, likelihood float64, r *rand.Rand) (*Generation, error) {
	g, err := NewGeneration(rows, cols)
	if err != nil {
		return nil, err
	}
	FillBernoulli(r, g.Cells(), likelihood)
	return g, nil
}
