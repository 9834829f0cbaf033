package core

import (
	"math/rand/v2"
	"time"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// NewTimeRNG creates an RNG seeded from the wall clock. Successive calls
// produce unrelated streams.
func NewTimeRNG() *RNG {
	now := uint64(time.Now().UnixNano())
	return &RNG{r: rand.New(rand.NewPCG(now, rand.Uint64()))}
}

// FillBool sets every cell of rows to alive with probability 0.5.
func FillBool(r *rand.Rand, rows [][]bool) {
	for _, row := range rows {
		for i := range row {
			row[i] = r.IntN(2) == 1
		}
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
