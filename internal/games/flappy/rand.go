package flappy

import "math/rand"

// Rand is the random source used for gap placement and particles.
// *rand.Rand satisfies it; tests supply fixed sequences.
type Rand interface {
	Float64() float64
}

// NewRand returns a seeded random source.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// uniform samples [lo, hi).
func uniform(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
