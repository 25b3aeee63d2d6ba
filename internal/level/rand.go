package level

import "math/rand"

// Source supplies the integer draws the generator makes.
// Between returns a value in [lo, hi], both ends inclusive.
type Source interface {
	Between(lo, hi int) int
}

// RandSource is a seeded Source for deterministic runs.
type RandSource struct {
	rng *rand.Rand
}

// NewRandSource creates a Source seeded with seed.
func NewRandSource(seed int64) *RandSource {
	return &RandSource{rng: rand.New(rand.NewSource(seed))}
}

// Between returns a uniform integer in [lo, hi].
// A reversed range returns lo.
func (r *RandSource) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.rng.Intn(hi-lo+1)
}
