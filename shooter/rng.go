package shooter

import (
	"math/rand"
	"time"
)

// Rand wraps a seeded random source so a whole session can be replayed
// from its seed.
type Rand struct {
	rng *rand.Rand
}

// NewRand creates a random source with the given seed.
// A seed of 0 uses the current time.
func NewRand(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rand{rng: rand.New(rand.NewSource(seed))}
}

// Float64 returns a number in [0.0, 1.0)
func (r *Rand) Float64() float64 {
	return r.rng.Float64()
}

// Intn returns an integer in [0, n)
func (r *Rand) Intn(n int) int {
	return r.rng.Intn(n)
}

// Chance returns true with probability p
func (r *Rand) Chance(p float64) bool {
	return r.rng.Float64() < p
}

// pick returns a uniformly chosen element of items
func pick[T any](r *Rand, items []T) T {
	return items[r.Intn(len(items))]
}
