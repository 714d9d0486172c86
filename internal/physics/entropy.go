package physics

import (
	"math/rand"
	"time"
)

// Entropy is the randomness the simulation draws from when it creates
// particles. *rand.Rand satisfies it.
type Entropy interface {
	Float64() float64
	Intn(n int) int
}

// NewEntropy returns a *rand.Rand seeded with seed, or with the current time
// when seed is zero.
func NewEntropy(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Uniform draws from [low, high).
func Uniform(e Entropy, low, high float64) float64 {
	return low + e.Float64()*(high-low)
}

// Choose picks one element of items uniformly. items must not be empty.
func Choose[T any](e Entropy, items []T) T {
	return items[e.Intn(len(items))]
}

// randomSign returns -1 or 1 with equal probability.
func randomSign(e Entropy) float64 {
	return Choose(e, []float64{-1, 1})
}
