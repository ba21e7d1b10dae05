// Package random provides seeded sources of uniform random choices.
package random

import (
	"math/rand"
	"time"

	"github.com/beka-birhanu/vinom-maze/service/i"
)

// Source picks uniform indices from a seeded pseudo-random generator.
// The same seed always yields the same sequence of choices.
type Source struct {
	rng  *rand.Rand
	seed int64
}

// NewSource creates a Source. A zero seed is replaced by the current time.
func NewSource(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Source{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed the source was created with.
func (s *Source) Seed() int64 {
	return s.seed
}

// Intn returns a uniformly distributed index in [0, n). It panics if n <= 0.
func (s *Source) Intn(n int) int {
	return s.rng.Intn(n)
}

// Choose returns a uniformly chosen element of s. s must not be empty.
func Choose[T any](c i.Chooser, s []T) T {
	return s[c.Intn(len(s))]
}
