// Package random provides explicit pseudo-random generator construction.
//
// Callers always hold a *rand.Rand instance instead of relying on the
// process-global generator, so tests can inject a fixed seed and assert
// exact sequences.
package random

import (
	"math/rand"
	"time"
)

// New creates a generator seeded with the provided seed.
// If seed is 0, the current wall-clock time is used.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
