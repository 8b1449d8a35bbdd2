package game

import "math/rand"

// Rand is the source of randomness for scene-entry events. It is injectable
// so tests can supply deterministic sequences.
type Rand interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
}

type defaultRand struct{}

func (defaultRand) Float64() float64 {
	return rand.Float64()
}
