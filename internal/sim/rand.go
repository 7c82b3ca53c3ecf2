package sim

import (
	"math/rand"
	"time"
)

// Rand is the source of all gameplay randomness. Production uses a
// time-seeded math/rand source; tests inject scripted draws.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns the production draw source.
func NewRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
