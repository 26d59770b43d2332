package matching

import (
	"math/rand"
	"sync"
)

// Rand is the randomness used for score perturbation and discovery picks.
type Rand interface {
	Float64() float64
}

type globalRand struct{}

func (globalRand) Float64() float64 {
	return rand.Float64()
}

// DefaultRand draws from the process-wide source and is safe for concurrent use.
var DefaultRand Rand = globalRand{}

// LockedRand wraps a seeded source so several adapters can share it.
type LockedRand struct {
	mu  sync.Mutex
	src *rand.Rand
}

func NewLockedRand(seed int64) *LockedRand {
	return &LockedRand{src: rand.New(rand.NewSource(seed))}
}

func (r *LockedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Float64()
}

// Fixed always returns the same value. Useful to pin scores.
type Fixed float64

func (f Fixed) Float64() float64 {
	return float64(f)
}
