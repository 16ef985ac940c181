package randutil

import (
	rand "math/rand/v2"
	"time"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// The helper centralises how we derive the two 64-bit seeds required by rand/v2
// so that all call sites get reproducible sequences.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Derive returns n independent generators seeded from parent, in order.
// The same parent state always yields the same children, so work split
// across n workers stays reproducible.
func Derive(parent *rand.Rand, n int) []*rand.Rand {
	children := make([]*rand.Rand, n)
	for i := range children {
		children[i] = rand.New(rand.NewPCG(mix(parent.Uint64()), mix(parent.Uint64()+goldenRatio64)))
	}
	return children
}

// Seed returns seed if it is non-zero, otherwise one taken from the wall clock.
func Seed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
