package haikunator

import "math/rand/v2"

// Source produces uniformly distributed integers in [0, n) for n > 0.
// *rand.Rand from math/rand/v2 satisfies it.
//
// A Source is stateful. Haikunator only calls it while holding its own lock,
// so implementations don't need to be safe for concurrent use.
type Source interface {
	IntN(n int) int
}

// NewSource returns a PCG-backed source seeded from the runtime's random seed.
func NewSource() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NewSeededSource returns a deterministic PCG-backed source.
// Two sources built from the same seed produce the same sequence of draws.
func NewSeededSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
