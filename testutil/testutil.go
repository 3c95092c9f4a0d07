// Package testutil provides helpers shared by slotmap tests and
// benchmarks.
package testutil

import (
	"fmt"
	"math/rand"
)

// RNG encapsulates a seeded random number generator so tests and
// benchmarks are reproducible.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	return r.rand.Intn(n)
}

// Int63 returns a non-negative pseudo-random 63-bit integer.
func (r *RNG) Int63() int64 {
	return r.rand.Int63()
}

// Keys returns n distinct pseudo-random string keys. The index suffix
// guarantees distinctness regardless of random collisions.
func (r *RNG) Keys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = fmt.Sprintf("key-%08x-%d", r.rand.Uint32(), i)
	}

	return keys
}
