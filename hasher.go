package slotmap

import "hash/maphash"

// Hasher computes a 64-bit hash of a key under the given seed.
//
// Implementations must be deterministic for the lifetime of the seed and
// must agree with Go equality on K: keys that compare equal must hash
// equal. The indexer derives its whole probe sequence from this value.
type Hasher[K comparable] func(seed maphash.Seed, key K) uint64

// ComparableHasher hashes any comparable key using hash/maphash. It is
// the default hasher for new indexers.
func ComparableHasher[K comparable](seed maphash.Seed, key K) uint64 {
	return maphash.Comparable(seed, key)
}
