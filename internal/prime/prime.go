// Package prime provides the prime-capacity helper used by slotmap's
// open-addressing tables. Capacities are kept prime so that double-hashing
// probe sequences visit every slot.
package prime

// Next returns the smallest prime >= n. Requests below 3 are rounded up
// to 3, the smallest capacity a table is ever created with.
//
// Next panics when no prime >= n is representable as an int. Growing a
// table past that point is unrecoverable.
func Next(n int) int {
	if n <= 3 {
		return 3
	}
	for c := n; c > 0; c++ {
		if isPrime(c) {
			return c
		}
	}
	panic("prime: capacity overflow")
}

// isPrime uses trial division over 6k±1 candidates, which is plenty for
// capacities that only ever double.
func isPrime(n int) bool {
	if n%2 == 0 {
		return n == 2
	}
	if n%3 == 0 {
		return n == 3
	}
	for f := 5; f <= n/f; f += 6 {
		if n%f == 0 || n%(f+2) == 0 {
			return false
		}
	}
	return true
}
