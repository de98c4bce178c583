package jrandom

import "sync/atomic"

const (
	initialSeedUniquifier int64 = 8682522807148012
	uniquifierMultiplier  int64 = 1181783497276652981
)

// seedUniquifier is shared by all default-constructed generators of the process.
var seedUniquifier atomic.Int64

func init() {
	seedUniquifier.Store(initialSeedUniquifier)
}

// nextSeedUniquifier advances the process-wide uniquifier (L'Ecuyer, "Tables of Linear
// Congruential Generators of Different Sizes and Good Lattice Structure", 1999) and
// returns its new value. Concurrent callers always observe distinct values.
func nextSeedUniquifier() int64 {
	for {
		current := seedUniquifier.Load()
		next := current * uniquifierMultiplier
		if seedUniquifier.CompareAndSwap(current, next) {
			return next
		}
	}
}
