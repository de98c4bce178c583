package jrandom

import (
	"io"
	"math/rand"
)

var (
	_ rand.Source   = (*Random)(nil)
	_ rand.Source64 = (*Random)(nil)
	_ io.Reader     = (*Random)(nil)
)

// Uint64 returns Int64 reinterpreted as an uint64. Together with Int63 and Seed this
// lets a Random drive a math/rand.Rand.
func (r *Random) Uint64() uint64 {
	return uint64(r.Int64())
}

// Int63 returns a non-negative int64 made of the upper 63 bits of Uint64.
func (r *Random) Int63() int64 {
	return int64(r.Uint64() >> 1)
}

// Read fills p via NextBytes and always returns len(p), nil. Every call starts a new
// group of four bytes, so reading 2+2 bytes yields different data than reading 4 bytes.
func (r *Random) Read(p []byte) (n int, err error) {
	r.NextBytes(p)
	return len(p), nil
}

// String describes the generator without revealing its state, which would allow to
// predict all future output.
func (r *Random) String() string {
	return "Random number generator implemented with the same algorithm as java.util.Random"
}

// GoString hides the state from %#v as well.
func (r *Random) GoString() string {
	return "&jrandom.Random{}"
}
