// Package jrandom is a pseudo-random number generator that produces exactly the same
// sequences as java.util.Random for the same seed: ints, longs, booleans, floats, doubles,
// byte streams and Gaussian deviates, bit for bit.
//
// The generator is the 48-bit linear congruential generator specified by Java
// (multiplier 0x5DEECE66D, increment 0xB). It is neither cryptographically secure nor
// statistically strong; use it when a sequence derived from a known seed has to be
// reproduced exactly, e.g. for seed-driven procedural generation.
package jrandom

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/TomTonic/jrandom/strictmath"
)

const (
	multiplier int64 = 0x5DEECE66D
	increment  int64 = 0xB
	mask       int64 = 1<<48 - 1
)

// Random is a java.util.Random compatible pseudo-random number generator.
// Every method maps to the Java method of the same purpose and consumes the underlying
// 48-bit state in exactly the same order, so interleaved calls of different methods also
// stay in sync with Java.
// This random number generator is deterministic in the sequence of numbers it generates.
// This random number generator is not cryptographically secure.
// This random number generator is thread-safe: a single instance may be shared between
// goroutines, each state transition is applied atomically.
// A Random must not be copied after first use.
type Random struct {
	state atomic.Int64

	mu                sync.Mutex // guards the spare Gaussian
	spareGaussian     float64
	haveSpareGaussian bool
}

// NewRandom creates a new generator. With a seed it behaves like Java's
// new Random(seed), i.e. two generators created with the same seed produce identical
// sequences. Without a seed it behaves like Java's new Random(): the seed is derived from
// a process-wide uniquifier and the monotonic clock, so that generators created in quick
// succession (or concurrently) differ.
// Only the first seed is used if more than one is given.
func NewRandom(seed ...int64) *Random {
	r := &Random{}
	if len(seed) == 0 {
		r.state.Store(scramble(nextSeedUniquifier() ^ nanoTime()))
	} else {
		r.state.Store(scramble(seed[0]))
	}
	return r
}

func scramble(seed int64) int64 {
	return (seed ^ multiplier) & mask
}

// Seed resets the generator to the state of NewRandom(seed), including discarding a
// cached Gaussian deviate. This corresponds to Java's setSeed and makes Random usable as
// a math/rand Source.
func (r *Random) Seed(seed int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.Store(scramble(seed))
	r.haveSpareGaussian = false
}

// Next advances the generator by one step and returns the topmost bits of the new state
// as the low bits of the result; for bits == 32 the most significant bit of the state
// lands in the sign bit. bits must be in [1,32], Next panics otherwise. Unlike Java,
// which returns 0 for bits == 0, a zero width is rejected as a caller error.
// All other methods are built on top of Next.
func (r *Random) Next(bits int) int32 {
	if bits < 1 || bits > 32 {
		panic(fmt.Errorf("%w: %d", ErrInvalidBits, bits))
	}
	for {
		current := r.state.Load()
		next := (current*multiplier + increment) & mask
		if r.state.CompareAndSwap(current, next) {
			return int32(next >> (48 - bits))
		}
	}
}

// Int32 returns a uniformly distributed int32, see java.util.Random.nextInt().
func (r *Random) Int32() int32 {
	return r.Next(32)
}

// Int32N returns a uniformly distributed int32 in the half-open interval [0,bound),
// see java.util.Random.nextInt(int). bound must be positive, Int32N panics otherwise.
//
// For powers of two the result is taken from the high bits of Next(31). For all other
// bounds Next(31) is reduced modulo bound and values from the last, incomplete interval
// of size bound are rejected and redrawn.
func (r *Random) Int32N(bound int32) int32 {
	if bound <= 0 {
		panic(fmt.Errorf("%w: %d", ErrInvalidBound, bound))
	}
	if bound&-bound == bound {
		return int32((int64(bound) * int64(r.Next(31))) >> 31)
	}
	for {
		bits := r.Next(31)
		val := bits % bound
		// int32 arithmetic wraps; a negative sum marks the incomplete interval
		if bits-val+(bound-1) >= 0 {
			return val
		}
	}
}

// Int64 returns a uniformly distributed int64, see java.util.Random.nextLong().
// Because it is built from two 32-bit draws of a 48-bit generator, not all int64 values
// can be returned.
func (r *Random) Int64() int64 {
	hi := int64(r.Next(32))
	lo := int64(r.Next(32))
	return hi<<32 + lo
}

// Bool returns a uniformly distributed boolean, see java.util.Random.nextBoolean().
func (r *Random) Bool() bool {
	return r.Next(1) != 0
}

// Float32 returns a uniformly distributed float32 in [0.0, 1.0) of the form m*2^-24,
// see java.util.Random.nextFloat().
func (r *Random) Float32() float32 {
	return float32(r.Next(24)) / (1 << 24)
}

// Float64 returns a uniformly distributed float64 in [0.0, 1.0) of the form m*2^-53,
// see java.util.Random.nextDouble().
func (r *Random) Float64() float64 {
	hi := int64(r.Next(26))
	lo := int64(r.Next(27))
	return float64(hi<<27+lo) / (1 << 53)
}

// NextBytes fills b with random bytes, see java.util.Random.nextBytes(byte[]).
// Each group of four bytes is taken from one Int32, least significant byte first.
// A trailing group of one to three bytes consumes one more Int32 whose remaining bytes
// are discarded.
func (r *Random) NextBytes(b []byte) {
	i := 0
	for n := len(b) &^ 3; i < n; i += 4 {
		rnd := r.Next(32)
		b[i] = byte(rnd)
		b[i+1] = byte(rnd >> 8)
		b[i+2] = byte(rnd >> 16)
		b[i+3] = byte(rnd >> 24)
	}
	if i < len(b) {
		rnd := r.Next(32)
		for ; i < len(b); i++ {
			b[i] = byte(rnd)
			rnd >>= 8
		}
	}
}

// Gaussian returns a normally distributed float64 with mean 0.0 and standard deviation
// 1.0, see java.util.Random.nextGaussian().
//
// Deviates are generated in pairs by the polar method of Box, Muller and Marsaglia; the
// second one of a pair is cached and returned by the next call. The logarithm and the
// square root are computed with the strictmath package, so the results match Java's
// StrictMath exactly.
func (r *Random) Gaussian() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.haveSpareGaussian {
		r.haveSpareGaussian = false
		return r.spareGaussian
	}
	var v1, v2, s float64
	for {
		v1 = 2*r.Float64() - 1 // between -1 and 1
		v2 = 2*r.Float64() - 1
		s = float64(v1*v1) + float64(v2*v2)
		if s < 1 && s != 0 {
			break
		}
	}
	mul := strictmath.Sqrt(-2 * strictmath.Log(s) / s)
	r.spareGaussian = v2 * mul
	r.haveSpareGaussian = true
	return v1 * mul
}
