package strictmath

import "math"

// one and tiny must stay variables so that one±tiny is rounded at run time.
var (
	one  = 1.0
	tiny = 1.0e-300
)

// Sqrt returns the correctly rounded square root of x. It is the digit-by-digit
// algorithm of fdlibm's e_sqrt.c (the implementation behind Java's StrictMath.sqrt),
// carried out in 64-bit integer arithmetic on the significand.
//
// Special cases are:
//
//	Sqrt(NaN) = NaN
//	Sqrt(+Inf) = +Inf
//	Sqrt(-Inf) = NaN
//	Sqrt(±0) = ±0
//	Sqrt(x < 0) = NaN
func Sqrt(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return math.NaN()
	case math.IsInf(x, 1):
		return x
	case math.IsInf(x, -1):
		return math.NaN()
	case x == 0:
		return x
	case x < 0:
		return math.NaN()
	}

	_, exponent, significand := Decompose(x)
	m := int(exponent)

	// normalize subnormals; their effective biased exponent is 1, not 0
	if m == 0 {
		for significand&hiddenBit == 0 {
			significand <<= 1
			m--
		}
		m++
	}
	m -= exponentBias
	significand = significand&fracMask | hiddenBit

	// odd exponent: double the significand so that halving the exponent is exact
	if m&1 != 0 {
		significand <<= 1
	}
	m >>= 1

	// generate sqrt(x) bit by bit, with one extra bit below the last significand bit
	rem := significand << 1
	var q, s uint64
	for r := uint64(1) << (exponentShift + 1); r != 0; r >>= 1 {
		t := s + r
		if t <= rem {
			s = t + r
			rem -= t
			q += r
		}
		rem <<= 1
	}

	// use floating add to find out the rounding direction
	if rem != 0 {
		z := one - tiny
		if z >= one {
			z = one + tiny
			if z > one {
				q += 2
			} else {
				q += q & 1
			}
		}
	}

	significand = q >> 1
	m += exponentBias
	if significand&(hiddenBit<<1) != 0 {
		significand >>= 1
		m++
	}
	return Compose(0, uint16(m), significand)
}
