package strictmath

import "math"

const (
	signShift     = 63
	exponentShift = 52
	exponentMask  = 0x7ff
	exponentBias  = 1023
	fracMask      = 1<<exponentShift - 1
	hiddenBit     = 1 << exponentShift
)

// Decompose splits x into its IEEE-754 sign bit, biased 11-bit exponent and 52-bit
// significand (without the implicit leading bit).
func Decompose(x float64) (sign uint8, exponent uint16, significand uint64) {
	b := math.Float64bits(x)
	sign = uint8(b >> signShift)
	exponent = uint16(b>>exponentShift) & exponentMask
	significand = b & fracMask
	return
}

// Compose is the inverse of Decompose. Bits outside of the respective field widths are
// ignored, so Compose(Decompose(x)) reproduces the bit pattern of x for every x,
// including subnormals, signed zeros, infinities and NaN payloads.
func Compose(sign uint8, exponent uint16, significand uint64) float64 {
	b := uint64(sign&1)<<signShift |
		uint64(exponent&exponentMask)<<exponentShift |
		significand&fracMask
	return math.Float64frombits(b)
}
