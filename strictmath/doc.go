// Package strictmath provides the floating-point primitives needed to reproduce
// java.util.Random bit for bit: a square root and a natural logarithm that return
// exactly what Java's StrictMath (and therefore fdlibm) returns for every input.
//
// Both functions are pure Go and work directly on the IEEE-754 bit layout of a float64.
// They do not depend on the platform's math library or on hardware instructions, so the
// results are the same on every GOOS/GOARCH.
package strictmath
