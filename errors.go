package jrandom

import "errors"

var (
	// ErrInvalidBits is the panic cause of Next when asked for less than 1 or more than
	// 32 bits.
	ErrInvalidBits = errors.New("jrandom: bits must be in [1,32]")
	// ErrInvalidBound is the panic cause of Int32N when the bound is not positive.
	ErrInvalidBound = errors.New("jrandom: bound must be positive")
)
