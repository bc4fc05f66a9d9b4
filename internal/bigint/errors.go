package bigint

import "errors"

// Sentinel errors realizing the kernel's five error kinds. Callers compare
// with errors.Is; higher layers wrap these with call-site context via
// internal/errors.WrapError rather than replacing them.
var (
	// ErrOutOfMemory signals an allocator failure in Grow or in
	// allocating an internal scratch Int.
	ErrOutOfMemory = errors.New("bigint: out of memory")
	// ErrDivisionByZero signals a zero divisor in DivMod, Mod, or
	// DivModDigit.
	ErrDivisionByZero = errors.New("bigint: division by zero")
	// ErrInvalidArgument signals a nil destination where one is
	// required, or a destination that cannot hold the result.
	ErrInvalidArgument = errors.New("bigint: invalid argument")
	// ErrMaxIterationsReached signals that Factorial's binary-split
	// recursion exceeded FactorialMaxRecursions.
	ErrMaxIterationsReached = errors.New("bigint: max iterations reached")
	// ErrInvalidInput signals malformed input to an operation outside
	// the kernel's own correctness surface (e.g. radix parsing).
	ErrInvalidInput = errors.New("bigint: invalid input")
)
