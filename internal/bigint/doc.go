// Package bigint implements the arbitrary-precision signed-integer
// arithmetic kernel: a sign-magnitude digit vector with growable storage,
// unsigned add/subtract, signed dispatch, single-digit operations,
// shift-by-one, schoolbook and Comba multiplication, squaring, schoolbook
// division, modular reduction and combinators, and a binary-split
// factorial helper.
//
// Every exported operation that mutates a destination restores canonical
// form (used has no leading zero digit, unused slots are zeroed, zero is
// always Positive-signed) before returning. No operation is safe for
// concurrent use on the same *Int from multiple goroutines; callers
// serialize their own access.
package bigint
