package bigint

import (
	"context"
	"math/bits"

	"golang.org/x/sync/errgroup"
)

// factorialTable holds n! for every n small enough to fit a uint64
// (21! overflows 64 bits), serving the common small-n case without
// touching the binary-split recurrence at all.
var factorialTable = [21]uint64{
	1, 1, 2, 6, 24, 120, 720, 5040, 40320, 362880, 3628800,
	39916800, 479001600, 6227020800, 87178291200, 1307674368000,
	20922789888000, 355687428096000, 6402373705728000,
	121645100408832000, 2432902008176640000,
}

// Factorial sets res to n!.
//
// For n at or below the table cutoff the value is a lookup. Above it, n!
// is assembled from Luschny's binary-split identity
//
//	n! = 2^(n - popcount(n)) * prod_{i>=0} oddFactorial(n >> i)
//
// where oddFactorial(m) is the product of every odd integer in [1, m],
// itself computed by recursively halving the range and multiplying the
// two balanced halves — the "recursive product" shape that keeps every
// multiplication's operands close in size, which is what makes Comba and
// schoolbook multiplication asymptotically efficient here instead of
// degrading into a long accumulation of wildly mismatched operand sizes.
func Factorial(res *Int, n uint64) error {
	return factorialCore(res, n, nil)
}

// FactorialWithProgress behaves exactly like Factorial, but invokes onLevel
// after each binary-split level of the outer accumulation finishes, with
// the count of levels completed so far and the total level count for this
// n. onLevel may be nil, in which case this is identical to Factorial; the
// kernel itself has no notion of a progress channel or reporter, so a
// plain callback is all it exposes — internal/orchestration adapts that
// callback onto a channel for the CLI and TUI to consume.
func FactorialWithProgress(res *Int, n uint64, onLevel func(done, total int)) error {
	return factorialCore(res, n, onLevel)
}

func factorialCore(res *Int, n uint64, onLevel func(done, total int)) error {
	t := CurrentThresholds()
	if n < uint64(len(factorialTable)) && int(n) <= t.FactorialTableCutoff {
		if onLevel != nil {
			onLevel(1, 1)
		}
		return SetUint64(res, factorialTable[n])
	}

	alloc := res.alloc
	totalLevels := bits.Len64(n)

	product := NewUint64(1, alloc)
	level := 0
	for m := n; m > 0; m >>= 1 {
		of, err := oddFactorial(alloc, m, t, 0)
		if err != nil {
			return err
		}
		if err := Mul(product, product, of); err != nil {
			return err
		}
		level++
		if onLevel != nil {
			onLevel(level, totalLevels)
		}
	}

	shift := n - uint64(bits.OnesCount64(n))
	return ShlBitsN(res, product, shift)
}

// oddFactorial returns the product of every odd integer in [1, m].
func oddFactorial(alloc Allocator, m uint64, t Thresholds, depth int) (*Int, error) {
	count := (m + 1) / 2
	return oddProductRange(alloc, 1, count, t, depth)
}

// oddProductRange multiplies the `count` consecutive odd numbers starting
// at the startIndex-th odd number (2*startIndex-1), splitting the range
// in half and recursing on each side. Once a subrange's term count drops
// below ParallelFactorialThreshold the two halves are computed
// sequentially; above it they are fanned out across goroutines with
// errgroup, mirroring how the rest of the kernel treats parallelism as an
// opt-in above a measured size rather than a default.
func oddProductRange(alloc Allocator, startIndex, count uint64, t Thresholds, depth int) (*Int, error) {
	if depth > t.FactorialMaxRecursions {
		return nil, ErrMaxIterationsReached
	}
	if count == 0 {
		return NewUint64(1, alloc), nil
	}
	if count == 1 {
		return NewUint64(2*startIndex-1, alloc), nil
	}

	mid := count / 2

	// A ParallelFactorialThreshold of zero or below means "no parallelism"
	// (see EstimateOptimalParallelFactorialThreshold's single-CPU case),
	// not "every count exceeds it" — so the fan-out is gated on a
	// strictly positive threshold as well as count exceeding it.
	if t.ParallelFactorialThreshold > 0 && count > uint64(t.ParallelFactorialThreshold) {
		var left, right *Int
		g, _ := errgroup.WithContext(context.Background())
		g.Go(func() error {
			v, err := oddProductRange(alloc, startIndex, mid, t, depth+1)
			left = v
			return err
		})
		g.Go(func() error {
			v, err := oddProductRange(alloc, startIndex+mid, count-mid, t, depth+1)
			right = v
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		res := New(alloc)
		if err := Mul(res, left, right); err != nil {
			return nil, err
		}
		return res, nil
	}

	left, err := oddProductRange(alloc, startIndex, mid, t, depth+1)
	if err != nil {
		return nil, err
	}
	right, err := oddProductRange(alloc, startIndex+mid, count-mid, t, depth+1)
	if err != nil {
		return nil, err
	}
	res := New(alloc)
	if err := Mul(res, left, right); err != nil {
		return nil, err
	}
	return res, nil
}
