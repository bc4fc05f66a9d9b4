package bigint

import "sync"

// Thresholds bundles every implementation-chosen tunable the kernel
// consults when dispatching between algorithm variants (spec.md §9:
// "implementation-chosen"). internal/config resolves these at process
// startup (flags > environment > adaptive hardware estimate > the static
// defaults here) and installs them with SetThresholds.
type Thresholds struct {
	// WARRAY bounds the total digit count (a.used + b.used + 1) Comba
	// multiplication will accept before falling back to schoolbook.
	WARRAY int
	// MaxComba bounds min(a.used, b.used) for the same dispatch.
	MaxComba int
	// FactorialTableCutoff is the largest n served from the
	// precomputed factorial table; larger n use binary splitting. The
	// table ends at 20!, so a cutoff above 20 has the same effect as 20.
	FactorialTableCutoff int
	// FactorialMaxRecursions bounds the binary-split recursion depth.
	FactorialMaxRecursions int
	// ParallelFactorialThreshold is the minimum remaining index range
	// in the binary-split recursion before sibling products are
	// computed concurrently via errgroup.
	ParallelFactorialThreshold int
}

// DefaultThresholds returns the static defaults used before any
// configuration or adaptive estimate overrides them.
func DefaultThresholds() Thresholds {
	return Thresholds{
		WARRAY:                     1 << 14,
		// MaxComba bounds the number of terms summed into any one
		// column's raw Word accumulator before it is flushed. With a
		// 28-bit digit, a single product is at most 2^56; summing
		// 2^7 of them tops out at 2^63, safely inside a 64-bit Word.
		MaxComba: 1 << 7,
		FactorialTableCutoff:       20,
		FactorialMaxRecursions:     4096,
		ParallelFactorialThreshold: 1024,
	}
}

var (
	thresholdsMu sync.RWMutex
	thresholds   = DefaultThresholds()
)

// SetThresholds installs t as the thresholds every subsequent operation
// in this process consults.
func SetThresholds(t Thresholds) {
	thresholdsMu.Lock()
	defer thresholdsMu.Unlock()
	thresholds = t
}

// CurrentThresholds returns the thresholds currently in effect.
func CurrentThresholds() Thresholds {
	thresholdsMu.RLock()
	defer thresholdsMu.RUnlock()
	return thresholds
}
