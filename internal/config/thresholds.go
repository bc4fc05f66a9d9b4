package config

import "runtime"

// Threshold resolution chain (highest priority first):
//   1. CLI flags (--combo-threshold, --max-comba, --parallel-threshold)
//   2. Environment variables (BIGCALC_COMBO_THRESHOLD, etc.)
//   3. Adaptive hardware estimation (this file, ParallelFactorialThreshold only)
//   4. Static defaults in bigint's own tunables (internal/bigint/constants.go)
//
// ComboThreshold (WARRAY) and MaxComba are safety bounds, not performance
// knobs: they exist to guarantee Comba's per-column Word accumulator never
// overflows for the kernel's fixed 28-bit digit width. A caller-supplied
// value above the kernel's own default would defeat that guarantee, so
// ApplyAdaptiveThresholds clamps rather than replaces it.

// ApplyAdaptiveThresholds fills in any threshold left at its zero default
// and clamps explicit overrides of the two overflow-safety thresholds to
// the kernel's own ceiling.
func ApplyAdaptiveThresholds(cfg AppConfig) AppConfig {
	safe := defaultWarray()
	if cfg.ComboThreshold == 0 {
		cfg.ComboThreshold = safe
	} else if cfg.ComboThreshold > safe {
		cfg.ComboThreshold = safe
	}

	safeComba := defaultMaxComba()
	if cfg.MaxComba == 0 {
		cfg.MaxComba = safeComba
	} else if cfg.MaxComba > safeComba {
		cfg.MaxComba = safeComba
	}

	if cfg.ParallelFactorialThreshold == 0 {
		cfg.ParallelFactorialThreshold = EstimateOptimalParallelFactorialThreshold()
	}
	return cfg
}

// defaultWarray and defaultMaxComba mirror bigint.DefaultThresholds()'s
// WARRAY/MaxComba values. They are duplicated here as plain functions
// (rather than importing internal/bigint) to keep the configuration layer
// free of a dependency on the kernel package it configures; internal/app
// is responsible for reconciling the two at startup.
func defaultWarray() int  { return 1 << 14 }
func defaultMaxComba() int { return 1 << 7 }

// EstimateOptimalParallelFactorialThreshold estimates the binary-split
// recursion-range size above which sibling pairwise products are fanned out
// across goroutines, scaled down as more cores become available to spend on
// smaller subtrees.
func EstimateOptimalParallelFactorialThreshold() int {
	numCPU := runtime.NumCPU()

	switch {
	case numCPU <= 1:
		return 0 // no parallelism
	case numCPU <= 2:
		return 4096
	case numCPU <= 4:
		return 2048
	case numCPU <= 8:
		return 1024
	case numCPU <= 16:
		return 512
	default:
		return 256
	}
}
