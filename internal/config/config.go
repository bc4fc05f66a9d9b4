// Package config resolves bigcalc's runtime configuration: the target
// operation and operands, the kernel's tunable thresholds, and presentation
// flags. Resolution order is CLI flags > environment variables > adaptive
// hardware estimate > static defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// EnvPrefix is prepended to every environment variable bigcalc recognizes.
const EnvPrefix = "BIGCALC_"

// AppConfig holds the fully-resolved configuration for a single bigcalc run.
type AppConfig struct {
	// Op is the requested operation: "factorial", "add", "sub", "mul",
	// "div", or "mod".
	Op string
	// N is the factorial argument when Op == "factorial".
	N uint64
	// A, B are the decimal operand literals for two-operand operations.
	A, B string
	// Base is the radix used to print the result (2, 8, 10, or 16).
	Base int

	// ComboThreshold is the combined-digit-count (a.used+b.used+1) below
	// which Mul uses Comba accumulation instead of schoolbook.
	ComboThreshold int
	// MaxComba bounds min(a.used, b.used) for the Comba path.
	MaxComba int
	// ParallelFactorialThreshold is the remaining-range size above which
	// the binary-split factorial recurrence fans its pairwise products
	// out across goroutines.
	ParallelFactorialThreshold int

	// Timeout bounds the total run; zero means no timeout.
	Timeout time.Duration

	// Verbose enables structured debug logging.
	Verbose bool
	// Quiet suppresses all but the final result line.
	Quiet bool
	// Details shows the internal digit count and sign alongside the result.
	Details bool
	// TUI launches the interactive progress dashboard instead of a spinner.
	TUI bool
	// NoColor disables ANSI color output regardless of terminal detection.
	NoColor bool
	// OutputFile, if set, additionally writes the result to this path.
	OutputFile string
	// MetricsAddr, if set, starts the Prometheus /metrics HTTP server on
	// this address (e.g. ":9090").
	MetricsAddr string
}

// ParseConfig parses CLI flags into an AppConfig, applies environment
// variable overrides for every flag left at its default, and returns the
// result. programName is used as the flag.FlagSet name for usage output.
func ParseConfig(programName string, args []string, errWriter io.Writer, ops []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	cfg := AppConfig{Base: 10}

	fs.Uint64Var(&cfg.N, "n", 0, "factorial argument (for `factorial` op)")
	fs.StringVar(&cfg.A, "a", "", "first operand (decimal literal, for two-operand ops)")
	fs.StringVar(&cfg.B, "b", "", "second operand (decimal literal, for two-operand ops)")
	fs.IntVar(&cfg.Base, "base", 10, "output radix: 2, 8, 10, or 16")
	fs.IntVar(&cfg.ComboThreshold, "combo-threshold", 0, "Comba/schoolbook crossover digit count (0 = adaptive)")
	fs.IntVar(&cfg.MaxComba, "max-comba", 0, "Comba path operand-size ceiling (0 = adaptive)")
	fs.IntVar(&cfg.ParallelFactorialThreshold, "parallel-threshold", 0, "binary-split fan-out threshold (0 = adaptive)")
	fs.DurationVar(&cfg.Timeout, "timeout", 0, "overall run timeout (0 = none)")
	fs.BoolVar(&cfg.Verbose, "v", false, "verbose logging")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "verbose logging")
	fs.BoolVar(&cfg.Quiet, "q", false, "quiet: print only the result")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "quiet: print only the result")
	fs.BoolVar(&cfg.Details, "d", false, "show internal digit-count and sign details")
	fs.BoolVar(&cfg.Details, "details", false, "show internal digit-count and sign details")
	fs.BoolVar(&cfg.TUI, "tui", false, "interactive progress dashboard")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable ANSI color output")
	fs.StringVar(&cfg.OutputFile, "output", "", "additionally write the result to this file")
	fs.StringVar(&cfg.OutputFile, "o", "", "additionally write the result to this file")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", "", "start a Prometheus /metrics server on this address")

	fs.Usage = func() {
		fmt.Fprintf(errWriter, "usage: %s <op> [flags]\n\navailable ops: %v\n\n", programName, ops)
		fs.PrintDefaults()
	}

	if len(args) > 0 && len(args[0]) > 0 && args[0][0] != '-' {
		cfg.Op = args[0]
		args = args[1:]
	}

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	applyEnvOverrides(&cfg, fs)

	if cfg.Op == "" {
		cfg.Op = "factorial"
	}

	return cfg, nil
}
