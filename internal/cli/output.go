// # Naming conventions
//
// Functions in this package follow a consistent naming pattern:
//
//   - Display* functions write formatted output to an io.Writer.
//   - Format* functions return a formatted string without doing I/O.
//   - Write* functions write to the filesystem.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/bigcalc/internal/bigint"
	"github.com/agbru/bigcalc/internal/format"
	"github.com/agbru/bigcalc/internal/radix"
	"github.com/agbru/bigcalc/internal/ui"
)

// OutputConfig holds configuration for result presentation.
type OutputConfig struct {
	OutputFile string
	Quiet      bool
	Verbose    bool
	Details    bool
	Base       int
}

// truncateDigits shortens a rendered number for terminal display, keeping
// `edges` characters at each end and noting how many were elided.
func truncateDigits(s string, limit, edges int) string {
	if len(s) <= limit {
		return s
	}
	elided := len(s) - 2*edges
	return fmt.Sprintf("%s...(%d digits elided)...%s", s[:edges], elided, s[len(s)-edges:])
}

// FormatResult renders result in the given base, truncating it for
// terminal display when it is longer than TruncationLimit characters.
func FormatResult(result *bigint.Int, base int) (string, error) {
	s, err := radix.Format(result, base)
	if err != nil {
		return "", err
	}
	edges := DisplayEdges
	if base == 16 {
		edges = HexDisplayEdges
	}
	return truncateDigits(s, TruncationLimit, edges), nil
}

// WriteResultToFile writes the full (untruncated) result to a file,
// creating its parent directory if needed.
func WriteResultToFile(result *bigint.Int, op string, duration time.Duration, base int, cfg OutputConfig) error {
	if cfg.OutputFile == "" {
		return nil
	}
	dir := filepath.Dir(cfg.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	file, err := os.Create(cfg.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	full, err := radix.Format(result, base)
	if err != nil {
		return err
	}

	fmt.Fprintf(file, "# bigcalc result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Operation: %s\n", op)
	fmt.Fprintf(file, "# Duration: %s\n", duration)
	fmt.Fprintf(file, "# Base: %d\n", base)
	fmt.Fprintf(file, "# Digits (base %d): %d\n", base, len(full))
	fmt.Fprintf(file, "\n%s\n", full)
	return nil
}

// FormatQuietResult formats a result for quiet mode: a single line
// suitable for scripting, no truncation.
func FormatQuietResult(result *bigint.Int, base int) (string, error) {
	return radix.Format(result, base)
}

// DisplayQuietResult writes the quiet-mode line.
func DisplayQuietResult(out io.Writer, result *bigint.Int, base int) error {
	s, err := FormatQuietResult(result, base)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, s)
	return nil
}

// DisplayResult writes the full, colorized result summary: the formatted
// (possibly truncated) value plus duration and, if requested, the internal
// digit count and sign.
func DisplayResult(result *bigint.Int, op string, duration time.Duration, cfg OutputConfig, out io.Writer) error {
	rendered, err := FormatResult(result, cfg.Base)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\n%s✓ %s%s completed in %s%s%s.\n",
		ui.ColorGreen(), op, ui.ColorReset(), ui.ColorYellow(), FormatExecutionDuration(duration), ui.ColorReset())
	fmt.Fprintf(out, "Result: %s%s%s\n", ui.ColorBlue(), rendered, ui.ColorReset())
	if cfg.Details {
		fmt.Fprintf(out, "Digits used (internal base): %s%d%s, sign: %s%v%s\n",
			ui.ColorCyan(), result.Used(), ui.ColorReset(), ui.ColorCyan(), result.SignOf(), ui.ColorReset())
	}
	return nil
}

// DisplayResultWithConfig dispatches to quiet or full display, then saves
// to a file if OutputFile is set.
func DisplayResultWithConfig(out io.Writer, result *bigint.Int, op string, duration time.Duration, cfg OutputConfig) error {
	if cfg.Quiet {
		if err := DisplayQuietResult(out, result, cfg.Base); err != nil {
			return err
		}
	} else if err := DisplayResult(result, op, duration, cfg, out); err != nil {
		return err
	}

	if cfg.OutputFile != "" {
		if err := WriteResultToFile(result, op, duration, cfg.Base, cfg); err != nil {
			return err
		}
		if !cfg.Quiet {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), cfg.OutputFile, ui.ColorReset())
		}
	}
	return nil
}

// DisplayMemoryStats shows memory statistics after a calculation.
func DisplayMemoryStats(heapAlloc, totalAlloc uint64, numGC uint32, pauseTotalNs uint64, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Peak heap:       %s\n", format.FormatBytes(heapAlloc))
	fmt.Fprintf(out, "  Total allocated: %s\n", format.FormatBytes(totalAlloc))
	fmt.Fprintf(out, "  GC cycles:       %d\n", numGC)
	if pauseTotalNs > 0 {
		fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(pauseTotalNs)/1e6)
	} else {
		fmt.Fprintf(out, "  GC pause total:  0ms (GC disabled)\n")
	}
}
