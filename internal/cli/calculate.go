package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/bigcalc/internal/config"
	"github.com/agbru/bigcalc/internal/ui"
)

// PrintExecutionConfig displays the resolved configuration for a run
// before the calculation starts.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	switch cfg.Op {
	case "factorial":
		fmt.Fprintf(out, "Calculating %s%d!%s with a timeout of %s%s%s.\n",
			ui.ColorMagenta(), cfg.N, ui.ColorReset(), ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	default:
		fmt.Fprintf(out, "Evaluating %s%s %s %s%s with a timeout of %s%s%s.\n",
			ui.ColorMagenta(), cfg.A, cfg.Op, cfg.B, ui.ColorReset(), ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	}
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
	fmt.Fprintf(out, "Thresholds: Comba combo=%s%d%s max=%s%d%s, parallel-factorial=%s%d%s.\n",
		ui.ColorCyan(), cfg.ComboThreshold, ui.ColorReset(),
		ui.ColorCyan(), cfg.MaxComba, ui.ColorReset(),
		ui.ColorCyan(), cfg.ParallelFactorialThreshold, ui.ColorReset())
}

// PrintExecutionMode announces which operation is about to run.
func PrintExecutionMode(op string, out io.Writer) {
	fmt.Fprintf(out, "Execution mode: %s%s%s.\n", ui.ColorGreen(), op, ui.ColorReset())
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
