// Number and progress-bar formatting delegated to internal/format, kept
// under the cli package's own names for its call sites.
package cli

import (
	"time"

	"github.com/agbru/bigcalc/internal/format"
)

// FormatNumberString delegates to format.FormatNumberString.
func FormatNumberString(s string) string {
	return format.FormatNumberString(s)
}

// FormatETA delegates to format.FormatETA.
func FormatETA(eta time.Duration) string {
	return format.FormatETA(eta)
}

// FormatProgressBarWithETA delegates to format.FormatProgressBarWithETA.
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	return format.FormatProgressBarWithETA(progress, eta, width)
}

// FormatExecutionDuration delegates to format.FormatExecutionDuration.
func FormatExecutionDuration(d time.Duration) string {
	return format.FormatExecutionDuration(d)
}
