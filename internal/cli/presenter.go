package cli

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/agbru/bigcalc/internal/bigint"
	apperrors "github.com/agbru/bigcalc/internal/errors"
	"github.com/agbru/bigcalc/internal/orchestration"
	"github.com/agbru/bigcalc/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter with a
// terminal spinner whose suffix carries the progress bar, percentage,
// and ETA, refreshed at ProgressRefreshRate.
type CLIProgressReporter struct{}

var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress consumes updateChan, driving a spinner until the
// channel closes.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, updateChan <-chan orchestration.ProgressUpdate, out io.Writer) {
	defer wg.Done()

	s := newSpinner()
	s.Start()
	defer s.Stop()

	agg := orchestration.NewProgressAggregator()
	for update := range updateChan {
		ap := agg.Update(update)
		s.UpdateSuffix(fmt.Sprintf(" %s (level %d/%d)", FormatProgressBarWithETA(ap.Fraction, ap.ETA, ProgressBarWidth), ap.Level, ap.Total))
	}
}

// CLIResultPresenter implements the CLI's own result-presentation
// conventions: colorized success/failure plus mapped exit codes.
type CLIResultPresenter struct{}

// FormatDuration formats a duration using the kernel-agnostic formatter.
func (CLIResultPresenter) FormatDuration(d time.Duration) string {
	return FormatExecutionDuration(d)
}

// HandleError prints a colorized error summary and returns the process
// exit code apperrors associates with err's kind.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	fmt.Fprintf(out, "%s✗ Failed after %s: %v%s\n", ui.ColorRed(), FormatExecutionDuration(duration), err, ui.ColorReset())

	switch {
	case apperrors.IsContextError(err):
		return apperrors.ExitErrorTimeout
	case errors.Is(err, bigint.ErrInvalidArgument), errors.Is(err, bigint.ErrInvalidInput):
		return apperrors.ExitErrorGeneric
	case errors.Is(err, bigint.ErrDivisionByZero):
		return apperrors.ExitErrorGeneric
	case errors.Is(err, bigint.ErrOutOfMemory):
		return apperrors.ExitErrorGeneric
	case errors.Is(err, bigint.ErrMaxIterationsReached):
		return apperrors.ExitErrorGeneric
	default:
		var cfgErr apperrors.ConfigError
		if errors.As(err, &cfgErr) {
			return apperrors.ExitErrorConfig
		}
		return apperrors.ExitErrorGeneric
	}
}
