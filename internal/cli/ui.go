package cli

import (
	"time"

	"github.com/briandowns/spinner"
)

const (
	// TruncationLimit is the digit threshold from which a result is
	// truncated in standard output to avoid cluttering the terminal.
	TruncationLimit = 100
	// DisplayEdges is the number of digits shown at the start and end of
	// a truncated decimal result.
	DisplayEdges = 25
	// HexDisplayEdges is the number of characters shown at the start and
	// end of a truncated hexadecimal result.
	HexDisplayEdges = 40
	// ProgressRefreshRate is the spinner/progress-bar redraw interval.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth is the character width of the rendered progress bar.
	ProgressBarWidth = 40
)

// Spinner abstracts a terminal spinner so DisplayProgress doesn't depend
// on a specific implementation, which keeps it testable without a real
// terminal.
type Spinner interface {
	Start()
	Stop()
	UpdateSuffix(suffix string)
}

type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start()                   { rs.s.Start() }
func (rs *realSpinner) Stop()                     { rs.s.Stop() }
func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}
