// Package orchestration decouples bigcalc's long-running kernel
// operations (currently just Factorial, the only one slow enough to
// warrant live progress) from how that progress gets displayed. The
// CLI's plain-text ticker and the TUI's bubbletea program both consume
// the same ProgressUpdate stream through a ProgressReporter.
package orchestration

import (
	"io"
	"sync"
)

// ProgressUpdate reports how far a single long-running operation has
// gotten. Level/TotalLevels track bigint.FactorialWithProgress's binary-
// split accumulation levels; Value is Level/TotalLevels as a fraction.
type ProgressUpdate struct {
	Level       int
	TotalLevels int
	Value       float64
}

// ProgressReporter displays updates from a ProgressUpdate channel. It
// decouples the long-running computation from however its progress
// ends up displayed, letting both the CLI ticker and the TUI program
// consume the same stream.
type ProgressReporter interface {
	// DisplayProgress consumes updateChan until it is closed, signaling
	// wg.Done when finished. It should be run in its own goroutine.
	DisplayProgress(wg *sync.WaitGroup, updateChan <-chan ProgressUpdate, out io.Writer)
}

// ProgressReporterFunc adapts a plain function to ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, updateChan <-chan ProgressUpdate, out io.Writer)

// DisplayProgress calls f.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, updateChan <-chan ProgressUpdate, out io.Writer) {
	f(wg, updateChan, out)
}

// NullProgressReporter drains updateChan without printing anything. Used
// for quiet mode and for tests that don't care about progress output.
type NullProgressReporter struct{}

// DisplayProgress drains updateChan silently.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, updateChan <-chan ProgressUpdate, _ io.Writer) {
	defer wg.Done()
	for range updateChan {
	}
}

// RunWithProgress runs fn (typically a closure over
// bigint.FactorialWithProgress) on its own goroutine, translating its
// onLevel callback into ProgressUpdate sends, and blocks until fn
// returns. The channel is always closed before RunWithProgress returns,
// whether fn succeeds or fails.
func RunWithProgress(fn func(onLevel func(done, total int)) error, updateChan chan<- ProgressUpdate) error {
	defer close(updateChan)
	return fn(func(done, total int) {
		value := 1.0
		if total > 0 {
			value = float64(done) / float64(total)
		}
		updateChan <- ProgressUpdate{Level: done, TotalLevels: total, Value: value}
	})
}
