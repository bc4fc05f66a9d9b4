package orchestration

import (
	"time"

	"github.com/agbru/bigcalc/internal/format"
)

// ProgressAggregator wraps format.ProgressWithETA to track a single
// factorial computation's binary-split levels, smoothing the raw
// level/total fraction into an ETA. There is only ever one tracked
// operation here (bigcalc runs one Factorial at a time), so this is a
// single-slot aggregator — the slot index passed to
// format.ProgressWithETA is always 0.
type ProgressAggregator struct {
	state *format.ProgressWithETA
}

// NewProgressAggregator creates an aggregator for one tracked operation.
func NewProgressAggregator() *ProgressAggregator {
	return &ProgressAggregator{state: format.NewProgressWithETA(1)}
}

// AggregatedProgress holds the result of processing one update.
type AggregatedProgress struct {
	Level    int
	Total    int
	Fraction float64
	ETA      time.Duration
}

// Update folds update into the aggregator's smoothed state.
func (a *ProgressAggregator) Update(update ProgressUpdate) AggregatedProgress {
	fraction, eta := a.state.UpdateWithETA(0, update.Value)
	return AggregatedProgress{
		Level:    update.Level,
		Total:    update.TotalLevels,
		Fraction: fraction,
		ETA:      eta,
	}
}

// GetETA returns the current ETA estimate without updating.
func (a *ProgressAggregator) GetETA() time.Duration {
	return a.state.GetETA()
}

// DrainChannel reads all updates from updateChan and discards them.
// Used when progress display is disabled (quiet mode).
func DrainChannel(updateChan <-chan ProgressUpdate) {
	for range updateChan {
	}
}
