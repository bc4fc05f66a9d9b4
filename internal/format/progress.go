package format

import (
	"fmt"
	"strings"
	"time"
)

// ProgressState tracks the latest reported progress value (0.0–1.0, though
// callers may briefly report values outside that range) for a fixed number
// of concurrent workers and averages them.
type ProgressState struct {
	numCalculators int
	progresses     []float64
}

// NewProgressState creates a ProgressState for n workers.
func NewProgressState(n int) *ProgressState {
	if n < 0 {
		n = 0
	}
	return &ProgressState{numCalculators: n, progresses: make([]float64, n)}
}

// Update records the latest progress value for worker idx. Out-of-range
// indices are ignored rather than panicking, since progress updates arrive
// on a channel that outlives any single worker's lifetime.
func (ps *ProgressState) Update(idx int, value float64) {
	if idx < 0 || idx >= len(ps.progresses) {
		return
	}
	ps.progresses[idx] = value
}

// CalculateAverage returns the mean of all workers' last-reported progress.
func (ps *ProgressState) CalculateAverage() float64 {
	if ps.numCalculators == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range ps.progresses {
		sum += v
	}
	return sum / float64(ps.numCalculators)
}

// ProgressWithETA wraps a ProgressState with a smoothed completion-rate
// estimate, used to derive an ETA.
type ProgressWithETA struct {
	ProgressState  *ProgressState
	numCalculators int
	progressRate   float64 // average-progress fraction per second
	startTime      time.Time
	lastUpdate     time.Time
	lastAvg        float64
}

// NewProgressWithETA creates a ProgressWithETA for n workers.
func NewProgressWithETA(numCalculators int) *ProgressWithETA {
	now := time.Now()
	return &ProgressWithETA{
		ProgressState:  NewProgressState(numCalculators),
		numCalculators: numCalculators,
		startTime:      now,
		lastUpdate:     now,
	}
}

// Update records a progress value without touching the rate estimate.
func (p *ProgressWithETA) Update(idx int, value float64) {
	p.ProgressState.Update(idx, value)
}

// CalculateAverage delegates to the wrapped ProgressState.
func (p *ProgressWithETA) CalculateAverage() float64 {
	return p.ProgressState.CalculateAverage()
}

// UpdateWithETA records a progress value, refreshes the smoothed rate
// estimate from the time elapsed since the previous update, and returns
// the new average progress plus the current ETA.
func (p *ProgressWithETA) UpdateWithETA(idx int, value float64) (float64, time.Duration) {
	p.ProgressState.Update(idx, value)
	avg := p.ProgressState.CalculateAverage()

	now := time.Now()
	elapsed := now.Sub(p.lastUpdate).Seconds()
	if elapsed > 0 {
		if delta := avg - p.lastAvg; delta > 0 {
			// Exponential moving average of the per-interval rate; the
			// first observed rate seeds it.
			const alpha = 0.3
			rate := delta / elapsed
			if p.progressRate > 0 {
				rate = alpha*rate + (1-alpha)*p.progressRate
			}
			p.progressRate = rate
		}
	}
	p.lastAvg = avg
	p.lastUpdate = now

	return avg, p.GetETA()
}

// maxETA caps GetETA's estimate so a near-zero rate never renders as an
// absurd duration.
const maxETA = 24 * time.Hour

// GetETA derives the estimated time remaining from the current average
// progress and the smoothed rate. Returns 0 when there isn't enough data
// yet (no positive rate observed).
func (p *ProgressWithETA) GetETA() time.Duration {
	if p.progressRate <= 0 {
		return 0
	}
	remaining := 1.0 - p.ProgressState.CalculateAverage()
	if remaining < 0 {
		remaining = 0
	}
	eta := time.Duration(remaining / p.progressRate * float64(time.Second))
	if eta < 0 {
		return 0
	}
	if eta > maxETA {
		return maxETA
	}
	return eta
}

// FormatETA renders an ETA as a short human string: "calculating..." when
// there isn't a usable estimate yet, "< 1s" for sub-second estimates, and
// otherwise the largest unit followed by the next smaller unit when that
// one is non-zero ("1h15m", "2m30s", "45s"; 1h0m30s renders as "1h").
func FormatETA(d time.Duration) string {
	if d <= 0 {
		return "calculating..."
	}
	if d < time.Second {
		return "< 1s"
	}

	h := int(d / time.Hour)
	m := int((d % time.Hour) / time.Minute)
	s := int((d % time.Minute) / time.Second)

	switch {
	case h > 0:
		if m > 0 {
			return fmt.Sprintf("%dh%dm", h, m)
		}
		return fmt.Sprintf("%dh", h)
	case m > 0:
		if s > 0 {
			return fmt.Sprintf("%dm%ds", m, s)
		}
		return fmt.Sprintf("%dm", m)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// ProgressBar renders a Unicode block-character progress bar of the given
// length, clamping progress to [0, 1].
func ProgressBar(progress float64, length int) string {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	filled := int(progress * float64(length))
	if filled > length {
		filled = length
	}
	var b strings.Builder
	for i := 0; i < filled; i++ {
		b.WriteRune('█')
	}
	for i := filled; i < length; i++ {
		b.WriteRune('░')
	}
	return b.String()
}

// FormatProgressBarWithETA combines a progress bar, a percentage, and a
// formatted ETA into a single line suitable for a spinner suffix.
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	return fmt.Sprintf("[%s] %.1f%% ETA: %s", ProgressBar(progress, width), progress*100, FormatETA(eta))
}
