// Package tui hosts bigcalc's optional interactive dashboard: a single
// bubbletea program showing live progress for a factorial computation,
// since bigcalc only ever has one computation in flight.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/progress"

	"github.com/agbru/bigcalc/internal/format"
	"github.com/agbru/bigcalc/internal/orchestration"
)

// doneMsg signals the factorial computation finished, successfully or
// not. Sent explicitly by RunFactorial once bigint.FactorialWithProgress
// returns — the progress channel closing only means there are no more
// level updates, not that the result is ready to report.
type doneMsg struct {
	err      error
	duration time.Duration
}

// channelClosedMsg marks that updateCh has been drained and closed, so
// Update stops re-arming waitForUpdate.
type channelClosedMsg struct{}

type model struct {
	n        uint64
	bar      progress.Model
	updateCh <-chan orchestration.ProgressUpdate
	agg      *orchestration.ProgressAggregator

	level, total int
	fraction     float64
	eta          time.Duration
	done         bool
	err          error
	duration     time.Duration
	started      time.Time
}

func newModel(n uint64, updateCh <-chan orchestration.ProgressUpdate) model {
	return model{
		n:        n,
		bar:      progress.New(progress.WithDefaultGradient()),
		updateCh: updateCh,
		agg:      orchestration.NewProgressAggregator(),
		started:  time.Now(),
	}
}

func (m model) Init() tea.Cmd {
	return waitForUpdate(m.updateCh)
}

// waitForUpdate blocks on the next channel receive in its own command,
// the standard bubbletea pattern for bridging an external channel into
// the Elm-style update loop without polling.
func waitForUpdate(ch <-chan orchestration.ProgressUpdate) tea.Cmd {
	return func() tea.Msg {
		update, ok := <-ch
		if !ok {
			return channelClosedMsg{}
		}
		return update
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.bar.Width = msg.Width - 8
		return m, nil
	case orchestration.ProgressUpdate:
		ap := m.agg.Update(msg)
		m.level, m.total, m.fraction, m.eta = ap.Level, ap.Total, ap.Fraction, ap.ETA
		cmd := m.bar.SetPercent(m.fraction)
		return m, tea.Batch(cmd, waitForUpdate(m.updateCh))
	case channelClosedMsg:
		return m, nil
	case doneMsg:
		m.done = true
		m.err = msg.err
		m.duration = msg.duration
		return m, nil
	case progress.FrameMsg:
		newModel, cmd := m.bar.Update(msg)
		m.bar = newModel.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	title := titleStyle.Render(fmt.Sprintf("bigcalc — computing %d!", m.n))

	var status string
	switch {
	case m.done && m.err != nil:
		status = statusErr.Render(fmt.Sprintf("failed: %v", m.err))
	case m.done:
		status = statusDone.Render(fmt.Sprintf("done in %s", format.FormatExecutionDuration(m.duration)))
	default:
		status = statusRunning.Render(fmt.Sprintf("level %d/%d — ETA %s", m.level, m.total, format.FormatETA(m.eta)))
	}

	body := fmt.Sprintf("%s\n\n%s\n\n%s\n\n%s",
		title,
		m.bar.View(),
		labelStyle.Render("elapsed: ")+valueStyle.Render(format.FormatExecutionDuration(time.Since(m.started))),
		status,
	)
	return panelStyle.Render(body) + "\n"
}
