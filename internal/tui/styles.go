package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/bigcalc/internal/ui"
)

// Style variables for the progress dashboard, rebuilt from the active
// ui theme.
var (
	panelStyle    lipgloss.Style
	titleStyle    lipgloss.Style
	labelStyle    lipgloss.Style
	valueStyle    lipgloss.Style
	statusDone    lipgloss.Style
	statusErr     lipgloss.Style
	statusRunning lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds every style from the current TUI theme. Called
// once, at package init.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	labelStyle = lipgloss.NewStyle().Foreground(t.Dim)
	valueStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	statusRunning = lipgloss.NewStyle().Bold(true).Foreground(t.Info)
	statusDone = lipgloss.NewStyle().Bold(true).Foreground(t.Success)
	statusErr = lipgloss.NewStyle().Bold(true).Foreground(t.Error)
}
