package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/bigcalc/internal/orchestration"
)

func TestModelUpdateAppliesProgressUpdate(t *testing.T) {
	ch := make(chan orchestration.ProgressUpdate)
	m := newModel(1000, ch)

	updated, cmd := m.Update(orchestration.ProgressUpdate{Level: 2, TotalLevels: 4, Value: 0.5})
	mm := updated.(model)

	if mm.level != 2 || mm.total != 4 {
		t.Errorf("level/total = %d/%d, want 2/4", mm.level, mm.total)
	}
	if mm.fraction != 0.5 {
		t.Errorf("fraction = %v, want 0.5", mm.fraction)
	}
	if cmd == nil {
		t.Error("expected a non-nil batched command after a progress update")
	}
}

func TestModelUpdateHandlesDone(t *testing.T) {
	ch := make(chan orchestration.ProgressUpdate)
	m := newModel(1000, ch)

	boom := errors.New("boom")
	updated, _ := m.Update(doneMsg{err: boom, duration: 5 * time.Millisecond})
	mm := updated.(model)

	if !mm.done || mm.err != boom {
		t.Errorf("done/err = %v/%v, want true/%v", mm.done, mm.err, boom)
	}
}

func TestModelUpdateQuitsOnCtrlC(t *testing.T) {
	ch := make(chan orchestration.ProgressUpdate)
	m := newModel(1000, ch)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected a quit command on ctrl+c")
	}
}

func TestModelViewRendersWithoutPanicking(t *testing.T) {
	ch := make(chan orchestration.ProgressUpdate)
	m := newModel(500, ch)
	if out := m.View(); out == "" {
		t.Error("View() returned an empty string")
	}
}
