package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/bigcalc/internal/bigint"
	"github.com/agbru/bigcalc/internal/orchestration"
)

// RunFactorial launches the progress dashboard and computes n! into res,
// running the calculation on its own goroutine and forwarding progress
// into the bubbletea program via a channel. There is only ever one
// computation to bridge here, never N concurrent algorithms.
func RunFactorial(ctx context.Context, res *bigint.Int, n uint64) error {
	updateCh := make(chan orchestration.ProgressUpdate)
	m := newModel(n, updateCh)
	program := tea.NewProgram(m)

	resultCh := make(chan error, 1)
	start := time.Now()
	go func() {
		err := orchestration.RunWithProgress(func(onLevel func(done, total int)) error {
			return bigint.FactorialWithProgress(res, n, onLevel)
		}, updateCh)
		program.Send(doneMsg{err: err, duration: time.Since(start)})
		resultCh <- err
	}()

	go func() {
		<-ctx.Done()
		program.Quit()
	}()

	if _, err := program.Run(); err != nil {
		return err
	}

	select {
	case err := <-resultCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
