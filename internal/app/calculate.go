package app

import (
	"context"
	"fmt"
	"io"
	"math"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/agbru/bigcalc/internal/bigint"
	"github.com/agbru/bigcalc/internal/cli"
	apperrors "github.com/agbru/bigcalc/internal/errors"
	"github.com/agbru/bigcalc/internal/orchestration"
	"github.com/agbru/bigcalc/internal/tui"
)

// allocatorFor picks an arena allocator sized for n's factorial when n is
// large enough to benefit from avoiding per-operation heap churn, and the
// plain heap allocator otherwise.
func allocatorFor(n uint64) bigint.Allocator {
	const arenaThreshold = 2000
	if n < arenaThreshold {
		return bigint.HeapAllocator{}
	}
	// A rough over-estimate of the digit count n! needs: n*log2(n) bits,
	// divided by DigitBits, with generous headroom for scratch Ints.
	bits := float64(n) * math.Log2(float64(n))
	digits := int(bits/float64(bigint.DigitBits)) + 1024
	return bigint.NewArenaAllocator(digits * 8)
}

func (a *Application) runFactorial(ctx context.Context, out io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, effectiveTimeout(a.Config.Timeout))
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(a.Config.Op, out)
	}

	var reporter orchestration.ProgressReporter = orchestration.NullProgressReporter{}
	progressOut := io.Writer(out)
	if a.Config.Quiet {
		progressOut = io.Discard
	} else {
		reporter = cli.CLIProgressReporter{}
	}

	updateChan := make(chan orchestration.ProgressUpdate)
	var wg sync.WaitGroup
	wg.Add(1)
	go reporter.DisplayProgress(&wg, updateChan, progressOut)

	alloc := allocatorFor(a.Config.N)
	result := bigint.New(alloc)

	start := time.Now()
	resultCh := make(chan error, 1)
	go func() {
		resultCh <- orchestration.RunWithProgress(func(onLevel func(done, total int)) error {
			return bigint.FactorialWithProgress(result, a.Config.N, onLevel)
		}, updateChan)
	}()

	var err error
	select {
	case err = <-resultCh:
	case <-ctx.Done():
		err = ctx.Err()
	}
	duration := time.Since(start)
	wg.Wait()

	if err != nil {
		a.Metrics.ObserveOperation("factorial", duration.Seconds(), 0, errKindOf(err))
		return cli.CLIResultPresenter{}.HandleError(err, duration, a.ErrWriter)
	}
	a.Metrics.ObserveOperation("factorial", duration.Seconds(), result.Used(), "")

	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
		Details:    a.Config.Details,
		Base:       a.Config.Base,
	}
	if err := cli.DisplayResultWithConfig(out, result, fmt.Sprintf("%d!", a.Config.N), duration, outputCfg); err != nil {
		fmt.Fprintf(a.ErrWriter, "error displaying result: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

func (a *Application) runFactorialTUI(ctx context.Context, out io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, effectiveTimeout(a.Config.Timeout))
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	alloc := allocatorFor(a.Config.N)
	result := bigint.New(alloc)

	start := time.Now()
	err := tui.RunFactorial(ctx, result, a.Config.N)
	duration := time.Since(start)

	if err != nil {
		a.Metrics.ObserveOperation("factorial", duration.Seconds(), 0, errKindOf(err))
		return cli.CLIResultPresenter{}.HandleError(err, duration, a.ErrWriter)
	}
	a.Metrics.ObserveOperation("factorial", duration.Seconds(), result.Used(), "")

	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
		Details:    a.Config.Details,
		Base:       a.Config.Base,
	}
	if err := cli.DisplayResultWithConfig(out, result, fmt.Sprintf("%d!", a.Config.N), duration, outputCfg); err != nil {
		fmt.Fprintf(a.ErrWriter, "error displaying result: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

func (a *Application) runEval(ctx context.Context, out io.Writer) int {
	_, cancelTimeout := context.WithTimeout(ctx, effectiveTimeout(a.Config.Timeout))
	defer cancelTimeout()

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(a.Config.Op, out)
	}

	start := time.Now()
	result, err := cli.Evaluate(a.Config.Op, a.Config.A, a.Config.B, bigint.HeapAllocator{})
	duration := time.Since(start)

	if err != nil {
		a.Metrics.ObserveOperation(a.Config.Op, duration.Seconds(), 0, errKindOf(err))
		return cli.CLIResultPresenter{}.HandleError(err, duration, a.ErrWriter)
	}
	a.Metrics.ObserveOperation(a.Config.Op, duration.Seconds(), result.Used(), "")

	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
		Details:    a.Config.Details,
		Base:       a.Config.Base,
	}
	if err := cli.DisplayResultWithConfig(out, result, a.Config.Op, duration, outputCfg); err != nil {
		fmt.Fprintf(a.ErrWriter, "error displaying result: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

func effectiveTimeout(d time.Duration) time.Duration {
	if d <= 0 {
		return 365 * 24 * time.Hour
	}
	return d
}

func errKindOf(err error) string {
	switch {
	case err == nil:
		return ""
	case apperrors.IsContextError(err):
		return "timeout"
	default:
		return "error"
	}
}
