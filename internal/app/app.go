// Package app wires bigcalc's configuration, kernel, CLI, and ambient
// infrastructure together into a single runnable Application.
package app

import (
	"context"
	"errors"
	"flag"
	"io"

	"github.com/agbru/bigcalc/internal/bigint"
	"github.com/agbru/bigcalc/internal/config"
	"github.com/agbru/bigcalc/internal/logging"
	"github.com/agbru/bigcalc/internal/server"
	"github.com/rs/zerolog"
)

// availableOps lists the operations bigcalc's CLI accepts as its
// positional <op> argument.
var availableOps = []string{"factorial", "add", "sub", "mul", "div", "mod"}

// Application holds everything a single bigcalc run needs.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	Logger    logging.Logger
	Metrics   *server.Metrics
}

// New parses args into a configured Application, applying adaptive
// threshold estimation and promoting the result into the kernel's own
// tunables.
func New(args []string, errWriter io.Writer) (*Application, error) {
	programName := "bigcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, availableOps)
	if err != nil {
		return nil, err
	}
	cfg = config.ApplyAdaptiveThresholds(cfg)

	defaults := bigint.DefaultThresholds()
	bigint.SetThresholds(bigint.Thresholds{
		WARRAY:                     cfg.ComboThreshold,
		MaxComba:                   cfg.MaxComba,
		FactorialTableCutoff:       defaults.FactorialTableCutoff,
		FactorialMaxRecursions:     defaults.FactorialMaxRecursions,
		ParallelFactorialThreshold: cfg.ParallelFactorialThreshold,
	})

	logWriter := io.Writer(errWriter)
	logger := logging.NewLogger(logWriter, "bigcalc")

	return &Application{
		Config:    cfg,
		ErrWriter: errWriter,
		Logger:    logger,
		Metrics:   server.NewMetrics(),
	}, nil
}

// Run executes the configured operation and returns a process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if a.Config.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if a.Config.MetricsAddr != "" {
		srv := server.NewServer(a.Config.MetricsAddr, a.Metrics, a.Logger, server.DefaultSecurityConfig())
		go func() {
			if err := srv.Start(ctx); err != nil {
				a.Logger.Error("metrics server stopped", err)
			}
		}()
	}

	if a.Config.TUI && a.Config.Op == "factorial" {
		return a.runFactorialTUI(ctx, out)
	}

	if a.Config.Op == "factorial" {
		return a.runFactorial(ctx, out)
	}
	return a.runEval(ctx, out)
}

// IsHelpError reports whether err came from the user passing --help.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
