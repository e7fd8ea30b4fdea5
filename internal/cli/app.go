// Package cli implements the tilesearch command line: solving single tile
// games with any search algorithm, running the benchmark experiments and
// browsing archived reports.
package cli

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/statesearch/bench"
	"github.com/katalvlaran/statesearch/core"
)

// Version information set at build time.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

// App is the tilesearch command tree together with the resources its
// commands share: output writers, logger, telemetry and the loaded config.
type App struct {
	root   *cobra.Command
	stdout io.Writer
	stderr io.Writer
	in     *Input

	logger   *logrus.Logger
	tracer   trace.Tracer
	meter    metric.Meter
	cfg      bench.Config
	shutdown []func(context.Context) error
}

// New builds the command tree writing to the process's stdout and stderr.
func New() *App {
	a := &App{
		stdout: os.Stdout,
		stderr: os.Stderr,
		in:     &Input{},
		logger: logrus.New(),
		tracer: otel.Tracer(core.TracerName),
		meter:  otel.Meter(core.TracerName),
	}

	a.root = &cobra.Command{
		Use:   "tilesearch",
		Short: "Solve tile-swap puzzles with uninformed and heuristic search",
		Long: `tilesearch solves n×n tile-swap puzzles, where one move exchanges two
adjacent tiles, with breadth-first, depth-first, iterative deepening or A*
search, and benchmarks the algorithms and heuristics against each other.`,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  a.prepare,
		PersistentPostRunE: a.finish,
	}
	a.in.register(a.root)

	a.root.AddCommand(
		a.newSolveCmd(),
		a.newBlindCmd(),
		a.newLambdasCmd(),
		a.newSizesCmd(),
		a.newCompletionCmd(),
		a.newHistoryCmd(),
		a.newVersionCmd(),
	)

	return a
}

// WithOutput sets custom output writers.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)

	return a
}

// Execute runs the command line until completion or until SIGINT/SIGTERM
// cancels the running search.
func (a *App) Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return a.root.ExecuteContext(ctx)
}

// ExecuteWithArgs runs the command line with args instead of os.Args.
func (a *App) ExecuteWithArgs(ctx context.Context, args []string) error {
	a.root.SetArgs(args)

	return a.Execute(ctx)
}

// prepare runs before every command: logging, config file and telemetry.
func (a *App) prepare(cmd *cobra.Command, _ []string) error {
	a.setupLogger()
	if err := a.in.validate(); err != nil {
		return err
	}
	if err := a.setupTelemetry(); err != nil {
		return err
	}
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	a.cfg = cfg

	return nil
}

// finish flushes telemetry after every command.
func (a *App) finish(cmd *cobra.Command, _ []string) error {
	var first error
	for i := len(a.shutdown) - 1; i >= 0; i-- {
		if err := a.shutdown[i](context.Background()); err != nil && first == nil {
			first = err
		}
	}
	a.shutdown = nil

	return first
}

// searchOptions are the core options of a single CLI search.
func (a *App) searchOptions(ctx context.Context) []core.Option {
	return []core.Option{
		core.WithContext(ctx),
		core.WithLogger(a.logger),
		core.WithTracer(a.tracer),
		core.WithMeter(a.meter),
		core.WithProgressInterval(a.in.progress),
	}
}
