package bench

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/statesearch/core"
	"github.com/katalvlaran/statesearch/tilegame"
)

// searchFunc is the signature shared by every search entry point once
// instantiated for tilegame states.
type searchFunc func(core.Problem[tilegame.State], ...core.Option) (*core.Result[tilegame.State], error)

// heuristicSearchFunc adapts astar.Search for a fixed heuristic.
type heuristicSearchFunc func(core.HeuristicProblem[tilegame.State], ...core.Option) (*core.Result[tilegame.State], error)

// forEach runs fn(ctx, i) for every i in [0, n) on at most workers
// goroutines. The first error cancels ctx for the remaining calls and is
// returned.
func forEach(ctx context.Context, workers, n int, fn func(ctx context.Context, i int) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			return fn(gctx, i)
		})
	}

	return g.Wait()
}

// experiment wraps one experiment in a span and start/finish log lines.
type experiment struct {
	name string
	cfg  Config
	ctx  context.Context
	span trace.Span
	log  logrus.FieldLogger
}

func startExperiment(ctx context.Context, name string, cfg Config) *experiment {
	ctx, span := cfg.Tracer.Start(ctx, "bench."+name, trace.WithAttributes(
		attribute.Int64("bench.seed", cfg.Seed),
		attribute.Int("bench.trials", cfg.Trials),
		attribute.Int("bench.workers", cfg.Workers),
	))
	e := &experiment{
		name: name,
		cfg:  cfg,
		ctx:  ctx,
		span: span,
		log:  cfg.Logger.WithField("experiment", name),
	}
	e.log.WithFields(logrus.Fields{"trials": cfg.Trials, "workers": cfg.Workers, "seed": cfg.Seed}).Info("experiment started")

	return e
}

// end closes the span and returns (r, err) so callers can `return e.end(r, err)`.
func (e *experiment) end(r *Report, err error) (*Report, error) {
	if err != nil {
		e.span.RecordError(err)
		e.span.SetStatus(codes.Error, err.Error())
		e.log.WithError(err).Error("experiment failed")
		e.span.End()

		return nil, err
	}
	e.span.SetAttributes(attribute.String("bench.run_id", r.RunID))
	e.span.SetStatus(codes.Ok, "")
	e.log.WithField("run_id", r.RunID).Info("experiment finished")
	e.span.End()

	return r, nil
}

// trialError labels err with the trial that produced it.
func trialError(name string, size, trial int, err error) error {
	return fmt.Errorf("bench: %s on %d×%d board %d: %w", name, size, size, trial, err)
}
