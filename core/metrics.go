package core

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// Metric names recorded once per search call.
const (
	MetricRuns            = "search.runs"
	MetricStatesExpanded  = "search.states_expanded"
	MetricMaxFrontierSize = "search.max_frontier_size"
	MetricPathLength      = "search.path_length"
)

type instruments struct {
	runs     metric.Int64Counter
	expanded metric.Int64Histogram
	frontier metric.Int64Histogram
	length   metric.Int64Histogram
}

// newInstruments builds the search instruments on m. An instrument the meter
// refuses to create is replaced by its no-op counterpart and reported in err.
func newInstruments(m metric.Meter) (instruments, error) {
	var (
		ins  instruments
		errs error
		err  error
		nm   = noop.NewMeterProvider().Meter(TracerName)
	)
	if ins.runs, err = m.Int64Counter(MetricRuns,
		metric.WithDescription("Completed search calls."),
		metric.WithUnit("{search}")); err != nil {
		ins.runs, _ = nm.Int64Counter(MetricRuns)
		errs = err
	}
	if ins.expanded, err = m.Int64Histogram(MetricStatesExpanded,
		metric.WithDescription("States expanded by one search call."),
		metric.WithUnit("{state}")); err != nil {
		ins.expanded, _ = nm.Int64Histogram(MetricStatesExpanded)
		errs = err
	}
	if ins.frontier, err = m.Int64Histogram(MetricMaxFrontierSize,
		metric.WithDescription("Frontier high-water mark of one search call."),
		metric.WithUnit("{state}")); err != nil {
		ins.frontier, _ = nm.Int64Histogram(MetricMaxFrontierSize)
		errs = err
	}
	if ins.length, err = m.Int64Histogram(MetricPathLength,
		metric.WithDescription("States on the returned path; 0 when none was found."),
		metric.WithUnit("{state}")); err != nil {
		ins.length, _ = nm.Int64Histogram(MetricPathLength)
		errs = err
	}

	return ins, errs
}

// record reports one finished search.
func (ins instruments) record(ctx context.Context, algorithm string, s Stats, err error) {
	set := metric.WithAttributes(
		attribute.String("search.algorithm", algorithm),
		attribute.Bool("search.found", s.PathLength > 0),
		attribute.Bool("search.aborted", err != nil),
	)
	ins.runs.Add(ctx, 1, set)
	ins.expanded.Record(ctx, int64(s.StatesExpanded), set)
	ins.frontier.Record(ctx, int64(s.MaxFrontierSize), set)
	ins.length.Record(ctx, int64(s.PathLength), set)
}
