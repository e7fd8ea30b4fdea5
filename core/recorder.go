package core

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Recorder collects the statistics of one search call and reports them to
// the configured logger and tracer. Every algorithm creates exactly one
// Recorder at entry and hands it to Conclude on exit.
//
// A Recorder is not safe for concurrent use; it belongs to a single call.
type Recorder struct {
	algorithm string
	opts      Options
	ctx       context.Context
	span      trace.Span
	log       logrus.FieldLogger
	metrics   instruments
	stats     Stats
}

// NewRecorder opens the span for algorithm and logs the start of the search.
func NewRecorder(algorithm string, o Options) *Recorder {
	ctx, span := o.Tracer.Start(o.Ctx, "search."+algorithm,
		trace.WithAttributes(attribute.String("search.algorithm", algorithm)))
	r := &Recorder{
		algorithm: algorithm,
		opts:      o,
		ctx:       ctx,
		span:      span,
		log:       o.Logger.WithField("algorithm", algorithm),
	}
	var err error
	if r.metrics, err = newInstruments(o.Meter); err != nil {
		r.log.WithError(err).Debug("metrics disabled")
	}
	r.log.Debug("search started")

	return r
}

// Context returns the context carrying the search span.
func (r *Recorder) Context() context.Context { return r.ctx }

// Logger returns the algorithm-scoped logger.
func (r *Recorder) Logger() logrus.FieldLogger { return r.log }

// Stats returns a copy of the statistics recorded so far.
func (r *Recorder) Stats() Stats { return r.stats }

// Observe raises the frontier high-water mark to size if it is larger.
func (r *Recorder) Observe(size int) {
	if size > r.stats.MaxFrontierSize {
		r.stats.MaxFrontierSize = size
	}
}

// Expand counts one expansion. frontier is the frontier size at the time of
// the call; it is only forwarded to the OnExpand hook and progress log.
func (r *Recorder) Expand(frontier int) {
	r.stats.StatesExpanded++
	r.opts.OnExpand(r.stats.StatesExpanded, frontier)
	if n := r.opts.ProgressInterval; n > 0 && r.stats.StatesExpanded%n == 0 {
		r.log.WithFields(logrus.Fields{
			"states_expanded": r.stats.StatesExpanded,
			"frontier":        frontier,
		}).Debug("search progress")
	}
}

// Event adds a named event with integer attributes to the search span.
func (r *Recorder) Event(name string, kv map[string]int) {
	attrs := make([]attribute.KeyValue, 0, len(kv))
	for k, v := range kv {
		attrs = append(attrs, attribute.Int(k, v))
	}
	r.span.AddEvent(name, trace.WithAttributes(attrs...))
}

// Cancelled returns the context error once Options.Ctx is done, nil otherwise.
// It never blocks.
func (r *Recorder) Cancelled() error {
	select {
	case <-r.ctx.Done():
		return r.ctx.Err()
	default:
		return nil
	}
}

// finish fixes PathLength/TotalCost, records metrics, closes the span and
// logs the outcome.
func (r *Recorder) finish(pathLen int, err error) {
	if pathLen > 0 {
		r.stats.PathLength = pathLen
		r.stats.TotalCost = pathLen - 1
	}
	// recorded for cancelled searches too
	r.metrics.record(context.WithoutCancel(r.ctx), r.algorithm, r.stats, err)
	r.span.SetAttributes(
		attribute.Int("search.states_expanded", r.stats.StatesExpanded),
		attribute.Int("search.max_frontier_size", r.stats.MaxFrontierSize),
		attribute.Int("search.path_length", r.stats.PathLength),
		attribute.Int("search.total_cost", r.stats.TotalCost),
		attribute.Bool("search.found", pathLen > 0),
	)
	fields := logrus.Fields{
		"states_expanded":   r.stats.StatesExpanded,
		"max_frontier_size": r.stats.MaxFrontierSize,
		"path_length":       r.stats.PathLength,
	}
	if err != nil {
		r.span.RecordError(err)
		r.span.SetStatus(codes.Error, err.Error())
		r.log.WithFields(fields).WithError(err).Debug("search aborted")
	} else {
		r.span.SetStatus(codes.Ok, "")
		r.log.WithFields(fields).Debug("search finished")
	}
	r.span.End()
}

// Conclude closes rec and packs path and its statistics into a Result.
// A nil path means no solution; err is passed through unchanged.
func Conclude[S comparable](rec *Recorder, path []S, err error) (*Result[S], error) {
	rec.finish(len(path), err)

	return &Result[S]{Path: path, Stats: rec.Stats()}, err
}

// ReconstructPath rebuilds the path start→goal from a predecessor map in
// which pred[s] is the state s was reached from. The start state must not
// have an entry. The walk is iterative and bounded by len(pred)+1 states;
// a chain that does not reach start yields ErrBrokenPredecessorChain.
func ReconstructPath[S comparable](pred map[S]S, start, goal S) ([]S, error) {
	path := make([]S, 0, 16)
	cur := goal
	for steps := 0; ; steps++ {
		path = append(path, cur)
		if cur == start {
			break
		}
		if steps >= len(pred) {
			return nil, fmt.Errorf("%w: walked %d states", ErrBrokenPredecessorChain, len(path))
		}
		prev, ok := pred[cur]
		if !ok {
			return nil, fmt.Errorf("%w: no predecessor for %v", ErrBrokenPredecessorChain, cur)
		}
		cur = prev
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
