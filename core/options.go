package core

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation scope used when no tracer or meter is supplied.
const TracerName = "github.com/katalvlaran/statesearch"

// DefaultStartDepth is the first depth bound tried by iterative deepening.
const DefaultStartDepth = 1

// Option configures a search via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks shared by every search algorithm.
type Options struct {
	// Ctx allows cancellation and deadlines. It is checked once per frontier
	// pop; the default Background context never cancels.
	Ctx context.Context

	// Logger receives debug logs for search start, progress and end.
	Logger logrus.FieldLogger

	// Tracer opens one span per search call.
	Tracer trace.Tracer

	// Meter creates the per-search counters and histograms.
	Meter metric.Meter

	// ProgressInterval, if > 0, logs a progress line every that many
	// expansions. 0 disables progress logging.
	ProgressInterval int

	// OnExpand is called after every expansion with the running expansion
	// count and the current frontier size.
	OnExpand func(expanded, frontier int)

	// StartDepth is the first depth bound of iterative deepening.
	StartDepth int

	// MaxDepth, if > 0, is the last depth bound iterative deepening tries
	// before giving up. 0 means no limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - the logrus standard logger
//   - a tracer and a meter from the global OpenTelemetry providers (no-op unless set)
//   - no progress logging and a no-op OnExpand hook
//   - StartDepth = DefaultStartDepth, MaxDepth = 0 (unbounded)
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		Logger:           logrus.StandardLogger(),
		Tracer:           otel.Tracer(TracerName),
		Meter:            otel.Meter(TracerName),
		ProgressInterval: 0,
		OnExpand:         func(int, int) {},
		StartDepth:       DefaultStartDepth,
		MaxDepth:         0,
		err:              nil,
	}
}

// NewOptions applies opts over DefaultOptions and returns the first
// violation recorded by any of them.
func NewOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}

// violate records the first invalid option.
func (o *Options) violate(format string, args ...any) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: "+format, append([]any{ErrOptionViolation}, args...)...)
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger replaces the logger used for search diagnostics.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithTracer replaces the tracer that opens the per-search span.
func WithTracer(t trace.Tracer) Option {
	return func(o *Options) {
		if t != nil {
			o.Tracer = t
		}
	}
}

// WithMeter replaces the meter that records search metrics.
func WithMeter(m metric.Meter) Option {
	return func(o *Options) {
		if m != nil {
			o.Meter = m
		}
	}
}

// WithProgressInterval logs progress every n expansions.
//
//	n > 0: log every n expansions
//	n == 0: disable progress logging
//	n < 0: invalid option → ErrOptionViolation
func WithProgressInterval(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.violate("ProgressInterval cannot be negative (%d)", n)
			return
		}
		o.ProgressInterval = n
	}
}

// WithOnExpand registers a callback run after every expansion.
func WithOnExpand(fn func(expanded, frontier int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithStartDepth sets the first depth bound of iterative deepening.
// A bound of 0 examines only the start state; negative bounds are invalid.
func WithStartDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.violate("StartDepth cannot be negative (%d)", d)
			return
		}
		o.StartDepth = d
	}
}

// WithMaxDepth caps the depth bound of iterative deepening.
//
//	d > 0: stop after the round with bound d
//	d == 0: explicit no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.violate("MaxDepth cannot be negative (%d)", d)
			return
		}
		o.MaxDepth = d
	}
}
