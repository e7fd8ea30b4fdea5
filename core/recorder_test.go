package core_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/statesearch/core"
)

func newRecorder(t *testing.T, opts ...core.Option) (*core.Recorder, *test.Hook, *tracetest.SpanRecorder) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	o, err := core.NewOptions(append([]core.Option{
		core.WithLogger(logger),
		core.WithTracer(tp.Tracer("test")),
	}, opts...)...)
	require.NoError(t, err)

	return core.NewRecorder("unit", o), hook, sr
}

func spanAttrs(s sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value)
	for _, kv := range s.Attributes() {
		out[kv.Key] = kv.Value
	}

	return out
}

func TestRecorder_ObserveKeepsMaximum(t *testing.T) {
	rec, _, _ := newRecorder(t)
	for _, n := range []int{1, 4, 2, 3} {
		rec.Observe(n)
	}
	assert.Equal(t, 4, rec.Stats().MaxFrontierSize)
}

func TestRecorder_ExpandHookAndProgress(t *testing.T) {
	var calls [][2]int
	rec, hook, _ := newRecorder(t,
		core.WithProgressInterval(2),
		core.WithOnExpand(func(expanded, frontier int) {
			calls = append(calls, [2]int{expanded, frontier})
		}),
	)
	hook.Reset()

	rec.Expand(3)
	rec.Expand(5)
	rec.Expand(1)

	assert.Equal(t, 3, rec.Stats().StatesExpanded)
	assert.Equal(t, [][2]int{{1, 3}, {2, 5}, {3, 1}}, calls)

	// progress is logged on every second expansion only
	require.Len(t, hook.AllEntries(), 1)
	e := hook.LastEntry()
	assert.Equal(t, "search progress", e.Message)
	assert.Equal(t, 2, e.Data["states_expanded"])
	assert.Equal(t, 5, e.Data["frontier"])
	assert.Equal(t, "unit", e.Data["algorithm"])
}

func TestRecorder_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	rec, _, _ := newRecorder(t, core.WithContext(ctx))
	assert.NoError(t, rec.Cancelled())
	cancel()
	assert.ErrorIs(t, rec.Cancelled(), context.Canceled)
}

func TestConclude_Found(t *testing.T) {
	rec, hook, sr := newRecorder(t)
	rec.Observe(2)
	rec.Expand(2)
	rec.Event("round", map[string]int{"bound": 1})

	res, err := core.Conclude(rec, []string{"a", "b", "c"}, nil)
	require.NoError(t, err)
	assert.Equal(t, core.Stats{PathLength: 3, StatesExpanded: 1, TotalCost: 2, MaxFrontierSize: 2}, res.Stats)
	assert.Equal(t, "search finished", hook.LastEntry().Message)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	span := spans[0]
	assert.Equal(t, "search.unit", span.Name())
	assert.Equal(t, codes.Ok, span.Status().Code)
	attrs := spanAttrs(span)
	assert.Equal(t, "unit", attrs["search.algorithm"].AsString())
	assert.Equal(t, int64(3), attrs["search.path_length"].AsInt64())
	assert.Equal(t, int64(1), attrs["search.states_expanded"].AsInt64())
	assert.True(t, attrs["search.found"].AsBool())
	require.Len(t, span.Events(), 1)
	assert.Equal(t, "round", span.Events()[0].Name)
}

func TestConclude_NotFound(t *testing.T) {
	rec, _, sr := newRecorder(t)
	rec.Expand(0)
	res, err := core.Conclude[int](rec, nil, nil)
	require.NoError(t, err)
	assert.False(t, res.Found())
	assert.Equal(t, core.Stats{StatesExpanded: 1}, res.Stats)
	assert.False(t, spanAttrs(sr.Ended()[0])["search.found"].AsBool())
}

func TestConclude_Error(t *testing.T) {
	rec, hook, sr := newRecorder(t)
	boom := errors.New("boom")
	res, err := core.Conclude[int](rec, nil, boom)
	require.ErrorIs(t, err, boom)
	require.NotNil(t, res)
	assert.Equal(t, "search aborted", hook.LastEntry().Message)
	assert.Equal(t, codes.Error, sr.Ended()[0].Status().Code)
}

func TestReconstructPath(t *testing.T) {
	pred := map[string]string{"b": "a", "c": "b", "d": "c", "x": "a"}
	path, err := core.ReconstructPath(pred, "a", "d")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, path)
}

func TestReconstructPath_StartIsGoal(t *testing.T) {
	path, err := core.ReconstructPath(map[int]int{}, 7, 7)
	require.NoError(t, err)
	assert.Equal(t, []int{7}, path)
}

func TestReconstructPath_Broken(t *testing.T) {
	// missing link
	_, err := core.ReconstructPath(map[int]int{3: 2}, 1, 3)
	assert.ErrorIs(t, err, core.ErrBrokenPredecessorChain)

	// cycle that never reaches the start
	_, err = core.ReconstructPath(map[int]int{2: 3, 3: 2}, 1, 3)
	assert.ErrorIs(t, err, core.ErrBrokenPredecessorChain)
}

// A long chain must not overflow the stack.
func TestReconstructPath_Long(t *testing.T) {
	const n = 200000
	pred := make(map[int]int, n)
	for i := 1; i < n; i++ {
		pred[i] = i - 1
	}
	path, err := core.ReconstructPath(pred, 0, n-1)
	require.NoError(t, err)
	require.Len(t, path, n)
	assert.Equal(t, 0, path[0])
	assert.Equal(t, n-1, path[n-1])
}

func TestConclude_RecordsMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	ctx, cancel := context.WithCancel(context.Background())
	rec, _, _ := newRecorder(t, core.WithMeter(mp.Meter("test")), core.WithContext(ctx))
	rec.Observe(3)
	rec.Expand(3)
	rec.Expand(2)
	cancel()
	_, err := core.Conclude[int](rec, nil, rec.Cancelled())
	require.ErrorIs(t, err, context.Canceled)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	byName := make(map[string]metricdata.Aggregation)
	for _, m := range rm.ScopeMetrics[0].Metrics {
		byName[m.Name] = m.Data
	}

	runs, ok := byName[core.MetricRuns].(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, runs.DataPoints, 1)
	assert.Equal(t, int64(1), runs.DataPoints[0].Value)
	aborted, _ := runs.DataPoints[0].Attributes.Value("search.aborted")
	assert.True(t, aborted.AsBool())

	expanded, ok := byName[core.MetricStatesExpanded].(metricdata.Histogram[int64])
	require.True(t, ok)
	require.Len(t, expanded.DataPoints, 1)
	assert.Equal(t, int64(2), expanded.DataPoints[0].Sum)

	frontier, ok := byName[core.MetricMaxFrontierSize].(metricdata.Histogram[int64])
	require.True(t, ok)
	assert.Equal(t, int64(3), frontier.DataPoints[0].Sum)
}
