package cli

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/katalvlaran/statesearch/core"
)

// setupTelemetry installs the span exporter for --trace and the metric
// reader for --metrics. Both write to stderr when the command finishes.
func (a *App) setupTelemetry() error {
	if a.in.trace {
		exporter, err := stdouttrace.New(
			stdouttrace.WithWriter(a.stderr),
			stdouttrace.WithPrettyPrint(),
		)
		if err != nil {
			return errors.Wrap(err, "create trace exporter")
		}
		tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
		a.tracer = tp.Tracer(core.TracerName)
		a.shutdown = append(a.shutdown, tp.Shutdown)
	}

	if a.in.metrics {
		reader := sdkmetric.NewManualReader()
		mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
		a.meter = mp.Meter(core.TracerName)
		a.shutdown = append(a.shutdown, func(ctx context.Context) error {
			var rm metricdata.ResourceMetrics
			if err := reader.Collect(ctx, &rm); err != nil {
				return errors.Wrap(err, "collect metrics")
			}
			writeMetrics(a.stderr, rm)

			return mp.Shutdown(ctx)
		})
	}

	return nil
}

// writeMetrics prints one line per data point, sorted by metric name and
// attribute set.
func writeMetrics(w io.Writer, rm metricdata.ResourceMetrics) {
	var lines []string
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			switch data := m.Data.(type) {
			case metricdata.Sum[int64]:
				for _, dp := range data.DataPoints {
					lines = append(lines, fmt.Sprintf("%s{%s} %d",
						m.Name, encode(dp.Attributes), dp.Value))
				}
			case metricdata.Histogram[int64]:
				for _, dp := range data.DataPoints {
					mean := 0.0
					if dp.Count > 0 {
						mean = float64(dp.Sum) / float64(dp.Count)
					}
					lines = append(lines, fmt.Sprintf("%s{%s} count=%d sum=%d mean=%.2f",
						m.Name, encode(dp.Attributes), dp.Count, dp.Sum, mean))
				}
			}
		}
	}
	sort.Strings(lines)
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
}

func encode(set attribute.Set) string {
	return set.Encoded(attribute.DefaultEncoder())
}
