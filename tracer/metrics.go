package tracer

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics records identifier generation counts and latency.
type Metrics struct {
	generated metric.Int64Counter
	latency   metric.Float64Histogram
}

// NewMetrics registers the generation instruments on mp.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	meter := mp.Meter(instrumentation)
	generated, err := meter.Int64Counter("ulid.generated",
		metric.WithDescription("Identifiers generated"),
		metric.WithUnit("{id}"))
	if err != nil {
		return nil, err
	}
	latency, err := meter.Float64Histogram("ulid.generate.duration",
		metric.WithDescription("Time spent generating one batch"),
		metric.WithUnit("ms"))
	if err != nil {
		return nil, err
	}
	return &Metrics{generated: generated, latency: latency}, nil
}

// RecordGenerate adds a batch of n identifiers produced by source in d.
// A nil Metrics records nothing.
func (m *Metrics) RecordGenerate(ctx context.Context, source string, n int, d time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("source", source))
	m.generated.Add(ctx, int64(n), attrs)
	m.latency.Record(ctx, float64(d)/float64(time.Millisecond), attrs)
}
