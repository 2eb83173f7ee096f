package tracer

import (
	"context"
	"errors"
	"io"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// ProviderOptions selects where spans and metrics are exported.
type ProviderOptions struct {
	// Endpoint is an OTLP gRPC collector address. Empty exports to Writer.
	Endpoint string
	// Writer receives JSON spans and metrics when no Endpoint is set. It
	// defaults to stderr.
	Writer io.Writer
}

// NewProvider installs global tracer and meter providers. The returned func
// flushes and stops both.
func NewProvider(ctx context.Context, opts ProviderOptions) (func(context.Context) error, error) {
	var (
		spanExp   sdktrace.SpanExporter
		metricExp sdkmetric.Exporter
		err       error
	)
	if opts.Endpoint != "" {
		spanExp, err = otlptrace.New(ctx, otlptracegrpc.NewClient(
			otlptracegrpc.WithEndpoint(opts.Endpoint),
			otlptracegrpc.WithInsecure(),
		))
		if err != nil {
			return nil, err
		}
		metricExp, err = otlpmetricgrpc.New(ctx,
			otlpmetricgrpc.WithEndpoint(opts.Endpoint),
			otlpmetricgrpc.WithInsecure(),
		)
	} else {
		w := opts.Writer
		if w == nil {
			w = os.Stderr
		}
		spanExp, err = stdouttrace.New(stdouttrace.WithWriter(w))
		if err != nil {
			return nil, err
		}
		metricExp, err = stdoutmetric.New(stdoutmetric.WithWriter(w))
	}
	if err != nil {
		_ = spanExp.Shutdown(ctx)
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(spanExp),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExp)),
	)
	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)

	return func(ctx context.Context) error {
		return errors.Join(tp.Shutdown(ctx), mp.Shutdown(ctx))
	}, nil
}
