// Package tracer wires zerolog logging to OpenTelemetry spans.
package tracer

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const instrumentation = "github.com/kubuskotak/ulid"

// StartSpanLogTrace returns a copy of ctx carrying a new span named
// spanName, the span, and a logger that stamps events with its ids.
func StartSpanLogTrace(ctx context.Context, spanName string) (
	newCtx context.Context, span trace.Span, logger zerolog.Logger,
) {
	newCtx, span = otel.Tracer(instrumentation).Start(ctx, spanName)
	return newCtx, span, log.Hook(TraceContextHook(newCtx)).
		With().Str("span", spanName).Logger()
}
