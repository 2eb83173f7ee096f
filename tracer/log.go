package tracer

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/trace"
)

// Log output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// SetupLogger replaces the global zerolog logger writing to w. Console
// format writes colored human-readable lines, json writes one object per
// line. A nil w writes to stderr, keeping stdout for command output.
func SetupLogger(w io.Writer, level, format string) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return err
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.TimeFieldFormat = time.RFC3339Nano

	out := w
	if out == nil {
		out = colorable.NewColorableStderr()
	}
	if format != FormatJSON {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	log.Logger = zerolog.New(&ZeroWriter{MinLevel: lvl, Out: out}).
		Level(lvl).
		With().Timestamp().Logger()
	return nil
}

// ZeroWriter forwards log lines at or above MinLevel to Out and drops the
// rest. A nil Out writes to stderr.
type ZeroWriter struct {
	MinLevel zerolog.Level
	Out      io.Writer
}

// Write implements io.Writer.
func (w *ZeroWriter) Write(p []byte) (int, error) {
	return w.out().Write(p)
}

// WriteLevel implements zerolog.LevelWriter.
func (w *ZeroWriter) WriteLevel(l zerolog.Level, p []byte) (int, error) {
	if l < w.MinLevel {
		return len(p), nil
	}
	return w.out().Write(p)
}

func (w *ZeroWriter) out() io.Writer {
	if w.Out == nil {
		return colorable.NewColorableStderr()
	}
	return w.Out
}

// TraceContextHook returns a hook that adds the trace and span ids of the
// span in ctx to every event.
func TraceContextHook(ctx context.Context) zerolog.Hook {
	return traceHook{sc: trace.SpanContextFromContext(ctx)}
}

type traceHook struct {
	sc trace.SpanContext
}

func (h traceHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	if !h.sc.IsValid() {
		return
	}
	e.Str("trace_id", h.sc.TraceID().String()).
		Str("span_id", h.sc.SpanID().String())
}
