// Package server exposes identifier generation and inspection over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"

	"github.com/kubuskotak/ulid/config"
	"github.com/kubuskotak/ulid/signal"
	"github.com/kubuskotak/ulid/tracer"
	"github.com/kubuskotak/ulid/ulid"
)

// Options configures the handler.
type Options struct {
	DefaultCount int
	MaxCount     int
	// NewGenerator returns the stream used for one request. It defaults to
	// ulid.NewGenerator.
	NewGenerator func() *ulid.Generator
	// Metrics records generated batches. It defaults to instruments on the
	// global meter provider.
	Metrics *tracer.Metrics
}

type batchLimits struct {
	def, max int
}

// Server is the HTTP handler.
type Server struct {
	opts     Options
	limits   atomic.Pointer[batchLimits]
	decoder  *schema.Decoder
	validate *validator.Validate
	router   chi.Router
}

// New returns the HTTP handler.
func New(opts Options) *Server {
	if opts.NewGenerator == nil {
		opts.NewGenerator = func() *ulid.Generator { return ulid.NewGenerator() }
	}
	if opts.Metrics == nil {
		m, err := tracer.NewMetrics(otel.GetMeterProvider())
		if err != nil {
			log.Warn().Err(err).Msg("generate metrics disabled")
		}
		opts.Metrics = m
	}
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	s := &Server{opts: opts, decoder: decoder, validate: validator.New()}
	s.SetLimits(opts.DefaultCount, opts.MaxCount)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)
	r.Get("/healthz", s.health)
	r.Route("/v1/ulids", func(r chi.Router) {
		r.Get("/", s.generate)
		r.Get("/{id}", s.inspect)
	})
	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// SetLimits changes the batch size used when a request names none and the
// largest batch a request may ask for. It is safe to call while serving.
func (s *Server) SetLimits(defaultCount, maxCount int) {
	if defaultCount < 1 {
		defaultCount = 1
	}
	if maxCount < defaultCount {
		maxCount = defaultCount
	}
	s.limits.Store(&batchLimits{def: defaultCount, max: maxCount})
}

// Run serves cfg.HTTP.Addr until stopCh fires or the listener fails. When
// cfgPath is set, batch limits follow edits to that file.
func Run(cfg *config.Config, cfgPath string, stopCh <-chan struct{}) error {
	h := New(Options{
		DefaultCount: cfg.Batch.Default,
		MaxCount:     cfg.Batch.Max,
	})
	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           h,
		ReadHeaderTimeout: cfg.HTTP.ReadTimeout,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
	}

	if cfgPath != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			err := config.Watch(ctx, cfgPath, func(c *config.Config) {
				h.SetLimits(c.Batch.Default, c.Batch.Max)
				log.Info().
					Int("default", c.Batch.Default).
					Int("max", c.Batch.Max).
					Msg("batch limits updated")
			})
			if err != nil {
				log.Warn().Err(err).Msg("config watch stopped")
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("ulid server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	return signal.Graceful(cfg.HTTP.ShutdownTimeout, stopCh, errCh, func(ctx context.Context) error {
		start := time.Now()
		err := srv.Shutdown(ctx)
		log.Info().Dur("duration", time.Since(start)).Msg("ulid server stopped")
		return err
	})
}
