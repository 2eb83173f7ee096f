// Package signal waits for a front end to be told to stop.
package signal

import (
	"context"
	"errors"
	"os"
	ossignal "os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrInterrupted is reported when the stop channel fires.
var ErrInterrupted = errors.New("interrupt received, shutting down")

// Notify returns a channel closed on the first SIGINT or SIGTERM.
func Notify() <-chan struct{} {
	sigCh := make(chan os.Signal, 1)
	ossignal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	stopCh := make(chan struct{})
	go func() {
		<-sigCh
		ossignal.Stop(sigCh)
		close(stopCh)
	}()
	return stopCh
}

// Graceful blocks until stopCh fires or errCh yields, then runs shutdown
// with a context bounded by timeout. A stop returns shutdown's error; an
// error from errCh is returned as is.
func Graceful(
	timeout time.Duration,
	stopCh <-chan struct{},
	errCh <-chan error,
	shutdown func(ctx context.Context) error) error {
	select {
	case <-stopCh:
		log.Warn().Err(ErrInterrupted).Msg("Server interrupted through context")
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return shutdown(ctx)
	case err := <-errCh:
		log.Error().Err(err).Msg("Server interrupted through error channel")
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if serr := shutdown(ctx); serr != nil {
			log.Error().Err(serr).Msg("shutdown after error failed")
		}
		return err
	}
}
