package signal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGracefulStop(t *testing.T) {
	stopCh := make(chan struct{})
	close(stopCh)

	var called bool
	err := Graceful(time.Second, stopCh, make(chan error), func(ctx context.Context) error {
		called = true
		_, ok := ctx.Deadline()
		assert.True(t, ok)
		return nil
	})
	assert.NoError(t, err)
	assert.True(t, called)
}

func TestGracefulShutdownError(t *testing.T) {
	stopCh := make(chan struct{})
	close(stopCh)
	boom := errors.New("close failed")

	err := Graceful(time.Second, stopCh, make(chan error), func(context.Context) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestGracefulErrChannel(t *testing.T) {
	errCh := make(chan error, 1)
	listen := errors.New("address in use")
	errCh <- listen

	var called bool
	err := Graceful(time.Second, make(chan struct{}), errCh, func(context.Context) error {
		called = true
		return errors.New("ignored")
	})
	assert.ErrorIs(t, err, listen)
	assert.True(t, called)
}
