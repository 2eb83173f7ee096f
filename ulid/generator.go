package ulid

import (
	"crypto/rand"
	"fmt"
	"io"
	"time"
)

// Generator is the state of one generation stream. It remembers the last
// timestamp and payload it emitted so IDs from the same millisecond keep
// increasing.
//
// A Generator is not safe for concurrent use. Use one per goroutine, or
// guard a shared one with a mutex.
type Generator struct {
	entropy io.Reader
	now     func() time.Time

	seen       bool
	lastTime   uint64
	lastRandom [entropyLen]byte
}

// Option configures a Generator.
type Option func(*Generator)

// WithEntropy sets the random source. It defaults to crypto/rand.Reader.
func WithEntropy(r io.Reader) Option {
	return func(g *Generator) {
		g.entropy = r
	}
}

// WithClock sets the clock used by New. It defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// NewGenerator creates a Generator with no timestamp seen yet.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		entropy: rand.Reader,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// New returns an ID for the current wall-clock millisecond.
func (g *Generator) New() (ID, error) {
	return g.Generate(Timestamp(g.now()))
}

// Generate returns an ID for timestamp ms.
//
// On the same millisecond as the previous call the payload is the previous
// one plus one, as an 80-bit big-endian integer. Past the top of that range
// it wraps to zero. A timestamp earlier than the previous one is raised to
// the previous one, so a stream never goes backwards. Any other timestamp
// draws a fresh payload from the entropy source.
func (g *Generator) Generate(ms uint64) (ID, error) {
	if ms > MaxTime {
		return ID{}, fmt.Errorf("%w: %d", ErrInvalidTimestamp, ms)
	}
	if g.seen && ms < g.lastTime {
		ms = g.lastTime
	}

	if g.seen && ms == g.lastTime {
		increment(&g.lastRandom)
	} else {
		var fresh [entropyLen]byte
		if _, err := io.ReadFull(g.entropy, fresh[:]); err != nil {
			return ID{}, fmt.Errorf("%w: %w", ErrEntropy, err)
		}
		g.lastRandom = fresh
		g.lastTime = ms
		g.seen = true
	}

	var id ID
	id.putTime(ms)
	copy(id[timeLen:], g.lastRandom[:])
	return id, nil
}

// increment adds one to b as a big-endian integer, wrapping on overflow.
func increment(b *[entropyLen]byte) {
	for i := len(b) - 1; i >= 0; i-- {
		b[i]++
		if b[i] != 0 {
			return
		}
	}
}
