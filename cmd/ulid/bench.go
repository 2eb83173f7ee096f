package main

import (
	"time"

	"github.com/kubuskotak/ulid/ulid"
)

type benchResult struct {
	Iterations int
	Duration   time.Duration
	// Last is kept so the loop cannot be optimized away.
	Last ulid.ID
}

func (r benchResult) NsPerOp() float64 {
	if r.Iterations == 0 {
		return 0
	}
	return float64(r.Duration.Nanoseconds()) / float64(r.Iterations)
}

// bench generates and encodes n identifiers on one stream.
func bench(n int) (benchResult, error) {
	g := ulid.NewGenerator()
	var (
		buf  = make([]byte, 0, ulid.EncodedLen)
		last ulid.ID
	)
	start := time.Now()
	for i := 0; i < n; i++ {
		id, err := g.New()
		if err != nil {
			return benchResult{}, err
		}
		buf, _ = id.AppendText(buf[:0])
		last = id
	}
	return benchResult{Iterations: n, Duration: time.Since(start), Last: last}, nil
}
