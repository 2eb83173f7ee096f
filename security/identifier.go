// Package security is func library that implement security standard.
package security

import (
	"sync"
	"time"

	"github.com/kubuskotak/ulid/ulid"
)

var (
	mu        sync.Mutex
	generator = ulid.NewGenerator()
	now       = time.Now
)

// GenID returns random id with lexicographically sortable identifier.
// IDs from one process are monotonic: they share a single guarded stream.
func GenID() (string, error) {
	return GenIDAt(now())
}

// GenIDAt returns an identifier for the millisecond of t.
func GenIDAt(t time.Time) (string, error) {
	id, err := next(ulid.Timestamp(t))
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// GenPrefixedID returns an identifier of the form prefix_ID.
func GenPrefixedID(prefix string) (string, error) {
	id, err := GenID()
	if err != nil {
		return "", err
	}
	return prefix + "_" + id, nil
}

func next(ms uint64) (ulid.ID, error) {
	mu.Lock()
	defer mu.Unlock()
	return generator.Generate(ms)
}
