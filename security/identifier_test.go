package security

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kubuskotak/ulid/ulid"
)

func TestErrGenID(t *testing.T) {
	is := assert.New(t)
	errs := make(chan error, 100)
	for i := 0; i < cap(errs); i++ {
		if uid, err := GenID(); err == nil {
			parsed := ulid.MustParse(uid)
			is.Equal(parsed.String(), uid)
		} else {
			errs <- err
		}
		errs <- nil
	}
	for i := 0; i < cap(errs); i++ {
		is.NoError(<-errs)
	}
}

func TestGenID(t *testing.T) {
	is := assert.New(t)
	type testCase struct {
		name         string
		actualTime   time.Time
		expectedTime time.Time
		pass         bool
	}
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	cases := []testCase{
		{
			name:         "time fixed",
			actualTime:   fixed,
			expectedTime: fixed,
			pass:         true,
		},
		{
			name:         "time failed",
			actualTime:   fixed.Add(time.Hour),
			expectedTime: fixed.Add(time.Hour * 24),
			pass:         false,
		},
		{
			name:         "time later",
			actualTime:   fixed.Add(time.Hour * 48),
			expectedTime: fixed.Add(time.Hour * 48),
			pass:         true,
		},
	}
	// Earlier tests moved the shared stream past these times.
	generator = ulid.NewGenerator()
	defer func() { now = time.Now }()
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			now = func() time.Time { return tt.actualTime }
			uid, err := GenID()
			is.NoError(err)
			parsed := ulid.MustParse(uid)
			is.Equal(parsed.String(), uid)
			if tt.pass {
				is.Equal(ulid.Timestamp(tt.expectedTime), parsed.Timestamp())
			} else {
				is.NotEqual(ulid.Timestamp(tt.expectedTime), parsed.Timestamp())
			}
		})
	}
}

func TestGenIDMonotonic(t *testing.T) {
	at := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	prev, err := GenIDAt(at)
	assert.NoError(t, err)
	for i := 0; i < 1000; i++ {
		uid, err := GenIDAt(at)
		assert.NoError(t, err)
		assert.Greater(t, uid, prev)
		prev = uid
	}
}

func TestGenIDAtOutOfRange(t *testing.T) {
	_, err := GenIDAt(time.UnixMilli(int64(ulid.MaxTime) + 1))
	assert.ErrorIs(t, err, ulid.ErrInvalidTimestamp)
}

func TestGenPrefixedID(t *testing.T) {
	uid, err := GenPrefixedID("job")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(uid, "job_"))
	_, err = ulid.Parse(strings.TrimPrefix(uid, "job_"))
	assert.NoError(t, err)
}
