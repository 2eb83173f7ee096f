// Package ulid provides a 128-bit, lexicographically sortable identifier and
// a monotonic generator for it.
//
// # Format
//
// An ID is 16 bytes: a 48-bit big-endian millisecond timestamp followed by
// an 80-bit big-endian random payload. Byte-wise comparison therefore orders
// IDs by timestamp first and payload second. The text form is 26 symbols of
// the Crockford-style alphabet in package base32.
//
// # Monotonicity
//
// A Generator is one generation stream. IDs it emits within the same
// millisecond increment the previous payload, so they stay strictly
// increasing. Different generators give no ordering guarantee between
// each other.
//
// Usage
//
//	g := ulid.NewGenerator()
//	id, err := g.New()
//	s := id.String()   // 26-symbol text
//	b := id.Bytes()    // 16-byte representation
package ulid

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	oklog "github.com/oklog/ulid/v2"

	"github.com/kubuskotak/ulid/base32"
)

const (
	// Len is the size of the binary form.
	Len = base32.FixedLen
	// EncodedLen is the size of the text form.
	EncodedLen = base32.FixedTextLen
	// MaxTime is the largest timestamp an ID can hold.
	MaxTime uint64 = 1<<48 - 1

	timeLen    = 6
	entropyLen = Len - timeLen
)

// ID is a 128-bit sortable identifier. The zero value is the ID with
// timestamp 0 and an all-zero payload.
type ID [Len]byte

// New builds an ID from the timestamp ms and 10 bytes read from entropy.
func New(ms uint64, entropy io.Reader) (ID, error) {
	var id ID
	if err := id.SetTime(ms); err != nil {
		return id, err
	}
	if _, err := io.ReadFull(entropy, id[timeLen:]); err != nil {
		return ID{}, fmt.Errorf("%w: %w", ErrEntropy, err)
	}
	return id, nil
}

// FromArray wraps a 16-byte array. Every array is a valid ID.
func FromArray(b [Len]byte) ID { return ID(b) }

// FromBytes copies b into an ID. It fails with ErrInvalidSize unless b holds
// exactly 16 bytes.
func FromBytes(b []byte) (ID, error) {
	if len(b) != Len {
		return ID{}, fmt.Errorf("%w: got %d bytes", ErrInvalidSize, len(b))
	}
	return ID(b), nil
}

// SetTime writes ms into the timestamp bytes.
func (id *ID) SetTime(ms uint64) error {
	if ms > MaxTime {
		return fmt.Errorf("%w: %d", ErrInvalidTimestamp, ms)
	}
	id.putTime(ms)
	return nil
}

// putTime writes the low 48 bits of ms; callers check the range.
func (id *ID) putTime(ms uint64) {
	id[0] = byte(ms >> 40)
	id[1] = byte(ms >> 32)
	id[2] = byte(ms >> 24)
	id[3] = byte(ms >> 16)
	id[4] = byte(ms >> 8)
	id[5] = byte(ms)
}

// Timestamp returns the millisecond timestamp held in the first 6 bytes.
func (id ID) Timestamp() uint64 {
	return uint64(id[5]) | uint64(id[4])<<8 |
		uint64(id[3])<<16 | uint64(id[2])<<24 |
		uint64(id[1])<<32 | uint64(id[0])<<40
}

// Time returns the timestamp as a time.Time.
func (id ID) Time() time.Time { return Time(id.Timestamp()) }

// Entropy returns a copy of the 10-byte random payload.
func (id ID) Entropy() []byte {
	b := make([]byte, entropyLen)
	copy(b, id[timeLen:])
	return b
}

// Bytes returns the raw 16-byte representation.
func (id ID) Bytes() []byte { b := make([]byte, Len); copy(b, id[:]); return b }

// String returns the 26-symbol text form.
func (id ID) String() string {
	s := base32.Encode16((*[Len]byte)(&id))
	return string(s[:])
}

// Hex returns the lowercase hex form of the 16 bytes.
func (id ID) Hex() string { return hex.EncodeToString(id[:]) }

// Compare returns -1, 0 or 1 as id sorts before, equal to or after other.
func (id ID) Compare(other ID) int { return bytes.Compare(id[:], other[:]) }

// IsZero reports whether id is the zero value.
func (id ID) IsZero() bool { return id == ID{} }

// UUID returns the same 16 bytes as a UUID.
func (id ID) UUID() uuid.UUID { return uuid.UUID(id) }

// FromUUID reinterprets the bytes of u as an ID.
func FromUUID(u uuid.UUID) ID { return ID(u) }

// Oklog returns id as an oklog ULID. Both share the binary layout, the text
// forms differ in where the padding bits sit.
func (id ID) Oklog() oklog.ULID { return oklog.ULID(id) }

// FromOklog converts an oklog ULID by its bytes.
func FromOklog(u oklog.ULID) ID { return ID(u) }

// MarshalText implements encoding.TextMarshaler.
func (id ID) MarshalText() ([]byte, error) {
	s := base32.Encode16((*[Len]byte)(&id))
	return s[:], nil
}

// AppendText appends the text form of id to b.
func (id ID) AppendText(b []byte) ([]byte, error) {
	s := base32.Encode16((*[Len]byte)(&id))
	return append(b, s[:]...), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID) UnmarshalText(b []byte) error {
	if len(b) != EncodedLen {
		return fmt.Errorf("%w: got %d symbols", ErrInvalidString, len(b))
	}
	parsed, err := FromCanonical((*[EncodedLen]byte)(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (id ID) MarshalBinary() ([]byte, error) { return id.Bytes(), nil }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (id *ID) UnmarshalBinary(b []byte) error {
	parsed, err := FromBytes(b)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Timestamp converts t to milliseconds since the Unix epoch.
func Timestamp(t time.Time) uint64 { return oklog.Timestamp(t) }

// Time converts a millisecond timestamp to a UTC time.Time.
func Time(ms uint64) time.Time { return oklog.Time(ms).UTC() }
