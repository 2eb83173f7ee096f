package ulid

import (
	"errors"

	"github.com/kubuskotak/ulid/base32"
)

var (
	// ErrInvalidTimestamp is returned for timestamps above MaxTime.
	ErrInvalidTimestamp = errors.New("ulid: timestamp exceeds 48 bits")
	// ErrInvalidString is returned when a text form is not 26 symbols long.
	ErrInvalidString = errors.New("ulid: invalid string length")
	// ErrInvalidSize is returned when a binary form is not 16 bytes long.
	ErrInvalidSize = errors.New("ulid: invalid byte length")
	// ErrEntropy is returned when the random source fails.
	ErrEntropy = errors.New("ulid: reading entropy")

	// ErrInvalidCharacter is the codec error for symbols outside the alphabet.
	ErrInvalidCharacter = base32.ErrInvalidCharacter
	// ErrInvalidLength is the codec error for malformed lengths.
	ErrInvalidLength = base32.ErrInvalidLength
)
