package ulid

import (
	"fmt"

	"github.com/kubuskotak/ulid/base32"
)

// FromCanonical decodes a text form whose size is already known to be 26.
// Bad symbols fail with ErrInvalidCharacter.
func FromCanonical(s *[EncodedLen]byte) (ID, error) {
	b, err := base32.Decode26(s)
	if err != nil {
		return ID{}, err
	}
	return ID(b), nil
}

// Parse decodes the 26-symbol text form of an ID. It fails with
// ErrInvalidString when s is not 26 bytes long and with ErrInvalidCharacter
// when s holds a symbol outside the alphabet.
func Parse(s string) (ID, error) {
	if len(s) != EncodedLen {
		return ID{}, fmt.Errorf("%w: got %d symbols", ErrInvalidString, len(s))
	}
	b, err := base32.DecodeFixed(s)
	if err != nil {
		return ID{}, err
	}
	return ID(b), nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}
