package base32

import "errors"

var (
	// ErrInvalidCharacter is returned when decoding meets a symbol that is
	// neither in the alphabet nor one of its aliases.
	ErrInvalidCharacter = errors.New("base32: invalid character")

	// ErrInvalidLength is returned when an input length cannot be the
	// encoding of whole bytes, or a fixed-size input has the wrong size.
	ErrInvalidLength = errors.New("base32: invalid length")
)
