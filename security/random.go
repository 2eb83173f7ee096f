// Package security is func library that implement security standard.
package security

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/rs/zerolog/log"

	"github.com/kubuskotak/ulid/base32"
)

// GenerateRandomBytes returns n securely generated symbols of the base32
// alphabet. It will return an error if the system's secure random
// number generator fails to function correctly, in which
// case the caller should not continue.
func GenerateRandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	max := big.NewInt(int64(len(base32.Alphabet)))
	for i := range b {
		v, err := rand.Int(rand.Reader, max)
		if err != nil {
			return nil, fmt.Errorf("random int is failed: %w", err)
		}
		b[i] = base32.Alphabet[v.Int64()]
	}
	return b, nil
}

// GenerateRandomToken returns n secure random bytes rendered with the
// base32 codec, e.g. for opaque tokens that share the identifier alphabet.
func GenerateRandomToken(n int) (string, error) {
	raw := make([]byte, n)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("random bytes is failed: %w", err)
	}
	return base32.Encode(raw), nil
}

// GenerateRandomString generates a random string of length n.
func GenerateRandomString(n int) string {
	b, err := GenerateRandomBytes(n)
	if err != nil {
		log.Err(err).Msg("random bytes is failed")
		return ""
	}
	return string(b)
}
