// Package base32 implements the Crockford-style Base32 text codec used by
// sortable identifiers.
//
// Bytes are read as one bitstream, most significant bit first, and cut into
// 5-bit groups. A trailing group shorter than 5 bits is padded with zero bits
// on the right. Decoding is case-insensitive, folds O to 0 and I/L to 1, and
// rejects U.
package base32

import "fmt"

// Alphabet is the 32-symbol encoding alphabet.
const Alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

const invalid = 0xFF

var dec = newDecodeMap()

func newDecodeMap() (m [256]byte) {
	for i := range m {
		m[i] = invalid
	}
	for i := 0; i < len(Alphabet); i++ {
		c := Alphabet[i]
		m[c] = byte(i)
		if c >= 'A' && c <= 'Z' {
			m[c+'a'-'A'] = byte(i)
		}
	}
	m['O'], m['o'] = 0, 0
	m['I'], m['i'], m['L'], m['l'] = 1, 1, 1, 1
	// U is left out of the alphabet on purpose and stays invalid.
	m['U'], m['u'] = invalid, invalid
	return m
}

// EncodedLen returns the length of the encoding of n source bytes.
func EncodedLen(n int) int {
	return (n*8 + 4) / 5
}

// DecodedLen returns the number of bytes held by n encoded symbols.
func DecodedLen(n int) int {
	return n * 5 / 8
}

// Encode returns the text form of src. An empty src encodes to "".
func Encode(src []byte) string {
	if len(src) == 0 {
		return ""
	}
	out := make([]byte, EncodedLen(len(src)))
	encode(out, src)
	return string(out)
}

func encode(dst, src []byte) {
	var (
		buf  uint
		bits uint
		n    int
	)
	for _, b := range src {
		buf = buf<<8 | uint(b)
		bits += 8
		for bits >= 5 {
			bits -= 5
			dst[n] = Alphabet[(buf>>bits)&0x1F]
			n++
		}
		buf &= 1<<bits - 1
	}
	if bits > 0 {
		dst[n] = Alphabet[(buf<<(5-bits))&0x1F]
	}
}

// Decode returns the bytes represented by s.
//
// It fails with ErrInvalidCharacter on a symbol outside the alphabet and its
// aliases, and with ErrInvalidLength when 5 or more bits are left over after
// the last whole byte. Up to 4 leftover bits are encoding padding and are
// dropped.
func Decode(s string) ([]byte, error) {
	out := make([]byte, DecodedLen(len(s)))
	if err := decode(out, s); err != nil {
		return nil, err
	}
	return out, nil
}

func decode[T text](dst []byte, s T) error {
	var (
		buf  uint
		bits uint
		n    int
	)
	for i := 0; i < len(s); i++ {
		v := dec[s[i]]
		if v == invalid {
			return fmt.Errorf("%w %q at position %d", ErrInvalidCharacter, s[i], i)
		}
		buf = buf<<5 | uint(v)
		bits += 5
		if bits >= 8 {
			bits -= 8
			dst[n] = byte(buf >> bits)
			n++
			buf &= 1<<bits - 1
		}
	}
	if bits >= 5 {
		return fmt.Errorf("%w: %d symbols leave %d bits", ErrInvalidLength, len(s), bits)
	}
	return nil
}

type text interface {
	~string | ~[]byte
}
