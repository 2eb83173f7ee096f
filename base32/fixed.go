package base32

import "fmt"

// Sizes of the fixed identifier fast path.
const (
	FixedLen     = 16
	FixedTextLen = 26
)

// Encode16 encodes exactly 16 bytes into 26 symbols without allocating.
// The result matches Encode on the same input.
func Encode16(src *[FixedLen]byte) (dst [FixedTextLen]byte) {
	// Three 40-bit groups give 8 symbols each, the last byte gives 2.
	for g := 0; g < 3; g++ {
		b := src[g*5 : g*5+5]
		d := dst[g*8 : g*8+8]
		d[0] = Alphabet[b[0]>>3]
		d[1] = Alphabet[(b[0]&0x07)<<2|b[1]>>6]
		d[2] = Alphabet[(b[1]>>1)&0x1F]
		d[3] = Alphabet[(b[1]&0x01)<<4|b[2]>>4]
		d[4] = Alphabet[(b[2]&0x0F)<<1|b[3]>>7]
		d[5] = Alphabet[(b[3]>>2)&0x1F]
		d[6] = Alphabet[(b[3]&0x03)<<3|b[4]>>5]
		d[7] = Alphabet[b[4]&0x1F]
	}
	dst[24] = Alphabet[src[15]>>3]
	dst[25] = Alphabet[(src[15]&0x07)<<2]
	return dst
}

// EncodeFixed is Encode16 for a slice whose size is only known at runtime.
// It fails with ErrInvalidLength unless len(src) is 16.
func EncodeFixed(src []byte) ([FixedTextLen]byte, error) {
	if len(src) != FixedLen {
		return [FixedTextLen]byte{}, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidLength, FixedLen, len(src))
	}
	return Encode16((*[FixedLen]byte)(src)), nil
}

// Decode26 decodes exactly 26 symbols into 16 bytes without allocating.
// The two padding bits of the last symbol are dropped, as Decode does.
func Decode26(src *[FixedTextLen]byte) ([FixedLen]byte, error) {
	return decode26(src[:])
}

// DecodeFixed is Decode26 for a string whose length is only known at
// runtime. It fails with ErrInvalidLength unless len(s) is 26.
func DecodeFixed(s string) ([FixedLen]byte, error) {
	if len(s) != FixedTextLen {
		return [FixedLen]byte{}, fmt.Errorf("%w: want %d symbols, got %d", ErrInvalidLength, FixedTextLen, len(s))
	}
	return decode26(s)
}

func decode26[T text](s T) (dst [FixedLen]byte, err error) {
	var v [FixedTextLen]byte
	for i := 0; i < FixedTextLen; i++ {
		if v[i] = dec[s[i]]; v[i] == invalid {
			return dst, fmt.Errorf("%w %q at position %d", ErrInvalidCharacter, s[i], i)
		}
	}
	for g := 0; g < 3; g++ {
		c := v[g*8 : g*8+8]
		b := dst[g*5 : g*5+5]
		b[0] = c[0]<<3 | c[1]>>2
		b[1] = c[1]<<6 | c[2]<<1 | c[3]>>4
		b[2] = c[3]<<4 | c[4]>>1
		b[3] = c[4]<<7 | c[5]<<2 | c[6]>>3
		b[4] = c[6]<<5 | c[7]
	}
	dst[15] = v[24]<<3 | v[25]>>2
	return dst, nil
}
