package base32

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeVectors(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
		want string
	}{
		{name: "empty", in: nil, want: ""},
		{name: "f", in: []byte("f"), want: "CR"},
		{name: "foobar", in: []byte("foobar"), want: "CSQPYRK1E8"},
		{name: "0xFF", in: []byte{0xFF}, want: "ZW"},
		{name: "0xFFFFFFFF", in: []byte{0xFF, 0xFF, 0xFF, 0xFF}, want: "ZZZZZZR"},
		{name: "zero byte", in: []byte{0x00}, want: "00"},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			is := assert.New(t)
			got := Encode(tt.in)
			is.Equal(tt.want, got)
			is.Len(got, EncodedLen(len(tt.in)))

			back, err := Decode(got)
			is.NoError(err)
			is.True(bytes.Equal(tt.in, back), "decode(%q) = %x", got, back)
		})
	}
}

func TestRoundTripBytes(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for n := 0; n < 64; n++ {
		for i := 0; i < 16; i++ {
			src := make([]byte, n)
			rng.Read(src)
			out, err := Decode(Encode(src))
			require.NoError(t, err)
			require.Equal(t, src, out)
		}
	}
}

func TestRoundTripCanonicalText(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	// Canonical strings are the ones whose padding bits are zero.
	for n := 0; n < 40; n++ {
		src := make([]byte, n)
		rng.Read(src)
		s := Encode(src)
		out, err := Decode(s)
		require.NoError(t, err)
		assert.Equal(t, s, Encode(out))

		lower, err := Decode(strings.ToLower(s))
		require.NoError(t, err)
		assert.Equal(t, out, lower)
	}
}

func TestDecodeAliases(t *testing.T) {
	is := assert.New(t)

	zeros, err := Decode("00000000")
	is.NoError(err)
	folded, err := Decode("Oo0oOoOo")
	is.NoError(err)
	is.Equal(zeros, folded)

	ones, err := Decode("11111111")
	is.NoError(err)
	folded, err = Decode("IiLl1iIl")
	is.NoError(err)
	is.Equal(ones, folded)
}

func TestDecodeRejectsU(t *testing.T) {
	for _, s := range []string{"U0", "0u", "CSQPYRK1EU", "cuqpyrk1e8"} {
		t.Run(s, func(t *testing.T) {
			_, err := Decode(s)
			assert.ErrorIs(t, err, ErrInvalidCharacter)
		})
	}
}

func TestDecodeInvalidCharacter(t *testing.T) {
	for _, s := range []string{"C!", "C R", "CR=", "é0"} {
		t.Run(s, func(t *testing.T) {
			_, err := Decode(s)
			assert.ErrorIs(t, err, ErrInvalidCharacter)
		})
	}
}

func TestDecodeInvalidLength(t *testing.T) {
	cases := []struct {
		n    int
		fail bool
	}{
		{n: 0, fail: false},
		{n: 1, fail: true},
		{n: 2, fail: false},
		{n: 3, fail: true},
		{n: 4, fail: false},
		{n: 5, fail: false},
		{n: 6, fail: true},
		{n: 7, fail: false},
		{n: 8, fail: false},
		{n: 26, fail: false},
	}
	for _, tt := range cases {
		t.Run(strings.Repeat("0", tt.n), func(t *testing.T) {
			out, err := Decode(strings.Repeat("0", tt.n))
			if tt.fail {
				assert.ErrorIs(t, err, ErrInvalidLength)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, out, DecodedLen(tt.n))
		})
	}
}

func TestEncodedLen(t *testing.T) {
	is := assert.New(t)
	is.Equal(0, EncodedLen(0))
	is.Equal(2, EncodedLen(1))
	is.Equal(7, EncodedLen(4))
	is.Equal(8, EncodedLen(5))
	is.Equal(FixedTextLen, EncodedLen(FixedLen))
	is.Equal(FixedLen, DecodedLen(FixedTextLen))
}
