package base32

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedMatchesGeneric(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	inputs := [][FixedLen]byte{
		{},
		{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
		{0x01, 0x8F, 0x3A, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01},
	}
	for i := 0; i < 500; i++ {
		var b [FixedLen]byte
		rng.Read(b[:])
		inputs = append(inputs, b)
	}

	for _, in := range inputs {
		in := in
		enc := Encode16(&in)
		require.Equal(t, Encode(in[:]), string(enc[:]))

		checked, err := EncodeFixed(in[:])
		require.NoError(t, err)
		require.Equal(t, enc, checked)

		raw, err := Decode26(&enc)
		require.NoError(t, err)
		require.Equal(t, in, raw)

		generic, err := Decode(string(enc[:]))
		require.NoError(t, err)
		require.Equal(t, in[:], generic)
	}
}

func TestDecodeFixedMatchesGeneric(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 500; i++ {
		// Any 26 symbols decode, including ones with non-zero padding bits.
		var sb strings.Builder
		for j := 0; j < FixedTextLen; j++ {
			sb.WriteByte(Alphabet[rng.Intn(len(Alphabet))])
		}
		s := sb.String()

		fixed, err := DecodeFixed(s)
		require.NoError(t, err)
		generic, err := Decode(s)
		require.NoError(t, err)
		require.Equal(t, generic, fixed[:], s)
	}
}

func TestEncodeFixedInvalidLength(t *testing.T) {
	for _, n := range []int{0, 1, 15, 17, 32} {
		_, err := EncodeFixed(make([]byte, n))
		assert.ErrorIs(t, err, ErrInvalidLength, "len %d", n)
	}
}

func TestDecodeFixedErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{name: "short", in: strings.Repeat("0", 25), want: ErrInvalidLength},
		{name: "long", in: strings.Repeat("0", 27), want: ErrInvalidLength},
		{name: "empty", in: "", want: ErrInvalidLength},
		{name: "U", in: strings.Repeat("0", 25) + "U", want: ErrInvalidCharacter},
		{name: "u", in: "u" + strings.Repeat("0", 25), want: ErrInvalidCharacter},
		{name: "symbol", in: strings.Repeat("0", 12) + "-" + strings.Repeat("0", 13), want: ErrInvalidCharacter},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeFixed(tt.in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecodeFixedAliases(t *testing.T) {
	upper, err := DecodeFixed("01ARZ3NDEKTSV4RRFFQ69G5FA0")
	require.NoError(t, err)
	lower, err := DecodeFixed("o1arz3ndektsv4rrffq69g5fao")
	require.NoError(t, err)
	assert.Equal(t, upper, lower)
}

func BenchmarkEncode16(b *testing.B) {
	var src [FixedLen]byte
	rand.New(rand.NewSource(3)).Read(src[:])
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Encode16(&src)
	}
}

func BenchmarkEncode(b *testing.B) {
	src := make([]byte, FixedLen)
	rand.New(rand.NewSource(3)).Read(src)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Encode(src)
	}
}
