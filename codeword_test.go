package bjpeg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodewordBitLengths(t *testing.T) {
	cases := []struct {
		v    int32
		bits uint8
	}{
		{1, 1}, {-1, 1},
		{2, 2}, {-3, 2},
		{4, 3}, {-7, 3},
		{2047, 11}, {-2047, 11},
	}
	for _, c := range cases {
		cw := codeword(c.v)
		assert.Equal(t, c.bits, cw.bits, "v=%d", c.v)
	}
}

func TestCodewordPositiveIsValueItself(t *testing.T) {
	for _, v := range []int32{1, 2, 5, 100, 2047} {
		assert.Equal(t, uint16(v), codeword(v).code)
	}
}

func TestCodewordNegativeComplement(t *testing.T) {
	// A negative codeword's code is the one's complement of its magnitude
	// within its own bit width: code + magnitude == (1<<bits)-1.
	for _, v := range []int32{-1, -2, -5, -100, -2047} {
		cw := codeword(v)
		mag := codeword(-v)
		assert.Equal(t, mag.bits, cw.bits)
		assert.Equal(t, uint16(1)<<cw.bits-1, cw.code+mag.code)
	}
}

func TestCodewordPanicsOutOfRange(t *testing.T) {
	require.Panics(t, func() { codeword(codewordLimit) })
	require.Panics(t, func() { codeword(-codewordLimit) })
}
