package bitfield

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name         string
		word         uint64
		start, width uint
		expected     uint64
	}{
		{"low nibble", 0xABCD, 0, 4, 0xD},
		{"middle byte", 0xABCD, 4, 8, 0xBC},
		{"single bit set", 1 << 63, 63, 1, 1},
		{"single bit clear", 1 << 62, 63, 1, 0},
		{"full word", 0xDEADBEEFCAFEF00D, 0, 64, 0xDEADBEEFCAFEF00D},
		{"top six bits", 0xFC00000000000000, 58, 6, 0x3F},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, Extract[uint64](tc.word, tc.start, tc.width))
		})
	}
}

func TestExtractIntoWiderContainer(t *testing.T) {
	word := uint64(0x2A) << 46

	require.Equal(t, uint8(0x2A), Extract[uint8](word, 46, 6))
	require.Equal(t, uint16(0x2A), Extract[uint16](word, 46, 6))
	require.Equal(t, uint(0x2A), Extract[uint](word, 46, 6))
}

func TestInject(t *testing.T) {
	tests := []struct {
		name         string
		word         uint64
		value        uint64
		start, width uint
		expected     uint64
	}{
		{"into zero", 0, 0x5, 4, 4, 0x50},
		{"overwrite", 0xFF, 0x0, 0, 4, 0xF0},
		{"excess bits masked", 0, 0xFF, 0, 4, 0xF},
		{"excess bits do not leak upward", 0, 0x1FF, 8, 8, 0xFF00},
		{"top bit", 0, 1, 63, 1, 1 << 63},
		{"full word", 0x1234, 0xFFFF, 0, 64, 0xFFFF},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, Inject(tc.word, tc.value, tc.start, tc.width))
		})
	}
}

func TestInjectPreservesOutsideBits(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 1000 {
		word := rng.Uint64()
		width := uint(rng.IntN(63)) + 1
		start := uint(rng.IntN(int(WordBits - width + 1)))
		value := rng.Uint64()

		got := Inject(word, value, start, width)
		window := mask(width) << start

		require.Equal(t, word&^window, got&^window, "bits outside [%d,%d) changed", start, start+width)
		require.Equal(t, value&mask(width), Extract[uint64](got, start, width))
	}
}

func TestPreconditionsPanic(t *testing.T) {
	tests := []struct {
		name         string
		start, width uint
	}{
		{"start out of range", 64, 1},
		{"zero width", 0, 0},
		{"window past end", 60, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Panics(t, func() { Extract[uint64](0, tc.start, tc.width) })
			require.Panics(t, func() { Inject[uint64](0, 1, tc.start, tc.width) })
		})
	}
}

func TestNarrowContainerPanics(t *testing.T) {
	require.Panics(t, func() { Extract[uint8](0, 0, 9) })
	require.NotPanics(t, func() { Extract[uint8](0, 0, 8) })
}

func TestInjectNarrowValueIntoWideField(t *testing.T) {
	// A uint8 fits in a 40-bit window; the upper bits of the window are zeroed
	word := Inject[uint8](^uint64(0), 5, 0, 40)
	require.Equal(t, uint64(5), word&(1<<40-1))
	require.Equal(t, ^uint64(0)&^(1<<40-1), word&^(1<<40-1), "bits above the window untouched")
	require.Equal(t, uint64(5), Extract[uint64](word, 0, 40))

	require.Equal(t, uint64(0xAB)<<9, Inject[uint8](0, 0xAB, 9, 9))
	require.Equal(t, uint64(0xFFFF)<<48, Inject[uint16](0, 0xFFFF, 48, 16))
}
