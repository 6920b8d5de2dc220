// Package bitfield packs and unpacks unsigned sub-ranges of a 64-bit word.
// Offsets and widths are layout constants, so violating their bounds is a
// programming error and panics instead of returning an error.
package bitfield

import (
	"fmt"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Unsigned is the set of integer types a field value may be held in.
type Unsigned = constraints.Unsigned

// WordBits is the width of the packed word.
const WordBits = 64

// Extract returns the width-bit value stored at bit offset start in word.
// T may be wider than the field; it must not be narrower.
func Extract[T Unsigned](word uint64, start, width uint) T {
	checkWindow(start, width)
	if capacity := bitSize[T](); width > capacity {
		panic(fmt.Sprintf("bitfield: width %d exceeds %d-bit destination", width, capacity))
	}
	return T((word >> start) & mask(width))
}

// Inject clears the width-bit window at start and writes the low width bits
// of value into it. Bits of value above width are discarded; a value
// narrower than the window is zero-extended.
func Inject[T Unsigned](word uint64, value T, start, width uint) uint64 {
	checkWindow(start, width)
	m := mask(width)
	return word&^(m<<start) | (uint64(value)&m)<<start
}

// mask returns a value with the low width bits set.
func mask(width uint) uint64 {
	if width >= WordBits {
		return ^uint64(0)
	}
	return 1<<width - 1
}

// checkWindow panics when the window does not fit in the word.
func checkWindow(start, width uint) {
	if start >= WordBits || width == 0 || start+width > WordBits {
		panic(fmt.Sprintf("bitfield: invalid window start=%d width=%d", start, width))
	}
}

// bitSize returns the number of bits in T.
func bitSize[T Unsigned]() uint {
	return uint(bits.Len64(uint64(^T(0))))
}
