package bitfield

import (
	"errors"
	"fmt"
	"sort"
)

// Field names a contiguous bit range within a packed word.
type Field struct {
	Name  string
	Start uint
	Width uint
}

// End returns the bit offset one past the field's most significant bit.
func (f Field) End() uint {
	return f.Start + f.Width
}

// Max returns the largest value the field can hold.
func (f Field) Max() uint64 {
	return mask(f.Width)
}

// Mask returns the field's bits in position within the word.
func (f Field) Mask() uint64 {
	return mask(f.Width) << f.Start
}

// Get extracts the field from word into T.
func Get[T Unsigned](word uint64, f Field) T {
	return Extract[T](word, f.Start, f.Width)
}

// Put writes value into the field's window of word.
func Put[T Unsigned](word uint64, f Field, value T) uint64 {
	return Inject(word, value, f.Start, f.Width)
}

// Layout is the full set of fields packed into one word.
type Layout []Field

// Validate checks that every field fits in the word and that no two fields
// share a bit.
func (l Layout) Validate() error {
	if len(l) == 0 {
		return errors.New("bitfield: empty layout")
	}

	sorted := make([]Field, len(l))
	copy(sorted, l)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	var total uint
	for i, f := range sorted {
		if f.Width == 0 {
			return fmt.Errorf("bitfield: field %q has zero width", f.Name)
		}
		if f.Start >= WordBits || f.End() > WordBits {
			return fmt.Errorf("bitfield: field %q [%d,%d) exceeds %d bits", f.Name, f.Start, f.End(), WordBits)
		}
		if i > 0 && sorted[i-1].End() > f.Start {
			return fmt.Errorf("bitfield: field %q overlaps %q", f.Name, sorted[i-1].Name)
		}
		total += f.Width
	}
	if total > WordBits {
		return fmt.Errorf("bitfield: layout uses %d bits, limit is %d", total, WordBits)
	}
	return nil
}

// MustValidate panics if the layout is invalid.
func (l Layout) MustValidate() Layout {
	if err := l.Validate(); err != nil {
		panic(err)
	}
	return l
}

// Used returns the mask of all bits covered by some field.
func (l Layout) Used() uint64 {
	var used uint64
	for _, f := range l {
		used |= f.Mask()
	}
	return used
}

// Reserved returns the mask of bits no field covers.
func (l Layout) Reserved() uint64 {
	return ^l.Used()
}

// Width returns the total number of bits used by the layout.
func (l Layout) Width() uint {
	var total uint
	for _, f := range l {
		total += f.Width
	}
	return total
}
