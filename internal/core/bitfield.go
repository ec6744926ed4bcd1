package core

import (
	"fmt"
	"strings"
)

// StateBits is the width of a packed game state.
const StateBits = 64

// Field is a named bit range inside a packed state.
// A field at offset o with width w occupies bits [o, o+w).
type Field struct {
	Name   string
	Offset uint
	Width  uint
}

// NewField creates a field descriptor.
func NewField(name string, offset, width uint) Field {
	return Field{Name: name, Offset: offset, Width: width}
}

// End returns the first bit past the field.
func (f Field) End() uint {
	return f.Offset + f.Width
}

// Max returns the largest value the field can hold.
func (f Field) Max() uint64 {
	if f.Width >= StateBits {
		return ^uint64(0)
	}
	return (uint64(1) << f.Width) - 1
}

// Mask returns the field's bits in their packed position.
func (f Field) Mask() uint64 {
	return f.Max() << f.Offset
}

// Get extracts the field value from a packed state.
func (f Field) Get(packed uint64) uint64 {
	return (packed >> f.Offset) & f.Max()
}

// Put returns packed with the field replaced by v.
// Bits of v beyond the field width are dropped.
func (f Field) Put(packed, v uint64) uint64 {
	return (packed &^ f.Mask()) | ((v & f.Max()) << f.Offset)
}

// Flag reads a field as a boolean (any non-zero value is true).
func (f Field) Flag(packed uint64) bool {
	return f.Get(packed) != 0
}

// PutFlag writes a boolean into the field.
func (f Field) PutFlag(packed uint64, on bool) uint64 {
	if on {
		return f.Put(packed, 1)
	}
	return f.Put(packed, 0)
}

// String returns a compact description like "score[10,16)".
func (f Field) String() string {
	return fmt.Sprintf("%s[%d,%d)", f.Name, f.Offset, f.End())
}

// Layout is the bit-field schema of a game's packed state.
// Fields are listed in declaration order and must not overlap.
type Layout []Field

// Validate checks that every field is non-empty, fits in 64 bits,
// has a unique name and does not overlap any other field.
func (l Layout) Validate() error {
	var used uint64
	names := make(map[string]bool, len(l))

	for _, f := range l {
		if f.Name == "" {
			return fmt.Errorf("layout: field at offset %d has no name", f.Offset)
		}
		if names[f.Name] {
			return fmt.Errorf("layout: duplicate field %q", f.Name)
		}
		names[f.Name] = true

		if f.Width == 0 {
			return fmt.Errorf("layout: field %s has zero width", f.Name)
		}
		if f.End() > StateBits {
			return fmt.Errorf("layout: field %s ends past bit %d", f, StateBits)
		}
		if used&f.Mask() != 0 {
			return fmt.Errorf("layout: field %s overlaps another field", f)
		}
		used |= f.Mask()
	}
	return nil
}

// Bits returns the number of bits claimed by all fields.
func (l Layout) Bits() uint {
	var n uint
	for _, f := range l {
		n += f.Width
	}
	return n
}

// Mask returns the union of all field masks.
func (l Layout) Mask() uint64 {
	var m uint64
	for _, f := range l {
		m |= f.Mask()
	}
	return m
}

// Canonical clears every bit not covered by a field.
func (l Layout) Canonical(packed uint64) uint64 {
	return packed & l.Mask()
}

// Field looks a field up by name.
func (l Layout) Field(name string) (Field, bool) {
	for _, f := range l {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Describe renders one line per field with its decoded value.
func (l Layout) Describe(packed uint64) string {
	var sb strings.Builder
	for _, f := range l {
		fmt.Fprintf(&sb, "%-10s %-12s %d\n", f.Name, fmt.Sprintf("[%d,%d)", f.Offset, f.End()), f.Get(packed))
	}
	return sb.String()
}
