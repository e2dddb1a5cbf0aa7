// SPDX-License-Identifier: MIT
// Package vector: Button, the binary effect vector.

package vector

import (
	"fmt"
	"strings"
)

// Indicator characters used by Button.String and the line parser.
const (
	EmptyChar = '.'
	FullChar  = '#'
)

// Button is a binary effect vector: every entry is 0 or 1.
// Pressing a button once adds exactly this vector to a state.
// A parity mask is structurally a Button with a different role.
type Button []uint8

// NewButton returns a Button of d dimensions with the given indices set.
// Duplicate indices are idempotent.
func NewButton(d int, indices ...int) (Button, error) {
	if d < 0 || d > MaxDimensions {
		return nil, fmt.Errorf("NewButton: d=%d: %w", d, ErrTooManyDimensions)
	}
	b := make(Button, d)
	for _, i := range indices {
		if i < 0 || i >= d {
			return nil, fmt.Errorf("NewButton: index %d not in [0,%d): %w", i, d, ErrIndexOutOfRange)
		}
		b[i] = 1
	}

	return b, nil
}

// ButtonFromBits copies bits into a new Button, rejecting non-binary entries.
func ButtonFromBits(bits ...uint8) (Button, error) {
	if len(bits) > MaxDimensions {
		return nil, fmt.Errorf("ButtonFromBits: d=%d: %w", len(bits), ErrTooManyDimensions)
	}
	b := make(Button, len(bits))
	for i, x := range bits {
		if x > 1 {
			return nil, fmt.Errorf("ButtonFromBits: bits[%d]=%d: %w", i, x, ErrNotBinary)
		}
		b[i] = x
	}

	return b, nil
}

// Dimensions reports the number of dimensions of b.
func (b Button) Dimensions() int { return len(b) }

// IsZero reports whether no dimension is set.
func (b Button) IsZero() bool {
	for _, x := range b {
		if x != 0 {
			return false
		}
	}

	return true
}

// Equal reports whether a and b have the same dimensions and entries.
func (b Button) Equal(other Button) bool {
	if len(b) != len(other) {
		return false
	}
	for i := range b {
		if b[i] != other[i] {
			return false
		}
	}

	return true
}

// Indices returns the ascending list of set dimensions.
func (b Button) Indices() []int {
	out := make([]int, 0, len(b))
	for i, x := range b {
		if x != 0 {
			out = append(out, i)
		}
	}

	return out
}

// Clone returns an independent copy of b.
func (b Button) Clone() Button {
	out := make(Button, len(b))
	copy(out, b)

	return out
}

// String renders b in indicator notation, e.g. "[.##.]".
func (b Button) String() string {
	var sb strings.Builder
	sb.Grow(len(b) + 2)
	sb.WriteByte('[')
	for _, x := range b {
		if x != 0 {
			sb.WriteByte(FullChar)
		} else {
			sb.WriteByte(EmptyChar)
		}
	}
	sb.WriteByte(']')

	return sb.String()
}
