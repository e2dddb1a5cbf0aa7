// SPDX-License-Identifier: MIT
// Package vector: Vector, the non-negative integer state.
//
// Contract:
//   - Mutators validate every dimension first, then commit. A failing call
//     leaves the receiver untouched.
//   - Distances are sums of squares, never square-rooted: only relative
//     order is consumed by callers.

package vector

import (
	"fmt"
	"strconv"
	"strings"
)

// Vector is an ordered sequence of non-negative integers.
// Its length is the dimension count and is fixed after construction.
type Vector []int

// New returns a zero Vector with d dimensions.
func New(d int) (Vector, error) {
	if d < 0 || d > MaxDimensions {
		return nil, fmt.Errorf("New: d=%d: %w", d, ErrTooManyDimensions)
	}

	return make(Vector, d), nil
}

// FromValues copies values into a new Vector after range validation.
func FromValues(values ...int) (Vector, error) {
	if len(values) > MaxDimensions {
		return nil, fmt.Errorf("FromValues: d=%d: %w", len(values), ErrTooManyDimensions)
	}
	v := make(Vector, len(values))
	for i, x := range values {
		if x < 0 {
			return nil, fmt.Errorf("FromValues: values[%d]=%d: %w", i, x, ErrNegativeComponent)
		}
		v[i] = x
	}

	return v, nil
}

// FromButton returns a Vector holding the effect of b.
func FromButton(b Button) Vector {
	v := make(Vector, len(b))
	for i, x := range b {
		v[i] = int(x)
	}

	return v
}

// Dimensions reports the number of dimensions of v.
func (v Vector) Dimensions() int { return len(v) }

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)

	return out
}

// Reset sets every component to zero.
func (v Vector) Reset() {
	for i := range v {
		v[i] = 0
	}
}

// Add presses b once: v += b.
func (v Vector) Add(b Button) error {
	if len(v) != len(b) {
		return fmt.Errorf("Add: %d vs %d: %w", len(v), len(b), ErrDimensionMismatch)
	}
	for i, x := range b {
		v[i] += int(x)
	}

	return nil
}

// Subtract undoes one press of b: v -= b.
// It does not check that b was ever pressed, only that v stays non-negative.
func (v Vector) Subtract(b Button) error {
	if len(v) != len(b) {
		return fmt.Errorf("Subtract: %d vs %d: %w", len(v), len(b), ErrDimensionMismatch)
	}
	// 1. Validate every dimension.
	for i, x := range b {
		if int(x) > v[i] {
			return fmt.Errorf("Subtract: dimension %d: %d - %d: %w", i, v[i], x, ErrUnderflow)
		}
	}
	// 2. Commit.
	for i, x := range b {
		v[i] -= int(x)
	}

	return nil
}

// Combine adds other into v: v += other.
func (v Vector) Combine(other Vector) error {
	if len(v) != len(other) {
		return fmt.Errorf("Combine: %d vs %d: %w", len(v), len(other), ErrDimensionMismatch)
	}
	for i, x := range other {
		v[i] += x
	}

	return nil
}

// SubtractVector removes other from v: v -= other.
func (v Vector) SubtractVector(other Vector) error {
	if len(v) != len(other) {
		return fmt.Errorf("SubtractVector: %d vs %d: %w", len(v), len(other), ErrDimensionMismatch)
	}
	// 1. Validate every dimension.
	for i, x := range other {
		if x > v[i] {
			return fmt.Errorf("SubtractVector: dimension %d: %d - %d: %w", i, v[i], x, ErrUnderflow)
		}
	}
	// 2. Commit.
	for i, x := range other {
		v[i] -= x
	}

	return nil
}

// DivideByScalar integer-divides every component by k.
// If any component has a remainder, v is unchanged and ErrIndivisible is returned.
func (v Vector) DivideByScalar(k int) error {
	if k <= 0 {
		return fmt.Errorf("DivideByScalar: k=%d: %w", k, ErrIndivisible)
	}
	for i, x := range v {
		if x%k != 0 {
			return fmt.Errorf("DivideByScalar: dimension %d: %d %% %d != 0: %w", i, x, k, ErrIndivisible)
		}
	}
	for i := range v {
		v[i] /= k
	}

	return nil
}

// SkimToParity returns the per-dimension remainder modulo BalanceFactor as a
// new Button. v is not modified.
func (v Vector) SkimToParity() Button {
	b := make(Button, len(v))
	for i, x := range v {
		b[i] = uint8(x % BalanceFactor)
	}

	return b
}

// MatchesMask reports whether v has exactly the parity described by mask.
// It returns ErrDimensionMismatch for operands of different length.
func (v Vector) MatchesMask(mask Button) (bool, error) {
	if len(v) != len(mask) {
		return false, fmt.Errorf("MatchesMask: %d vs %d: %w", len(v), len(mask), ErrDimensionMismatch)
	}
	for i, x := range v {
		if uint8(x%2) != mask[i] {
			return false, nil
		}
	}

	return true, nil
}

// SquaredLength returns the sum of squared components.
func (v Vector) SquaredLength() uint64 {
	var sum uint64
	for _, x := range v {
		sum += uint64(x) * uint64(x)
	}

	return sum
}

// SquaredDistanceAfter returns the squared distance from (v + b) to dest
// without mutating v. ok is false when v + b exceeds dest in some dimension.
func (v Vector) SquaredDistanceAfter(b Button, dest Vector) (dist uint64, ok bool, err error) {
	if len(v) != len(b) || len(v) != len(dest) {
		return 0, false, fmt.Errorf("SquaredDistanceAfter: %d vs %d vs %d: %w",
			len(v), len(b), len(dest), ErrDimensionMismatch)
	}
	var gap uint64
	for i := range v {
		reached := v[i] + int(b[i])
		if reached > dest[i] {
			return 0, false, nil
		}
		gap = uint64(dest[i] - reached)
		dist += gap * gap
	}

	return dist, true, nil
}

// IsZero reports whether every component is zero.
func (v Vector) IsZero() bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}

	return true
}

// Equal reports whether v and other have the same dimensions and components.
func (v Vector) Equal(other Vector) bool {
	if len(v) != len(other) {
		return false
	}
	for i := range v {
		if v[i] != other[i] {
			return false
		}
	}

	return true
}

// Exceeds reports whether v is greater than bound in any dimension.
func (v Vector) Exceeds(bound Vector) bool {
	for i := range v {
		if i >= len(bound) || v[i] > bound[i] {
			return true
		}
	}

	return false
}

// Compare orders vectors by squared length: -1, 0 or +1.
// Intended for sorting displacement vectors, not states.
func Compare(a, b Vector) int {
	la, lb := a.SquaredLength(), b.SquaredLength()
	switch {
	case la < lb:
		return -1
	case la > lb:
		return 1
	default:
		return 0
	}
}

// String renders v in target notation, e.g. "{3,5,4,7}".
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, x := range v {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(x))
	}
	sb.WriteByte('}')

	return sb.String()
}
