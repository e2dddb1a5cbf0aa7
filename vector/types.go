// SPDX-License-Identifier: MIT
// Package vector: sentinel errors and shared constants.

package vector

import "errors"

const (
	// MaxDimensions is the largest dimension count accepted by constructors.
	MaxDimensions = 10

	// MaxComponent bounds a single Vector component as accepted from input.
	MaxComponent = 65535

	// BalanceFactor is the divisor used by parity skimming and bisection.
	// It MUST stay 2: SkimToParity stores remainders in a Button.
	BalanceFactor = 2
)

var (
	// ErrDimensionMismatch indicates operands with differing dimension counts.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrUnderflow indicates that a subtraction would drive a component below zero.
	ErrUnderflow = errors.New("vector: underflow")

	// ErrIndivisible indicates that a component is not evenly divisible by the scalar.
	ErrIndivisible = errors.New("vector: indivisible value")

	// ErrNotBinary indicates a button entry other than 0 or 1.
	ErrNotBinary = errors.New("vector: button effect must be 0 or 1")

	// ErrIndexOutOfRange indicates a dimension index outside [0, dimensions).
	ErrIndexOutOfRange = errors.New("vector: index out of range")

	// ErrTooManyDimensions indicates a dimension count above MaxDimensions.
	ErrTooManyDimensions = errors.New("vector: too many dimensions")

	// ErrNegativeComponent indicates a negative value passed to a constructor.
	ErrNegativeComponent = errors.New("vector: negative component")
)
