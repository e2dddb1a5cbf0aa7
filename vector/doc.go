// SPDX-License-Identifier: MIT
// Package vector implements the small fixed-dimension integer algebra used
// by the press-count solvers.
//
// What:
//
//   - Vector: an ordered sequence of non-negative integers (a state or a
//     destination). Mutated in place by Add, Subtract, Combine,
//     SubtractVector and DivideByScalar.
//   - Button: a binary effect vector. Pressing a button once adds its
//     effect to a Vector. The same type also carries parity masks, i.e.
//     "which dimensions must end up odd".
//
// Guarantees:
//
//   - Every mutating operation validates all dimensions before it writes;
//     on error the receiver is left unchanged.
//   - No component ever goes below zero (ErrUnderflow instead).
//   - SkimToParity never mutates the source vector.
//
// Errors:
//
//   - ErrDimensionMismatch  operands of differing length.
//   - ErrUnderflow          a subtraction would make a component negative.
//   - ErrIndivisible        a component is not a multiple of the divisor.
//   - ErrNotBinary          a button entry other than 0 or 1.
//   - ErrIndexOutOfRange    a button index outside [0, dimensions).
//
// Complexity: every operation is O(D) with D ≤ MaxDimensions.
package vector
