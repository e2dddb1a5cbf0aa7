// SPDX-License-Identifier: MIT
// Package: lvreach/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w via builderErrorf.
//   • Option constructors panic on meaningless inputs; generators never do.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewItems indicates a count (scenarios, dimensions, buttons) below
// the allowed minimum.
var ErrTooFewItems = errors.New("builder: parameter too small")

// ErrTooManyItems indicates a count above what a scenario can hold.
var ErrTooManyItems = errors.New("builder: parameter too large")

// ErrNeedRandSource indicates that a stochastic constructor was called
// without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the generated parts were rejected while
// assembling a scenario.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes an error with the constructor name, keeping the
// wrapped sentinel visible to errors.Is.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}
