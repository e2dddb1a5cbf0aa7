// SPDX-License-Identifier: MIT
// Package: lvreach/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvreach/scenario"
	"github.com/katalvlaran/lvreach/vector"
)

// BuilderOption customizes a constructor by mutating builderConfig.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithDimensions sets the vector length d, 1 <= d <= vector.MaxDimensions.
func WithDimensions(d int) BuilderOption {
	if d < 1 || d > vector.MaxDimensions {
		panic("builder: WithDimensions out of range")
	}
	return func(c *builderConfig) {
		c.dimensions = d
	}
}

// WithButtons sets the button count n, 1 <= n <= scenario.MaxButtons.
func WithButtons(n int) BuilderOption {
	if n < 1 || n > scenario.MaxButtons {
		panic("builder: WithButtons out of range")
	}
	return func(c *builderConfig) {
		c.buttons = n
	}
}

// WithMaxPresses bounds the witness press count of every button. Panics if
// limit < 0.
func WithMaxPresses(limit int) BuilderOption {
	if limit < 0 {
		panic("builder: WithMaxPresses(limit<0)")
	}
	return func(c *builderConfig) {
		c.maxPresses = limit
	}
}

// WithDensity sets the probability that a button touches a dimension.
// Panics if p is outside (0,1].
func WithDensity(p float64) BuilderOption {
	if p <= 0 || p > 1 {
		panic("builder: WithDensity(p not in (0,1])")
	}
	return func(c *builderConfig) {
		c.density = p
	}
}
