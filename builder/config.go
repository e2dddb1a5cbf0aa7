// SPDX-License-Identifier: MIT
// Package: lvreach/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng         = nil (constructors return ErrNeedRandSource)
//   • dimensions  = 4
//   • buttons     = 6
//   • maxPresses  = 8 per button
//   • density     = 0.5

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "not configured".
	rng *rand.Rand

	dimensions int     // 1..vector.MaxDimensions
	buttons    int     // 1..scenario.MaxButtons
	maxPresses int     // witness presses per button, 0..maxPresses
	density    float64 // probability that a button touches a dimension
}

const (
	defaultDimensions = 4
	defaultButtons    = 6
	defaultMaxPresses = 8
	defaultDensity    = 0.5
)

// newBuilderConfig applies opts over the defaults; last option wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		dimensions: defaultDimensions,
		buttons:    defaultButtons,
		maxPresses: defaultMaxPresses,
		density:    defaultDensity,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
