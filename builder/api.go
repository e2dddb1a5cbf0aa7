// SPDX-License-Identifier: MIT
// Package: lvreach/builder
//
// api.go - public entry points for the builder package.
//
// Design contract:
//   - Functional options resolve into an immutable builderConfig.
//   - Determinism: same options and seed ⇒ identical scenarios.
//   - Safety: never panic; return sentinel errors.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvreach/scenario"
	"github.com/katalvlaran/lvreach/vector"
)

const (
	methodRandomScenario = "RandomScenario"
	methodRandomLines    = "RandomLines"
)

// RandomScenario samples a solvable scenario and returns it together with
// the witness Solution whose presses produced the target.
//
// Steps:
//  1. Draw every button: each dimension is touched with probability
//     density; an empty draw is given one random dimension.
//  2. Draw witness presses uniformly from [0, maxPresses].
//  3. target = Σ presses[i]·button[i]; indicator = parity(target).
//
// Errors: ErrNeedRandSource, ErrTooManyItems (targets could exceed
// vector.MaxComponent), ErrConstructFailed.
func RandomScenario(opts ...BuilderOption) (*scenario.Scenario, *scenario.Solution, error) {
	cfg := newBuilderConfig(opts...)

	return randomScenario(cfg)
}

// RandomLines renders count random scenarios in line notation, drawing all
// of them from one RNG stream.
func RandomLines(count int, opts ...BuilderOption) ([]string, error) {
	if count < 1 {
		return nil, builderErrorf(methodRandomLines, "count=%d < 1: %w", count, ErrTooFewItems)
	}
	cfg := newBuilderConfig(opts...)
	lines := make([]string, 0, count)
	for i := 0; i < count; i++ {
		sc, _, err := randomScenario(cfg)
		if err != nil {
			return nil, builderErrorf(methodRandomLines, "line %d: %w", i, err)
		}
		lines = append(lines, sc.String())
	}

	return lines, nil
}

func randomScenario(cfg builderConfig) (*scenario.Scenario, *scenario.Solution, error) {
	// 1) Validate.
	if cfg.rng == nil {
		return nil, nil, builderErrorf(methodRandomScenario, "%w", ErrNeedRandSource)
	}
	if cfg.buttons*cfg.maxPresses > vector.MaxComponent {
		return nil, nil, builderErrorf(methodRandomScenario, "%d buttons × %d presses: %w",
			cfg.buttons, cfg.maxPresses, ErrTooManyItems)
	}

	// 2) Buttons.
	buttons := make([]vector.Button, cfg.buttons)
	for i := range buttons {
		buttons[i] = randomButton(cfg.rng, cfg.dimensions, cfg.density)
	}

	// 3) Witness and target.
	presses := make([]int, cfg.buttons)
	target := make(vector.Vector, cfg.dimensions)
	for i, b := range buttons {
		presses[i] = cfg.rng.Intn(cfg.maxPresses + 1)
		for d, x := range b {
			target[d] += presses[i] * int(x)
		}
	}
	witness, err := scenario.SolutionFromPresses(presses...)
	if err != nil {
		return nil, nil, builderErrorf(methodRandomScenario, "%w: %w", ErrConstructFailed, err)
	}

	sc, err := scenario.New(target.SkimToParity(), buttons, target)
	if err != nil {
		return nil, nil, builderErrorf(methodRandomScenario, "%w: %w", ErrConstructFailed, err)
	}

	return sc, witness, nil
}

// randomButton draws a non-empty binary effect over d dimensions.
func randomButton(rng *rand.Rand, d int, density float64) vector.Button {
	b := make(vector.Button, d)
	touched := false
	for i := range b {
		if rng.Float64() < density {
			b[i] = 1
			touched = true
		}
	}
	if !touched {
		b[rng.Intn(d)] = 1
	}

	return b
}
