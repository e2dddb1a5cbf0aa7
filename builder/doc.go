// SPDX-License-Identifier: MIT
// Package builder generates reproducible scenario fixtures for tests,
// benchmarks and the lvreach generate command.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption: a function that mutates builderConfig before use.
//     – builderConfig: holds RNG, dimensions, button count, density and
//     the per-button press bound.
//   - Constructors:
//     – RandomScenario: one scenario plus the witness Solution that
//     produced its target.
//     – RandomLines: a batch of scenarios rendered in line notation.
//
// Guarantees:
//
//   - Every generated scenario is solvable: the witness accumulates
//     exactly to the target, and the indicator equals the target parity.
//   - Every button affects at least one dimension.
//   - Same seed and options ⇒ identical output.
//   - Fast-fail on invalid option parameters via panics in option
//     constructors; runtime problems surface as sentinel errors.
//
// Complexity: O(n·d) per scenario for n buttons over d dimensions.
package builder
