package solver_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvreach/builder"
	"github.com/katalvlaran/lvreach/solver"
	"github.com/katalvlaran/lvreach/vector"
)

const propertyBudget = 200_000

// Every successful solve must reproduce its destination exactly, and
// bisection must never return a solution that DFS would reject.
func TestProperties_RoundTrip(t *testing.T) {
	seeds := int64(40)
	if testing.Short() {
		seeds = 10
	}
	for seed := int64(1); seed <= seeds; seed++ {
		sc, witness, err := builder.RandomScenario(
			builder.WithSeed(seed),
			builder.WithDimensions(4),
			builder.WithButtons(5),
			builder.WithMaxPresses(3),
		)
		require.NoError(t, err)
		require.NoError(t, sc.Verify(witness, sc.Target()))

		dfsSol := sc.NewSolution()
		err = solver.SolveDFS(sc, sc.Target(), dfsSol, solver.WithStepBudget(propertyBudget))
		if errors.Is(err, solver.ErrStepBudget) {
			continue
		}
		// A witness exists, so an exhaustive DFS within its cap finds one too.
		require.NoError(t, err, "seed %d: %s", seed, sc)
		assert.NoError(t, sc.Verify(dfsSol, sc.Target()), "seed %d", seed)

		bisSol := sc.NewSolution()
		err = solver.SolveBisection(sc, sc.Target(), bisSol, solver.WithStepBudget(propertyBudget))
		if err == nil {
			assert.NoError(t, sc.Verify(bisSol, sc.Target()), "seed %d: bisection", seed)
		}

		autoSol, err := solver.Solve(sc, solver.StrategyAuto, solver.WithStepBudget(propertyBudget))
		if err == nil {
			assert.NoError(t, sc.Verify(autoSol, sc.Target()), "seed %d: auto", seed)
		}

		maskSol := sc.NewSolution()
		effect := sc.NewVector()
		if err = solver.SolveMask(sc, sc.Indicator(), maskSol, effect); err == nil {
			reached, accErr := sc.Accumulate(maskSol)
			require.NoError(t, accErr)
			assert.Equal(t, effect, reached)
			assert.Equal(t, sc.Indicator(), reached.SkimToParity(), "seed %d: mask", seed)
		}
	}
}

// Solving a zero destination is idempotent: no presses, no search.
func TestProperties_ZeroDestination(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		sc, _, err := builder.RandomScenario(builder.WithSeed(seed))
		require.NoError(t, err)
		zero := sc.NewVector()
		stats := &solver.Stats{}

		for name, solve := range map[string]func() error{
			"dfs": func() error {
				return solver.SolveDFS(sc, zero, sc.NewSolution(), solver.WithStats(stats))
			},
			"bisection": func() error {
				return solver.SolveBisection(sc, zero, sc.NewSolution(), solver.WithStats(stats))
			},
			"mask": func() error {
				return solver.SolveMask(sc, make(vector.Button, sc.Dimensions()), sc.NewSolution(), sc.NewVector(), solver.WithStats(stats))
			},
		} {
			assert.NoError(t, solve(), "seed %d: %s", seed, name)
		}
		assert.Zero(t, stats.Nodes)
		assert.Zero(t, stats.Steps)
	}
}
