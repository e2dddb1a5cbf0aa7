package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvreach/scenario"
	"github.com/katalvlaran/lvreach/solver"
	"github.com/katalvlaran/lvreach/vector"
)

func TestSolveMask_Indicators(t *testing.T) {
	cases := []struct {
		name    string
		line    string
		presses string
		effect  []int
	}{
		{"four", lineFour, "0,1,0,1,0,0", []int{0, 1, 1, 2}},
		{"five", lineFive, "0,0,1,1,1", []int{2, 2, 2, 1, 2}},
		{"six", lineSix, "0,1,1,0", []int{2, 1, 1, 1, 2, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sc := mustParse(t, tc.line)
			sol := sc.NewSolution()
			scratch := sc.NewVector()

			require.NoError(t, solver.SolveMask(sc, sc.Indicator(), sol, scratch))
			assert.Equal(t, tc.presses, sol.String())
			assert.Equal(t, vector.Vector(tc.effect), scratch)

			reached, err := sc.Accumulate(sol)
			require.NoError(t, err)
			assert.Equal(t, scratch, reached)
		})
	}
}

func TestSolveMask_SmallestSizeFirst(t *testing.T) {
	sc := mustParse(t, lineFour)
	stats := &solver.Stats{}
	sol := sc.NewSolution()

	require.NoError(t, solver.SolveMask(sc, sc.Indicator(), sol, sc.NewVector(), solver.WithStats(stats)))
	assert.Equal(t, 2, sol.PressCount())
	// six singletons, then pairs up to (1,3)
	assert.Equal(t, 13, stats.MaskSubsets)
	assert.Equal(t, 13, stats.Steps)
}

func TestSolveMask_NeverFullSet(t *testing.T) {
	sc := mustParse(t, "[##] (0) (1) {1,1}")
	err := solver.SolveMask(sc, sc.Indicator(), sc.NewSolution(), sc.NewVector())
	assert.ErrorIs(t, err, solver.ErrNoSolution)
}

func TestSolveMask_NoSolution(t *testing.T) {
	sc := mustParse(t, "[#..] (0,1) (0,1) (1,2) {1,1,1}")
	sol := sc.NewSolution()
	err := solver.SolveMask(sc, sc.Indicator(), sol, sc.NewVector())
	assert.ErrorIs(t, err, solver.ErrNoSolution)
	assert.Zero(t, sol.PressCount())
}

func TestSolveMask_ZeroMask(t *testing.T) {
	sc := mustParse(t, lineFour)
	sol := sc.NewSolution()
	scratch := mustVector(t, 9, 9, 9, 9)

	require.NoError(t, solver.SolveMask(sc, vector.Button{0, 0, 0, 0}, sol, scratch))
	assert.Zero(t, sol.PressCount())
	assert.True(t, scratch.IsZero())
}

func TestSolveMask_Validation(t *testing.T) {
	sc := mustParse(t, lineFour)
	mask := sc.Indicator()

	err := solver.SolveMask(nil, mask, sc.NewSolution(), sc.NewVector())
	assert.ErrorIs(t, err, solver.ErrScenarioNil)

	err = solver.SolveMask(sc, mask, nil, sc.NewVector())
	assert.ErrorIs(t, err, solver.ErrSolutionNil)

	err = solver.SolveMask(sc, mask, scenario.NewSolution(3), sc.NewVector())
	assert.ErrorIs(t, err, scenario.ErrButtonCountMismatch)

	err = solver.SolveMask(sc, vector.Button{1, 0}, sc.NewSolution(), sc.NewVector())
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)

	err = solver.SolveMask(sc, vector.Button{0, 2, 1, 0}, sc.NewSolution(), sc.NewVector())
	assert.ErrorIs(t, err, vector.ErrNotBinary)

	err = solver.SolveMask(sc, mask, sc.NewSolution(), mustVector(t, 0, 0))
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)

	err = solver.SolveMask(sc, mask, sc.NewSolution(), sc.NewVector(), solver.WithStepBudget(-1))
	assert.ErrorIs(t, err, solver.ErrOptionViolation)
}

func TestSolveMask_StepBudget(t *testing.T) {
	sc := mustParse(t, lineFour)
	err := solver.SolveMask(sc, sc.Indicator(), sc.NewSolution(), sc.NewVector(), solver.WithStepBudget(12))
	assert.ErrorIs(t, err, solver.ErrStepBudget)

	err = solver.SolveMask(sc, sc.Indicator(), sc.NewSolution(), sc.NewVector(), solver.WithStepBudget(13))
	assert.NoError(t, err)
}
