package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvreach/solver"
	"github.com/katalvlaran/lvreach/vector"
)

func TestRank_AscendingDistance(t *testing.T) {
	sc := mustParse(t, lineFour)
	order := solver.NewOrder(sc.ButtonCount())

	err := solver.Rank(sc, sc.NewVector(), sc.Target(), order)
	require.NoError(t, err)
	// distances 86,77,92,79,87,85
	assert.Equal(t, []int{1, 3, 5, 0, 4, 2}, order.IDs())
}

func TestRank_TiesKeepButtonOrder(t *testing.T) {
	sc := mustParse(t, "[..] (1) (0) (0,1) {2,2}")
	order := solver.NewOrder(sc.ButtonCount())

	require.NoError(t, solver.Rank(sc, sc.NewVector(), sc.Target(), order))
	// (0,1) is closest; (1) and (0) tie at 5.
	assert.Equal(t, []int{2, 0, 1}, order.IDs())
}

func TestRank_SkipsOvershoot(t *testing.T) {
	sc := mustParse(t, "[..] (0) (1) {1,2}")
	order := solver.NewOrder(sc.ButtonCount())

	require.NoError(t, solver.Rank(sc, mustVector(t, 1, 0), sc.Target(), order))
	assert.Equal(t, []int{1}, order.IDs())

	require.NoError(t, solver.Rank(sc, mustVector(t, 1, 2), sc.Target(), order))
	assert.Empty(t, order.IDs(), "every button overshoots at the destination")
}

func TestRank_Errors(t *testing.T) {
	sc := mustParse(t, lineFour)

	err := solver.Rank(nil, sc.NewVector(), sc.Target(), solver.NewOrder(6))
	assert.ErrorIs(t, err, solver.ErrScenarioNil)

	err = solver.Rank(sc, sc.NewVector(), sc.Target(), solver.NewOrder(5))
	assert.ErrorIs(t, err, solver.ErrInsufficientCapacity)

	err = solver.Rank(sc, sc.NewVector(), sc.Target(), nil)
	assert.ErrorIs(t, err, solver.ErrInsufficientCapacity)

	err = solver.Rank(sc, mustVector(t, 0, 0, 0), sc.Target(), solver.NewOrder(6))
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

func TestOrder_Reset(t *testing.T) {
	sc := mustParse(t, lineFour)
	order := solver.NewOrder(8)
	assert.Equal(t, 8, order.Cap())

	require.NoError(t, solver.Rank(sc, sc.NewVector(), sc.Target(), order))
	assert.Equal(t, 6, order.Len())
	order.Reset()
	assert.Zero(t, order.Len())
	assert.Equal(t, 8, order.Cap())

	assert.Zero(t, solver.NewOrder(-1).Cap())
}
