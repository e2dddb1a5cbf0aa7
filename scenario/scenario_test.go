package scenario_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvreach/scenario"
	"github.com/katalvlaran/lvreach/vector"
)

const exampleLine = "[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}"

func TestNew_Validation(t *testing.T) {
	ind := vector.Button{0, 1}
	target := vector.Vector{1, 1}

	_, err := scenario.New(ind, nil, target)
	assert.ErrorIs(t, err, scenario.ErrNoButtons)

	many := make([]vector.Button, scenario.MaxButtons+1)
	for i := range many {
		many[i] = vector.Button{1, 0}
	}
	_, err = scenario.New(ind, many, target)
	assert.ErrorIs(t, err, scenario.ErrTooManyButtons)

	_, err = scenario.New(ind, []vector.Button{{1, 0, 0}}, target)
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)

	_, err = scenario.New(vector.Button{1}, []vector.Button{{1, 0}}, target)
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)

	_, err = scenario.New(ind, []vector.Button{{2, 0}}, target)
	assert.ErrorIs(t, err, vector.ErrNotBinary)

	sc, err := scenario.New(ind, []vector.Button{{1, 1}}, target)
	require.NoError(t, err)
	assert.Equal(t, 2, sc.Dimensions())
	assert.Equal(t, 1, sc.ButtonCount())
}

func TestNew_CopiesInputs(t *testing.T) {
	b := vector.Button{1, 0}
	target := vector.Vector{2, 0}
	sc, err := scenario.New(vector.Button{0, 0}, []vector.Button{b}, target)
	require.NoError(t, err)

	b[1] = 1
	target[0] = 9
	got, err := sc.Button(0)
	require.NoError(t, err)
	assert.Equal(t, vector.Button{1, 0}, got)
	assert.Equal(t, vector.Vector{2, 0}, sc.Target())

	_, err = sc.Button(1)
	assert.ErrorIs(t, err, scenario.ErrButtonIndex)
}

func TestAccumulateAndVerify(t *testing.T) {
	sc, err := scenario.ParseLine(exampleLine)
	require.NoError(t, err)

	sol, err := scenario.ParseSolution("1,3,0,3,1,2", sc.ButtonCount())
	require.NoError(t, err)

	reached, err := sc.Accumulate(sol)
	require.NoError(t, err)
	assert.Equal(t, vector.Vector{3, 5, 4, 7}, reached)
	assert.NoError(t, sc.Verify(sol, sc.Target()))
	assert.Equal(t, 10, sol.PressCount())

	require.NoError(t, sol.Press(2))
	assert.ErrorIs(t, sc.Verify(sol, sc.Target()), scenario.ErrNotReached)

	_, err = sc.Accumulate(scenario.NewSolution(2))
	assert.ErrorIs(t, err, scenario.ErrButtonCountMismatch)
}

func TestScenario_StringRoundTrip(t *testing.T) {
	sc, err := scenario.ParseLine(exampleLine)
	require.NoError(t, err)
	assert.Equal(t, exampleLine, sc.String())

	again, err := scenario.ParseLine(sc.String())
	require.NoError(t, err)
	assert.Equal(t, sc, again)
}
