package solver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvreach/scenario"
	"github.com/katalvlaran/lvreach/vector"
)

const (
	lineFour   = "[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}"
	lineFive   = "[...#.] (0,2,3,4) (2,3) (0,4) (0,1,2) (1,2,3,4) {7,5,12,7,2}"
	lineSix    = "[.###.#] (0,1,2,3,4) (0,3,4) (0,1,2,4,5) (1,2) {10,11,11,5,10,5}"
	lineDeep   = "[###..] (0,1,2) (0,3,4) (0,3) (1,2,4) {13,20,20,8,16}"
	lineSingle = "[.###] (0,1,2) (0,2) (2) (0,2,3) (0) {39,8,26,7}"
	lineZero   = "[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {0,0,0,0}"
	lineStuck  = "[.#..] (3) (1,3) (2) (2,3) (0,2) (0,1) {0,1,0,0}"
)

func mustParse(t testing.TB, line string) *scenario.Scenario {
	t.Helper()
	sc, err := scenario.ParseLine(line)
	require.NoError(t, err)

	return sc
}

func mustPresses(t testing.TB, s string, n int) *scenario.Solution {
	t.Helper()
	sol, err := scenario.ParseSolution(s, n)
	require.NoError(t, err)

	return sol
}

func mustVector(t testing.TB, values ...int) vector.Vector {
	t.Helper()
	v, err := vector.FromValues(values...)
	require.NoError(t, err)

	return v
}
