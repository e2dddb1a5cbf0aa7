package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvreach/builder"
	"github.com/katalvlaran/lvreach/scenario"
)

func TestRandomScenario_WitnessReachesTarget(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 64; seed++ {
		sc, witness, err := builder.RandomScenario(
			builder.WithSeed(seed),
			builder.WithDimensions(5),
			builder.WithButtons(7),
		)
		require.NoError(t, err)
		assert.Equal(t, 5, sc.Dimensions())
		assert.Equal(t, 7, sc.ButtonCount())
		assert.NoError(t, sc.Verify(witness, sc.Target()), "seed %d", seed)
		assert.Equal(t, sc.Target().SkimToParity(), sc.Indicator(), "seed %d", seed)
		for _, b := range sc.Buttons() {
			assert.False(t, b.IsZero(), "seed %d: empty button", seed)
		}
		for _, p := range witness.Presses() {
			assert.LessOrEqual(t, p, 8)
		}
	}
}

func TestRandomScenario_Deterministic(t *testing.T) {
	t.Parallel()

	a, wa, err := builder.RandomScenario(builder.WithSeed(42))
	require.NoError(t, err)
	b, wb, err := builder.RandomScenario(builder.WithSeed(42))
	require.NoError(t, err)

	assert.Equal(t, a.String(), b.String())
	assert.True(t, wa.Equal(wb))

	r := rand.New(rand.NewSource(42))
	c, _, err := builder.RandomScenario(builder.WithRand(r))
	require.NoError(t, err)
	assert.Equal(t, a.String(), c.String(), "WithRand and WithSeed share a stream")
}

func TestRandomScenario_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := builder.RandomScenario()
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, _, err = builder.RandomScenario(
		builder.WithSeed(1),
		builder.WithButtons(12),
		builder.WithMaxPresses(10000),
	)
	assert.ErrorIs(t, err, builder.ErrTooManyItems)
}

func TestRandomScenario_ZeroPresses(t *testing.T) {
	t.Parallel()

	sc, witness, err := builder.RandomScenario(builder.WithSeed(3), builder.WithMaxPresses(0))
	require.NoError(t, err)
	assert.Zero(t, witness.PressCount())
	assert.True(t, sc.Target().IsZero())
}

func TestRandomScenario_FullDensity(t *testing.T) {
	t.Parallel()

	sc, _, err := builder.RandomScenario(builder.WithSeed(9), builder.WithDensity(1), builder.WithDimensions(3))
	require.NoError(t, err)
	for _, b := range sc.Buttons() {
		assert.Equal(t, []int{0, 1, 2}, b.Indices())
	}
}

func TestRandomLines_ParseBack(t *testing.T) {
	t.Parallel()

	lines, err := builder.RandomLines(10, builder.WithSeed(7), builder.WithButtons(12), builder.WithDimensions(10))
	require.NoError(t, err)
	require.Len(t, lines, 10)
	for _, line := range lines {
		sc, err := scenario.ParseLine(line)
		require.NoError(t, err, line)
		assert.Equal(t, line, sc.String())
	}

	_, err = builder.RandomLines(0, builder.WithSeed(7))
	assert.ErrorIs(t, err, builder.ErrTooFewItems)

	_, err = builder.RandomLines(2)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithDimensions(0) })
	assert.Panics(t, func() { builder.WithDimensions(11) })
	assert.Panics(t, func() { builder.WithButtons(0) })
	assert.Panics(t, func() { builder.WithButtons(13) })
	assert.Panics(t, func() { builder.WithMaxPresses(-1) })
	assert.Panics(t, func() { builder.WithDensity(0) })
	assert.Panics(t, func() { builder.WithDensity(1.5) })
	assert.NotPanics(t, func() { builder.WithDensity(1) })
}
