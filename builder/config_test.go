// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption).
package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBuilderConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.Nil(t, cfg.rng, "no RNG unless seeded")
	assert.Equal(t, defaultDimensions, cfg.dimensions)
	assert.Equal(t, defaultButtons, cfg.buttons)
	assert.Equal(t, defaultMaxPresses, cfg.maxPresses)
	assert.Equal(t, defaultDensity, cfg.density)
}

func TestNewBuilderConfig_LastWins(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithButtons(3), WithButtons(9), WithDensity(0.25), WithSeed(1))
	assert.Equal(t, 9, cfg.buttons)
	assert.Equal(t, 0.25, cfg.density)
	assert.NotNil(t, cfg.rng)
}

func TestRandomButton_NeverEmpty(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithSeed(5))
	for i := 0; i < 200; i++ {
		b := randomButton(cfg.rng, 3, 0.01)
		assert.False(t, b.IsZero())
	}
}
