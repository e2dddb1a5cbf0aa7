package vector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvreach/vector"
)

func TestNewButton(t *testing.T) {
	b, err := vector.NewButton(4, 1, 3, 3)
	require.NoError(t, err)
	assert.Equal(t, vector.Button{0, 1, 0, 1}, b)
	assert.Equal(t, []int{1, 3}, b.Indices())
	assert.Equal(t, "[.#.#]", b.String())

	_, err = vector.NewButton(4, 4)
	assert.ErrorIs(t, err, vector.ErrIndexOutOfRange)

	_, err = vector.NewButton(11)
	assert.ErrorIs(t, err, vector.ErrTooManyDimensions)
}

func TestButtonFromBits(t *testing.T) {
	b, err := vector.ButtonFromBits(0, 1, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, "[.##.]", b.String())
	assert.False(t, b.IsZero())

	_, err = vector.ButtonFromBits(0, 2)
	assert.ErrorIs(t, err, vector.ErrNotBinary)

	zero, err := vector.ButtonFromBits(0, 0)
	require.NoError(t, err)
	assert.True(t, zero.IsZero())
}

func TestButtonEqualClone(t *testing.T) {
	a := vector.Button{1, 0, 1}
	c := a.Clone()
	assert.True(t, a.Equal(c))
	c[1] = 1
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(vector.Button{1, 0}))

	assert.Equal(t, vector.Vector{1, 0, 1}, vector.FromButton(a))
}
