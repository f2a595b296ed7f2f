package roller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolkit_IntBetween_StaysInRange(t *testing.T) {
	r := New()

	for i := 0; i < 200; i++ {
		v, err := r.IntBetween(30, 100)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 30)
		assert.LessOrEqual(t, v, 100)
	}
}

func TestToolkit_IntBetween_DegenerateRange(t *testing.T) {
	r := New()

	v, err := r.IntBetween(7, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	_, err = r.IntBetween(10, 5)
	assert.Error(t, err)
}

func TestToolkit_Float64_HalfOpenInterval(t *testing.T) {
	r := New()

	for i := 0; i < 200; i++ {
		v, err := r.Float64()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestFixed_ReplaysScript(t *testing.T) {
	f := &Fixed{Ints: []int{50, 3, 999}, Floats: []float64{0.03, 0.9}}

	v, err := f.IntBetween(30, 100)
	require.NoError(t, err)
	assert.Equal(t, 50, v)

	// below range clamps up
	v, err = f.IntBetween(30, 100)
	require.NoError(t, err)
	assert.Equal(t, 30, v)

	// above range clamps down
	v, err = f.IntBetween(30, 100)
	require.NoError(t, err)
	assert.Equal(t, 100, v)

	// wraps around
	v, err = f.IntBetween(30, 100)
	require.NoError(t, err)
	assert.Equal(t, 50, v)

	fv, err := f.Float64()
	require.NoError(t, err)
	assert.InDelta(t, 0.03, fv, 1e-9)

	fv, err = f.Float64()
	require.NoError(t, err)
	assert.InDelta(t, 0.9, fv, 1e-9)
}
