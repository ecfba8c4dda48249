package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultStrategies_FixedOrder(t *testing.T) {
	strategies := DefaultStrategies(DefaultConfig())
	require.Len(t, strategies, 6)

	names := make([]string, 0, len(strategies))
	for _, s := range strategies {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{
		"standard",
		"enhanced",
		"standard-rot90",
		"standard-rot180",
		"standard-rot270",
		"raw",
	}, names)

	// Rotations only on the rotated variants.
	assert.Equal(t, 0, strategies[0].Rotation)
	assert.Equal(t, 0, strategies[1].Rotation)
	assert.Equal(t, 90, strategies[2].Rotation)
	assert.Equal(t, 180, strategies[3].Rotation)
	assert.Equal(t, 270, strategies[4].Rotation)
	assert.Equal(t, 0, strategies[5].Rotation)

	// The raw fallback carries no recipe; everything else does.
	for _, s := range strategies[:5] {
		require.NotNil(t, s.Recipe, s.Name)
	}
	assert.Nil(t, strategies[5].Recipe)

	// Recipes: enhanced only in slot 2.
	assert.Equal(t, "standard", strategies[0].Recipe.Name)
	assert.Equal(t, "enhanced", strategies[1].Recipe.Name)
	for _, s := range strategies[2:5] {
		assert.Equal(t, "standard", s.Recipe.Name)
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "pending", StatePending.String())
	assert.Equal(t, "succeeded", StateSucceeded.String())
	assert.Equal(t, "exhausted", StateExhausted.String())
}
