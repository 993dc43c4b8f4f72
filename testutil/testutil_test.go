package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniformVectors(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.UniformVectors(8, 32)

	assert.Equal(t, 8, len(v))
	assert.Equal(t, 32, len(v[0]))
	assert.Less(t, v[0][0], 1.0)
	assert.GreaterOrEqual(t, v[1][0], 0.0)
}

func TestClusteredVectors(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.ClusteredVectors(40, 3, 4, 0.01)

	assert.Equal(t, 40, len(v))
	assert.Equal(t, 3, len(v[0]))

	// Points 0 and 4 share a blob center; with tiny spread they must be
	// close in every coordinate.
	for j := range v[0] {
		assert.InDelta(t, v[0][j], v[4][j], 0.5)
	}
}

func TestRNG_Reset(t *testing.T) {
	rng := NewRNG(99)

	first := rng.UniformVectors(4, 2)
	rng.Reset()
	second := rng.UniformVectors(4, 2)

	assert.Equal(t, first, second)
	assert.Equal(t, int64(99), rng.Seed())
}
