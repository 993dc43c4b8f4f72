package kmeans_test

import (
	"testing"

	"github.com/hupe1980/kmeans"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDataset(t *testing.T) {
	data, err := kmeans.NewDataset([][]float64{
		{1, 2},
		{3, 4},
	})
	require.NoError(t, err)
	assert.Len(t, data, 2)
	assert.Equal(t, 2, data.Dim())
}

func TestNewDataset_Empty(t *testing.T) {
	_, err := kmeans.NewDataset(nil)
	assert.ErrorIs(t, err, kmeans.ErrEmptyDataset)

	_, err = kmeans.NewDataset([][]float64{})
	assert.ErrorIs(t, err, kmeans.ErrEmptyDataset)
}

func TestNewDataset_RaggedDimensions(t *testing.T) {
	_, err := kmeans.NewDataset([][]float64{
		{1, 2},
		{3, 4, 5},
	})
	require.Error(t, err)

	var dm *kmeans.ErrDimensionMismatch
	require.ErrorAs(t, err, &dm)
	assert.Equal(t, 2, dm.Expected)
	assert.Equal(t, 3, dm.Actual)
}

func TestDatasetValidate(t *testing.T) {
	data := kmeans.Dataset{{1, 2}, {3, 4}}
	assert.NoError(t, data.Validate())

	ragged := kmeans.Dataset{{1, 2}, {3}}
	assert.Error(t, ragged.Validate())
}

func TestVectorClone(t *testing.T) {
	v := kmeans.Vector{1, 2, 3}
	c := v.Clone()

	c[0] = 99
	assert.Equal(t, kmeans.Vector{1, 2, 3}, v)
	assert.Equal(t, kmeans.Vector{99, 2, 3}, c)
}
