package plot

import (
	"bytes"
	"testing"

	"github.com/hupe1980/kmeans"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clusteredResult(t *testing.T) *kmeans.Result {
	t.Helper()

	data, err := kmeans.NewDataset([][]float64{
		{0, 0}, {0, 1}, {1, 0},
		{10, 10}, {10, 11}, {11, 10},
	})
	require.NoError(t, err)

	res, err := kmeans.Run(data, 2,
		kmeans.WithInitialCentroids([]kmeans.Vector{{0, 0}, {10, 10}}),
	)
	require.NoError(t, err)

	return res
}

func TestRender(t *testing.T) {
	res := clusteredResult(t)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, res, "test clusters"))

	html := buf.String()
	assert.Contains(t, html, "test clusters")
	assert.Contains(t, html, "Cluster 0")
	assert.Contains(t, html, "Cluster 1")
	assert.Contains(t, html, "Centroids")
}

func TestScatter_RejectsNon2D(t *testing.T) {
	data, err := kmeans.NewDataset([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	res, err := kmeans.Run(data, 1, kmeans.WithSeed(1))
	require.NoError(t, err)

	_, err = Scatter(res, "3d")
	var dm *kmeans.ErrDimensionMismatch
	require.ErrorAs(t, err, &dm)
	assert.Equal(t, 2, dm.Expected)
	assert.Equal(t, 3, dm.Actual)
}
