package kmeans

// Centroid returns the arithmetic mean of points, computed per dimension.
// It returns ErrEmptyInput for an empty set. Uniform dimensionality is
// assumed; mixed-length input is a precondition violation with undefined
// results (use NewDataset to make the check structural).
func Centroid(points []Vector) (Vector, error) {
	if len(points) == 0 {
		return nil, ErrEmptyInput
	}

	mean := make(Vector, len(points[0]))
	for _, p := range points {
		for d := range mean {
			mean[d] += p[d]
		}
	}

	scale := 1.0 / float64(len(points))
	for d := range mean {
		mean[d] *= scale
	}

	return mean, nil
}
