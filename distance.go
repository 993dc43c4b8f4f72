package kmeans

import "math"

// SquaredL2 calculates the squared L2 (Euclidean) distance between two
// vectors. Assumes vectors are the same length (caller's responsibility);
// with the index order preserved it is safe for nearest-centroid
// comparisons since squaring is monotonic.
func SquaredL2(a, b Vector) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// Euclidean calculates the Euclidean (L2) distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func Euclidean(a, b Vector) float64 {
	return math.Sqrt(SquaredL2(a, b))
}

// Distance calculates the Euclidean distance between two vectors,
// verifying that both share the same dimensionality. It is the checked
// counterpart of Euclidean.
func Distance(a, b Vector) (float64, error) {
	if len(a) != len(b) {
		return 0, &ErrDimensionMismatch{Expected: len(a), Actual: len(b)}
	}
	return Euclidean(a, b), nil
}
