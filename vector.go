package kmeans

// Vector is a fixed-dimension point in Euclidean space. The algorithm
// never mutates vectors it is handed; ownership stays with the caller.
type Vector []float64

// Clone returns a copy of v.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// Dataset is an ordered, non-empty collection of points sharing a single
// dimensionality. The clustering algorithm reads it but never mutates it.
type Dataset []Vector

// NewDataset wraps points as a Dataset, verifying that the set is
// non-empty and that every point has the dimensionality of the first.
func NewDataset(points [][]float64) (Dataset, error) {
	data := make(Dataset, len(points))
	for i, p := range points {
		data[i] = Vector(p)
	}
	if err := data.Validate(); err != nil {
		return nil, err
	}
	return data, nil
}

// Dim returns the dimensionality of the dataset's points, 0 if empty.
func (d Dataset) Dim() int {
	if len(d) == 0 {
		return 0
	}
	return len(d[0])
}

// Validate checks the Dataset invariants: non-empty, uniform
// dimensionality. Callers constructing a Dataset literal directly get the
// same checks Run performs.
func (d Dataset) Validate() error {
	if len(d) == 0 {
		return ErrEmptyDataset
	}
	dim := len(d[0])
	for _, p := range d {
		if len(p) != dim {
			return &ErrDimensionMismatch{Expected: dim, Actual: len(p)}
		}
	}
	return nil
}
