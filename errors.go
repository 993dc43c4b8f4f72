package kmeans

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")

	// ErrKExceedsDataset is returned when k is larger than the dataset.
	ErrKExceedsDataset = errors.New("k cannot exceed data point count")

	// ErrEmptyInput is returned when a centroid is requested for zero
	// points; the centroid of an empty group is undefined.
	ErrEmptyInput = errors.New("cannot compute centroid of empty point set")

	// ErrEmptyDataset is returned when a dataset contains no points.
	ErrEmptyDataset = errors.New("dataset must not be empty")

	// ErrBadInitialCentroids is returned when WithInitialCentroids does
	// not supply exactly k centroids.
	ErrBadInitialCentroids = errors.New("initial centroids must be exactly k vectors")
)

// ErrDimensionMismatch indicates a vector dimensionality mismatch.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }
