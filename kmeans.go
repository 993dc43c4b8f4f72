package kmeans

import (
	"math"
	"math/rand"
	"time"
)

const (
	// DefaultMaxIterations caps the assign/update loop when the caller
	// does not override it.
	DefaultMaxIterations = 100

	// DefaultTolerance is the centroid movement below which a run is
	// considered converged.
	DefaultTolerance = 1e-6
)

// Result holds the outcome of a clustering run.
type Result struct {
	// Centroids are the final cluster centers, ordered by cluster id.
	Centroids []Vector

	// Partition maps each cluster id to its member points, in dataset
	// encounter order.
	Partition Partition

	// Iterations is the number of assign/update rounds performed.
	Iterations int

	// Converged reports whether every centroid moved less than the
	// tolerance on the final round.
	Converged bool
}

// Assign partitions data by nearest centroid: every point goes to the
// cluster whose centroid minimizes the Euclidean distance. Exact ties go
// to the smallest centroid index, so the result is deterministic given
// identical centroids and data ordering. The returned partition always
// has len(centroids) clusters, some possibly empty.
//
// Assumes data and centroids share one dimensionality.
func Assign(data Dataset, centroids []Vector) Partition {
	part := make(Partition, len(centroids))
	for i := range part {
		part[i] = []Vector{}
	}

	for _, p := range data {
		best := -1
		minDist := math.MaxFloat64

		for j, c := range centroids {
			// Strict < keeps the first minimum on exact ties.
			if d := SquaredL2(p, c); d < minDist {
				minDist = d
				best = j
			}
		}

		part[best] = append(part[best], p)
	}

	return part
}

// Update recomputes one centroid per cluster, ordered by cluster id. An
// empty cluster is reseeded with a point drawn uniformly at random from
// data so that no cluster stays dead across iterations; Update is
// therefore not pure and consumes rng. Callers needing reproducible runs
// must seed rng themselves.
func Update(part Partition, data Dataset, rng *rand.Rand) ([]Vector, error) {
	centroids := make([]Vector, len(part))

	for i, cluster := range part {
		if len(cluster) == 0 {
			centroids[i] = data[rng.Intn(len(data))].Clone()
			continue
		}

		c, err := Centroid(cluster)
		if err != nil {
			return nil, err
		}

		centroids[i] = c
	}

	return centroids, nil
}

// Inertia returns the within-cluster sum of squared distances between
// each point and its cluster's centroid. Lower is tighter; useful for
// comparing runs with different seeds.
func Inertia(centroids []Vector, part Partition) float64 {
	var sum float64
	for i, cluster := range part {
		for _, p := range cluster {
			sum += SquaredL2(p, centroids[i])
		}
	}
	return sum
}

// Run clusters data into k groups using Lloyd's algorithm and returns the
// final centroids and partition.
//
// Validation happens before any computation: k must be positive
// (ErrInvalidK), at most len(data) (ErrKExceedsDataset), and data must
// satisfy Dataset.Validate. Initial centroids are k distinct data points
// sampled without replacement, unless WithInitialCentroids overrides
// initialization.
//
// The loop runs at most MaxIterations rounds of Assign followed by
// Update, terminating early once every centroid moves less than the
// tolerance between rounds.
//
// Note the pairing of the returned values: on convergence the Centroids
// field holds the post-update centroids while Partition was computed from
// the pre-update ones; on iteration exhaustion both fields come from the
// last round, with the final Update result discarded. Callers depend on
// this behavior, so it is kept as is rather than normalized.
func Run(data Dataset, k int, optFns ...Option) (*Result, error) {
	if k <= 0 {
		return nil, ErrInvalidK
	}
	if err := data.Validate(); err != nil {
		return nil, err
	}
	if k > len(data) {
		return nil, ErrKExceedsDataset
	}

	o := applyOptions(optFns)

	rng := o.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano())) // nolint gosec
	}

	centroids, err := initialCentroids(data, k, o.initialCentroids, rng)
	if err != nil {
		return nil, err
	}

	var (
		part     Partition
		assigned []Vector
	)

	for iter := 1; iter <= o.maxIterations; iter++ {
		assigned = centroids
		part = Assign(data, assigned)

		next, err := Update(part, data, rng)
		if err != nil {
			return nil, err
		}

		shift := maxShift(assigned, next)
		o.logger.Debug("kmeans iteration",
			"iteration", iter,
			"max_shift", shift,
		)

		if shift < o.tolerance {
			o.logger.Info("kmeans converged",
				"k", k,
				"iterations", iter,
			)
			return &Result{
				Centroids:  next,
				Partition:  part,
				Iterations: iter,
				Converged:  true,
			}, nil
		}

		centroids = next
	}

	o.logger.Info("kmeans iteration budget exhausted",
		"k", k,
		"iterations", o.maxIterations,
	)

	return &Result{
		Centroids:  assigned,
		Partition:  part,
		Iterations: o.maxIterations,
	}, nil
}

// initialCentroids picks the k starting centroids: caller-supplied ones
// when present, otherwise k distinct data points via a random
// permutation. Vectors are copied so later updates never alias the
// dataset or the caller's slices.
func initialCentroids(data Dataset, k int, initial []Vector, rng *rand.Rand) ([]Vector, error) {
	if initial != nil {
		if len(initial) != k {
			return nil, ErrBadInitialCentroids
		}

		dim := data.Dim()
		out := make([]Vector, k)
		for i, c := range initial {
			if len(c) != dim {
				return nil, &ErrDimensionMismatch{Expected: dim, Actual: len(c)}
			}
			out[i] = c.Clone()
		}
		return out, nil
	}

	perm := rng.Perm(len(data))
	out := make([]Vector, k)
	for i := 0; i < k; i++ {
		out[i] = data[perm[i]].Clone()
	}
	return out, nil
}

// maxShift returns the largest Euclidean movement between paired
// centroids of two rounds.
func maxShift(old, next []Vector) float64 {
	var maxDist float64
	for i := range old {
		if d := Euclidean(old[i], next[i]); d > maxDist {
			maxDist = d
		}
	}
	return maxDist
}
