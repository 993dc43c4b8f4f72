package kmeans

import "math/rand"

type options struct {
	maxIterations    int
	tolerance        float64
	rng              *rand.Rand
	initialCentroids []Vector
	logger           *Logger
}

// Option configures a clustering run.
type Option func(*options)

// WithMaxIterations caps the number of assign/update rounds.
// Defaults to DefaultMaxIterations; values below 1 are ignored.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxIterations = n
		}
	}
}

// WithTolerance sets the convergence threshold: the run terminates once
// every centroid moves less than tol between rounds.
// Defaults to DefaultTolerance.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		o.tolerance = tol
	}
}

// WithRandomSource sets the random source used for centroid
// initialization and empty-cluster reseeding. A *rand.Rand is not safe
// for concurrent use, so each concurrent Run call needs its own source.
// If nil (or never set), a time-seeded source is created for the run.
func WithRandomSource(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithSeed is shorthand for WithRandomSource with a source seeded from
// seed. Runs with the same seed, data and options produce identical
// results.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed)) // nolint gosec
	}
}

// WithInitialCentroids skips random initialization and starts the loop
// from the given centroids. Exactly k vectors of the dataset's
// dimensionality are required; the vectors are copied before use.
func WithInitialCentroids(centroids []Vector) Option {
	return func(o *options) {
		o.initialCentroids = centroids
	}
}

// WithLogger configures structured logging for the run.
// Pass nil to disable logging.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		maxIterations: DefaultMaxIterations,
		tolerance:     DefaultTolerance,
		logger:        NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
