// Package testutil provides testing utilities for the kmeans library.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seedable random source and generators for uniform and
// pre-clustered point sets.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	points := rng.UniformVectors(100, 3)          // uniform [0, 1)
//	points = rng.ClusteredVectors(100, 3, 4, 0.1) // 4 blobs, spread 0.1
package testutil
