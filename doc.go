// Package kmeans implements Lloyd's k-means clustering over
// fixed-dimension float64 vectors.
//
// # Quick Start
//
//	data, _ := kmeans.NewDataset([][]float64{
//		{0, 0}, {0, 1}, {1, 0},
//		{10, 10}, {10, 11}, {11, 10},
//	})
//	res, _ := kmeans.Run(data, 2, kmeans.WithSeed(42))
//	fmt.Println(res.Centroids)
//
// The stages of the algorithm are exported individually: SquaredL2,
// Euclidean, Centroid, Assign and Update. Callers can drive the
// assign/update loop themselves when they need to observe or modify
// intermediate state.
//
// # Randomness
//
// Initialization samples k distinct data points without replacement, and
// Update reseeds empty clusters from random data points. Both draw from
// the run's random source; inject one with WithRandomSource or WithSeed
// for reproducible results. A *rand.Rand is not safe for concurrent use,
// so concurrent Run calls must not share a source. With independent
// sources there is no shared mutable state between runs.
//
// # Return pairing
//
// On convergence, Run returns the centroids produced by the final Update
// together with the partition computed from the centroids BEFORE that
// update. When the iteration budget runs out instead, Run returns the
// last partition together with the centroids that produced it, i.e. the
// final Update result is discarded. The asymmetry is long-standing
// observable behavior; see Run for details.
package kmeans
