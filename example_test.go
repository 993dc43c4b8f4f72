package kmeans_test

import (
	"fmt"
	"log"

	"github.com/hupe1980/kmeans"
)

// ExampleRun clusters two obvious groups of 2-D points. Initial centroids
// are pinned so the output is stable; normally they are sampled from the
// dataset via the run's random source.
func ExampleRun() {
	data, err := kmeans.NewDataset([][]float64{
		{0, 0}, {0, 1}, {1, 0},
		{10, 10}, {10, 11}, {11, 10},
	})
	if err != nil {
		log.Fatal(err)
	}

	res, err := kmeans.Run(data, 2,
		kmeans.WithInitialCentroids([]kmeans.Vector{{0, 0}, {10, 10}}),
	)
	if err != nil {
		log.Fatal(err)
	}

	for i, c := range res.Centroids {
		fmt.Printf("cluster %d: centroid (%.2f, %.2f), %d points\n", i, c[0], c[1], res.Partition.Size(i))
	}
	// Output:
	// cluster 0: centroid (0.33, 0.33), 3 points
	// cluster 1: centroid (10.33, 10.33), 3 points
}

// ExampleAssign shows the assignment stage on its own.
func ExampleAssign() {
	data := kmeans.Dataset{{1, 0}, {9, 9}}
	centroids := []kmeans.Vector{{0, 0}, {10, 10}}

	part := kmeans.Assign(data, centroids)

	fmt.Println(part.Size(0), part.Size(1))
	// Output: 1 1
}
