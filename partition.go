package kmeans

// Partition groups data points by cluster: the slice index is the cluster
// id, the value the ordered points assigned to it. Every id 0..k-1 is
// present even when its cluster is empty. Assign rebuilds the partition
// from scratch on every call; nothing is carried across iterations.
type Partition [][]Vector

// Len returns the number of clusters k.
func (p Partition) Len() int { return len(p) }

// Size returns the number of points in cluster i.
func (p Partition) Size(i int) int { return len(p[i]) }

// TotalPoints returns the number of points across all clusters.
func (p Partition) TotalPoints() int {
	var n int
	for _, cluster := range p {
		n += len(cluster)
	}
	return n
}
