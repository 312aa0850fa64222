package cluster

import (
	"context"
	"log/slog"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/vecspace/vecmath"
)

// DBSCANResult is the outcome of a DBSCAN run.
type DBSCANResult struct {
	// Labels holds Noise or a zero-based cluster label per input vector.
	Labels Labels
	// NumClusters is the number of clusters found.
	NumClusters int
	// NumNoise is the number of points labeled Noise.
	NumNoise int
}

const unvisited = 0

// DBSCAN clusters vectors by density connectivity.
//
// The epsilon-neighborhood of a point is every other point within Euclidean
// distance epsilon. A point is a core point when its neighborhood plus itself
// holds at least minPts points. Clusters grow breadth-first from core points;
// non-core points reached during expansion become border points, which also
// reclaims points previously marked as noise.
//
// Neighborhoods are found by brute-force scan, so a run costs O(n^2) distance
// evaluations.
func DBSCAN(vectors [][]float32, epsilon float64, minPts int, optFns ...Option) DBSCANResult {
	opts := newOptions(optFns)

	n := len(vectors)
	if n == 0 {
		return DBSCANResult{Labels: Labels{}}
	}

	// Internal cluster ids start at 1 so that 0 can mean unvisited.
	labels := make([]int, n)
	clusterID := 0

	for i := range n {
		if labels[i] != unvisited {
			continue
		}

		neighbors := regionQuery(vectors, i, epsilon)
		if len(neighbors)+1 < minPts {
			labels[i] = Noise
			continue
		}

		// Start a new cluster.
		clusterID++
		labels[i] = clusterID

		queued := roaring.New()
		queued.Add(uint32(i))
		for _, j := range neighbors {
			queued.Add(uint32(j))
		}

		seed := neighbors
		for len(seed) > 0 {
			q := seed[0]
			seed = seed[1:]

			if labels[q] == Noise {
				// Border point: reached from a core point but not core itself.
				labels[q] = clusterID
				continue
			}
			if labels[q] != unvisited {
				continue
			}
			labels[q] = clusterID

			qNeighbors := regionQuery(vectors, q, epsilon)
			if len(qNeighbors)+1 < minPts {
				continue
			}
			for _, r := range qNeighbors {
				if labels[r] > unvisited || !queued.CheckedAdd(uint32(r)) {
					continue
				}
				seed = append(seed, r)
			}
		}
	}

	res := DBSCANResult{
		Labels:      make(Labels, n),
		NumClusters: clusterID,
	}
	for i, label := range labels {
		if label == Noise {
			res.Labels[i] = Noise
			res.NumNoise++
			continue
		}
		res.Labels[i] = label - 1
	}

	opts.logger.LogAttrs(context.Background(), slog.LevelDebug, "dbscan finished",
		slog.Int("count", n),
		slog.Float64("epsilon", epsilon),
		slog.Int("min_pts", minPts),
		slog.Int("clusters", res.NumClusters),
		slog.Int("noise", res.NumNoise),
	)

	return res
}

// regionQuery returns the indices of all points other than idx within
// epsilon of vectors[idx].
func regionQuery(vectors [][]float32, idx int, epsilon float64) []int {
	var result []int
	q := vectors[idx]
	for i, v := range vectors {
		if i == idx {
			continue
		}
		if vecmath.EuclideanDistance(q, v) <= epsilon {
			result = append(result, i)
		}
	}
	return result
}
