package cluster

import (
	"context"
	"log/slog"
	"math"

	"github.com/hupe1980/vecspace/vecmath"
)

// KMeansResult is the outcome of a k-means run.
type KMeansResult struct {
	// Labels holds one label in [0, k) per input vector.
	Labels Labels
	// Centroids holds the final k cluster centers.
	Centroids [][]float32
	// Iterations is the number of assignment passes performed.
	Iterations int
	// Converged is true when the last pass changed no assignment.
	Converged bool
	// Inertia is the sum of squared distances of points to their centroid.
	Inertia float64
}

// KMeans partitions vectors into k clusters using Lloyd's algorithm.
//
// Centroids are seeded from k distinct, uniformly sampled input vectors. Each
// pass assigns every point to its nearest centroid by Euclidean distance and
// recomputes centroids as member means; a centroid that loses all members is
// reseeded to a random input vector. The run stops after a pass without
// assignment changes or after the iteration bound.
//
// An empty input returns an empty result. If k >= len(vectors) every point
// becomes its own cluster (label i for point i). k < 1 is treated as 1.
//
// Results depend on the random source; repeated calls on identical input may
// return different (usually similar-quality) partitions.
func KMeans(vectors [][]float32, k int, optFns ...Option) KMeansResult {
	opts := newOptions(optFns)

	n := len(vectors)
	if n == 0 {
		return KMeansResult{Labels: Labels{}, Converged: true}
	}

	k = max(k, 1)
	if k >= n {
		return identityPartition(vectors)
	}

	dim := len(vectors[0])
	centroids := make([]float32, k*dim)

	// Initialize centroids from k distinct data points
	perm := opts.rand.Perm(n)
	for j := range k {
		copy(centroids[j*dim:(j+1)*dim], vectors[perm[j]])
	}

	assignments := make([]int, n)
	for i := range assignments {
		assignments[i] = -1
	}
	counts := make([]int, k)
	sums := make([]float32, k*dim)

	iter := 0
	converged := false

	for iter < opts.maxIterations {
		iter++
		changed := false

		// Assignment step
		for i, vec := range vectors {
			best := nearestCentroid(vec, centroids, dim, k)
			if assignments[i] != best {
				assignments[i] = best
				changed = true
			}
		}

		if !changed {
			converged = true
			break
		}

		// Update step
		clear(sums)
		clear(counts)

		for i, vec := range vectors {
			c := assignments[i]
			vecmath.AddInPlace(sums[c*dim:(c+1)*dim], vec)
			counts[c]++
		}

		for j := range k {
			center := centroids[j*dim : (j+1)*dim]
			if counts[j] > 0 {
				copy(center, sums[j*dim:(j+1)*dim])
				vecmath.ScaleInPlace(center, 1/float32(counts[j]))
			} else {
				// Reseed empty cluster with a random point
				copy(center, vectors[opts.rand.IntN(n)])
			}
		}
	}

	res := KMeansResult{
		Labels:     Labels(assignments),
		Centroids:  make([][]float32, k),
		Iterations: iter,
		Converged:  converged,
	}
	for j := range k {
		res.Centroids[j] = centroids[j*dim : (j+1)*dim : (j+1)*dim]
	}
	for i, vec := range vectors {
		res.Inertia += vecmath.SquaredEuclidean(vec, res.Centroids[assignments[i]])
	}

	opts.logger.LogAttrs(context.Background(), slog.LevelDebug, "kmeans finished",
		slog.Int("count", n),
		slog.Int("k", k),
		slog.Int("iterations", iter),
		slog.Bool("converged", converged),
		slog.Float64("inertia", res.Inertia),
	)

	return res
}

// AssignPartition returns the index of the centroid closest to vec.
// Returns -1 if centroids is empty.
func AssignPartition(vec []float32, centroids [][]float32) int {
	best := -1
	minDist := math.Inf(1)

	for j, center := range centroids {
		d := vecmath.EuclideanDistance(vec, center)
		if d < minDist {
			minDist = d
			best = j
		}
	}

	return best
}

func nearestCentroid(vec, centroids []float32, dim, k int) int {
	best := 0
	minDist := math.Inf(1)

	for j := range k {
		d := vecmath.EuclideanDistance(vec, centroids[j*dim:(j+1)*dim])
		if d < minDist {
			minDist = d
			best = j
		}
	}

	return best
}

func identityPartition(vectors [][]float32) KMeansResult {
	res := KMeansResult{
		Labels:    make(Labels, len(vectors)),
		Centroids: make([][]float32, len(vectors)),
		Converged: true,
	}
	for i, vec := range vectors {
		res.Labels[i] = i
		res.Centroids[i] = append([]float32(nil), vec...)
	}
	return res
}
