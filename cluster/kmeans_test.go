package cluster

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/hupe1980/vecspace/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKMeans(t *testing.T) {
	rng := testutil.NewRNG(42)
	// 2 clusters: (0,0) and (10,10)
	vecs, truth := rng.Blobs([][]float32{{0, 0}, {10, 10}}, 10, 0.5)

	res := KMeans(vecs, 2, WithRand(rng.Rand()), WithMaxIterations(100))
	require.Len(t, res.Labels, len(vecs))
	require.Len(t, res.Centroids, 2)
	assert.True(t, res.Converged)
	assert.Positive(t, res.Iterations)
	assert.True(t, testutil.SameGrouping(truth, res.Labels))

	for _, label := range res.Labels {
		assert.GreaterOrEqual(t, label, 0)
		assert.Less(t, label, 2)
	}

	// Verify assignments
	p1 := AssignPartition([]float32{0.5, 0.5}, res.Centroids)
	p2 := AssignPartition([]float32{10.5, 10.5}, res.Centroids)
	assert.NotEqual(t, p1, p2)
	assert.Equal(t, res.Labels[0], p1)
}

func TestKMeans_TwoGroups(t *testing.T) {
	vecs := [][]float32{{1, 0}, {0.99, 0.01}, {0, 1}, {0.01, 0.99}}

	// Every seed pair must end in the same grouping.
	for seed := range uint64(20) {
		res := KMeans(vecs, 2, WithRand(testutil.NewRNG(seed).Rand()))
		assert.True(t, testutil.SameGrouping([]int{0, 0, 1, 1}, res.Labels), "seed %d: %v", seed, res.Labels)
	}
}

func TestKMeans_Identity(t *testing.T) {
	vecs := [][]float32{{1, 2}, {3, 4}, {5, 6}}

	for _, k := range []int{3, 4, 100} {
		res := KMeans(vecs, k)
		assert.Equal(t, Labels{0, 1, 2}, res.Labels)
		assert.Equal(t, vecs, res.Centroids)
		assert.True(t, res.Converged)
		assert.Zero(t, res.Inertia)
	}

	// Centroids are copies.
	res := KMeans(vecs, 3)
	res.Centroids[0][0] = 99
	assert.Equal(t, float32(1), vecs[0][0])
}

func TestKMeans_Empty(t *testing.T) {
	res := KMeans(nil, 3)
	assert.Empty(t, res.Labels)
	assert.NotNil(t, res.Labels)
	assert.Nil(t, res.Centroids)
}

func TestKMeans_NonPositiveK(t *testing.T) {
	vecs := [][]float32{{0, 0}, {2, 2}, {4, 4}}
	res := KMeans(vecs, 0)
	assert.Equal(t, Labels{0, 0, 0}, res.Labels)
	assert.InDelta(t, float32(2), res.Centroids[0][0], 1e-6)
}

func TestKMeans_Duplicates(t *testing.T) {
	// Duplicate points force empty clusters; reseeding must keep labels in range.
	vecs := [][]float32{{1, 1}, {1, 1}, {1, 1}, {1, 1}, {5, 5}}
	res := KMeans(vecs, 3, WithRand(testutil.NewRNG(3).Rand()))

	require.Len(t, res.Labels, 5)
	for _, label := range res.Labels {
		assert.GreaterOrEqual(t, label, 0)
		assert.Less(t, label, 3)
	}
	assert.Equal(t, res.Labels[0], res.Labels[3])
	assert.NotEqual(t, res.Labels[0], res.Labels[4])
}

func TestKMeans_MaxIterations(t *testing.T) {
	rng := testutil.NewRNG(11)
	vecs := rng.UniformRangeVectors(200, 4)

	res := KMeans(vecs, 8, WithRand(rng.Rand()), WithMaxIterations(1))
	assert.Equal(t, 1, res.Iterations)
	assert.False(t, res.Converged)
}

func TestKMeans_Deterministic(t *testing.T) {
	rng := testutil.NewRNG(5)
	vecs := rng.UniformRangeVectors(100, 8)

	a := KMeans(vecs, 5, WithRand(rng.Rand()))
	b := KMeans(vecs, 5, WithRand(rng.Rand()))
	assert.Equal(t, a.Labels, b.Labels)
	assert.Equal(t, a.Inertia, b.Inertia)
}

func TestKMeans_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	KMeans([][]float32{{0}, {1}, {10}}, 2, WithLogger(logger), WithRand(testutil.NewRNG(1).Rand()))
	assert.Contains(t, buf.String(), "kmeans finished")
	assert.Contains(t, buf.String(), "k=2")
}

func TestAssignPartition_Empty(t *testing.T) {
	assert.Equal(t, -1, AssignPartition([]float32{1}, nil))
}
