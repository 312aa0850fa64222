package vecmath

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float32
		expected float64
	}{
		{"Identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 1},
		{"Scaled", []float32{1, 2, 3}, []float32{2, 4, 6}, 1},
		{"Orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"Opposite", []float32{1, 1}, []float32{-1, -1}, -1},
		{"ZeroNorm", []float32{0, 0, 0}, []float32{1, 2, 3}, 0},
		{"BothZero", []float32{0, 0}, []float32{0, 0}, 0},
		{"Empty", []float32{}, []float32{}, 0},
		{"Simple", []float32{1, 2, 3}, []float32{4, 5, 6}, 32 / math.Sqrt(14*77)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CosineSimilarity(tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-12)
			assert.LessOrEqual(t, got, 1.0)
			assert.GreaterOrEqual(t, got, -1.0)
		})
	}
}

func TestCosineSimilarity_DimensionMismatch(t *testing.T) {
	_, err := CosineSimilarity([]float32{1, 2, 3}, []float32{1, 2})
	require.Error(t, err)

	var dm *ErrDimensionMismatch
	require.ErrorAs(t, err, &dm)
	assert.Equal(t, 3, dm.Expected)
	assert.Equal(t, 2, dm.Actual)
	assert.Equal(t, "dimension mismatch: expected 3, got 2", err.Error())
}

func TestCosineSimilarity_SelfIsOne(t *testing.T) {
	vectors := [][]float32{
		{0.1, 0.2, 0.3},
		{-5, 3, 1e-3},
		{1e-4, 0, 0},
		make([]float32, 384),
	}
	for i := range vectors[3] {
		vectors[3][i] = float32(i%7) - 3
	}

	for _, v := range vectors {
		got, err := CosineSimilarity(v, v)
		require.NoError(t, err)
		assert.Equal(t, 1.0, got)

		// An identical copy is not the same slice but must still score 1.
		got, err = CosineSimilarity(v, slices.Clone(v))
		require.NoError(t, err)
		assert.Equal(t, 1.0, got)
	}
}

func TestEuclideanDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float32
		expected float64
	}{
		{"Simple", []float32{1, 2, 3}, []float32{4, 5, 6}, math.Sqrt(27)},
		{"Identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 0},
		{"PythagoreanTriple", []float32{0, 0}, []float32{3, 4}, 5},
		{"Empty", []float32{}, []float32{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, EuclideanDistance(tt.a, tt.b), 1e-12)
			assert.InDelta(t, tt.expected*tt.expected, SquaredEuclidean(tt.a, tt.b), 1e-12)
		})
	}
}

func TestEuclideanDistance_ExactOnIntegers(t *testing.T) {
	tests := []struct {
		a, b     float32
		expected float64
	}{
		{0, 1, 1},
		{0, 2, 2},
		{1, 5, 4},
		{-3, 7, 10},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, EuclideanDistance([]float32{tt.a}, []float32{tt.b}))
	}
}

func TestDotAndNorm(t *testing.T) {
	assert.Equal(t, 32.0, Dot([]float32{1, 2, 3}, []float32{4, 5, 6}))
	assert.Equal(t, 5.0, Norm([]float32{3, 4}))
	assert.Zero(t, Norm(nil))
}

func TestNormalize(t *testing.T) {
	t.Run("Copy", func(t *testing.T) {
		v := []float32{3, 4}
		dst := Normalize(v)
		assert.InDelta(t, float32(0.6), dst[0], 1e-6)
		assert.InDelta(t, float32(0.8), dst[1], 1e-6)
		assert.InDelta(t, 1.0, Norm(dst), 1e-6)

		// Input untouched
		assert.Equal(t, []float32{3, 4}, v)
	})

	t.Run("ZeroNorm", func(t *testing.T) {
		v := []float32{0, 0, 0}
		dst := Normalize(v)
		assert.Equal(t, v, dst)
		assert.False(t, NormalizeInPlace(v))
	})

	t.Run("InPlace", func(t *testing.T) {
		v := []float32{0, 5}
		assert.True(t, NormalizeInPlace(v))
		assert.Equal(t, []float32{0, 1}, v)
	})
}

func TestAccumulation(t *testing.T) {
	vectors := [][]float32{
		{1, 2},
		{3, 4},
		{5, 6},
	}

	t.Run("Sum", func(t *testing.T) {
		assert.Equal(t, []float32{9, 12}, Sum(vectors))
		assert.Nil(t, Sum(nil))
	})

	t.Run("Mean", func(t *testing.T) {
		mean := Mean(vectors)
		assert.InDelta(t, float32(3), mean[0], 1e-6)
		assert.InDelta(t, float32(4), mean[1], 1e-6)
		assert.Nil(t, Mean(nil))
	})

	t.Run("InPlace", func(t *testing.T) {
		dst := []float32{1, 1}
		AddInPlace(dst, []float32{2, 3})
		assert.Equal(t, []float32{3, 4}, dst)

		ScaleInPlace(dst, 0.5)
		assert.Equal(t, []float32{1.5, 2}, dst)
	})

	// Source vectors must never be aliased by the accumulator.
	assert.Equal(t, []float32{1, 2}, vectors[0])
}

func TestCheckDimensions(t *testing.T) {
	dim, err := CheckDimensions(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, dim)

	dim, err = CheckDimensions([][]float32{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, 2, dim)

	_, err = CheckDimensions([][]float32{{1, 2}, {3, 4, 5}})
	var dm *ErrDimensionMismatch
	require.ErrorAs(t, err, &dm)
	assert.Equal(t, 2, dm.Expected)
	assert.Equal(t, 3, dm.Actual)
}
