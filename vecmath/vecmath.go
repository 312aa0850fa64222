package vecmath

import (
	"math"
	"slices"

	"github.com/viterin/vek/vek32"
)

// Dot calculates the dot product of two vectors, accumulating in float64.
// Assumes vectors are the same length (caller's responsibility).
func Dot(a, b []float32) float64 {
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}

// Norm calculates the Euclidean (L2) norm of v.
func Norm(v []float32) float64 {
	return math.Sqrt(Dot(v, v))
}

// CosineSimilarity calculates the cosine similarity between two vectors.
//
// The result lies in [-1, 1] and is exactly 1 for a nonzero vector compared
// with itself. A zero-norm operand yields 0 rather than an error so callers
// never have to special-case empty embeddings.
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, &ErrDimensionMismatch{Expected: len(a), Actual: len(b)}
	}

	aa := Dot(a, a)
	bb := Dot(b, b)

	// Avoid division by zero
	if aa == 0 || bb == 0 {
		return 0, nil
	}

	// sqrt(x*x) == x in IEEE arithmetic, so cos(v, v) is exactly 1.
	sim := Dot(a, b) / math.Sqrt(aa*bb)

	return max(-1, min(1, sim)), nil
}

// EuclideanDistance calculates the L2 distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func EuclideanDistance(a, b []float32) float64 {
	return math.Sqrt(SquaredEuclidean(a, b))
}

// SquaredEuclidean calculates the squared L2 distance between two vectors,
// accumulating in float64. Assumes vectors are the same length (caller's responsibility).
func SquaredEuclidean(a, b []float32) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return sum
}

// NormalizeInPlace L2-normalizes v in place.
// Returns false if v has zero L2 norm, in which case v is left untouched.
func NormalizeInPlace(v []float32) bool {
	norm := Norm(v)
	if norm == 0 {
		return false
	}
	vek32.MulNumber_Inplace(v, float32(1/norm))
	return true
}

// Normalize returns a unit-length copy of v.
// A zero-norm input is returned unchanged.
func Normalize(v []float32) []float32 {
	dst := slices.Clone(v)
	if !NormalizeInPlace(dst) {
		return v
	}
	return dst
}

// AddInPlace adds v to dst elementwise.
func AddInPlace(dst, v []float32) {
	if len(dst) == 0 {
		return
	}
	vek32.Add_Inplace(dst, v)
}

// ScaleInPlace multiplies every element of v by s.
func ScaleInPlace(v []float32, s float32) {
	if len(v) == 0 {
		return
	}
	vek32.MulNumber_Inplace(v, s)
}

// Sum returns the elementwise sum of vectors in a single freshly allocated
// buffer. Returns nil for an empty collection.
func Sum(vectors [][]float32) []float32 {
	if len(vectors) == 0 {
		return nil
	}

	sum := make([]float32, len(vectors[0]))
	for _, v := range vectors {
		AddInPlace(sum, v)
	}

	return sum
}

// Mean returns the elementwise mean (centroid) of vectors.
// Returns nil for an empty collection.
func Mean(vectors [][]float32) []float32 {
	sum := Sum(vectors)
	if sum == nil {
		return nil
	}
	ScaleInPlace(sum, 1/float32(len(vectors)))
	return sum
}
