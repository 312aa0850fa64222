// Package vecmath provides the vector primitives every other vecspace package
// is built on: cosine similarity, Euclidean distance, normalization and
// elementwise accumulation helpers.
//
// Reductions (dot products, norms, distances) accumulate in float64, so
// integer-valued inputs give exact distances and cos(v, v) is exactly 1.
// In-place updates of float32 buffers (normalize, add, scale) run through the
// SIMD-accelerated vek32 routines (AVX2/FMA on x86-64, NEON on ARM64, pure Go
// elsewhere).
//
// # Usage
//
//	sim, err := vecmath.CosineSimilarity(a, b)
//	dist := vecmath.EuclideanDistance(a, b)
//	unit := vecmath.Normalize(v)
//
// Only CosineSimilarity checks dimensionality. The distance functions are
// called in the inner loops of the clusterers and the SOM and assume equal
// lengths (caller's responsibility).
package vecmath
