// Package testutil provides testing utilities for vecspace.
//
// This package is intended for use in tests and benchmarks only.
// It provides a reproducible RNG and generators for the synthetic
// vector layouts the clustering and SOM tests rely on.
//
// # Random Vector Generation
//
//	rng := testutil.NewRNG(seed)
//	vecs := rng.UniformRangeVectors(100, 16) // uniform [-1, 1)
//	blobs, labels := rng.Blobs([][]float32{{0, 0}, {10, 10}}, 20, 0.1)
//
// # Injecting Randomness
//
// Components that take a *rand.Rand accept rng.Rand(), which is derived from
// the RNG seed so repeated test runs are deterministic.
package testutil
