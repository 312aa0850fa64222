// Package kernel builds the pairwise cosine similarity (kernel) matrix of a
// vector collection.
//
// Building the matrix costs O(n^2 d) and dominates the cost of the quality
// and layout packages that consume it. Build it once per collection snapshot
// and reuse the resulting *Matrix rather than recomputing pairwise
// similarities ad hoc.
//
//	m, err := kernel.Build(vectors)
//	sim := m.At(i, j)
package kernel
