// Package quality computes internal-validation indices for a clustering.
//
// Given a vector collection and a label assignment from either clusterer it
// reports:
//
//   - Silhouette (range [-1, 1], higher is better)
//   - Davies-Bouldin (range [0, inf), lower is better)
//   - Calinski-Harabasz (range [0, inf), higher is better)
//
// Noise-labeled points (cluster.Noise) are excluded from every index.
// Degenerate partitions (fewer than two clusters, zero dispersion) yield 0
// rather than an error. Centroid and dispersion math runs in float64.
package quality
