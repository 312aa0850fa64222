// Package cluster implements hard clustering of vector collections.
//
// Two strategies are provided:
//
//   - KMeans: centroid-based partitioning into a fixed number of clusters
//     (Lloyd's algorithm with distinct random seeding).
//   - DBSCAN: density-based clustering in Euclidean space with noise
//     detection and no fixed cluster count.
//
// Both return Labels, one entry per input vector. Cluster labels are
// zero-based; Noise (-1) is only ever produced by DBSCAN.
//
// Neither algorithm validates its input: all vectors must share a length.
// Degenerate inputs (empty collections, k >= n) are absorbed by documented
// fallbacks instead of errors.
package cluster
