// Package vecspace provides vector-space analysis for embedding collections.
//
// Given a collection of fixed-dimension embeddings, vecspace computes:
//
//   - pairwise cosine similarity (package kernel)
//   - cluster assignments via k-means or DBSCAN (package cluster)
//   - clustering quality indices: silhouette, Davies-Bouldin and
//     Calinski-Harabasz (package quality)
//   - a Self-Organizing Map with U-Matrix for 2-D visualization (package som)
//   - heatmap ordering, similarity statistics and separability (package layout)
//
// The component packages are pure, synchronous functions over in-memory
// slices. They assume valid input: all vectors in one call share a length.
// The Analyzer in this package is the validating front door. It checks
// dimensions and arguments once, injects a reproducible random source when
// configured with WithSeed, and reports every operation to a Logger and a
// MetricsCollector.
//
// # Quick Start
//
//	ctx := context.Background()
//	a := vecspace.New(vecspace.WithSeed(42))
//
//	m, _ := a.Similarity(ctx, embeddings)
//	km, _ := a.KMeans(ctx, embeddings, 8)
//	q, _ := a.Evaluate(ctx, embeddings, km.Labels)
//	fmt.Println(q.Silhouette, q.DaviesBouldin, q.CalinskiHarabasz)
//
//	view, _ := a.Layout(ctx, m)   // greedy order + stats for a heatmap
//
// Density clustering with noise:
//
//	db, _ := a.DBSCAN(ctx, embeddings, 0.3, 4)
//	for i, label := range db.Labels {
//	    if label == cluster.Noise { ... }
//	}
//
// Self-Organizing Map:
//
//	grid, _ := a.NewSOM(10, 10, dim)
//	_ = a.TrainSOM(ctx, grid, embeddings, 5000, 0.5)
//	terrain := grid.UMatrix()
//	cell := grid.FindBMU(embeddings[0])
//
// # Cost
//
// Kernel matrices, DBSCAN and the silhouette index are O(n^2) in the number
// of vectors. Build the kernel matrix once per collection and reuse it.
package vecspace
