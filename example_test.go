package vecspace_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/vecspace"
)

var embeddings = [][]float32{
	{1, 0},
	{0.99, 0.01},
	{0, 1},
	{0.01, 0.99},
}

// Example_dbscan demonstrates density clustering with noise detection.
func Example_dbscan() {
	a := vecspace.New()

	res, err := a.DBSCAN(context.Background(), embeddings, 0.1, 2)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(res.Labels, res.NumClusters, res.NumNoise)
	// Output: [0 0 1 1] 2 0
}

// Example_similarity demonstrates building a kernel matrix.
func Example_similarity() {
	a := vecspace.New()

	m, err := a.Similarity(context.Background(), embeddings)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%d x %d, diagonal %.1f, (0,2) %.2f\n", m.Size(), m.Size(), m.At(1, 1), m.At(0, 2))
	// Output: 4 x 4, diagonal 1.0, (0,2) 0.00
}

// Example_analyze demonstrates the full pipeline.
func Example_analyze() {
	a := vecspace.New(vecspace.WithSeed(42))

	report, err := a.Analyze(context.Background(), embeddings, 2)
	if err != nil {
		log.Fatal(err)
	}

	sameGroup := report.Clusters.Labels[0] == report.Clusters.Labels[1] &&
		report.Clusters.Labels[2] == report.Clusters.Labels[3] &&
		report.Clusters.Labels[0] != report.Clusters.Labels[2]

	fmt.Println("grouped:", sameGroup)
	fmt.Println("order:", report.Layout.Order)
	fmt.Println("silhouette > 0.9:", report.Quality.Silhouette > 0.9)
	// Output:
	// grouped: true
	// order: [0 1 3 2]
	// silhouette > 0.9: true
}
