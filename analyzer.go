package vecspace

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/hupe1980/vecspace/cluster"
	"github.com/hupe1980/vecspace/kernel"
	"github.com/hupe1980/vecspace/layout"
	"github.com/hupe1980/vecspace/quality"
	"github.com/hupe1980/vecspace/som"
	"github.com/hupe1980/vecspace/vecmath"
)

// Algorithm names reported to loggers and metrics collectors.
const (
	AlgorithmKMeans = "kmeans"
	AlgorithmDBSCAN = "dbscan"
)

// Analyzer runs the vecspace components behind a validating, instrumented
// front door.
//
// Each method validates dimensional consistency and argument ranges once,
// then calls the component packages, which assume valid input. Methods are
// synchronous; the context is only checked before work starts and carried
// into log records.
//
// An Analyzer is safe for concurrent use. Every call gets its own working
// state and its own random source derived from the Analyzer's seed stream.
type Analyzer struct {
	opts options

	mu   sync.Mutex
	seed *rand.Rand // derives per-call sources
}

// New creates an Analyzer.
func New(optFns ...Option) *Analyzer {
	opts := applyOptions(optFns)

	var seed *rand.Rand
	if opts.seeded {
		seed = rand.New(rand.NewPCG(opts.seed, opts.seed)) // nolint gosec
	} else {
		seed = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) // nolint gosec
	}

	return &Analyzer{
		opts: opts,
		seed: seed,
	}
}

func (a *Analyzer) newRand() *rand.Rand {
	a.mu.Lock()
	defer a.mu.Unlock()
	return rand.New(rand.NewPCG(a.seed.Uint64(), a.seed.Uint64())) // nolint gosec
}

// Similarity builds the cosine kernel matrix of vectors.
func (a *Analyzer) Similarity(ctx context.Context, vectors [][]float32) (*kernel.Matrix, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	m, err := kernel.Build(vectors, kernel.WithWorkers(a.opts.workers))
	a.opts.metricsCollector.RecordKernel(len(vectors), time.Since(start), err)

	dim := 0
	if len(vectors) > 0 {
		dim = len(vectors[0])
	}
	a.opts.logger.LogKernel(ctx, len(vectors), dim, err)

	if err != nil {
		return nil, err
	}
	return m, nil
}

// KMeans partitions vectors into k clusters.
// Returns ErrInvalidK for k < 1 and ErrDimensionMismatch for ragged input.
func (a *Analyzer) KMeans(ctx context.Context, vectors [][]float32, k int) (cluster.KMeansResult, error) {
	if err := ctx.Err(); err != nil {
		return cluster.KMeansResult{}, err
	}

	start := time.Now()
	res, err := a.kmeans(vectors, k)
	a.opts.metricsCollector.RecordCluster(AlgorithmKMeans, len(vectors), len(res.Centroids), time.Since(start), err)
	a.opts.logger.WithK(k).LogCluster(ctx, AlgorithmKMeans, len(vectors), len(res.Centroids), 0, err)

	return res, err
}

func (a *Analyzer) kmeans(vectors [][]float32, k int) (cluster.KMeansResult, error) {
	if k < 1 {
		return cluster.KMeansResult{}, fmt.Errorf("%w: %d", ErrInvalidK, k)
	}
	if _, err := vecmath.CheckDimensions(vectors); err != nil {
		return cluster.KMeansResult{}, err
	}

	return cluster.KMeans(vectors, k,
		cluster.WithRand(a.newRand()),
		cluster.WithMaxIterations(a.opts.maxIterations),
		cluster.WithLogger(a.opts.logger.Logger),
	), nil
}

// DBSCAN clusters vectors by density.
// Returns ErrInvalidEpsilon, ErrInvalidMinPts or ErrDimensionMismatch for
// invalid input.
func (a *Analyzer) DBSCAN(ctx context.Context, vectors [][]float32, epsilon float64, minPts int) (cluster.DBSCANResult, error) {
	if err := ctx.Err(); err != nil {
		return cluster.DBSCANResult{}, err
	}

	start := time.Now()
	res, err := a.dbscan(vectors, epsilon, minPts)
	a.opts.metricsCollector.RecordCluster(AlgorithmDBSCAN, len(vectors), res.NumClusters, time.Since(start), err)
	a.opts.logger.LogCluster(ctx, AlgorithmDBSCAN, len(vectors), res.NumClusters, res.NumNoise, err)

	return res, err
}

func (a *Analyzer) dbscan(vectors [][]float32, epsilon float64, minPts int) (cluster.DBSCANResult, error) {
	if epsilon < 0 || math.IsNaN(epsilon) {
		return cluster.DBSCANResult{}, fmt.Errorf("%w: %v", ErrInvalidEpsilon, epsilon)
	}
	if minPts < 1 {
		return cluster.DBSCANResult{}, fmt.Errorf("%w: %d", ErrInvalidMinPts, minPts)
	}
	if _, err := vecmath.CheckDimensions(vectors); err != nil {
		return cluster.DBSCANResult{}, err
	}

	return cluster.DBSCAN(vectors, epsilon, minPts, cluster.WithLogger(a.opts.logger.Logger)), nil
}

// Evaluate computes the clustering quality indices of labels over vectors.
func (a *Analyzer) Evaluate(ctx context.Context, vectors [][]float32, labels []int) (quality.Metrics, error) {
	if err := ctx.Err(); err != nil {
		return quality.Metrics{}, err
	}

	start := time.Now()
	m, err := a.evaluate(vectors, labels)
	a.opts.metricsCollector.RecordEvaluate(len(vectors), time.Since(start), err)
	a.opts.logger.LogEvaluate(ctx, len(vectors), m, err)

	return m, err
}

func (a *Analyzer) evaluate(vectors [][]float32, labels []int) (quality.Metrics, error) {
	if _, err := vecmath.CheckDimensions(vectors); err != nil {
		return quality.Metrics{}, err
	}
	return quality.Evaluate(vectors, labels)
}

// LayoutSummary bundles the heatmap helpers for one kernel matrix.
type LayoutSummary struct {
	Order        []int
	Stats        layout.Statistics
	Separability float64
}

// Layout computes the greedy ordering, similarity statistics and
// separability index of m. Returns ErrNilInput for a nil matrix.
func (a *Analyzer) Layout(ctx context.Context, m *kernel.Matrix) (LayoutSummary, error) {
	if err := ctx.Err(); err != nil {
		return LayoutSummary{}, err
	}

	start := time.Now()
	summary, err := layoutSummary(m)

	count := 0
	if m != nil {
		count = m.Size()
	}
	a.opts.metricsCollector.RecordLayout(count, time.Since(start), err)
	a.opts.logger.LogLayout(ctx, count, summary.Separability, err)

	return summary, err
}

func layoutSummary(m *kernel.Matrix) (LayoutSummary, error) {
	if m == nil {
		return LayoutSummary{}, fmt.Errorf("%w: kernel matrix", ErrNilInput)
	}

	return LayoutSummary{
		Order:        layout.GreedyOrder(m),
		Stats:        layout.Stats(m),
		Separability: layout.Separability(m),
	}, nil
}

// NewSOM creates a width x height map of dim-dimensional prototypes that
// draws randomness from the Analyzer's seed stream.
func (a *Analyzer) NewSOM(width, height, dim int) (*som.Map, error) {
	return som.New(width, height, dim,
		som.WithRand(a.newRand()),
		som.WithLogger(a.opts.logger.Logger),
	)
}

// TrainSOM trains m on data. It returns ErrNilInput for a nil map,
// ErrDimensionMismatch when a vector does not match the map dimension and
// ErrInvalidIterations for a negative iteration count.
func (a *Analyzer) TrainSOM(ctx context.Context, m *som.Map, data [][]float32, iterations int, learningRate float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()
	err := trainSOM(m, data, iterations, learningRate)
	a.opts.metricsCollector.RecordTrain(iterations, time.Since(start), err)

	if m == nil {
		a.opts.logger.WithCount(len(data)).LogTrain(ctx, 0, 0, iterations, 0, err)
		return err
	}

	var qe float64
	if err == nil {
		qe = m.QuantizationError(data)
	}
	a.opts.logger.WithCount(len(data)).WithDimension(m.Dim()).LogTrain(ctx, m.Width(), m.Height(), iterations, qe, err)

	return err
}

func trainSOM(m *som.Map, data [][]float32, iterations int, learningRate float64) error {
	if m == nil {
		return fmt.Errorf("%w: som map", ErrNilInput)
	}
	if iterations < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidIterations, iterations)
	}
	for _, v := range data {
		if len(v) != m.Dim() {
			return &ErrDimensionMismatch{Expected: m.Dim(), Actual: len(v)}
		}
	}

	m.Train(data, iterations, learningRate)
	return nil
}

// Report is the result of Analyze.
type Report struct {
	Kernel   *kernel.Matrix
	Clusters cluster.KMeansResult
	Quality  quality.Metrics
	Layout   LayoutSummary
}

// Analyze runs the full pipeline on vectors: kernel matrix, k-means with k
// clusters, quality evaluation of the partition and layout helpers.
func (a *Analyzer) Analyze(ctx context.Context, vectors [][]float32, k int) (*Report, error) {
	m, err := a.Similarity(ctx, vectors)
	if err != nil {
		return nil, err
	}

	clusters, err := a.KMeans(ctx, vectors, k)
	if err != nil {
		return nil, err
	}

	metrics, err := a.Evaluate(ctx, vectors, clusters.Labels)
	if err != nil {
		return nil, err
	}

	summary, err := a.Layout(ctx, m)
	if err != nil {
		return nil, err
	}

	return &Report{
		Kernel:   m,
		Clusters: clusters,
		Quality:  metrics,
		Layout:   summary,
	}, nil
}
