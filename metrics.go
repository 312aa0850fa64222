package vecspace

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    clusterHistogram *prometheus.HistogramVec
//	}
//
//	func (p *PrometheusCollector) RecordCluster(algorithm string, count, clusters int, duration time.Duration, err error) {
//	    p.clusterHistogram.WithLabelValues(algorithm).Observe(duration.Seconds())
//	}
type MetricsCollector interface {
	// RecordKernel is called after each kernel matrix build.
	// count is the number of vectors, duration the time taken.
	RecordKernel(count int, duration time.Duration, err error)

	// RecordCluster is called after each clustering run.
	// algorithm is "kmeans" or "dbscan"; clusters is the number found.
	RecordCluster(algorithm string, count, clusters int, duration time.Duration, err error)

	// RecordEvaluate is called after each quality evaluation.
	RecordEvaluate(count int, duration time.Duration, err error)

	// RecordTrain is called after each SOM training run.
	RecordTrain(iterations int, duration time.Duration, err error)

	// RecordLayout is called after each layout computation.
	// count is the size of the kernel matrix.
	RecordLayout(count int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordKernel(int, time.Duration, error)               {}
func (NoopMetricsCollector) RecordCluster(string, int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordEvaluate(int, time.Duration, error)             {}
func (NoopMetricsCollector) RecordTrain(int, time.Duration, error)                {}
func (NoopMetricsCollector) RecordLayout(int, time.Duration, error)               {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	KernelCount        atomic.Int64
	KernelErrors       atomic.Int64
	KernelVectors      atomic.Int64
	KernelTotalNanos   atomic.Int64
	KMeansCount        atomic.Int64
	DBSCANCount        atomic.Int64
	ClusterErrors      atomic.Int64
	ClusterTotal       atomic.Int64
	ClusterNanos       atomic.Int64
	EvaluateCount      atomic.Int64
	EvaluateErrors     atomic.Int64
	EvaluateVectors    atomic.Int64
	EvaluateTotalNanos atomic.Int64
	TrainCount         atomic.Int64
	TrainIterations    atomic.Int64
	TrainErrors        atomic.Int64
	LayoutCount        atomic.Int64
	LayoutErrors       atomic.Int64
	LayoutTotalNanos   atomic.Int64
}

// RecordKernel implements MetricsCollector.
func (b *BasicMetricsCollector) RecordKernel(count int, duration time.Duration, err error) {
	b.KernelCount.Add(1)
	b.KernelTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.KernelErrors.Add(1)
		return
	}
	b.KernelVectors.Add(int64(count))
}

// RecordCluster implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCluster(algorithm string, count, clusters int, duration time.Duration, err error) {
	switch algorithm {
	case AlgorithmKMeans:
		b.KMeansCount.Add(1)
	case AlgorithmDBSCAN:
		b.DBSCANCount.Add(1)
	}
	b.ClusterNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ClusterErrors.Add(1)
		return
	}
	b.ClusterTotal.Add(int64(clusters))
}

// RecordEvaluate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEvaluate(count int, duration time.Duration, err error) {
	b.EvaluateCount.Add(1)
	b.EvaluateTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.EvaluateErrors.Add(1)
		return
	}
	b.EvaluateVectors.Add(int64(count))
}

// RecordTrain implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTrain(iterations int, duration time.Duration, err error) {
	b.TrainCount.Add(1)
	if err != nil {
		b.TrainErrors.Add(1)
		return
	}
	b.TrainIterations.Add(int64(iterations))
}

// RecordLayout implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLayout(count int, duration time.Duration, err error) {
	b.LayoutCount.Add(1)
	b.LayoutTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.LayoutErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		KernelCount:      b.KernelCount.Load(),
		KernelErrors:     b.KernelErrors.Load(),
		KernelVectors:    b.KernelVectors.Load(),
		KernelAvgNanos:   avg(b.KernelTotalNanos.Load(), b.KernelCount.Load()),
		KMeansCount:      b.KMeansCount.Load(),
		DBSCANCount:      b.DBSCANCount.Load(),
		ClusterErrors:    b.ClusterErrors.Load(),
		ClustersFound:    b.ClusterTotal.Load(),
		ClusterAvgNanos:  avg(b.ClusterNanos.Load(), b.KMeansCount.Load()+b.DBSCANCount.Load()),
		EvaluateCount:    b.EvaluateCount.Load(),
		EvaluateErrors:   b.EvaluateErrors.Load(),
		EvaluateVectors:  b.EvaluateVectors.Load(),
		EvaluateAvgNanos: avg(b.EvaluateTotalNanos.Load(), b.EvaluateCount.Load()),
		TrainCount:       b.TrainCount.Load(),
		TrainIterations:  b.TrainIterations.Load(),
		TrainErrors:      b.TrainErrors.Load(),
		LayoutCount:      b.LayoutCount.Load(),
		LayoutErrors:     b.LayoutErrors.Load(),
		LayoutAvgNanos:   avg(b.LayoutTotalNanos.Load(), b.LayoutCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	KernelCount      int64
	KernelErrors     int64
	KernelVectors    int64
	KernelAvgNanos   int64
	KMeansCount      int64
	DBSCANCount      int64
	ClusterErrors    int64
	ClustersFound    int64
	ClusterAvgNanos  int64
	EvaluateCount    int64
	EvaluateErrors   int64
	EvaluateVectors  int64
	EvaluateAvgNanos int64
	TrainCount       int64
	TrainIterations  int64
	TrainErrors      int64
	LayoutCount      int64
	LayoutErrors     int64
	LayoutAvgNanos   int64
}
