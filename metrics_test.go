package vecspace

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBasicMetricsCollector(t *testing.T) {
	mc := &BasicMetricsCollector{}
	boom := errors.New("boom")

	mc.RecordKernel(10, 2*time.Millisecond, nil)
	mc.RecordKernel(20, 4*time.Millisecond, nil)
	mc.RecordKernel(5, 0, boom)
	mc.RecordCluster(AlgorithmKMeans, 10, 3, time.Millisecond, nil)
	mc.RecordCluster(AlgorithmDBSCAN, 10, 2, time.Millisecond, nil)
	mc.RecordCluster(AlgorithmDBSCAN, 10, 0, time.Millisecond, boom)
	mc.RecordEvaluate(10, time.Millisecond, nil)
	mc.RecordEvaluate(10, 3*time.Millisecond, boom)
	mc.RecordTrain(100, time.Millisecond, nil)
	mc.RecordLayout(10, 4*time.Millisecond, nil)
	mc.RecordLayout(0, 0, boom)

	stats := mc.GetStats()
	assert.Equal(t, int64(3), stats.KernelCount)
	assert.Equal(t, int64(1), stats.KernelErrors)
	assert.Equal(t, int64(30), stats.KernelVectors)
	assert.Equal(t, (2 * time.Millisecond).Nanoseconds(), stats.KernelAvgNanos)
	assert.Equal(t, int64(1), stats.KMeansCount)
	assert.Equal(t, int64(2), stats.DBSCANCount)
	assert.Equal(t, int64(1), stats.ClusterErrors)
	assert.Equal(t, int64(5), stats.ClustersFound)
	assert.Equal(t, time.Millisecond.Nanoseconds(), stats.ClusterAvgNanos)
	assert.Equal(t, int64(2), stats.EvaluateCount)
	assert.Equal(t, int64(1), stats.EvaluateErrors)
	assert.Equal(t, int64(10), stats.EvaluateVectors)
	assert.Equal(t, (2 * time.Millisecond).Nanoseconds(), stats.EvaluateAvgNanos)
	assert.Equal(t, int64(1), stats.TrainCount)
	assert.Equal(t, int64(100), stats.TrainIterations)
	assert.Equal(t, int64(2), stats.LayoutCount)
	assert.Equal(t, int64(1), stats.LayoutErrors)
	assert.Equal(t, (2 * time.Millisecond).Nanoseconds(), stats.LayoutAvgNanos)
}

func TestNoopMetricsCollector(t *testing.T) {
	var mc MetricsCollector = NoopMetricsCollector{}
	assert.NotPanics(t, func() {
		mc.RecordKernel(1, time.Second, nil)
		mc.RecordCluster(AlgorithmKMeans, 1, 1, time.Second, nil)
		mc.RecordEvaluate(1, time.Second, nil)
		mc.RecordTrain(1, time.Second, nil)
		mc.RecordLayout(1, time.Second, nil)
	})
}

func TestWithNilOptions(t *testing.T) {
	a := New(WithLogger(nil), WithMetricsCollector(nil), nil)
	assert.NotNil(t, a.opts.logger)
	assert.Equal(t, NoopMetricsCollector{}, a.opts.metricsCollector)
}
