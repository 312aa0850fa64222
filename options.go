package vecspace

import (
	"log/slog"

	"github.com/hupe1980/vecspace/cluster"
)

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	seed             uint64
	seeded           bool
	workers          int
	maxIterations    int
}

// Option configures an Analyzer.
type Option func(*options)

// WithSeed makes every randomized operation of the Analyzer reproducible.
// Without a seed, k-means seeding and SOM initialization draw from a
// nondeterministic source.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithWorkers sets the number of goroutines used to build kernel matrices.
// Values <= 1 keep the build sequential.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithMaxIterations bounds the number of k-means passes
// (default cluster.DefaultMaxIterations).
func WithMaxIterations(n int) Option {
	return func(o *options) {
		o.maxIterations = n
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &vecspace.BasicMetricsCollector{}
//	a := vecspace.New(vecspace.WithMetricsCollector(metrics))
//	// ... use a ...
//	stats := metrics.GetStats()
//	fmt.Printf("Kernels: %d, Avg latency: %dns\n", stats.KernelCount, stats.KernelAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := vecspace.NewJSONLogger(slog.LevelInfo)
//	a := vecspace.New(vecspace.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		workers:          1,
		maxIterations:    cluster.DefaultMaxIterations,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
