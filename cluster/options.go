package cluster

import (
	"log/slog"
	"math/rand/v2"
)

// DefaultMaxIterations is the k-means iteration bound used when none is
// configured.
const DefaultMaxIterations = 20

type options struct {
	maxIterations int
	rand          *rand.Rand
	logger        *slog.Logger
}

func newOptions(optFns []Option) options {
	opts := options{
		maxIterations: DefaultMaxIterations,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.rand == nil {
		opts.rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) // nolint gosec
	}
	if opts.logger == nil {
		opts.logger = slog.New(slog.DiscardHandler)
	}

	return opts
}

// Option configures KMeans and DBSCAN.
type Option func(*options)

// WithMaxIterations bounds the number of k-means assignment passes.
// Values <= 0 are ignored.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxIterations = n
		}
	}
}

// WithRand sets the source of randomness for k-means seeding and empty
// cluster reseeding. Inject a seeded source for reproducible results.
//
// The source is used without locking; do not share it between concurrent
// calls.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rand = r
	}
}

// WithLogger sets the logger used for debug-level progress output.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
