package vecspace

import (
	"context"
	"log/slog"
	"os"

	"github.com/hupe1980/vecspace/quality"
)

// Logger wraps slog.Logger with vecspace-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithK adds a k (cluster count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogKernel logs a kernel matrix build.
func (l *Logger) LogKernel(ctx context.Context, count, dimension int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "kernel build failed",
			"count", count,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "kernel build completed",
			"count", count,
			"dimension", dimension,
		)
	}
}

// LogCluster logs a clustering run.
func (l *Logger) LogCluster(ctx context.Context, algorithm string, count, clusters, noise int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "clustering failed",
			"algorithm", algorithm,
			"count", count,
			"error", err,
		)
		return
	}
	if count > 0 && noise == count {
		l.WarnContext(ctx, "clustering labeled every point as noise",
			"algorithm", algorithm,
			"count", count,
		)
		return
	}
	l.InfoContext(ctx, "clustering completed",
		"algorithm", algorithm,
		"count", count,
		"clusters", clusters,
		"noise", noise,
	)
}

// LogEvaluate logs a quality evaluation.
func (l *Logger) LogEvaluate(ctx context.Context, count int, m quality.Metrics, err error) {
	if err != nil {
		l.ErrorContext(ctx, "evaluation failed",
			"count", count,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "evaluation completed",
			"count", count,
			"silhouette", m.Silhouette,
			"davies_bouldin", m.DaviesBouldin,
			"calinski_harabasz", m.CalinskiHarabasz,
		)
	}
}

// LogTrain logs a SOM training run.
func (l *Logger) LogTrain(ctx context.Context, width, height, iterations int, quantizationError float64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "som training failed",
			"width", width,
			"height", height,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "som training completed",
			"width", width,
			"height", height,
			"iterations", iterations,
			"quantization_error", quantizationError,
		)
	}
}

// LogLayout logs a layout computation.
func (l *Logger) LogLayout(ctx context.Context, count int, separability float64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "layout failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "layout completed",
			"count", count,
			"separability", separability,
		)
	}
}
