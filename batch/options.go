package batch

import "log/slog"

// Option configures a batch operation.
// Use functional options to customize how the work is split.
//
// Example:
//
//	// Default: GOMAXPROCS workers, 4096-element chunks
//	err := batch.Round(ctx, dst, src, p)
//
//	// Two workers, small chunks
//	err := batch.Round(ctx, dst, src, p, batch.WithWorkers(2), batch.WithChunkSize(256))
type Option func(*options)

// options holds the configuration for a batch operation.
type options struct {
	workers   int
	chunkSize int
	logger    *slog.Logger
}

// defaultOptions returns the default batch options.
func defaultOptions() options {
	return options{
		workers:   0,   // GOMAXPROCS
		chunkSize: 0,   // parallel.DefaultChunkSize
		logger:    nil, // ggmath.Logger()
	}
}

// WithWorkers sets the maximum number of goroutines.
// Zero or negative selects GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithChunkSize sets the number of elements each goroutine processes at a
// time. Zero or negative selects parallel.DefaultChunkSize.
func WithChunkSize(n int) Option {
	return func(o *options) {
		o.chunkSize = n
	}
}

// WithLogger sets the logger for this operation, overriding
// ggmath.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
