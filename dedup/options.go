package dedup

import (
	"log/slog"

	"github.com/gogpu/ggmath"
)

// Default configuration constants.
const (
	// DefaultWindowCapacity is the default number of points a Window keeps.
	DefaultWindowCapacity = 1024

	// shardCount is the number of Table shards. Must be a power of 2.
	shardCount = 16

	// shardMask selects a shard from a key hash.
	shardMask = shardCount - 1
)

// Option configures a Table or Window.
type Option func(*options)

// options holds optional configuration for Table and Window.
type options struct {
	precision    ggmath.Precision
	hasPrecision bool
	capacity     int
	logger       *slog.Logger
}

// defaultOptions returns the default options.
func defaultOptions() options {
	return options{
		capacity: DefaultWindowCapacity,
	}
}

// WithPrecision rounds coordinates with p before comparing them.
// Without it, points must be canonically equal to be merged.
func WithPrecision(p ggmath.Precision) Option {
	return func(o *options) {
		o.precision = p
		o.hasPrecision = true
	}
}

// WithCapacity sets the number of points a Window keeps.
// Zero or negative selects DefaultWindowCapacity. Tables ignore it.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// WithLogger sets the logger, overriding ggmath.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// key returns the comparison key of (x, y) under these options.
func (o *options) key(x, y float32) Key {
	if o.hasPrecision {
		return QuantizedKey(x, y, o.precision)
	}
	return PointKey(x, y)
}

// log returns the configured logger or the shared one.
func (o *options) log() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return ggmath.Logger()
}
