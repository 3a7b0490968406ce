// Package batch applies the ggmath primitives to whole float32 slices,
// splitting the work across goroutines.
//
// The results are element-for-element identical to calling the scalar
// function in a loop; only the scheduling differs. Each goroutine writes a
// disjoint chunk of the destination.
package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/ggmath"
	"github.com/gogpu/ggmath/internal/parallel"
)

// ErrLengthMismatch is returned when the destination and source slices
// have different lengths.
var ErrLengthMismatch = errors.New("batch: destination and source lengths differ")

// CanonBits stores ggmath.CanonBits(src[i]) into dst[i] for every i.
//
// It returns ErrLengthMismatch if len(dst) != len(src), or the context's
// error if ctx is canceled before all chunks are processed. On error the
// contents of dst are unspecified.
func CanonBits(ctx context.Context, dst []uint32, src []float32, opts ...Option) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: dst=%d, src=%d", ErrLengthMismatch, len(dst), len(src))
	}

	return run(ctx, "canon", len(src), opts, func(c parallel.Chunk) {
		for i := c.Start; i < c.End; i++ {
			dst[i] = ggmath.CanonBits(src[i])
		}
	})
}

// Round stores p.Round(src[i]) into dst[i] for every i.
// dst and src may be the same slice.
//
// It returns ErrLengthMismatch if len(dst) != len(src), or the context's
// error if ctx is canceled before all chunks are processed. On error the
// contents of dst are unspecified.
func Round(ctx context.Context, dst, src []float32, p ggmath.Precision, opts ...Option) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: dst=%d, src=%d", ErrLengthMismatch, len(dst), len(src))
	}

	return run(ctx, "round", len(src), opts, func(c parallel.Chunk) {
		for i := c.Start; i < c.End; i++ {
			dst[i] = p.Round(src[i])
		}
	})
}

// run plans n elements into chunks and applies fn to each.
func run(ctx context.Context, op string, n int, opts []Option, fn func(c parallel.Chunk)) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger
	if log == nil {
		log = ggmath.Logger()
	}

	chunks := parallel.Plan(n, o.chunkSize)
	workers := parallel.Workers(o.workers, len(chunks))
	log.Debug("batch: plan",
		slog.String("op", op),
		slog.Int("elements", n),
		slog.Int("chunks", len(chunks)),
		slog.Int("workers", workers))

	err := parallel.Run(ctx, chunks, workers, func(_ context.Context, c parallel.Chunk) error {
		fn(c)
		return nil
	})
	if err != nil {
		log.Debug("batch: aborted", slog.String("op", op), slog.Any("error", err))
		return fmt.Errorf("batch: %s: %w", op, err)
	}
	return nil
}
