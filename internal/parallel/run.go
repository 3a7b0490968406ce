package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Workers normalizes a worker count: 0 or negative selects GOMAXPROCS,
// and the result never exceeds the number of chunks.
func Workers(workers, chunks int) int {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return max(min(workers, chunks), 1)
}

// Run calls fn once per chunk on at most workers goroutines and waits for
// all calls to finish.
//
// The first error returned by fn cancels the context passed to the
// remaining calls, and Run returns that error. If ctx is canceled before a
// chunk starts, the chunk is skipped and Run returns ctx.Err().
//
// A single chunk, or a single worker, runs on the calling goroutine.
func Run(ctx context.Context, chunks []Chunk, workers int, fn func(ctx context.Context, c Chunk) error) error {
	if len(chunks) == 0 {
		return ctx.Err()
	}

	workers = Workers(workers, len(chunks))
	if workers == 1 {
		for _, c := range chunks {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(ctx, c); err != nil {
				return err
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, c := range chunks {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(gctx, c)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
