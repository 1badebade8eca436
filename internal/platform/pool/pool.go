// Package pool runs bounded fan-out work with results kept in input order
package pool

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Workers clamps n to at least 1. n <= 0 means GOMAXPROCS
func Workers(n int) int {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	return max(n, 1)
}

// Map applies fn to every item using at most workers goroutines.
// out[i] always belongs to in[i]. The first error cancels ctx for the remaining items and is returned
func Map[T, R any](ctx context.Context, workers int, in []T, fn func(context.Context, T) (R, error)) ([]R, error) {
	out := make([]R, len(in))
	if len(in) == 0 {
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(Workers(workers), len(in)))
	for i := range in {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := fn(gctx, in[i])
			if err != nil {
				return err
			}
			out[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// parent cancelled before any goroutine observed it
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
