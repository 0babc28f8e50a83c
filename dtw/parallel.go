// SPDX-License-Identifier: MIT

package dtw

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// maxParallelWorkers caps goroutines per diagonal regardless of WithWorkers.
const maxParallelWorkers = 64

// forEachChunk runs fn over [0, n) split into contiguous chunks.
//
// All cells of one anti-diagonal are independent given the two previous
// diagonals, so chunks may run concurrently. The return of forEachChunk is
// the barrier: the caller only moves to diagonal k+1 after it returns.
// Diagonals shorter than threshold (or workers == 1) run inline.
func forEachChunk(ctx context.Context, n, workers, threshold int, fn func(lo, hi int) error) error {
	if workers <= 1 || n < threshold || n < 2 {
		return fn(0, n)
	}
	workers = min(workers, n, maxParallelWorkers)
	chunk := (n + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			return fn(lo, hi)
		})
	}

	return g.Wait()
}
