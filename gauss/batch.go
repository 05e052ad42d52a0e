// SPDX-License-Identifier: MIT

package gauss

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// SolveAll solves independent systems concurrently and returns their Results
// in input order. At most WithConcurrency systems are in flight.
//
// The first invalid system cancels the rest; its error names the index.
// A cancelled ctx stops scheduling and its error is returned.
//
// Complexity: O(Σ nᵢ³) total work.
func SolveAll(ctx context.Context, systems []System, opts ...Option) ([]Result, error) {
	o := gatherOptions(opts...)
	results := make([]Result, len(systems))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for i := range systems {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s, err := NewSolver(systems[i].N, systems[i].Values, opts...)
			if err != nil {
				return gaussErrorf(opSolveAll, fmt.Errorf("system %d: %w", i, err))
			}
			results[i] = s.Solve()

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, gaussErrorf(opSolveAll, err)
	}

	return results, nil
}
