// Merchantlens - Predictive Commerce Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/merchantlens

package analytics

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// runBatch applies fn to every item with at most workers calls in flight.
// results[i] always belongs to items[i]. Once ctx is done no further items
// are scheduled and the partial batch is discarded.
func runBatch[T, R any](ctx context.Context, workers int, items []T, fn func(*T) R) ([]R, error) {
	results := make([]R, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range items {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = fn(&items[i])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
