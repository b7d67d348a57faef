// Merchantlens - Predictive Commerce Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/merchantlens

// Package recommend implements the hybrid product recommendation engine.
//
// # Architecture
//
// The engine combines the algorithms of the algorithms subpackage:
//
//   - Collaborative Filtering: item-item Jaccard similarity over the interaction log
//   - Content-Based Filtering: category, price and rating similarity
//   - Popularity: fallback when the personalized list is short
//   - Co-occurrence: frequently bought together
//
// # Hybrid Merge
//
// Collaborative scores are boosted by Hybrid.CollaborativeBoost. A product
// found by both collaborative and content-based filtering gets the average
// of the two scores and confidences and is tagged hybrid. The merged list is
// sorted by score with the product id as tie-break and cut to the limit;
// popular products fill any remaining slots.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//	recs := engine.Recommend(recommend.Request{
//	    UserID:       "cust-42",
//	    Limit:        10,
//	    Interactions: interactions,
//	    Catalog:      products,
//	})
//
// # Thread Safety
//
// The engine holds only immutable configuration. Every call builds its own
// indexes from the request, so concurrent calls need no locking.
package recommend
