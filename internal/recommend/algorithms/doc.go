// Merchantlens - Predictive Commerce Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/merchantlens

// Package algorithms implements the product recommendation building blocks
// combined by the recommend orchestrator.
//
// Every algorithm works on plain in-memory records supplied by the caller
// for one request. Nothing is trained or persisted between calls.
//
// # Algorithm Categories
//
// Collaborative Filtering:
//   - CollaborativeFilter: item-item Jaccard similarity over shared users
//
// Content-Based Filtering:
//   - ContentFilter: similarity over category, price and rating
//
// Baselines:
//   - Popularity: weighted purchase and view counts
//
// Basket Patterns:
//   - CoOccurrence: products bought in the same order as a target
//
// # Usage Example
//
//	cf := algorithms.NewCollaborativeFilter(algorithms.DefaultCollaborativeConfig(), interactions)
//	recs := cf.RecommendForUser([]string{"sku-1", "sku-7"}, 10)
//
//	content := algorithms.NewContentFilter(algorithms.DefaultContentConfig())
//	similar := content.RecommendSimilar(&target, catalog, 10)
//
// # Ordering
//
// Every ranked list is sorted by score descending with the product id
// ascending as tie-break, so equal inputs always yield equal output.
// A non-positive limit yields an empty list.
//
// # Thread Safety
//
// Filters are immutable after construction. A CollaborativeFilter builds its
// inverted indexes in the constructor and only reads them afterwards, so
// concurrent queries need no locking.
//
// # Utility Functions
//
//   - SortRecommendations: deterministic score ordering
//   - jaccardSimilarity: set-based similarity for user sets
//   - Clamp01, NonNegative: output bounds for scores and confidences
package algorithms
