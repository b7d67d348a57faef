// Merchantlens - Predictive Commerce Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/merchantlens

package algorithms

import (
	"math"
	"sort"

	"github.com/tomtom215/merchantlens/internal/models"
)

// ScoredProduct is a product id with an unnormalized score.
type ScoredProduct struct {
	ProductID string  `json:"product_id"`
	Score     float64 `json:"score"`
}

type productSet map[string]struct{}

func newProductSet(ids []string) productSet {
	s := make(productSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s productSet) has(id string) bool {
	_, ok := s[id]
	return ok
}

// SortRecommendations sorts by score descending, product id ascending.
func SortRecommendations(recs []models.Recommendation) {
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].Score != recs[j].Score {
			return recs[i].Score > recs[j].Score
		}
		return recs[i].ProductID < recs[j].ProductID
	})
}

func sortScored(items []ScoredProduct) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Score != items[j].Score {
			return items[i].Score > items[j].Score
		}
		return items[i].ProductID < items[j].ProductID
	})
}

// truncate returns at most limit recommendations; a non-positive limit yields none.
func truncate(recs []models.Recommendation, limit int) []models.Recommendation {
	if limit <= 0 {
		return []models.Recommendation{}
	}
	if len(recs) > limit {
		return recs[:limit]
	}
	return recs
}

// jaccardSimilarity computes |A ∩ B| / |A ∪ B| for two user sets.
func jaccardSimilarity(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	if len(a) > len(b) {
		a, b = b, a
	}

	intersection := 0
	for id := range a {
		if _, ok := b[id]; ok {
			intersection++
		}
	}

	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}

// Clamp01 bounds v to [0, 1]; NaN becomes 0.
func Clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}

// NonNegative floors v at 0; NaN becomes 0.
func NonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}
