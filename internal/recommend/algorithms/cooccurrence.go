// Merchantlens - Predictive Commerce Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/merchantlens

package algorithms

import (
	"fmt"

	"github.com/tomtom215/merchantlens/internal/models"
)

// CoOccurrenceConfig contains configuration for order co-occurrence.
type CoOccurrenceConfig struct {
	// Confidence is assigned to every co-occurrence recommendation.
	// Default: 0.85.
	Confidence float64 `json:"confidence" koanf:"confidence"`
}

// DefaultCoOccurrenceConfig returns the production defaults.
func DefaultCoOccurrenceConfig() CoOccurrenceConfig {
	return CoOccurrenceConfig{Confidence: 0.85}
}

// CoOccurrence counts products bought in the same order as a target.
//
// For a target t the score of product p is:
//
//	score(p) = orders containing both t and p / orders containing t
//
// A product listed twice in one order counts once.
type CoOccurrence struct {
	confidence float64
}

// NewCoOccurrence creates a co-occurrence counter.
func NewCoOccurrence(cfg CoOccurrenceConfig) *CoOccurrence {
	return &CoOccurrence{confidence: Clamp01(cfg.Confidence)}
}

// BoughtTogether returns up to limit products that appear in orders with
// target, most frequent first. The target is never part of the result.
func (c *CoOccurrence) BoughtTogether(orders map[string][]string, target string, limit int) []models.Recommendation {
	if limit <= 0 {
		return []models.Recommendation{}
	}

	counts := make(map[string]int)
	withTarget := 0
	for _, products := range orders {
		basket := newProductSet(products)
		if !basket.has(target) {
			continue
		}
		withTarget++
		for product := range basket {
			if product != target && product != "" {
				counts[product]++
			}
		}
	}

	recs := make([]models.Recommendation, 0, len(counts))
	for product, n := range counts {
		recs = append(recs, models.Recommendation{
			ProductID:  product,
			Score:      float64(n) / float64(withTarget),
			Confidence: c.confidence,
			Reason:     fmt.Sprintf("Bought together in %d of %d orders", n, withTarget),
			Method:     models.MethodSimilar,
		})
	}

	SortRecommendations(recs)
	return truncate(recs, limit)
}
