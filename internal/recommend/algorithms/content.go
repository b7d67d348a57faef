// Merchantlens - Predictive Commerce Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/merchantlens

package algorithms

import (
	"fmt"
	"math"

	"github.com/tomtom215/merchantlens/internal/models"
)

// ContentConfig contains configuration for content-based filtering.
type ContentConfig struct {
	// MinSimilarity is the exclusive lower bound for a candidate to be kept.
	// Default: 0.3.
	MinSimilarity float64 `json:"min_similarity" koanf:"min_similarity"`

	// PriceTolerance is the fraction of the average price at which price
	// closeness drops to zero.
	// Default: 0.3.
	PriceTolerance float64 `json:"price_tolerance" koanf:"price_tolerance"`

	// RatingScale is the width of the rating range.
	// Default: 5.
	RatingScale float64 `json:"rating_scale" koanf:"rating_scale"`

	// Confidence is assigned to every content-based recommendation.
	// Default: 0.7.
	Confidence float64 `json:"confidence" koanf:"confidence"`
}

// DefaultContentConfig returns the production defaults.
func DefaultContentConfig() ContentConfig {
	return ContentConfig{
		MinSimilarity:  0.3,
		PriceTolerance: 0.3,
		RatingScale:    5,
		Confidence:     0.7,
	}
}

// ContentFilter recommends products with similar attributes.
type ContentFilter struct {
	cfg ContentConfig
}

// NewContentFilter creates a content-based filter.
func NewContentFilter(cfg ContentConfig) *ContentFilter {
	if cfg.PriceTolerance <= 0 {
		cfg.PriceTolerance = 0.3
	}
	if cfg.RatingScale <= 0 {
		cfg.RatingScale = 5
	}
	cfg.Confidence = Clamp01(cfg.Confidence)
	return &ContentFilter{cfg: cfg}
}

// Similarity averages the attribute factors available on both products.
// Category and rating only count when both sides carry them; price always counts.
func (c *ContentFilter) Similarity(a, b *models.ProductFeature) float64 {
	var sum float64
	var factors int

	if a.CategoryID != nil && b.CategoryID != nil {
		if *a.CategoryID == *b.CategoryID {
			sum++
		}
		factors++
	}

	sum += c.priceCloseness(a.Price, b.Price)
	factors++

	if a.Rating != nil && b.Rating != nil {
		sum += 1 - math.Min(1, math.Abs(*a.Rating-*b.Rating)/c.cfg.RatingScale)
		factors++
	}

	return sum / float64(factors)
}

func (c *ContentFilter) priceCloseness(a, b float64) float64 {
	avg := (a + b) / 2
	if avg <= 0 {
		if a == b {
			return 1
		}
		return 0
	}
	return 1 - math.Min(1, math.Abs(a-b)/(avg*c.cfg.PriceTolerance))
}

// RecommendSimilar ranks candidates by similarity to target, keeping those
// above MinSimilarity. The target itself is never returned.
func (c *ContentFilter) RecommendSimilar(target *models.ProductFeature, candidates []models.ProductFeature, limit int) []models.Recommendation {
	if limit <= 0 {
		return []models.Recommendation{}
	}

	seen := make(productSet, len(candidates))
	recs := make([]models.Recommendation, 0)
	for i := range candidates {
		cand := &candidates[i]
		if cand.ProductID == target.ProductID || seen.has(cand.ProductID) {
			continue
		}
		seen[cand.ProductID] = struct{}{}

		sim := c.Similarity(target, cand)
		if sim <= c.cfg.MinSimilarity {
			continue
		}
		recs = append(recs, models.Recommendation{
			ProductID:   cand.ProductID,
			ProductName: cand.ProductName,
			Score:       sim,
			Confidence:  c.cfg.Confidence,
			Reason:      contentReason(target),
			Method:      models.MethodContentBased,
		})
	}

	SortRecommendations(recs)
	return truncate(recs, limit)
}

func contentReason(target *models.ProductFeature) string {
	name := target.ProductName
	if name == "" {
		name = target.ProductID
	}
	return fmt.Sprintf("Similar to %s", name)
}
