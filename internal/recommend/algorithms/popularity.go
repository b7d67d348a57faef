// Merchantlens - Predictive Commerce Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/merchantlens

package algorithms

import (
	"github.com/tomtom215/merchantlens/internal/models"
)

// Popularity ranks catalog products by their purchase and view counts.
// It is the fallback for users with little or no history.
//
// The popularity score is computed as:
//
//	score(product) = PurchaseWeight*purchases + ViewWeight*views
//
// Missing counts are treated as zero.
type Popularity struct {
	purchaseWeight float64
	viewWeight     float64
	confidence     float64
}

// PopularityConfig contains configuration for the popularity ranking.
type PopularityConfig struct {
	// PurchaseWeight multiplies the purchase count. Default: 0.7.
	PurchaseWeight float64 `json:"purchase_weight" koanf:"purchase_weight"`

	// ViewWeight multiplies the view count. Default: 0.3.
	ViewWeight float64 `json:"view_weight" koanf:"view_weight"`

	// Confidence is assigned to every popularity recommendation. Default: 0.6.
	Confidence float64 `json:"confidence" koanf:"confidence"`
}

// DefaultPopularityConfig returns the production defaults.
func DefaultPopularityConfig() PopularityConfig {
	return PopularityConfig{PurchaseWeight: 0.7, ViewWeight: 0.3, Confidence: 0.6}
}

// NewPopularity creates a popularity ranking.
func NewPopularity(cfg PopularityConfig) *Popularity {
	if cfg.PurchaseWeight < 0 {
		cfg.PurchaseWeight = 0
	}
	if cfg.ViewWeight < 0 {
		cfg.ViewWeight = 0
	}
	return &Popularity{
		purchaseWeight: cfg.PurchaseWeight,
		viewWeight:     cfg.ViewWeight,
		confidence:     Clamp01(cfg.Confidence),
	}
}

// Score returns the popularity score of a product.
func (p *Popularity) Score(product *models.ProductFeature) float64 {
	var purchases, views int
	if product.Purchases != nil {
		purchases = *product.Purchases
	}
	if product.Views != nil {
		views = *product.Views
	}
	return NonNegative(p.purchaseWeight*float64(purchases) + p.viewWeight*float64(views))
}

// TopK returns up to k catalog products by popularity, skipping excluded ids.
func (p *Popularity) TopK(catalog []models.ProductFeature, exclude map[string]struct{}, k int) []models.Recommendation {
	if k <= 0 {
		return []models.Recommendation{}
	}

	seen := make(productSet, len(catalog))
	recs := make([]models.Recommendation, 0, len(catalog))
	for i := range catalog {
		product := &catalog[i]
		if _, skip := exclude[product.ProductID]; skip || seen.has(product.ProductID) {
			continue
		}
		seen[product.ProductID] = struct{}{}

		recs = append(recs, models.Recommendation{
			ProductID:   product.ProductID,
			ProductName: product.ProductName,
			Score:       p.Score(product),
			Confidence:  p.confidence,
			Reason:      "Popular with other shoppers",
			Method:      models.MethodPopular,
		})
	}

	SortRecommendations(recs)
	return truncate(recs, k)
}
