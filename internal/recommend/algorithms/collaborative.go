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

// CollaborativeConfig contains configuration for item-item collaborative filtering.
type CollaborativeConfig struct {
	// NeighborsPerSource is how many similar products each interacted product
	// contributes before interacted ids are removed.
	// Default: 10.
	NeighborsPerSource int `json:"neighbors_per_source" koanf:"neighbors_per_source"`

	// MaxConfidence caps the hit-ratio confidence.
	// Default: 0.95.
	MaxConfidence float64 `json:"max_confidence" koanf:"max_confidence"`
}

// DefaultCollaborativeConfig returns the production defaults.
func DefaultCollaborativeConfig() CollaborativeConfig {
	return CollaborativeConfig{NeighborsPerSource: 10, MaxConfidence: 0.95}
}

// CollaborativeFilter recommends products that share users with the products
// a customer already interacted with.
//
// The filter keeps two inverted indexes built from the interaction log:
//
//	productUsers[product] = set of users who interacted with it
//	userProducts[user]    = set of products the user interacted with
//
// Similarity between two products is the Jaccard index of their user sets.
type CollaborativeFilter struct {
	neighbors     int
	maxConfidence float64

	productUsers map[string]map[string]struct{}
	userProducts map[string]map[string]struct{}
}

// NewCollaborativeFilter indexes interactions. Records without a user or
// product id are ignored.
//
//nolint:gocritic // rangeValCopy: InteractionRecord passed by value in range, acceptable for clarity
func NewCollaborativeFilter(cfg CollaborativeConfig, interactions []models.InteractionRecord) *CollaborativeFilter {
	if cfg.NeighborsPerSource < 1 {
		cfg.NeighborsPerSource = 10
	}
	if cfg.MaxConfidence <= 0 || cfg.MaxConfidence > 1 {
		cfg.MaxConfidence = 0.95
	}

	c := &CollaborativeFilter{
		neighbors:     cfg.NeighborsPerSource,
		maxConfidence: cfg.MaxConfidence,
		productUsers:  make(map[string]map[string]struct{}),
		userProducts:  make(map[string]map[string]struct{}),
	}

	for _, inter := range interactions {
		if inter.UserID == "" || inter.ProductID == "" {
			continue
		}
		if c.productUsers[inter.ProductID] == nil {
			c.productUsers[inter.ProductID] = make(map[string]struct{})
		}
		c.productUsers[inter.ProductID][inter.UserID] = struct{}{}

		if c.userProducts[inter.UserID] == nil {
			c.userProducts[inter.UserID] = make(map[string]struct{})
		}
		c.userProducts[inter.UserID][inter.ProductID] = struct{}{}
	}

	return c
}

// ProductCount returns the number of indexed products.
func (c *CollaborativeFilter) ProductCount() int {
	return len(c.productUsers)
}

// Similarity returns the Jaccard index of the user sets of a and b.
func (c *CollaborativeFilter) Similarity(a, b string) float64 {
	return jaccardSimilarity(c.productUsers[a], c.productUsers[b])
}

// FindSimilarProducts returns up to limit products sharing at least one user
// with target, most similar first.
func (c *CollaborativeFilter) FindSimilarProducts(target string, limit int) []ScoredProduct {
	if limit <= 0 {
		return []ScoredProduct{}
	}

	// Only products reachable through a shared user can have non-zero overlap.
	candidates := make(productSet)
	for user := range c.productUsers[target] {
		for product := range c.userProducts[user] {
			if product != target {
				candidates[product] = struct{}{}
			}
		}
	}

	similar := make([]ScoredProduct, 0, len(candidates))
	for product := range candidates {
		if sim := c.Similarity(target, product); sim > 0 {
			similar = append(similar, ScoredProduct{ProductID: product, Score: sim})
		}
	}

	sortScored(similar)
	if len(similar) > limit {
		similar = similar[:limit]
	}
	return similar
}

// RecommendForUser aggregates the neighbors of every interacted product.
//
// Each source contributes its top NeighborsPerSource similar products; those
// the user already interacted with are skipped. A candidate's score is its
// mean similarity over the sources that reached it, and its confidence is the
// share of sources that reached it.
func (c *CollaborativeFilter) RecommendForUser(interacted []string, limit int) []models.Recommendation {
	seen := newProductSet(interacted)
	if len(seen) == 0 || limit <= 0 {
		return []models.Recommendation{}
	}

	type accumulator struct {
		sum  float64
		hits int
	}
	acc := make(map[string]*accumulator)

	for source := range seen {
		for _, neighbor := range c.FindSimilarProducts(source, c.neighbors) {
			if seen.has(neighbor.ProductID) {
				continue
			}
			a := acc[neighbor.ProductID]
			if a == nil {
				a = &accumulator{}
				acc[neighbor.ProductID] = a
			}
			a.sum += neighbor.Score
			a.hits++
		}
	}

	recs := make([]models.Recommendation, 0, len(acc))
	for product, a := range acc {
		recs = append(recs, models.Recommendation{
			ProductID:  product,
			Score:      a.sum / float64(a.hits),
			Confidence: math.Min(c.maxConfidence, float64(a.hits)/float64(len(seen))),
			Reason:     collaborativeReason(a.hits),
			Method:     models.MethodCollaborative,
		})
	}

	SortRecommendations(recs)
	return truncate(recs, limit)
}

func collaborativeReason(hits int) string {
	if hits == 1 {
		return "Customers who bought a product you viewed also bought this"
	}
	return fmt.Sprintf("Customers who bought %d of your products also bought this", hits)
}
