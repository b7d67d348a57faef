// Merchantlens - Predictive Commerce Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/merchantlens

package recommend

import (
	"fmt"

	"github.com/tomtom215/merchantlens/internal/recommend/algorithms"
)

// Config contains all configuration for the recommendation orchestrator.
type Config struct {
	// Collaborative contains parameters for item-item collaborative filtering.
	Collaborative algorithms.CollaborativeConfig `json:"collaborative" koanf:"collaborative"`

	// Content contains parameters for content-based filtering.
	Content algorithms.ContentConfig `json:"content" koanf:"content"`

	// Popularity contains parameters for the popularity fallback.
	Popularity algorithms.PopularityConfig `json:"popularity" koanf:"popularity"`

	// CoOccurrence contains parameters for frequently-bought-together.
	CoOccurrence algorithms.CoOccurrenceConfig `json:"co_occurrence" koanf:"co_occurrence"`

	// Hybrid contains parameters for merging candidate lists.
	Hybrid HybridConfig `json:"hybrid" koanf:"hybrid"`

	// Limits contains operational limits.
	Limits LimitsConfig `json:"limits" koanf:"limits"`
}

// HybridConfig contains parameters for the hybrid merge.
type HybridConfig struct {
	// CollaborativeBoost multiplies collaborative scores before merging.
	// Default: 1.2.
	CollaborativeBoost float64 `json:"collaborative_boost" koanf:"collaborative_boost"`

	// RecentProducts is how many of the user's most recently touched distinct
	// products seed the content-based candidates.
	// Default: 3.
	RecentProducts int `json:"recent_products" koanf:"recent_products"`
}

// LimitsConfig contains operational limits.
type LimitsConfig struct {
	// DefaultLimit is used when a request does not set a limit.
	DefaultLimit int `json:"default_limit" koanf:"default_limit"`

	// MaxLimit caps the requested limit.
	MaxLimit int `json:"max_limit" koanf:"max_limit"`
}

// DefaultConfig returns the production orchestrator configuration.
func DefaultConfig() *Config {
	return &Config{
		Collaborative: algorithms.DefaultCollaborativeConfig(),
		Content:       algorithms.DefaultContentConfig(),
		Popularity:    algorithms.DefaultPopularityConfig(),
		CoOccurrence:  algorithms.DefaultCoOccurrenceConfig(),
		Hybrid: HybridConfig{
			CollaborativeBoost: 1.2,
			RecentProducts:     3,
		},
		Limits: LimitsConfig{
			DefaultLimit: 10,
			MaxLimit:     100,
		},
	}
}

// Validate checks that all parameters are in range.
func (c *Config) Validate() error {
	if c.Collaborative.NeighborsPerSource < 1 {
		return fmt.Errorf("collaborative.neighbors_per_source must be positive, got %d", c.Collaborative.NeighborsPerSource)
	}
	if c.Collaborative.MaxConfidence <= 0 || c.Collaborative.MaxConfidence > 1 {
		return fmt.Errorf("collaborative.max_confidence must be in (0, 1], got %f", c.Collaborative.MaxConfidence)
	}

	if c.Content.MinSimilarity < 0 || c.Content.MinSimilarity >= 1 {
		return fmt.Errorf("content.min_similarity must be in [0, 1), got %f", c.Content.MinSimilarity)
	}
	if c.Content.PriceTolerance <= 0 {
		return fmt.Errorf("content.price_tolerance must be positive, got %f", c.Content.PriceTolerance)
	}
	if c.Content.RatingScale <= 0 {
		return fmt.Errorf("content.rating_scale must be positive, got %f", c.Content.RatingScale)
	}

	if c.Popularity.PurchaseWeight < 0 || c.Popularity.ViewWeight < 0 {
		return fmt.Errorf("popularity weights must be non-negative, got %f and %f",
			c.Popularity.PurchaseWeight, c.Popularity.ViewWeight)
	}

	for name, v := range map[string]float64{
		"content.confidence":       c.Content.Confidence,
		"popularity.confidence":    c.Popularity.Confidence,
		"co_occurrence.confidence": c.CoOccurrence.Confidence,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s must be in [0, 1], got %f", name, v)
		}
	}

	if c.Hybrid.CollaborativeBoost <= 0 {
		return fmt.Errorf("hybrid.collaborative_boost must be positive, got %f", c.Hybrid.CollaborativeBoost)
	}
	if c.Hybrid.RecentProducts < 1 {
		return fmt.Errorf("hybrid.recent_products must be positive, got %d", c.Hybrid.RecentProducts)
	}

	if c.Limits.DefaultLimit < 1 {
		return fmt.Errorf("limits.default_limit must be positive, got %d", c.Limits.DefaultLimit)
	}
	if c.Limits.MaxLimit < c.Limits.DefaultLimit {
		return fmt.Errorf("limits.max_limit must be >= limits.default_limit, got %d < %d",
			c.Limits.MaxLimit, c.Limits.DefaultLimit)
	}

	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	// All nested structs contain only value types.
	clone := *c
	return &clone
}

// resolveLimit applies the default and maximum to a requested limit.
func (c *Config) resolveLimit(limit int) int {
	if limit <= 0 {
		return c.Limits.DefaultLimit
	}
	if limit > c.Limits.MaxLimit {
		return c.Limits.MaxLimit
	}
	return limit
}
