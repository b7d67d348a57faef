// Merchantlens - Predictive Commerce Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/merchantlens

package models

import "time"

// ProductFeature describes a catalog product for content-based filtering and
// popularity ranking.
type ProductFeature struct {
	ProductID   string `json:"product_id" validate:"required,max=128"`
	ProductName string `json:"product_name" validate:"max=512"`

	// CategoryID is optional; the category factor is skipped when either side is nil.
	CategoryID *string `json:"category_id,omitempty" validate:"omitempty,max=128"`

	Price float64 `json:"price" validate:"gte=0"`

	// Views and Purchases are optional; nil counts as zero for popularity.
	Views     *int `json:"views,omitempty" validate:"omitempty,gte=0"`
	Purchases *int `json:"purchases,omitempty" validate:"omitempty,gte=0"`

	// Rating is optional and on a 0-5 scale; the rating factor is skipped when nil.
	Rating *float64 `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
}

// InteractionType classifies a user-product interaction.
type InteractionType string

const (
	InteractionView     InteractionType = "view"
	InteractionPurchase InteractionType = "purchase"
	InteractionCart     InteractionType = "cart"
	InteractionWishlist InteractionType = "wishlist"
)

// InteractionRecord is a single user-product event.
type InteractionRecord struct {
	UserID    string          `json:"user_id" validate:"required,max=128"`
	ProductID string          `json:"product_id" validate:"required,max=128"`
	Type      InteractionType `json:"type" validate:"required,oneof=view purchase cart wishlist"`
	Timestamp time.Time       `json:"timestamp" validate:"required"`
	Rating    *float64        `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
}

// RecommendationMethod names the strategy that produced a recommendation.
type RecommendationMethod string

const (
	MethodCollaborative RecommendationMethod = "collaborative"
	MethodContentBased  RecommendationMethod = "content-based"
	MethodHybrid        RecommendationMethod = "hybrid"
	MethodPopular       RecommendationMethod = "popular"
	MethodSimilar       RecommendationMethod = "similar"
)

// Recommendation is one ranked product suggestion.
type Recommendation struct {
	ProductID   string               `json:"product_id"`
	ProductName string               `json:"product_name"`
	Score       float64              `json:"score"`
	Confidence  float64              `json:"confidence"`
	Reason      string               `json:"reason"`
	Method      RecommendationMethod `json:"method"`
}
