// Merchantlens - Predictive Commerce Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/merchantlens

package api

import (
	"time"

	"github.com/tomtom215/merchantlens/internal/models"
)

// Request bodies accepted by the analytics endpoints. The validation tags
// follow go-playground/validator v10 syntax; nested records carry their own
// tags in the models package and are checked through dive.

// maxDailySeriesSpan bounds the calendar range of a daily-series request.
const maxDailySeriesSpan = 3660 * 24 * time.Hour

// ForecastRequest is the body of POST /forecasts.
type ForecastRequest struct {
	Periods  int                    `json:"periods" validate:"min=1,max=365"`
	Products []models.ProductSeries `json:"products" validate:"required,dive"`
}

// DailySeriesRequest is the body of POST /forecasts/daily-series.
type DailySeriesRequest struct {
	From  time.Time           `json:"from" validate:"required"`
	To    time.Time           `json:"to" validate:"required,gtefield=From"`
	Sales []models.SaleRecord `json:"sales" validate:"required,dive"`
}

// ChurnRequest is the body of POST /churn/predictions and POST /churn/at-risk.
type ChurnRequest struct {
	Customers []models.CustomerFeatureVector `json:"customers" validate:"required,dive"`
}

// ChurnPredictionsResponse is the data of POST /churn/predictions.
type ChurnPredictionsResponse struct {
	Predictions []models.ChurnPrediction `json:"predictions"`
	Summary     models.ChurnSummary      `json:"summary"`
}

// RecommendRequest is the body of POST /recommendations.
//
// Entries of UserInteractions without a user_id are attributed to UserID
// before validation.
type RecommendRequest struct {
	UserID           string                     `json:"user_id" validate:"required,max=128"`
	Limit            int                        `json:"limit" validate:"min=0,max=1000"`
	UserInteractions []models.InteractionRecord `json:"user_interactions" validate:"dive"`
	Interactions     []models.InteractionRecord `json:"interactions" validate:"dive"`
	Products         []models.ProductFeature    `json:"products" validate:"dive"`
}

// SimilarProductsRequest is the body of POST /recommendations/similar.
type SimilarProductsRequest struct {
	ProductID    string                     `json:"product_id" validate:"required,max=128"`
	Limit        int                        `json:"limit" validate:"min=0,max=1000"`
	Interactions []models.InteractionRecord `json:"interactions" validate:"dive"`
	Products     []models.ProductFeature    `json:"products" validate:"dive"`
}

// BoughtTogetherRequest is the body of
// POST /recommendations/frequently-bought-together. Orders maps an order id
// to the product ids it contains.
type BoughtTogetherRequest struct {
	ProductID string                  `json:"product_id" validate:"required,max=128"`
	Limit     int                     `json:"limit" validate:"min=0,max=1000"`
	Orders    map[string][]string     `json:"orders" validate:"required,dive,dive,required,max=128"`
	Products  []models.ProductFeature `json:"products" validate:"dive"`
}

// attributeUserInteractions fills the owner of interactions that omit it.
func (req *RecommendRequest) attributeUserInteractions() {
	for i := range req.UserInteractions {
		if req.UserInteractions[i].UserID == "" {
			req.UserInteractions[i].UserID = req.UserID
		}
	}
}

// orderItems counts the product references across all orders.
func (req *BoughtTogetherRequest) orderItems() int {
	n := 0
	for _, items := range req.Orders {
		n += len(items)
	}
	return n
}
