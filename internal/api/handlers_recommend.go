// Merchantlens - Predictive Commerce Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/merchantlens

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/merchantlens/internal/recommend"
)

// Recommendations handles POST /api/v1/recommendations.
// Returns personalized recommendations for one user.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req RecommendRequest
	if !bindRequest(w, r, &req, req.attributeUserInteractions) {
		return
	}
	limit := h.engine.MaxBatchSize()
	if !checkBatchSize(w, r, "interactions", len(req.Interactions)+len(req.UserInteractions), limit) ||
		!checkBatchSize(w, r, "products", len(req.Products), limit) {
		return
	}

	recs := h.engine.Recommend(r.Context(), recommend.Request{
		UserID:           req.UserID,
		Limit:            req.Limit,
		UserInteractions: req.UserInteractions,
		Interactions:     req.Interactions,
		Catalog:          req.Products,
	})

	respondSuccess(w, recs, len(recs), start)
}

// SimilarProducts handles POST /api/v1/recommendations/similar.
// Returns products similar to the target product.
func (h *Handler) SimilarProducts(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req SimilarProductsRequest
	if !bindRequest(w, r, &req, nil) {
		return
	}
	limit := h.engine.MaxBatchSize()
	if !checkBatchSize(w, r, "interactions", len(req.Interactions), limit) ||
		!checkBatchSize(w, r, "products", len(req.Products), limit) {
		return
	}

	recs := h.engine.SimilarProducts(r.Context(), recommend.SimilarRequest{
		ProductID:    req.ProductID,
		Limit:        req.Limit,
		Interactions: req.Interactions,
		Catalog:      req.Products,
	})

	respondSuccess(w, recs, len(recs), start)
}

// FrequentlyBoughtTogether handles POST /api/v1/recommendations/frequently-bought-together.
// Returns products that co-occur with the target across orders.
func (h *Handler) FrequentlyBoughtTogether(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req BoughtTogetherRequest
	if !bindRequest(w, r, &req, nil) {
		return
	}
	limit := h.engine.MaxBatchSize()
	if !checkBatchSize(w, r, "orders", req.orderItems(), limit) ||
		!checkBatchSize(w, r, "products", len(req.Products), limit) {
		return
	}

	recs := h.engine.FrequentlyBoughtTogether(r.Context(), recommend.BoughtTogetherRequest{
		ProductID: req.ProductID,
		Limit:     req.Limit,
		Orders:    req.Orders,
		Catalog:   req.Products,
	})

	respondSuccess(w, recs, len(recs), start)
}
