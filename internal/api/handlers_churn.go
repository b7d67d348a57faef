// Merchantlens - Predictive Commerce Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/merchantlens

package api

import (
	"net/http"
	"time"
)

// ChurnPredictions handles POST /api/v1/churn/predictions.
// Returns every prediction plus the portfolio summary.
func (h *Handler) ChurnPredictions(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req ChurnRequest
	if !bindRequest(w, r, &req, nil) {
		return
	}
	if !checkBatchSize(w, r, "customers", len(req.Customers), h.engine.MaxBatchSize()) {
		return
	}

	predictions, err := h.engine.PredictChurnBatch(r.Context(), req.Customers)
	if err != nil {
		respondAnalyticsError(w, r, err)
		return
	}

	respondSuccess(w, ChurnPredictionsResponse{
		Predictions: predictions,
		Summary:     h.engine.SummarizeChurn(predictions),
	}, len(predictions), start)
}

// ChurnAtRisk handles POST /api/v1/churn/at-risk.
// Returns HIGH and CRITICAL predictions only, highest probability first
// with customer id ascending on ties.
func (h *Handler) ChurnAtRisk(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req ChurnRequest
	if !bindRequest(w, r, &req, nil) {
		return
	}
	if !checkBatchSize(w, r, "customers", len(req.Customers), h.engine.MaxBatchSize()) {
		return
	}

	atRisk, err := h.engine.IdentifyAtRisk(r.Context(), req.Customers)
	if err != nil {
		respondAnalyticsError(w, r, err)
		return
	}

	respondSuccess(w, atRisk, len(atRisk), start)
}
