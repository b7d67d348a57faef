// Merchantlens - Predictive Commerce Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/merchantlens

package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/merchantlens/internal/validation"
)

// Forecasts handles POST /api/v1/forecasts.
// Returns one ForecastResult per product, in request order.
func (h *Handler) Forecasts(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req ForecastRequest
	if !bindRequest(w, r, &req, nil) {
		return
	}
	if !checkBatchSize(w, r, "products", len(req.Products), h.engine.MaxBatchSize()) {
		return
	}

	results, err := h.engine.ForecastBatch(r.Context(), req.Products, req.Periods)
	if err != nil {
		respondAnalyticsError(w, r, err)
		return
	}

	respondSuccess(w, results, len(results), start)
}

// DailySeries handles POST /api/v1/forecasts/daily-series.
// Aggregates sale records into zero-filled daily series per product.
func (h *Handler) DailySeries(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req DailySeriesRequest
	if !bindRequest(w, r, &req, nil) {
		return
	}
	if req.To.Sub(req.From) > maxDailySeriesSpan {
		verr := validation.NewRequestValidationError("to", "max_span",
			fmt.Sprintf("to must be within %d days of from", int(maxDailySeriesSpan.Hours()/24)))
		rejectValidation(w, r, toModelError(verr))
		return
	}
	if !checkBatchSize(w, r, "sales", len(req.Sales), h.engine.MaxBatchSize()) {
		return
	}
	if points, limit := h.engine.SeriesPoints(req.Sales, req.From, req.To), h.engine.MaxSeriesPoints(); points > limit {
		verr := validation.NewRequestValidationError("sales", "max_series_points",
			fmt.Sprintf("sales would produce %d series points, at most %d allowed", points, limit))
		rejectValidation(w, r, toModelError(verr))
		return
	}

	series := h.engine.BuildDailySeries(r.Context(), req.Sales, req.From, req.To)
	respondSuccess(w, series, len(series), start)
}
