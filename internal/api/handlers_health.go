// Merchantlens - Predictive Commerce Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/merchantlens

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/merchantlens/internal/models"
)

// HealthLive handles liveness probe requests.
// Returns 200 OK if the process is alive.
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthReady handles readiness probe requests. The service is ready once
// an analytics engine is attached.
func (h *Handler) HealthReady(w http.ResponseWriter, _ *http.Request) {
	if h.engine == nil {
		respondJSON(w, http.StatusServiceUnavailable, &models.APIResponse{
			Status: "error",
			Data:   map[string]interface{}{"ready": false},
			Metadata: models.Metadata{
				Timestamp: time.Now(),
			},
			Error: &models.APIError{
				Code:    "SERVICE_NOT_READY",
				Message: "Analytics engine is not initialized",
			},
		})
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"ready":          true,
			"workers":        h.engine.Workers(),
			"max_batch_size": h.engine.MaxBatchSize(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
