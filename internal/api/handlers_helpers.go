// Merchantlens - Predictive Commerce Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/merchantlens

package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/merchantlens/internal/logging"
	"github.com/tomtom215/merchantlens/internal/metrics"
	"github.com/tomtom215/merchantlens/internal/middleware"
	"github.com/tomtom215/merchantlens/internal/models"
	"github.com/tomtom215/merchantlens/internal/validation"
)

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"status":"error","data":null,"metadata":{},"error":{"code":"ANALYTICS_ERROR","message":"Failed to encode response"}}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondSuccess wraps data in a success envelope. count is reported in the
// metadata when positive.
func respondSuccess(w http.ResponseWriter, data interface{}, count int, start time.Time) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
			Count:       count,
		},
	})
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	if err != nil {
		logging.Error().Str("code", sanitizeLogValue(code)).Str("error", sanitizeLogValue(err.Error())).Msg("API Error")
	}

	respondJSON(w, status, &models.APIResponse{
		Status: "error",
		Data:   nil,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
		Error: &models.APIError{
			Code:    code,
			Message: message,
		},
	})
}

// respondAPIError sends a prepared APIError, keeping its details.
func respondAPIError(w http.ResponseWriter, status int, apiErr *models.APIError) {
	respondJSON(w, status, &models.APIResponse{
		Status: "error",
		Data:   nil,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
		Error: apiErr,
	})
}

// decodeJSONBody reads the whole body and decodes it into dst. Bodies cut
// off by MaxBodySize surface as *http.MaxBytesError.
func decodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return ErrEmptyBody
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return ErrEmptyBody
	}

	return json.Unmarshal(body, dst)
}

// validateRequest validates a struct using go-playground/validator.
// Returns nil if validation passes, or a models.APIError if validation fails.
func validateRequest(v interface{}) *models.APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}
	return toModelError(validationErr)
}

func toModelError(validationErr *validation.RequestValidationError) *models.APIError {
	apiErr := validationErr.ToAPIError()
	return &models.APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}

// bindRequest decodes and validates a request body. It writes the error
// response and returns false when the request cannot be processed.
func bindRequest(w http.ResponseWriter, r *http.Request, dst interface{}, prepare func()) bool {
	if err := decodeJSONBody(r, dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respondError(w, http.StatusRequestEntityTooLarge, CodePayloadTooLarge,
				fmt.Sprintf("Request body exceeds %d bytes", maxErr.Limit), nil)
			return false
		}
		logging.Ctx(r.Context()).Debug().Err(err).Str("endpoint", middleware.RoutePattern(r)).Msg("Rejected request body")
		respondError(w, http.StatusBadRequest, CodeInvalidJSON, "Request body must be a valid JSON object", nil)
		return false
	}

	if prepare != nil {
		prepare()
	}

	if apiErr := validateRequest(dst); apiErr != nil {
		rejectValidation(w, r, apiErr)
		return false
	}
	return true
}

// checkBatchSize rejects batches above the engine's configured maximum.
func checkBatchSize(w http.ResponseWriter, r *http.Request, field string, n, limit int) bool {
	if n <= limit {
		return true
	}
	verr := validation.NewRequestValidationError(field, "max_batch",
		fmt.Sprintf("%s must contain at most %d items", field, limit))
	rejectValidation(w, r, toModelError(verr))
	return false
}

func rejectValidation(w http.ResponseWriter, r *http.Request, apiErr *models.APIError) {
	metrics.RecordValidationFailure(middleware.RoutePattern(r))
	respondAPIError(w, http.StatusBadRequest, apiErr)
}

// respondAnalyticsError maps engine failures, which only occur when the
// request context ends mid-batch.
func respondAnalyticsError(w http.ResponseWriter, r *http.Request, err error) {
	logging.Ctx(r.Context()).Warn().Err(err).Str("endpoint", middleware.RoutePattern(r)).Msg("Analytics request aborted")
	respondError(w, http.StatusInternalServerError, CodeAnalyticsError, "Analytics computation did not complete", nil)
}
