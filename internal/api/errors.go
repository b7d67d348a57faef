// Merchantlens - Predictive Commerce Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/merchantlens

package api

import (
	"errors"

	"github.com/tomtom215/merchantlens/internal/validation"
)

// Error codes returned in APIError.Code.
const (
	CodeValidationError   = validation.CodeValidationError
	CodeInvalidJSON       = "INVALID_JSON"
	CodePayloadTooLarge   = "PAYLOAD_TOO_LARGE"
	CodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	CodeAnalyticsError    = "ANALYTICS_ERROR"
)

// ErrEmptyBody indicates a request without a JSON body.
var ErrEmptyBody = errors.New("request body is empty")
