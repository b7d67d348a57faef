// Merchantlens - Predictive Commerce Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/merchantlens

/*
Package api exposes the analytics engine over JSON/HTTP.

All endpoints live under /api/v1 and answer with the models.APIResponse
envelope. Request bodies are decoded with goccy/go-json, validated with
go-playground/validator tags and handed to analytics.Engine.

Endpoints:

	GET  /api/v1/health/live
	GET  /api/v1/health/ready
	POST /api/v1/forecasts
	POST /api/v1/forecasts/daily-series
	POST /api/v1/churn/predictions
	POST /api/v1/churn/at-risk
	POST /api/v1/recommendations
	POST /api/v1/recommendations/similar
	POST /api/v1/recommendations/frequently-bought-together
	GET  /metrics

Middleware Stack:

The router applies request IDs, real-IP extraction, panic recovery, CORS
and response compression globally. The /api/v1 data routes add IP-based
rate limiting (go-chi/httprate), security headers, Prometheus metrics and
a request body limit.

Error Codes:

  - VALIDATION_ERROR (400): body failed validation or exceeds the batch limit
  - INVALID_JSON (400): body could not be decoded
  - PAYLOAD_TOO_LARGE (413): body exceeds server.max_body_bytes
  - RATE_LIMIT_EXCEEDED (429): too many requests from one client
  - ANALYTICS_ERROR (500): the batch was cancelled before it completed
*/
package api
