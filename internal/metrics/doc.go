// Merchantlens - Predictive Commerce Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/merchantlens

/*
Package metrics provides Prometheus instrumentation for Merchantlens.

Collectors are registered on the default registry through promauto and exposed
at /metrics by the API router:

	curl http://localhost:8080/metrics

# Available Metrics

Analytics:
  - analytics_operation_duration_seconds{operation}: engine call latency
  - analytics_operation_errors_total{operation,error_type}: cancelled or failed batches
  - analytics_batch_size{operation}: items per batch call
  - analytics_forecasts_total{model}: forecasts by model (holt_winters, moving_average)
  - analytics_seasonality_detected_total{pattern}: seasonal series by pattern
  - analytics_churn_predictions_total{risk_level}: predictions by risk level
  - analytics_recommendations_total{operation,method}: recommendations served by method

API:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}
  - api_validation_failures_total{endpoint}

Endpoint labels are chi route patterns, never raw paths, to bound cardinality.
*/
package metrics
