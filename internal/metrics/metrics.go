// Merchantlens - Predictive Commerce Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/merchantlens

package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Analytics Metrics
	AnalyticsOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "analytics_operation_duration_seconds",
			Help:    "Duration of analytics engine operations in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		},
		[]string{"operation"},
	)

	AnalyticsOperationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_operation_errors_total",
			Help: "Total number of analytics operations that returned an error",
		},
		[]string{"operation", "error_type"},
	)

	AnalyticsBatchSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "analytics_batch_size",
			Help:    "Number of items per analytics batch call",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8), // 1 .. 16384
		},
		[]string{"operation"},
	)

	ForecastsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_forecasts_total",
			Help: "Total number of product forecasts by model",
		},
		[]string{"model"},
	)

	SeasonalityDetected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_seasonality_detected_total",
			Help: "Total number of forecasts with a detected seasonal pattern",
		},
		[]string{"pattern"},
	)

	ChurnPredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_churn_predictions_total",
			Help: "Total number of churn predictions by risk level",
		},
		[]string{"risk_level"},
	)

	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_recommendations_total",
			Help: "Total number of recommendations served by method",
		},
		[]string{"operation", "method"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	APIValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_validation_failures_total",
			Help: "Total number of requests rejected by validation",
		},
		[]string{"endpoint"},
	)
)

// RecordOperation records the duration and batch size of an engine call.
// batchSize <= 0 skips the batch histogram.
func RecordOperation(operation string, duration time.Duration, batchSize int, err error) {
	AnalyticsOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if batchSize > 0 {
		AnalyticsBatchSize.WithLabelValues(operation).Observe(float64(batchSize))
	}
	if err != nil {
		AnalyticsOperationErrors.WithLabelValues(operation, errorType(err)).Inc()
	}
}

func errorType(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return "deadline_exceeded"
	default:
		return "internal"
	}
}

// RecordForecast counts one product forecast. An empty pattern means no
// seasonality was detected.
func RecordForecast(model, pattern string) {
	ForecastsTotal.WithLabelValues(model).Inc()
	if pattern != "" {
		SeasonalityDetected.WithLabelValues(pattern).Inc()
	}
}

// RecordChurnPrediction counts one prediction.
func RecordChurnPrediction(riskLevel string) {
	ChurnPredictionsTotal.WithLabelValues(riskLevel).Inc()
}

// RecordRecommendations adds count recommendations produced by method.
func RecordRecommendations(operation, method string, count int) {
	if count <= 0 {
		return
	}
	RecommendationsTotal.WithLabelValues(operation, method).Add(float64(count))
}

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit counts a 429 response.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordValidationFailure counts a 400 VALIDATION_ERROR response.
func RecordValidationFailure(endpoint string) {
	APIValidationFailures.WithLabelValues(endpoint).Inc()
}
