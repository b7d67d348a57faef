// Merchantlens - Predictive Commerce Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/merchantlens

package models

import "time"

// TimeSeriesPoint is one historical period (typically one day) of sold quantity.
type TimeSeriesPoint struct {
	Date     time.Time `json:"date" validate:"required"`
	Quantity float64   `json:"quantity" validate:"gte=0"`
}

// ProductSeries is the forecaster input for a single product.
// History should contain one point per period; it is sorted by date before use.
type ProductSeries struct {
	ProductID   string            `json:"product_id" validate:"required,max=128"`
	ProductName string            `json:"product_name" validate:"max=512"`
	History     []TimeSeriesPoint `json:"history" validate:"max=3660,dive"`
}

// SaleRecord is a raw order line used to build a daily series.
type SaleRecord struct {
	ProductID string    `json:"product_id" validate:"required,max=128"`
	Date      time.Time `json:"date" validate:"required"`
	Quantity  float64   `json:"quantity" validate:"gte=0"`
}

// Trend classifies the direction of a historical series.
type Trend string

const (
	// TrendIncreasing indicates a least-squares slope above the threshold.
	TrendIncreasing Trend = "increasing"
	// TrendDecreasing indicates a least-squares slope below the negative threshold.
	TrendDecreasing Trend = "decreasing"
	// TrendStable indicates a slope within the threshold band.
	TrendStable Trend = "stable"
)

// SeasonalPattern names a detected periodicity.
type SeasonalPattern string

const (
	// PatternWeekly is a 7-period cycle.
	PatternWeekly SeasonalPattern = "weekly"
	// PatternMonthly is a 30-period cycle.
	PatternMonthly SeasonalPattern = "monthly"
)

// Seasonality reports whether a repeating pattern was found in the history.
type Seasonality struct {
	Detected bool            `json:"detected"`
	Pattern  SeasonalPattern `json:"pattern,omitempty"`
}

// ForecastModel identifies which projection method produced a forecast.
type ForecastModel string

const (
	// ModelHoltWinters is triple exponential smoothing with a weekly season.
	ModelHoltWinters ForecastModel = "holt_winters"
	// ModelMovingAverage is the short-history fallback.
	ModelMovingAverage ForecastModel = "moving_average"
)

// ForecastResult is the demand forecast for one product.
type ForecastResult struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`

	// CurrentAverage is the mean of the last 7 observed points.
	CurrentAverage float64 `json:"current_average"`

	// ForecastedDemand is the mean of the projected horizon.
	ForecastedDemand float64 `json:"forecasted_demand"`

	// Confidence is in [0, 1] and grows with history length and stability.
	Confidence float64 `json:"confidence"`

	Trend       Trend       `json:"trend"`
	Period      string      `json:"period"`
	Seasonality Seasonality `json:"seasonality"`

	// Forecast holds one projected quantity per requested period.
	Forecast      []int         `json:"forecast"`
	HistoryLength int           `json:"history_length"`
	Model         ForecastModel `json:"model"`
}
