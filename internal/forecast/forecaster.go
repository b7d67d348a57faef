// Merchantlens - Predictive Commerce Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/merchantlens

// Package forecast projects short-horizon product demand from daily sales history.
//
// Histories spanning at least two full seasons are projected with
// multiplicative Holt-Winters smoothing; shorter histories fall back to a
// trailing moving average. Alongside the projection the package reports a
// confidence score, a least-squares trend label and autocorrelation-based
// seasonality.
//
// # Thread Safety
//
// A Forecaster holds only its immutable Config and is safe for concurrent use.
package forecast

import (
	"fmt"

	"github.com/tomtom215/merchantlens/internal/models"
)

// Forecaster projects demand for product histories.
type Forecaster struct {
	cfg Config
}

// NewForecaster creates a forecaster. The config is validated up front so
// that every projection is total.
func NewForecaster(cfg Config) (*Forecaster, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid forecast config: %w", err)
	}
	return &Forecaster{cfg: cfg}, nil
}

// Config returns the forecaster configuration.
func (f *Forecaster) Config() Config {
	return f.cfg
}

// Forecast returns exactly periods non-negative quantities. A non-positive
// periods yields an empty slice.
func (f *Forecaster) Forecast(history []float64, periods int) []int {
	if periods <= 0 {
		return []int{}
	}
	if f.usesSmoothing(len(history)) {
		return holtWinters(history, periods, f.cfg.Smoothing)
	}
	return movingAverage(history, periods, f.cfg.MovingAverageWindow)
}

// Model reports which projection a history of length n receives.
func (f *Forecaster) Model(n int) models.ForecastModel {
	if f.usesSmoothing(n) {
		return models.ModelHoltWinters
	}
	return models.ModelMovingAverage
}

func (f *Forecaster) usesSmoothing(n int) bool {
	return n >= 2*f.cfg.Smoothing.SeasonLength
}

// ForecastProduct produces the full forecast record for one product.
// The history is sorted by date on a copy; the input is not modified.
func (f *Forecaster) ForecastProduct(series models.ProductSeries, periods int) models.ForecastResult {
	history := quantities(series.History)
	projection := f.Forecast(history, periods)

	window := f.cfg.CurrentAverageWindow
	if window > len(history) {
		window = len(history)
	}

	var projected float64
	if len(projection) > 0 {
		var sum int
		for _, q := range projection {
			sum += q
		}
		projected = float64(sum) / float64(len(projection))
	}

	return models.ForecastResult{
		ProductID:        series.ProductID,
		ProductName:      series.ProductName,
		CurrentAverage:   mean(history[len(history)-window:]),
		ForecastedDemand: projected,
		Confidence:       f.Confidence(history),
		Trend:            f.Trend(history),
		Period:           fmt.Sprintf("next %d days", periods),
		Seasonality:      f.Seasonality(history),
		Forecast:         projection,
		HistoryLength:    len(history),
		Model:            f.Model(len(history)),
	}
}
