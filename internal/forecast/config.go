// Merchantlens - Predictive Commerce Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/merchantlens

package forecast

import "fmt"

// Config contains the tuning constants of the forecaster.
// A Config is treated as immutable once passed to NewForecaster.
type Config struct {
	// Smoothing contains the Holt-Winters parameters.
	Smoothing SmoothingConfig `json:"smoothing" koanf:"smoothing"`

	// MovingAverageWindow is the number of trailing points averaged when the
	// history is too short for seasonal smoothing.
	// Default: 7.
	MovingAverageWindow int `json:"moving_average_window" koanf:"moving_average_window"`

	// CurrentAverageWindow is the number of trailing points reported as the
	// current average of a product.
	// Default: 7.
	CurrentAverageWindow int `json:"current_average_window" koanf:"current_average_window"`

	// TrendThreshold is the absolute least-squares slope above which a series
	// is classified as increasing or decreasing.
	// Default: 0.05.
	TrendThreshold float64 `json:"trend_threshold" koanf:"trend_threshold"`

	// Seasonality contains the autocorrelation detection parameters.
	Seasonality SeasonalityConfig `json:"seasonality" koanf:"seasonality"`

	// Confidence contains the history-length confidence buckets.
	Confidence ConfidenceConfig `json:"confidence" koanf:"confidence"`
}

// SmoothingConfig contains parameters for triple exponential smoothing.
type SmoothingConfig struct {
	// SeasonLength is the number of periods in one season.
	// Seasonal smoothing requires at least two full seasons of history.
	// Default: 7 (weekly).
	SeasonLength int `json:"season_length" koanf:"season_length"`

	// Alpha weights the level update. Default: 0.2.
	Alpha float64 `json:"alpha" koanf:"alpha"`

	// Beta weights the trend update. Default: 0.1.
	Beta float64 `json:"beta" koanf:"beta"`

	// Gamma weights the seasonal index update. Default: 0.3.
	Gamma float64 `json:"gamma" koanf:"gamma"`
}

// SeasonalityConfig contains parameters for seasonality detection.
type SeasonalityConfig struct {
	// Threshold is the autocorrelation a lag must exceed to count as seasonal.
	// Default: 0.6.
	Threshold float64 `json:"threshold" koanf:"threshold"`

	// WeeklyLag is probed whenever the history holds at least two of it.
	// Default: 7.
	WeeklyLag int `json:"weekly_lag" koanf:"weekly_lag"`

	// MonthlyLag is probed when the weekly lag is not seasonal.
	// Default: 30.
	MonthlyLag int `json:"monthly_lag" koanf:"monthly_lag"`

	// MonthlyMinHistory is the minimum history length for the monthly probe.
	// Default: 60.
	MonthlyMinHistory int `json:"monthly_min_history" koanf:"monthly_min_history"`
}

// ConfidenceConfig maps history length to forecast confidence.
//
// Histories shorter than MinimalLength score Minimal, shorter than ShortLength
// score Short, shorter than MediumLength score Medium. Longer histories score
// 1 - coefficient of variation, clamped to [Floor, Ceiling].
type ConfidenceConfig struct {
	MinimalLength int     `json:"minimal_length" koanf:"minimal_length"`
	Minimal       float64 `json:"minimal" koanf:"minimal"`
	ShortLength   int     `json:"short_length" koanf:"short_length"`
	Short         float64 `json:"short" koanf:"short"`
	MediumLength  int     `json:"medium_length" koanf:"medium_length"`
	Medium        float64 `json:"medium" koanf:"medium"`
	Floor         float64 `json:"floor" koanf:"floor"`
	Ceiling       float64 `json:"ceiling" koanf:"ceiling"`

	// Degenerate is used when the series mean is not positive.
	Degenerate float64 `json:"degenerate" koanf:"degenerate"`
}

// DefaultConfig returns the production forecaster configuration.
func DefaultConfig() Config {
	return Config{
		Smoothing: SmoothingConfig{
			SeasonLength: 7,
			Alpha:        0.2,
			Beta:         0.1,
			Gamma:        0.3,
		},
		MovingAverageWindow:  7,
		CurrentAverageWindow: 7,
		TrendThreshold:       0.05,
		Seasonality: SeasonalityConfig{
			Threshold:         0.6,
			WeeklyLag:         7,
			MonthlyLag:        30,
			MonthlyMinHistory: 60,
		},
		Confidence: ConfidenceConfig{
			MinimalLength: 7,
			Minimal:       0.4,
			ShortLength:   14,
			Short:         0.6,
			MediumLength:  30,
			Medium:        0.75,
			Floor:         0.5,
			Ceiling:       0.95,
			Degenerate:    0.5,
		},
	}
}

// Validate checks that all parameters are in range.
func (c Config) Validate() error {
	s := c.Smoothing
	if s.SeasonLength < 1 {
		return fmt.Errorf("smoothing.season_length must be positive, got %d", s.SeasonLength)
	}
	for name, v := range map[string]float64{"alpha": s.Alpha, "beta": s.Beta, "gamma": s.Gamma} {
		if v < 0 || v > 1 {
			return fmt.Errorf("smoothing.%s must be in [0, 1], got %f", name, v)
		}
	}

	if c.MovingAverageWindow < 1 {
		return fmt.Errorf("moving_average_window must be positive, got %d", c.MovingAverageWindow)
	}
	if c.CurrentAverageWindow < 1 {
		return fmt.Errorf("current_average_window must be positive, got %d", c.CurrentAverageWindow)
	}
	if c.TrendThreshold < 0 {
		return fmt.Errorf("trend_threshold must be non-negative, got %f", c.TrendThreshold)
	}

	if c.Seasonality.Threshold < -1 || c.Seasonality.Threshold > 1 {
		return fmt.Errorf("seasonality.threshold must be in [-1, 1], got %f", c.Seasonality.Threshold)
	}
	if c.Seasonality.WeeklyLag < 1 || c.Seasonality.MonthlyLag < 1 {
		return fmt.Errorf("seasonality lags must be positive, got %d and %d",
			c.Seasonality.WeeklyLag, c.Seasonality.MonthlyLag)
	}
	if c.Seasonality.MonthlyMinHistory <= c.Seasonality.MonthlyLag {
		return fmt.Errorf("seasonality.monthly_min_history must exceed monthly_lag, got %d <= %d",
			c.Seasonality.MonthlyMinHistory, c.Seasonality.MonthlyLag)
	}

	cc := c.Confidence
	if cc.MinimalLength > cc.ShortLength || cc.ShortLength > cc.MediumLength {
		return fmt.Errorf("confidence lengths must be ascending, got %d, %d, %d",
			cc.MinimalLength, cc.ShortLength, cc.MediumLength)
	}
	if cc.Floor > cc.Ceiling {
		return fmt.Errorf("confidence.floor must be <= ceiling, got %f > %f", cc.Floor, cc.Ceiling)
	}
	for name, v := range map[string]float64{
		"minimal": cc.Minimal, "short": cc.Short, "medium": cc.Medium,
		"floor": cc.Floor, "ceiling": cc.Ceiling, "degenerate": cc.Degenerate,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("confidence.%s must be in [0, 1], got %f", name, v)
		}
	}

	return nil
}
