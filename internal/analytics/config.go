// Merchantlens - Predictive Commerce Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/merchantlens

package analytics

import (
	"fmt"
	"runtime"

	"github.com/tomtom215/merchantlens/internal/churn"
	"github.com/tomtom215/merchantlens/internal/forecast"
	"github.com/tomtom215/merchantlens/internal/recommend"
)

// Config configures the engine facade and its components.
type Config struct {
	// Workers bounds concurrently processed batch items.
	// 0 uses runtime.NumCPU().
	Workers int

	// MaxBatchSize is the largest batch callers should submit. The engine
	// itself processes any size; the API rejects larger requests.
	MaxBatchSize int

	// MaxSeriesPoints bounds the output of a daily series request
	// (distinct products times days). Enforced by the API.
	MaxSeriesPoints int

	Forecast  forecast.Config
	Churn     churn.Config
	Recommend *recommend.Config
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		Workers:         0,
		MaxBatchSize:    10000,
		MaxSeriesPoints: 1_000_000,
		Forecast:        forecast.DefaultConfig(),
		Churn:           churn.DefaultConfig(),
		Recommend:       recommend.DefaultConfig(),
	}
}

// Validate checks the facade settings. Component configs are validated by
// their constructors.
func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.MaxBatchSize < 1 {
		return fmt.Errorf("max batch size must be positive, got %d", c.MaxBatchSize)
	}
	if c.MaxSeriesPoints < 1 {
		return fmt.Errorf("max series points must be positive, got %d", c.MaxSeriesPoints)
	}
	return nil
}

func (c Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}
