// Merchantlens - Predictive Commerce Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/merchantlens

package config

import (
	"fmt"
	"time"
)

const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return c.validateAnalytics()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.MaxBodyBytes < 1 {
		return fmt.Errorf("MAX_BODY_BYTES must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.IsProduction() && c.hasWildcardCORS() {
		return fmt.Errorf("CORS_ORIGINS=* is not allowed when ENVIRONMENT=production; " +
			"set specific origins such as CORS_ORIGINS=https://shop.example.com")
	}
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// validateAnalytics checks the operator-facing bounds only. The component
// constructors run the full consistency checks.
func (c *Config) validateAnalytics() error {
	a := c.Analytics
	if a.Workers < 0 {
		return fmt.Errorf("ANALYTICS_WORKERS must not be negative")
	}
	if a.MaxBatchSize < 1 {
		return fmt.Errorf("ANALYTICS_MAX_BATCH must be positive")
	}
	if a.MaxSeriesPoints < 1 {
		return fmt.Errorf("ANALYTICS_MAX_SERIES_POINTS must be positive")
	}

	for name, v := range map[string]float64{
		"FORECAST_ALPHA": a.Forecast.Alpha,
		"FORECAST_BETA":  a.Forecast.Beta,
		"FORECAST_GAMMA": a.Forecast.Gamma,
	} {
		if v <= 0 || v >= 1 {
			return fmt.Errorf("%s must be in (0, 1), got %v", name, v)
		}
	}
	if a.Forecast.SeasonLength < 2 {
		return fmt.Errorf("FORECAST_SEASON_LENGTH must be at least 2")
	}

	ch := a.Churn
	if !(ch.MediumThreshold > 0 && ch.MediumThreshold < ch.HighThreshold &&
		ch.HighThreshold < ch.CriticalThreshold && ch.CriticalThreshold <= 100) {
		return fmt.Errorf("churn thresholds must satisfy 0 < medium < high < critical <= 100")
	}

	if a.Recommend.DefaultLimit < 1 || a.Recommend.MaxLimit < a.Recommend.DefaultLimit {
		return fmt.Errorf("RECOMMEND_MAX_LIMIT must be at least RECOMMEND_DEFAULT_LIMIT, which must be positive")
	}
	return nil
}
