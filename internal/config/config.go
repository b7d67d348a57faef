// Merchantlens - Predictive Commerce Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/merchantlens

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
	Analytics AnalyticsConfig `koanf:"analytics"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	MaxBodyBytes    int64         `koanf:"max_body_bytes"`
	Environment     string        `koanf:"environment"` // development or production
}

// SecurityConfig holds CORS and rate limiting settings.
// Authentication is handled by the calling application.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// AnalyticsConfig holds engine tuning.
type AnalyticsConfig struct {
	// Workers bounds concurrent items in a batch. 0 means runtime.NumCPU().
	Workers int `koanf:"workers"`

	// MaxBatchSize bounds products or customers per request.
	MaxBatchSize int `koanf:"max_batch_size"`

	// MaxSeriesPoints bounds products times days in a daily series response.
	MaxSeriesPoints int `koanf:"max_series_points"`

	Forecast  ForecastConfig  `koanf:"forecast"`
	Churn     ChurnConfig     `koanf:"churn"`
	Recommend RecommendConfig `koanf:"recommend"`
}

// ForecastConfig holds the forecaster tunables exposed to operators.
type ForecastConfig struct {
	SeasonLength         int     `koanf:"season_length"`
	Alpha                float64 `koanf:"alpha"`
	Beta                 float64 `koanf:"beta"`
	Gamma                float64 `koanf:"gamma"`
	MovingAverageWindow  int     `koanf:"moving_average_window"`
	TrendThreshold       float64 `koanf:"trend_threshold"`
	SeasonalityThreshold float64 `koanf:"seasonality_threshold"`
}

// ChurnConfig holds the churn scorer tunables exposed to operators.
type ChurnConfig struct {
	CriticalThreshold float64 `koanf:"critical_threshold"`
	HighThreshold     float64 `koanf:"high_threshold"`
	MediumThreshold   float64 `koanf:"medium_threshold"`
	InactivityDays    int     `koanf:"inactivity_days"`
	VIPOrderValue     float64 `koanf:"vip_order_value"`
}

// RecommendConfig holds the recommendation tunables exposed to operators.
type RecommendConfig struct {
	DefaultLimit       int     `koanf:"default_limit"`
	MaxLimit           int     `koanf:"max_limit"`
	CollaborativeBoost float64 `koanf:"collaborative_boost"`
	RecentProducts     int     `koanf:"recent_products"`
	NeighborsPerSource int     `koanf:"neighbors_per_source"`
	MinSimilarity      float64 `koanf:"min_similarity"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// IsProduction reports whether ENVIRONMENT is production.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Load reads configuration from defaults, an optional YAML file and the
// environment, then validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
