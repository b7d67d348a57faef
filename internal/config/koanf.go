// Merchantlens - Predictive Commerce Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/merchantlens

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists config file locations in priority order.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/merchantlens/config.yaml",
	"/etc/merchantlens/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    60 * time.Second, // large churn batches
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxBodyBytes:    10 << 20,
			Environment:     "development",
		},
		Security: SecurityConfig{
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Analytics: AnalyticsConfig{
			Workers:         0,
			MaxBatchSize:    10000,
			MaxSeriesPoints: 1_000_000,
			Forecast: ForecastConfig{
				SeasonLength:         7,
				Alpha:                0.2,
				Beta:                 0.1,
				Gamma:                0.3,
				MovingAverageWindow:  7,
				TrendThreshold:       0.05,
				SeasonalityThreshold: 0.6,
			},
			Churn: ChurnConfig{
				CriticalThreshold: 75,
				HighThreshold:     50,
				MediumThreshold:   25,
				InactivityDays:    30,
				VIPOrderValue:     100,
			},
			Recommend: RecommendConfig{
				DefaultLimit:       10,
				MaxLimit:           100,
				CollaborativeBoost: 1.2,
				RecentProducts:     3,
				NeighborsPerSource: 10,
				MinSimilarity:      0.3,
			},
		},
	}
}

// LoadWithKoanf layers defaults, the config file and environment variables.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// findConfigFile returns the first existing config file, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields splits comma-separated env values into slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

var envMappings = map[string]string{
	"http_host":             "server.host",
	"http_port":             "server.port",
	"http_read_timeout":     "server.read_timeout",
	"http_write_timeout":    "server.write_timeout",
	"http_idle_timeout":     "server.idle_timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",
	"max_body_bytes":        "server.max_body_bytes",
	"environment":           "server.environment",

	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	"analytics_workers":           "analytics.workers",
	"analytics_max_batch":         "analytics.max_batch_size",
	"analytics_max_series_points": "analytics.max_series_points",

	"forecast_season_length":         "analytics.forecast.season_length",
	"forecast_alpha":                 "analytics.forecast.alpha",
	"forecast_beta":                  "analytics.forecast.beta",
	"forecast_gamma":                 "analytics.forecast.gamma",
	"forecast_moving_average_window": "analytics.forecast.moving_average_window",
	"forecast_trend_threshold":       "analytics.forecast.trend_threshold",
	"forecast_seasonality_threshold": "analytics.forecast.seasonality_threshold",

	"churn_critical_threshold": "analytics.churn.critical_threshold",
	"churn_high_threshold":     "analytics.churn.high_threshold",
	"churn_medium_threshold":   "analytics.churn.medium_threshold",
	"churn_inactivity_days":    "analytics.churn.inactivity_days",
	"churn_vip_order_value":    "analytics.churn.vip_order_value",

	"recommend_default_limit":        "analytics.recommend.default_limit",
	"recommend_max_limit":            "analytics.recommend.max_limit",
	"recommend_collaborative_boost":  "analytics.recommend.collaborative_boost",
	"recommend_recent_products":      "analytics.recommend.recent_products",
	"recommend_neighbors_per_source": "analytics.recommend.neighbors_per_source",
	"recommend_min_similarity":       "analytics.recommend.min_similarity",
}

// envTransformFunc maps known environment variables to koanf keys.
// Unknown variables map to "" and are ignored.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
