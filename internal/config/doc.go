// Merchantlens - Predictive Commerce Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/merchantlens

/*
Package config loads the Merchantlens service configuration.

# Configuration Sources

Values are layered with koanf, later sources overriding earlier ones:

 1. Built-in defaults (defaultConfig)
 2. A YAML file: CONFIG_PATH, else config.yaml / config.yml in the working
    directory, else /etc/merchantlens/config.yaml
 3. Environment variables

# Environment Variables

Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8080)
  - HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_IDLE_TIMEOUT
  - HTTP_SHUTDOWN_TIMEOUT: Graceful shutdown budget (default: 10s)
  - MAX_BODY_BYTES: Request body limit (default: 10MB)
  - ENVIRONMENT: development or production

Security:
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

Analytics:
  - ANALYTICS_WORKERS: Batch fan-out limit (default: number of CPUs)
  - ANALYTICS_MAX_BATCH: Largest accepted batch (default: 10000)
  - FORECAST_SEASON_LENGTH, FORECAST_ALPHA, FORECAST_BETA, FORECAST_GAMMA
  - FORECAST_TREND_THRESHOLD, FORECAST_SEASONALITY_THRESHOLD
  - CHURN_CRITICAL_THRESHOLD, CHURN_HIGH_THRESHOLD, CHURN_MEDIUM_THRESHOLD
  - CHURN_INACTIVITY_DAYS, CHURN_VIP_ORDER_VALUE
  - RECOMMEND_DEFAULT_LIMIT, RECOMMEND_MAX_LIMIT
  - RECOMMEND_COLLABORATIVE_BOOST, RECOMMEND_MIN_SIMILARITY

# Usage

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal().Err(err).Msg("Failed to load configuration")
	}

The analytics section carries tuning values only. cmd/server turns them into
the immutable forecast, churn and recommend component configs.
*/
package config
