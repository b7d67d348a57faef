// Merchantlens - Predictive Commerce Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/merchantlens

/*
Command server runs the Merchantlens analytics API.

Startup order:

 1. Configuration: defaults, optional config.yaml, environment (Koanf v2)
 2. Logging: zerolog initialized from the logging section
 3. Analytics engine: forecaster, churn scorer and recommender built from
    the analytics section
 4. HTTP server: chi router with CORS, rate limiting and Prometheus metrics
 5. Supervisor tree: suture runs the HTTP server and restarts it on failure

Common environment variables:

	HTTP_PORT=8080
	LOG_LEVEL=info
	LOG_FORMAT=json
	ANALYTICS_WORKERS=0          # 0 = one per CPU
	ANALYTICS_MAX_BATCH=10000
	FORECAST_ALPHA=0.2
	CHURN_CRITICAL_THRESHOLD=75
	CORS_ORIGINS=https://shop.example.com
	CONFIG_PATH=/etc/merchantlens/config.yaml

SIGINT and SIGTERM cancel the root context. The HTTP server then drains
in-flight requests for server.shutdown_timeout before the process exits.
*/
package main
