// Merchantlens - Predictive Commerce Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/merchantlens

/*
Package middleware provides the HTTP middleware shared by the API router.

Key Components:

  - RequestID: X-Request-ID propagation plus logging context
  - PrometheusMetrics: request count, latency and in-flight gauge, labelled
    by chi route pattern
  - MaxBodySize: request body limit enforced through http.MaxBytesReader

All middleware has the func(http.Handler) http.Handler shape used by chi:

	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.MaxBodySize(cfg.Server.MaxBodyBytes))
*/
package middleware
