// Merchantlens - Predictive Commerce Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/merchantlens

package api

import (
	"time"

	"github.com/tomtom215/merchantlens/internal/analytics"
)

// Handler serves the analytics endpoints.
type Handler struct {
	engine    *analytics.Engine
	startTime time.Time
}

// NewHandler creates a handler backed by engine.
func NewHandler(engine *analytics.Engine) *Handler {
	return &Handler{
		engine:    engine,
		startTime: time.Now(),
	}
}
