// Merchantlens - Predictive Commerce Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/merchantlens

package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/merchantlens/internal/analytics"
	"github.com/tomtom215/merchantlens/internal/config"
)

// initAnalytics builds the analytics engine from app config.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initAnalytics(cfg *config.Config, logger zerolog.Logger) (*analytics.Engine, error) {
	engineCfg := buildAnalyticsConfig(&cfg.Analytics)

	engine, err := analytics.NewEngine(engineCfg, logger)
	if err != nil {
		return nil, fmt.Errorf("create analytics engine: %w", err)
	}

	logger.Info().
		Int("workers", engine.Workers()).
		Int("max_batch_size", engine.MaxBatchSize()).
		Int("season_length", engineCfg.Forecast.Smoothing.SeasonLength).
		Float64("churn_critical_threshold", engineCfg.Churn.Risk.Critical).
		Int("recommend_default_limit", engineCfg.Recommend.Limits.DefaultLimit).
		Msg("analytics engine initialized")

	return engine, nil
}

// buildAnalyticsConfig overlays the operator tunables on the component
// defaults. Settings not exposed in app config keep their defaults.
func buildAnalyticsConfig(cfg *config.AnalyticsConfig) analytics.Config {
	out := analytics.DefaultConfig()
	out.Workers = cfg.Workers
	out.MaxBatchSize = cfg.MaxBatchSize
	out.MaxSeriesPoints = cfg.MaxSeriesPoints

	f := &out.Forecast
	f.Smoothing.SeasonLength = cfg.Forecast.SeasonLength
	f.Smoothing.Alpha = cfg.Forecast.Alpha
	f.Smoothing.Beta = cfg.Forecast.Beta
	f.Smoothing.Gamma = cfg.Forecast.Gamma
	f.MovingAverageWindow = cfg.Forecast.MovingAverageWindow
	f.TrendThreshold = cfg.Forecast.TrendThreshold
	f.Seasonality.Threshold = cfg.Forecast.SeasonalityThreshold

	c := &out.Churn
	c.Risk.Critical = cfg.Churn.CriticalThreshold
	c.Risk.High = cfg.Churn.HighThreshold
	c.Risk.Medium = cfg.Churn.MediumThreshold
	c.Rules.InactivityDays = cfg.Churn.InactivityDays
	c.Rules.VIPOrderValue = cfg.Churn.VIPOrderValue

	r := out.Recommend
	r.Limits.DefaultLimit = cfg.Recommend.DefaultLimit
	r.Limits.MaxLimit = cfg.Recommend.MaxLimit
	r.Hybrid.CollaborativeBoost = cfg.Recommend.CollaborativeBoost
	r.Hybrid.RecentProducts = cfg.Recommend.RecentProducts
	r.Collaborative.NeighborsPerSource = cfg.Recommend.NeighborsPerSource
	r.Content.MinSimilarity = cfg.Recommend.MinSimilarity

	return out
}
