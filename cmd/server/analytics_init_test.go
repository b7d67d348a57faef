// Merchantlens - Predictive Commerce Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/merchantlens

package main

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/merchantlens/internal/analytics"
	"github.com/tomtom215/merchantlens/internal/config"
)

func TestBuildAnalyticsConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	got := buildAnalyticsConfig(&cfg.Analytics)
	want := analytics.DefaultConfig()

	if got.Forecast != want.Forecast {
		t.Errorf("Forecast = %+v, want component defaults %+v", got.Forecast, want.Forecast)
	}
	if got.Churn != want.Churn {
		t.Errorf("Churn = %+v, want component defaults %+v", got.Churn, want.Churn)
	}
	if *got.Recommend != *want.Recommend {
		t.Errorf("Recommend = %+v, want component defaults %+v", *got.Recommend, *want.Recommend)
	}
	if got.MaxBatchSize != want.MaxBatchSize {
		t.Errorf("MaxBatchSize = %d, want %d", got.MaxBatchSize, want.MaxBatchSize)
	}
	if got.MaxSeriesPoints != want.MaxSeriesPoints {
		t.Errorf("MaxSeriesPoints = %d, want %d", got.MaxSeriesPoints, want.MaxSeriesPoints)
	}
}

func TestBuildAnalyticsConfig_Overrides(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	a := cfg.Analytics
	a.Workers = 3
	a.Forecast.Alpha = 0.5
	a.Churn.CriticalThreshold = 90
	a.Recommend.MaxLimit = 25
	a.Recommend.MinSimilarity = 0.4

	got := buildAnalyticsConfig(&a)

	if got.Workers != 3 {
		t.Errorf("Workers = %d, want 3", got.Workers)
	}
	if got.Forecast.Smoothing.Alpha != 0.5 {
		t.Errorf("Alpha = %v, want 0.5", got.Forecast.Smoothing.Alpha)
	}
	if got.Churn.Risk.Critical != 90 {
		t.Errorf("Risk.Critical = %v, want 90", got.Churn.Risk.Critical)
	}
	if got.Recommend.Limits.MaxLimit != 25 {
		t.Errorf("MaxLimit = %d, want 25", got.Recommend.Limits.MaxLimit)
	}
	if got.Recommend.Content.MinSimilarity != 0.4 {
		t.Errorf("MinSimilarity = %v, want 0.4", got.Recommend.Content.MinSimilarity)
	}

	if _, err := initAnalytics(&config.Config{Analytics: a}, zerolog.Nop()); err != nil {
		t.Errorf("initAnalytics() error = %v", err)
	}
}

func TestInitAnalytics_InvalidConfig(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	cfg.Analytics.Forecast.Alpha = 1.5

	if _, err := initAnalytics(cfg, zerolog.Nop()); err == nil {
		t.Error("initAnalytics() should reject alpha outside (0, 1)")
	}
}
