// Merchantlens - Predictive Commerce Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/merchantlens

package forecast

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/tomtom215/merchantlens/internal/models"
)

func newTestForecaster(t *testing.T) *Forecaster {
	t.Helper()
	f, err := NewForecaster(DefaultConfig())
	if err != nil {
		t.Fatalf("NewForecaster() error = %v", err)
	}
	return f
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestForecast_MovingAverageFallback(t *testing.T) {
	t.Parallel()
	f := newTestForecaster(t)

	got := f.Forecast([]float64{10, 12, 15, 11, 13, 16, 14}, 7)
	want := []int{13, 13, 13, 13, 13, 13, 13}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Forecast() = %v, want %v", got, want)
	}
}

func TestForecast_Length(t *testing.T) {
	t.Parallel()
	f := newTestForecaster(t)

	for n := 0; n <= 40; n++ {
		history := make([]float64, n)
		for i := range history {
			history[i] = float64((i*7)%11) + 1
		}
		for periods := -2; periods <= 10; periods++ {
			got := f.Forecast(history, periods)
			wantLen := periods
			if wantLen < 0 {
				wantLen = 0
			}
			if len(got) != wantLen {
				t.Fatalf("len(Forecast(n=%d, periods=%d)) = %d, want %d", n, periods, len(got), wantLen)
			}
			for i, q := range got {
				if q < 0 {
					t.Fatalf("Forecast(n=%d)[%d] = %d, want >= 0", n, i, q)
				}
			}
		}
	}
}

func TestForecast_ConstantHistory(t *testing.T) {
	t.Parallel()
	f := newTestForecaster(t)

	tests := []struct {
		name    string
		history []float64
		want    int
	}{
		{"moving average", repeat(25, 10), 25},
		{"holt-winters", repeat(25, 14), 25},
		{"holt-winters long", repeat(8, 60), 8},
		{"all zero", repeat(0, 21), 0},
		{"empty", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i, q := range f.Forecast(tt.history, 5) {
				if q != tt.want {
					t.Errorf("Forecast()[%d] = %d, want %d", i, q, tt.want)
				}
			}
		})
	}
}

func TestForecast_WeeklyPattern(t *testing.T) {
	t.Parallel()
	f := newTestForecaster(t)

	week := []float64{1, 2, 3, 4, 5, 6, 7}
	var history []float64
	for i := 0; i < 4; i++ {
		history = append(history, week...)
	}

	got := f.Forecast(history, 7)
	want := []int{1, 2, 3, 4, 5, 6, 7}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Forecast() = %v, want %v", got, want)
	}
}

func TestForecast_NegativeProjectionFloored(t *testing.T) {
	t.Parallel()
	f := newTestForecaster(t)

	history := make([]float64, 21)
	for i := range history {
		history[i] = float64(40 - 2*i)
	}
	for i, q := range f.Forecast(history, 30) {
		if q < 0 {
			t.Errorf("Forecast()[%d] = %d, want >= 0", i, q)
		}
	}
}

// A silent first week gives a zero initial level, so every initial seasonal
// index is zero and the projection only partially catches up with the
// latest week.
func TestForecast_ZeroFirstSeason(t *testing.T) {
	t.Parallel()
	f := newTestForecaster(t)

	history := append(repeat(0, 7), repeat(10, 7)...)
	got := f.Forecast(history, 7)
	want := []int{2, 3, 3, 4, 4, 5, 6}
	if len(got) != len(want) {
		t.Fatalf("len(Forecast()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Forecast() = %v, want %v", got, want)
			break
		}
	}
}

func TestConfidence(t *testing.T) {
	t.Parallel()
	f := newTestForecaster(t)

	alternating := make([]float64, 40)
	for i := range alternating {
		if i%2 == 1 {
			alternating[i] = 10
		}
	}

	tests := []struct {
		name    string
		history []float64
		want    float64
	}{
		{"empty", nil, 0.4},
		{"under a week", repeat(5, 6), 0.4},
		{"one week", repeat(5, 7), 0.6},
		{"two weeks", repeat(5, 14), 0.75},
		{"stable month", repeat(5, 30), 0.95},
		{"noisy month", alternating, 0.5},
		{"zero mean", repeat(0, 40), 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Confidence(tt.history); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Confidence() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestConfidence_NonDecreasingInLength(t *testing.T) {
	t.Parallel()
	f := newTestForecaster(t)

	prev := 0.0
	for n := 0; n <= 60; n++ {
		got := f.Confidence(repeat(3, n))
		if got < prev {
			t.Fatalf("Confidence(n=%d) = %f, dropped below %f", n, got, prev)
		}
		prev = got
	}
}

func TestTrend(t *testing.T) {
	t.Parallel()
	f := newTestForecaster(t)

	rising := make([]float64, 20)
	falling := make([]float64, 20)
	for i := range rising {
		rising[i] = float64(i)
		falling[i] = float64(20 - i)
	}

	tests := []struct {
		name    string
		history []float64
		want    models.Trend
	}{
		{"rising", rising, models.TrendIncreasing},
		{"falling", falling, models.TrendDecreasing},
		{"flat", repeat(4, 20), models.TrendStable},
		{"single point", []float64{9}, models.TrendStable},
		{"scenario", []float64{10, 12, 15, 11, 13, 16, 14}, models.TrendIncreasing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Trend(tt.history); got != tt.want {
				t.Errorf("Trend() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSeasonality(t *testing.T) {
	t.Parallel()
	f := newTestForecaster(t)

	weekly := make([]float64, 28)
	for i := range weekly {
		weekly[i] = float64(i%7 + 1)
	}
	monthly := make([]float64, 90)
	for i := range monthly {
		monthly[i] = float64(i % 30)
	}

	tests := []struct {
		name    string
		history []float64
		want    models.Seasonality
	}{
		{"weekly", weekly, models.Seasonality{Detected: true, Pattern: models.PatternWeekly}},
		{"monthly", monthly, models.Seasonality{Detected: true, Pattern: models.PatternMonthly}},
		{"too short", weekly[:10], models.Seasonality{}},
		{"constant", repeat(2, 70), models.Seasonality{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Seasonality(tt.history); got != tt.want {
				t.Errorf("Seasonality() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAutocorrelation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		xs   []float64
		lag  int
		want float64
	}{
		{"constant", repeat(1, 20), 7, 0},
		{"lag out of range", []float64{1, 2, 3}, 3, 0},
		{"zero lag", []float64{1, 2, 3}, 0, 0},
		{"period two", []float64{0, 1, 0, 1}, 2, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Autocorrelation(tt.xs, tt.lag); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Autocorrelation() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestForecastProduct(t *testing.T) {
	t.Parallel()
	f := newTestForecaster(t)

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	quantities := []float64{10, 12, 15, 11, 13, 16, 14}
	order := []int{3, 0, 6, 1, 5, 2, 4}
	history := make([]models.TimeSeriesPoint, 0, len(order))
	for _, i := range order {
		history = append(history, models.TimeSeriesPoint{Date: base.AddDate(0, 0, i), Quantity: quantities[i]})
	}
	input := append([]models.TimeSeriesPoint(nil), history...)

	got := f.ForecastProduct(models.ProductSeries{ProductID: "sku-1", ProductName: "Mug", History: history}, 7)

	if got.ProductID != "sku-1" || got.ProductName != "Mug" {
		t.Errorf("identity = %q/%q, want sku-1/Mug", got.ProductID, got.ProductName)
	}
	if got.CurrentAverage != 13 {
		t.Errorf("CurrentAverage = %f, want 13", got.CurrentAverage)
	}
	if got.ForecastedDemand != 13 {
		t.Errorf("ForecastedDemand = %f, want 13", got.ForecastedDemand)
	}
	if got.Period != "next 7 days" {
		t.Errorf("Period = %q, want %q", got.Period, "next 7 days")
	}
	if got.Model != models.ModelMovingAverage {
		t.Errorf("Model = %q, want %q", got.Model, models.ModelMovingAverage)
	}
	if got.Confidence != 0.6 {
		t.Errorf("Confidence = %f, want 0.6", got.Confidence)
	}
	if got.Trend != models.TrendIncreasing {
		t.Errorf("Trend = %q, want %q", got.Trend, models.TrendIncreasing)
	}
	if got.HistoryLength != 7 || len(got.Forecast) != 7 {
		t.Errorf("HistoryLength = %d, len(Forecast) = %d, want 7 and 7", got.HistoryLength, len(got.Forecast))
	}
	if !reflect.DeepEqual(history, input) {
		t.Error("ForecastProduct() reordered the caller's history")
	}
}

func TestForecastProduct_EmptyHistory(t *testing.T) {
	t.Parallel()
	f := newTestForecaster(t)

	got := f.ForecastProduct(models.ProductSeries{ProductID: "sku-0"}, 3)
	if !reflect.DeepEqual(got.Forecast, []int{0, 0, 0}) {
		t.Errorf("Forecast = %v, want [0 0 0]", got.Forecast)
	}
	if got.CurrentAverage != 0 || got.ForecastedDemand != 0 {
		t.Errorf("averages = %f/%f, want 0/0", got.CurrentAverage, got.ForecastedDemand)
	}
	if got.Seasonality.Detected {
		t.Error("Seasonality.Detected = true, want false")
	}
}

func TestNewForecaster_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"alpha above one", func(c *Config) { c.Smoothing.Alpha = 1.5 }},
		{"zero season", func(c *Config) { c.Smoothing.SeasonLength = 0 }},
		{"zero window", func(c *Config) { c.MovingAverageWindow = 0 }},
		{"negative trend threshold", func(c *Config) { c.TrendThreshold = -1 }},
		{"unordered buckets", func(c *Config) { c.Confidence.ShortLength = 40 }},
		{"floor above ceiling", func(c *Config) { c.Confidence.Floor = 0.99 }},
		{"monthly history too short", func(c *Config) { c.Seasonality.MonthlyMinHistory = 30 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			if _, err := NewForecaster(cfg); err == nil {
				t.Error("NewForecaster() error = nil, want error")
			}
		})
	}
}
