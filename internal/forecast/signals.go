// Merchantlens - Predictive Commerce Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/merchantlens

package forecast

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"github.com/tomtom215/merchantlens/internal/models"
)

// Confidence scores how much a forecast over history can be trusted.
func (f *Forecaster) Confidence(history []float64) float64 {
	c := f.cfg.Confidence
	n := len(history)
	switch {
	case n < c.MinimalLength:
		return c.Minimal
	case n < c.ShortLength:
		return c.Short
	case n < c.MediumLength:
		return c.Medium
	}

	m := mean(history)
	if m <= 0 {
		return c.Degenerate
	}
	sd, err := stats.StandardDeviationPopulation(history)
	if err != nil {
		return c.Degenerate
	}
	return math.Max(c.Floor, math.Min(c.Ceiling, 1-sd/m))
}

// Trend classifies the least-squares slope of value against index.
func (f *Forecaster) Trend(history []float64) models.Trend {
	slope := Slope(history)
	switch {
	case slope > f.cfg.TrendThreshold:
		return models.TrendIncreasing
	case slope < -f.cfg.TrendThreshold:
		return models.TrendDecreasing
	default:
		return models.TrendStable
	}
}

// Seasonality probes the weekly lag, then the monthly lag on long histories.
func (f *Forecaster) Seasonality(history []float64) models.Seasonality {
	s := f.cfg.Seasonality
	n := len(history)

	if n >= 2*s.WeeklyLag && Autocorrelation(history, s.WeeklyLag) > s.Threshold {
		return models.Seasonality{Detected: true, Pattern: models.PatternWeekly}
	}
	if n >= s.MonthlyMinHistory && Autocorrelation(history, s.MonthlyLag) > s.Threshold {
		return models.Seasonality{Detected: true, Pattern: models.PatternMonthly}
	}
	return models.Seasonality{}
}

// Slope returns the ordinary least-squares slope of xs against 0..n-1.
// Fewer than two points have no slope.
func Slope(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	idx := make([]float64, len(xs))
	for i := range idx {
		idx[i] = float64(i)
	}
	_, beta := stat.LinearRegression(idx, xs, nil, false)
	if math.IsNaN(beta) {
		return 0
	}
	return beta
}

// Autocorrelation computes the sample autocorrelation of xs at lag k:
//
//	sum((x[t]-m)*(x[t+k]-m)) / sum((x[t]-m)^2)
//
// A series without variance, or a lag outside the series, yields 0.
func Autocorrelation(xs []float64, k int) float64 {
	if k <= 0 || k >= len(xs) {
		return 0
	}
	m := stat.Mean(xs, nil)

	var num, den float64
	for t, x := range xs {
		d := x - m
		den += d * d
		if t+k < len(xs) {
			num += d * (xs[t+k] - m)
		}
	}
	if den == 0 {
		return 0
	}
	return num / den
}
