// Merchantlens - Predictive Commerce Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/merchantlens

package forecast

import (
	"sort"
	"time"

	"github.com/tomtom215/merchantlens/internal/models"
)

const day = 24 * time.Hour

// BuildDailySeries buckets raw sale lines into one point per UTC day in
// [from, to] for every product that sold inside the window. Days without
// sales are filled with zero quantity. An inverted window yields an empty map.
func BuildDailySeries(sales []models.SaleRecord, from, to time.Time) map[string][]models.TimeSeriesPoint {
	start := truncateDay(from)
	end := truncateDay(to)
	series := make(map[string][]models.TimeSeriesPoint)
	if end.Before(start) {
		return series
	}

	days := int(end.Sub(start)/day) + 1
	totals := make(map[string][]float64)
	for _, s := range sales {
		d := truncateDay(s.Date)
		if d.Before(start) || d.After(end) {
			continue
		}
		buckets, ok := totals[s.ProductID]
		if !ok {
			buckets = make([]float64, days)
			totals[s.ProductID] = buckets
		}
		buckets[int(d.Sub(start)/day)] += s.Quantity
	}

	for id, buckets := range totals {
		points := make([]models.TimeSeriesPoint, days)
		for i, q := range buckets {
			points[i] = models.TimeSeriesPoint{Date: start.Add(time.Duration(i) * day), Quantity: q}
		}
		series[id] = points
	}
	return series
}

// SeriesPoints returns the number of points BuildDailySeries would emit for
// the same input: distinct products selling inside the window times days.
func SeriesPoints(sales []models.SaleRecord, from, to time.Time) int {
	start := truncateDay(from)
	end := truncateDay(to)
	if end.Before(start) {
		return 0
	}

	products := make(map[string]struct{})
	for _, s := range sales {
		d := truncateDay(s.Date)
		if d.Before(start) || d.After(end) {
			continue
		}
		products[s.ProductID] = struct{}{}
	}
	return len(products) * (int(end.Sub(start)/day) + 1)
}

func truncateDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// quantities returns the quantities of a date-sorted copy of points.
func quantities(points []models.TimeSeriesPoint) []float64 {
	sorted := make([]models.TimeSeriesPoint, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	out := make([]float64, len(sorted))
	for i, p := range sorted {
		out[i] = p.Quantity
	}
	return out
}
