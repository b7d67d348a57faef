// Merchantlens - Predictive Commerce Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/merchantlens

package forecast

import (
	"testing"
	"time"

	"github.com/tomtom215/merchantlens/internal/models"
)

func TestBuildDailySeries(t *testing.T) {
	t.Parallel()

	from := time.Date(2026, 1, 1, 9, 30, 0, 0, time.UTC)
	to := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	sales := []models.SaleRecord{
		{ProductID: "A", Date: time.Date(2026, 1, 1, 1, 0, 0, 0, time.UTC), Quantity: 2},
		{ProductID: "A", Date: time.Date(2026, 1, 1, 23, 0, 0, 0, time.UTC), Quantity: 3},
		{ProductID: "A", Date: time.Date(2026, 1, 4, 12, 0, 0, 0, time.UTC), Quantity: 1},
		{ProductID: "B", Date: time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC), Quantity: 9},
		{ProductID: "C", Date: time.Date(2025, 12, 31, 23, 59, 0, 0, time.UTC), Quantity: 4},
	}

	got := BuildDailySeries(sales, from, to)

	if len(got) != 1 {
		t.Fatalf("len(series) = %d, want 1 (only A sold inside the window)", len(got))
	}
	points := got["A"]
	want := []float64{5, 0, 0, 1, 0}
	if len(points) != len(want) {
		t.Fatalf("len(A) = %d, want %d", len(points), len(want))
	}
	for i, p := range points {
		if p.Quantity != want[i] {
			t.Errorf("A[%d].Quantity = %f, want %f", i, p.Quantity, want[i])
		}
		wantDate := time.Date(2026, 1, 1+i, 0, 0, 0, 0, time.UTC)
		if !p.Date.Equal(wantDate) {
			t.Errorf("A[%d].Date = %v, want %v", i, p.Date, wantDate)
		}
	}
}

func TestBuildDailySeries_TimezoneNormalized(t *testing.T) {
	t.Parallel()

	tz := time.FixedZone("UTC-5", -5*3600)
	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	// 21:00 at UTC-5 on Feb 1 is 02:00 UTC on Feb 2.
	sales := []models.SaleRecord{{ProductID: "A", Date: time.Date(2026, 2, 1, 21, 0, 0, 0, tz), Quantity: 7}}

	points := BuildDailySeries(sales, from, to)["A"]
	if len(points) != 2 || points[0].Quantity != 0 || points[1].Quantity != 7 {
		t.Errorf("series = %+v, want [0 7]", points)
	}
}

func TestBuildDailySeries_InvertedWindow(t *testing.T) {
	t.Parallel()

	from := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	sales := []models.SaleRecord{{ProductID: "A", Date: from, Quantity: 1}}

	if got := BuildDailySeries(sales, from, to); len(got) != 0 {
		t.Errorf("BuildDailySeries() = %v, want empty", got)
	}
}

func TestSeriesPoints(t *testing.T) {
	t.Parallel()

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	sales := []models.SaleRecord{
		{ProductID: "A", Date: from, Quantity: 1},
		{ProductID: "A", Date: to, Quantity: 1},
		{ProductID: "B", Date: from.AddDate(0, 0, 3), Quantity: 1},
		{ProductID: "C", Date: to.AddDate(0, 0, 1), Quantity: 1},
	}

	tests := []struct {
		name     string
		from, to time.Time
		want     int
	}{
		{"two products over ten days", from, to, 20},
		{"inverted window", to, from, 0},
		{"single day", from, from, 1},
	}
	for _, tt := range tests {
		got := SeriesPoints(sales, tt.from, tt.to)
		if got != tt.want {
			t.Errorf("%s: SeriesPoints() = %d, want %d", tt.name, got, tt.want)
		}
		total := 0
		for _, points := range BuildDailySeries(sales, tt.from, tt.to) {
			total += len(points)
		}
		if got != total {
			t.Errorf("%s: SeriesPoints() = %d, BuildDailySeries emitted %d", tt.name, got, total)
		}
	}
}
