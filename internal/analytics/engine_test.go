// Merchantlens - Predictive Commerce Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/merchantlens

package analytics

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/merchantlens/internal/logging"
	"github.com/tomtom215/merchantlens/internal/models"
	"github.com/tomtom215/merchantlens/internal/recommend"
)

func newTestEngine(t *testing.T, workers int) *Engine {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Workers = workers
	e, err := NewEngine(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e
}

var day0 = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func constantSeries(id string, qty float64, n int) models.ProductSeries {
	history := make([]models.TimeSeriesPoint, n)
	for i := range history {
		history[i] = models.TimeSeriesPoint{Date: day0.AddDate(0, 0, i), Quantity: qty}
	}
	return models.ProductSeries{ProductID: id, ProductName: "Product " + id, History: history}
}

func TestNewEngine(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"negative workers", func(c *Config) { c.Workers = -1 }, true},
		{"zero batch size", func(c *Config) { c.MaxBatchSize = 0 }, true},
		{"zero series points", func(c *Config) { c.MaxSeriesPoints = 0 }, true},
		{"invalid forecast config", func(c *Config) { c.Forecast.Smoothing.Alpha = 2 }, true},
		{"invalid churn config", func(c *Config) { c.Churn.Weights.Recency = 0.9 }, true},
		{"nil recommend config uses defaults", func(c *Config) { c.Recommend = nil }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			_, err := NewEngine(cfg, zerolog.Nop())
			if (err != nil) != tt.wantErr {
				t.Errorf("NewEngine() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEngine_Workers(t *testing.T) {
	if got := newTestEngine(t, 3).Workers(); got != 3 {
		t.Errorf("Workers() = %d, want 3", got)
	}
	if got := newTestEngine(t, 0).Workers(); got < 1 {
		t.Errorf("Workers() = %d, want at least 1 when unset", got)
	}
}

func TestForecastBatch_PreservesOrder(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t, 4)

	products := make([]models.ProductSeries, 50)
	for i := range products {
		products[i] = constantSeries(fmt.Sprintf("p%02d", i), float64(i+1), 10)
	}

	results, err := e.ForecastBatch(context.Background(), products, 7)
	if err != nil {
		t.Fatalf("ForecastBatch() error = %v", err)
	}
	if len(results) != len(products) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(products))
	}
	for i, r := range results {
		if r.ProductID != products[i].ProductID {
			t.Fatalf("results[%d].ProductID = %s, want %s", i, r.ProductID, products[i].ProductID)
		}
		if len(r.Forecast) != 7 || r.Forecast[0] != i+1 {
			t.Errorf("results[%d].Forecast = %v, want seven values of %d", i, r.Forecast, i+1)
		}
		if r.Model != models.ModelMovingAverage {
			t.Errorf("results[%d].Model = %s, want moving_average", i, r.Model)
		}
	}
}

func TestForecastBatch_Empty(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t, 2)

	results, err := e.ForecastBatch(context.Background(), nil, 7)
	if err != nil {
		t.Fatalf("ForecastBatch(nil) error = %v", err)
	}
	if len(results) != 0 {
		t.Errorf("ForecastBatch(nil) = %v, want empty", results)
	}
}

func TestForecastBatch_CancelledContext(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := e.ForecastBatch(ctx, []models.ProductSeries{constantSeries("a", 1, 5)}, 3)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ForecastBatch() error = %v, want context.Canceled", err)
	}
	if results != nil {
		t.Errorf("ForecastBatch() results = %v, want nil on cancellation", results)
	}
}

func TestRunBatch_BoundsConcurrency(t *testing.T) {
	t.Parallel()

	items := make([]int, 40)
	for i := range items {
		items[i] = i
	}

	var inFlight, peak int32
	results, err := runBatch(context.Background(), 3, items, func(v *int) int {
		n := atomic.AddInt32(&inFlight, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		time.Sleep(time.Millisecond)
		atomic.AddInt32(&inFlight, -1)
		return *v * 2
	})
	if err != nil {
		t.Fatalf("runBatch() error = %v", err)
	}
	if peak > 3 {
		t.Errorf("peak concurrency = %d, want <= 3", peak)
	}
	for i, r := range results {
		if r != i*2 {
			t.Fatalf("results[%d] = %d, want %d", i, r, i*2)
		}
	}
}

func TestRunBatch_CancelMidway(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	items := make([]int, 100)
	var processed int32
	_, err := runBatch(ctx, 1, items, func(*int) int {
		if atomic.AddInt32(&processed, 1) == 5 {
			cancel()
		}
		return 0
	})

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("runBatch() error = %v, want context.Canceled", err)
	}
	if n := atomic.LoadInt32(&processed); n >= 100 {
		t.Errorf("processed %d items after cancellation, want fewer than 100", n)
	}
}

func TestPredictChurnBatch(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t, 4)

	customers := []models.CustomerFeatureVector{
		{CustomerID: "lapsed", DaysSinceLastOrder: 120, OrderFrequency: 0.17, TotalOrders: 2, ReturnsCount: 1, ComplaintsCount: 1},
		{CustomerID: "empty"},
		{CustomerID: "loyal", DaysSinceLastOrder: 3, OrderFrequency: 5, TotalOrders: 20, TotalSpent: 12000, AvgOrderValue: 600, LastMonthOrders: 6, PreviousMonthOrders: 4},
	}

	predictions, err := e.PredictChurnBatch(context.Background(), customers)
	if err != nil {
		t.Fatalf("PredictChurnBatch() error = %v", err)
	}
	if len(predictions) != 3 {
		t.Fatalf("len(predictions) = %d, want 3", len(predictions))
	}
	for i, p := range predictions {
		if p.CustomerID != customers[i].CustomerID {
			t.Errorf("predictions[%d].CustomerID = %s, want %s", i, p.CustomerID, customers[i].CustomerID)
		}
		if p.ChurnProbability < 0 || p.ChurnProbability > 100 {
			t.Errorf("predictions[%d].ChurnProbability = %v out of range", i, p.ChurnProbability)
		}
	}
	if predictions[0].RiskLevel != models.RiskCritical {
		t.Errorf("lapsed risk = %s, want CRITICAL", predictions[0].RiskLevel)
	}
	if predictions[2].RiskLevel != models.RiskLow {
		t.Errorf("loyal risk = %s, want LOW", predictions[2].RiskLevel)
	}

	summary := e.SummarizeChurn(predictions)
	if summary.Total != 3 || summary.ByRiskLevel[models.RiskCritical] < 1 {
		t.Errorf("SummarizeChurn() = %+v", summary)
	}
}

func TestIdentifyAtRisk(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t, 2)

	customers := []models.CustomerFeatureVector{
		{CustomerID: "loyal", DaysSinceLastOrder: 3, OrderFrequency: 5, TotalOrders: 20, TotalSpent: 12000, AvgOrderValue: 600},
		{CustomerID: "lapsed", DaysSinceLastOrder: 120, OrderFrequency: 0.17, TotalOrders: 2, ReturnsCount: 1, ComplaintsCount: 1},
	}

	atRisk, err := e.IdentifyAtRisk(context.Background(), customers)
	if err != nil {
		t.Fatalf("IdentifyAtRisk() error = %v", err)
	}
	if len(atRisk) != 1 || atRisk[0].CustomerID != "lapsed" {
		t.Errorf("IdentifyAtRisk() = %+v, want only lapsed", atRisk)
	}
}

func TestRecommendationEntryPoints(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t, 1)

	catalog := []models.ProductFeature{
		{ProductID: "A", ProductName: "Mug A", Price: 20},
		{ProductID: "B", ProductName: "Mug B", Price: 21},
	}
	interactions := []models.InteractionRecord{
		{UserID: "u1", ProductID: "A", Type: models.InteractionPurchase, Timestamp: day0},
		{UserID: "u1", ProductID: "B", Type: models.InteractionPurchase, Timestamp: day0},
		{UserID: "me", ProductID: "A", Type: models.InteractionPurchase, Timestamp: day0},
	}

	recs := e.Recommend(context.Background(), recommend.Request{UserID: "me", Limit: 5, Interactions: interactions, Catalog: catalog})
	if len(recs) != 1 || recs[0].ProductID != "B" {
		t.Errorf("Recommend() = %+v, want [B]", recs)
	}

	similar := e.SimilarProducts(context.Background(), recommend.SimilarRequest{ProductID: "A", Limit: 5, Interactions: interactions, Catalog: catalog})
	if len(similar) != 1 || similar[0].ProductID != "B" {
		t.Errorf("SimilarProducts() = %+v, want [B]", similar)
	}

	together := e.FrequentlyBoughtTogether(context.Background(), recommend.BoughtTogetherRequest{
		ProductID: "A",
		Limit:     5,
		Orders:    map[string][]string{"o1": {"A", "B"}},
		Catalog:   catalog,
	})
	if len(together) != 1 || together[0].ProductName != "Mug B" {
		t.Errorf("FrequentlyBoughtTogether() = %+v, want [Mug B]", together)
	}
}

func TestBuildDailySeries(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t, 1)

	sales := []models.SaleRecord{
		{ProductID: "A", Date: day0, Quantity: 2},
		{ProductID: "A", Date: day0.AddDate(0, 0, 2), Quantity: 5},
	}
	series := e.BuildDailySeries(context.Background(), sales, day0, day0.AddDate(0, 0, 2))
	if got := len(series["A"]); got != 3 {
		t.Errorf("len(series[A]) = %d, want 3", got)
	}
}

func TestEngine_LogsCorrelationAndRequestID(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Workers = 1
	e, err := NewEngine(cfg, logging.NewTestLogger(&buf).Level(zerolog.DebugLevel))
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	defer zerolog.SetGlobalLevel(prev)

	ctx := logging.ContextWithRequestID(context.Background(), "req-42")
	if _, err := e.ForecastBatch(ctx, []models.ProductSeries{constantSeries("a", 1, 3)}, 1); err != nil {
		t.Fatalf("ForecastBatch() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{`"component":"analytics"`, `"request_id":"req-42"`, `"operation":"forecast_batch"`, `"correlation_id":"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s: %s", want, out)
		}
	}
}
