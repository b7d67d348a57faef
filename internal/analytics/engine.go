// Merchantlens - Predictive Commerce Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/merchantlens

// Package analytics is the single entry point to the Merchantlens engines.
//
// Engine wraps the forecaster, the churn scorer and the recommendation
// orchestrator. It adds batch fan-out over a bounded worker pool, structured
// logging with per-batch correlation IDs and Prometheus instrumentation.
// All computation is in memory over caller-supplied data; the only error an
// Engine method returns is the context error of a cancelled batch.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/merchantlens/internal/churn"
	"github.com/tomtom215/merchantlens/internal/forecast"
	"github.com/tomtom215/merchantlens/internal/logging"
	"github.com/tomtom215/merchantlens/internal/metrics"
	"github.com/tomtom215/merchantlens/internal/models"
	"github.com/tomtom215/merchantlens/internal/recommend"
)

// Operation names used for logging and metric labels.
const (
	OpForecastBatch   = "forecast_batch"
	OpDailySeries     = "daily_series"
	OpChurnBatch      = "churn_batch"
	OpAtRisk          = "churn_at_risk"
	OpRecommend       = "recommend"
	OpSimilarProducts = "similar_products"
	OpBoughtTogether  = "frequently_bought_together"
)

// Engine is safe for concurrent use.
type Engine struct {
	cfg         Config
	workers     int
	forecaster  *forecast.Forecaster
	scorer      *churn.Scorer
	recommender *recommend.Engine
	logger      zerolog.Logger
}

// NewEngine builds every component from cfg.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg Config, logger zerolog.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid analytics config: %w", err)
	}

	forecaster, err := forecast.NewForecaster(cfg.Forecast)
	if err != nil {
		return nil, fmt.Errorf("create forecaster: %w", err)
	}
	scorer, err := churn.NewScorer(cfg.Churn)
	if err != nil {
		return nil, fmt.Errorf("create churn scorer: %w", err)
	}
	recommender, err := recommend.NewEngine(cfg.Recommend, logger)
	if err != nil {
		return nil, fmt.Errorf("create recommendation engine: %w", err)
	}

	return &Engine{
		cfg:         cfg,
		workers:     cfg.workers(),
		forecaster:  forecaster,
		scorer:      scorer,
		recommender: recommender,
		logger:      logger.With().Str("component", "analytics").Logger(),
	}, nil
}

// Workers returns the effective batch concurrency.
func (e *Engine) Workers() int {
	return e.workers
}

// MaxBatchSize returns the configured batch ceiling.
func (e *Engine) MaxBatchSize() int {
	return e.cfg.MaxBatchSize
}

// MaxSeriesPoints returns the daily series output ceiling.
func (e *Engine) MaxSeriesPoints() int {
	return e.cfg.MaxSeriesPoints
}

// SeriesPoints reports how many points BuildDailySeries would emit.
func (e *Engine) SeriesPoints(sales []models.SaleRecord, from, to time.Time) int {
	return forecast.SeriesPoints(sales, from, to)
}

// operation prepares the context and logger for one engine call.
func (e *Engine) operation(ctx context.Context, op string) (context.Context, *zerolog.Logger) {
	ctx = logging.ContextWithLogger(ctx, e.logger)
	ctx = logging.ContextWithNewCorrelationID(ctx)
	ctx = logging.ContextWithOperation(ctx, op)
	return ctx, logging.Ctx(ctx)
}

func (e *Engine) finish(logger *zerolog.Logger, op string, start time.Time, size int, err error) {
	elapsed := time.Since(start)
	metrics.RecordOperation(op, elapsed, size, err)

	if err != nil {
		logger.Warn().Err(err).Int("items", size).Dur("duration", elapsed).Msg("analytics operation aborted")
		return
	}
	logger.Debug().Int("items", size).Dur("duration", elapsed).Msg("analytics operation completed")
}

// ForecastProduct forecasts a single product.
//
//nolint:gocritic // hugeParam: series passed by value like the batch items
func (e *Engine) ForecastProduct(series models.ProductSeries, periods int) models.ForecastResult {
	result := e.forecaster.ForecastProduct(series, periods)
	metrics.RecordForecast(string(result.Model), string(result.Seasonality.Pattern))
	return result
}

// ForecastBatch forecasts every product over the next periods days.
// Results are in input order.
func (e *Engine) ForecastBatch(ctx context.Context, products []models.ProductSeries, periods int) ([]models.ForecastResult, error) {
	ctx, logger := e.operation(ctx, OpForecastBatch)
	start := time.Now()

	logger.Debug().Int("products", len(products)).Int("periods", periods).Int("workers", e.workers).Msg("forecast batch started")

	results, err := runBatch(ctx, e.workers, products, func(p *models.ProductSeries) models.ForecastResult {
		return e.ForecastProduct(*p, periods)
	})
	e.finish(logger, OpForecastBatch, start, len(products), err)
	if err != nil {
		return nil, fmt.Errorf("forecast batch: %w", err)
	}
	return results, nil
}

// BuildDailySeries aggregates raw sales into zero-filled daily series.
func (e *Engine) BuildDailySeries(ctx context.Context, sales []models.SaleRecord, from, to time.Time) map[string][]models.TimeSeriesPoint {
	_, logger := e.operation(ctx, OpDailySeries)
	start := time.Now()

	series := forecast.BuildDailySeries(sales, from, to)

	e.finish(logger, OpDailySeries, start, len(sales), nil)
	return series
}

// PredictChurn scores a single customer.
func (e *Engine) PredictChurn(customer *models.CustomerFeatureVector) models.ChurnPrediction {
	prediction := e.scorer.Predict(customer)
	metrics.RecordChurnPrediction(string(prediction.RiskLevel))
	return prediction
}

// PredictChurnBatch scores every customer. Results are in input order.
func (e *Engine) PredictChurnBatch(ctx context.Context, customers []models.CustomerFeatureVector) ([]models.ChurnPrediction, error) {
	return e.predictChurnBatch(ctx, OpChurnBatch, customers)
}

func (e *Engine) predictChurnBatch(ctx context.Context, op string, customers []models.CustomerFeatureVector) ([]models.ChurnPrediction, error) {
	ctx, logger := e.operation(ctx, op)
	start := time.Now()

	predictions, err := runBatch(ctx, e.workers, customers, e.PredictChurn)
	e.finish(logger, op, start, len(customers), err)
	if err != nil {
		return nil, fmt.Errorf("churn batch: %w", err)
	}
	return predictions, nil
}

// IdentifyAtRisk returns the HIGH and CRITICAL predictions, highest
// probability first.
func (e *Engine) IdentifyAtRisk(ctx context.Context, customers []models.CustomerFeatureVector) ([]models.ChurnPrediction, error) {
	predictions, err := e.predictChurnBatch(ctx, OpAtRisk, customers)
	if err != nil {
		return nil, err
	}
	return churn.FilterAtRisk(predictions), nil
}

// SummarizeChurn aggregates predictions by risk level.
func (e *Engine) SummarizeChurn(predictions []models.ChurnPrediction) models.ChurnSummary {
	return churn.Summarize(predictions)
}

// Recommend produces personalized recommendations for req.UserID.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req recommend.Request) []models.Recommendation {
	_, logger := e.operation(ctx, OpRecommend)
	start := time.Now()

	recs := e.recommender.Recommend(req)

	e.recordRecommendations(OpRecommend, recs)
	e.finish(logger, OpRecommend, start, len(req.Interactions)+len(req.UserInteractions), nil)
	return recs
}

// SimilarProducts returns products similar to req.ProductID.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) SimilarProducts(ctx context.Context, req recommend.SimilarRequest) []models.Recommendation {
	_, logger := e.operation(ctx, OpSimilarProducts)
	start := time.Now()

	recs := e.recommender.SimilarProducts(req)

	e.recordRecommendations(OpSimilarProducts, recs)
	e.finish(logger, OpSimilarProducts, start, len(req.Interactions), nil)
	return recs
}

// FrequentlyBoughtTogether returns products that share orders with req.ProductID.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) FrequentlyBoughtTogether(ctx context.Context, req recommend.BoughtTogetherRequest) []models.Recommendation {
	_, logger := e.operation(ctx, OpBoughtTogether)
	start := time.Now()

	recs := e.recommender.FrequentlyBoughtTogether(req)

	e.recordRecommendations(OpBoughtTogether, recs)
	e.finish(logger, OpBoughtTogether, start, len(req.Orders), nil)
	return recs
}

func (e *Engine) recordRecommendations(op string, recs []models.Recommendation) {
	counts := make(map[models.RecommendationMethod]int)
	for i := range recs {
		counts[recs[i].Method]++
	}
	for method, n := range counts {
		metrics.RecordRecommendations(op, string(method), n)
	}
}
