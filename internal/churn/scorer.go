// Merchantlens - Predictive Commerce Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/merchantlens

// Package churn scores the probability that a customer stops buying.
//
// The score is a weighted linear model over six bucketed sub-scores
// (recency, frequency, monetary, engagement, trend, satisfaction). Every
// prediction carries its weighted factors, rule-based recommendations and
// retention actions for the resulting risk level.
package churn

import (
	"fmt"
	"math"
	"sort"

	"github.com/tomtom215/merchantlens/internal/models"
)

// Scorer computes churn predictions. It is safe for concurrent use.
type Scorer struct {
	cfg Config
}

// NewScorer creates a scorer with a validated config.
func NewScorer(cfg Config) (*Scorer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid churn config: %w", err)
	}
	return &Scorer{cfg: cfg}, nil
}

// Config returns the scorer configuration.
func (s *Scorer) Config() Config {
	return s.cfg
}

// Predict scores a single customer. It never fails; missing optional features
// fall back to their documented defaults.
func (s *Scorer) Predict(f *models.CustomerFeatureVector) models.ChurnPrediction {
	subs := s.subscores(f)

	var total float64
	factors := make([]models.ChurnFactor, len(subs))
	for i, sub := range subs {
		weighted := sub.value * sub.weight
		total += weighted

		impact := models.ImpactPositive
		if sub.value > negativeImpactAbove {
			impact = models.ImpactNegative
		}
		factors[i] = models.ChurnFactor{
			Name:        sub.name,
			Description: sub.description,
			Impact:      impact,
			Weight:      weighted,
		}
	}
	sort.SliceStable(factors, func(i, j int) bool {
		return math.Abs(factors[i].Weight) > math.Abs(factors[j].Weight)
	})

	probability := clamp(math.Round(100*total), 0, 100)
	level := s.cfg.Risk.Level(probability)

	return models.ChurnPrediction{
		CustomerID:       f.CustomerID,
		CustomerName:     f.Name,
		ChurnProbability: probability,
		RiskLevel:        level,
		Factors:          factors,
		Recommendations:  s.recommendations(f, level),
		RetentionActions: s.retentionActions(level),
	}
}

// PredictBatch scores each customer independently; output order matches input.
func (s *Scorer) PredictBatch(customers []models.CustomerFeatureVector) []models.ChurnPrediction {
	out := make([]models.ChurnPrediction, len(customers))
	for i := range customers {
		out[i] = s.Predict(&customers[i])
	}
	return out
}

// IdentifyAtRisk returns the HIGH and CRITICAL predictions, most likely
// churners first and customer id ascending on ties.
func (s *Scorer) IdentifyAtRisk(customers []models.CustomerFeatureVector) []models.ChurnPrediction {
	return FilterAtRisk(s.PredictBatch(customers))
}

// FilterAtRisk keeps the HIGH and CRITICAL predictions in ranked order.
func FilterAtRisk(predictions []models.ChurnPrediction) []models.ChurnPrediction {
	atRisk := make([]models.ChurnPrediction, 0, len(predictions))
	for i := range predictions {
		if predictions[i].RiskLevel.AtRisk() {
			atRisk = append(atRisk, predictions[i])
		}
	}
	sort.Slice(atRisk, func(i, j int) bool {
		if atRisk[i].ChurnProbability != atRisk[j].ChurnProbability {
			return atRisk[i].ChurnProbability > atRisk[j].ChurnProbability
		}
		return atRisk[i].CustomerID < atRisk[j].CustomerID
	})
	return atRisk
}

// Summarize aggregates predictions by risk level.
func Summarize(predictions []models.ChurnPrediction) models.ChurnSummary {
	summary := models.ChurnSummary{
		Total: len(predictions),
		ByRiskLevel: map[models.RiskLevel]int{
			models.RiskLow:      0,
			models.RiskMedium:   0,
			models.RiskHigh:     0,
			models.RiskCritical: 0,
		},
	}
	if len(predictions) == 0 {
		return summary
	}

	var sum float64
	for i := range predictions {
		p := &predictions[i]
		summary.ByRiskLevel[p.RiskLevel]++
		sum += p.ChurnProbability
		if p.RiskLevel.AtRisk() {
			summary.AtRisk++
		}
	}
	summary.AverageProbability = math.Round(sum/float64(len(predictions))*100) / 100
	return summary
}
