// Merchantlens - Predictive Commerce Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/merchantlens

package churn

import (
	"fmt"
	"math"

	"github.com/tomtom215/merchantlens/internal/models"
)

// Config contains the weights, thresholds and action tiers of the scorer.
type Config struct {
	// Weights defines the contribution of each factor to the probability.
	// They must be non-negative and sum to 1.0.
	Weights FactorWeights `json:"weights" koanf:"weights"`

	// Risk maps a probability to a risk level.
	Risk RiskThresholds `json:"risk" koanf:"risk"`

	// Rules contains the feature thresholds of the recommendation table.
	Rules RuleThresholds `json:"rules" koanf:"rules"`

	// Discounts contains the discount percentage offered per risk tier.
	Discounts DiscountTiers `json:"discounts" koanf:"discounts"`
}

// FactorWeights defines the weight of each churn factor.
type FactorWeights struct {
	Recency      float64 `json:"recency" koanf:"recency"`
	Frequency    float64 `json:"frequency" koanf:"frequency"`
	Monetary     float64 `json:"monetary" koanf:"monetary"`
	Engagement   float64 `json:"engagement" koanf:"engagement"`
	Trend        float64 `json:"trend" koanf:"trend"`
	Satisfaction float64 `json:"satisfaction" koanf:"satisfaction"`
}

// Sum returns the total weight.
func (w FactorWeights) Sum() float64 {
	return w.Recency + w.Frequency + w.Monetary + w.Engagement + w.Trend + w.Satisfaction
}

// RiskThresholds are inclusive lower bounds on the churn probability.
type RiskThresholds struct {
	Critical float64 `json:"critical" koanf:"critical"`
	High     float64 `json:"high" koanf:"high"`
	Medium   float64 `json:"medium" koanf:"medium"`
}

// Level returns the risk level for a probability in [0, 100].
func (r RiskThresholds) Level(probability float64) models.RiskLevel {
	switch {
	case probability >= r.Critical:
		return models.RiskCritical
	case probability >= r.High:
		return models.RiskHigh
	case probability >= r.Medium:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}

// RuleThresholds contains the feature thresholds that trigger recommendations.
type RuleThresholds struct {
	// InactivityDays triggers a win-back campaign when exceeded. Default: 30.
	InactivityDays int `json:"inactivity_days" koanf:"inactivity_days"`

	// VIPOrderValue triggers a VIP invitation for at-risk customers whose
	// average order value exceeds it. Default: 100.
	VIPOrderValue float64 `json:"vip_order_value" koanf:"vip_order_value"`

	// LowFrequency triggers replenishment reminders below this many orders
	// per month. Default: 1.
	LowFrequency float64 `json:"low_frequency" koanf:"low_frequency"`

	// LowEmailEngagement triggers an alternate channel below this rate.
	// Default: 0.2.
	LowEmailEngagement float64 `json:"low_email_engagement" koanf:"low_email_engagement"`

	// LoyaltyReminderPoints triggers a points reminder above this balance.
	// Default: 500.
	LoyaltyReminderPoints int `json:"loyalty_reminder_points" koanf:"loyalty_reminder_points"`
}

// DiscountTiers contains discount percentages per risk level.
type DiscountTiers struct {
	Critical int `json:"critical" koanf:"critical"`
	High     int `json:"high" koanf:"high"`
	Medium   int `json:"medium" koanf:"medium"`
}

// DefaultConfig returns the production scorer configuration.
func DefaultConfig() Config {
	return Config{
		Weights: FactorWeights{
			Recency:      0.30,
			Frequency:    0.25,
			Monetary:     0.20,
			Engagement:   0.10,
			Trend:        0.10,
			Satisfaction: 0.05,
		},
		Risk: RiskThresholds{
			Critical: 75,
			High:     50,
			Medium:   25,
		},
		Rules: RuleThresholds{
			InactivityDays:        30,
			VIPOrderValue:         100,
			LowFrequency:          1,
			LowEmailEngagement:    0.2,
			LoyaltyReminderPoints: 500,
		},
		Discounts: DiscountTiers{
			Critical: 25,
			High:     15,
			Medium:   10,
		},
	}
}

// Validate checks that all parameters are in range.
func (c Config) Validate() error {
	w := c.Weights
	for name, v := range map[string]float64{
		"recency": w.Recency, "frequency": w.Frequency, "monetary": w.Monetary,
		"engagement": w.Engagement, "trend": w.Trend, "satisfaction": w.Satisfaction,
	} {
		if v < 0 {
			return fmt.Errorf("weights.%s must be non-negative, got %f", name, v)
		}
	}
	if sum := w.Sum(); math.Abs(sum-1) > 1e-6 {
		return fmt.Errorf("weights must sum to 1, got %f", sum)
	}

	r := c.Risk
	if r.Medium <= 0 || r.Medium >= r.High || r.High >= r.Critical || r.Critical > 100 {
		return fmt.Errorf("risk thresholds must satisfy 0 < medium < high < critical <= 100, got %v/%v/%v",
			r.Medium, r.High, r.Critical)
	}

	if c.Rules.InactivityDays < 0 {
		return fmt.Errorf("rules.inactivity_days must be non-negative, got %d", c.Rules.InactivityDays)
	}
	if c.Rules.LowEmailEngagement < 0 || c.Rules.LowEmailEngagement > 1 {
		return fmt.Errorf("rules.low_email_engagement must be in [0, 1], got %f", c.Rules.LowEmailEngagement)
	}

	d := c.Discounts
	if d.Medium < 0 || d.Medium > d.High || d.High > d.Critical || d.Critical > 100 {
		return fmt.Errorf("discount tiers must satisfy 0 <= medium <= high <= critical <= 100, got %d/%d/%d",
			d.Medium, d.High, d.Critical)
	}

	return nil
}

// RiskLevelFor maps a probability to a risk level using the default thresholds.
func RiskLevelFor(probability float64) models.RiskLevel {
	return DefaultConfig().Risk.Level(probability)
}
