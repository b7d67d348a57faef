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

// Factor names, in declaration order. Equal-weight factors keep this order.
const (
	FactorRecency      = "recency"
	FactorFrequency    = "frequency"
	FactorMonetary     = "monetary"
	FactorEngagement   = "engagement"
	FactorTrend        = "trend"
	FactorSatisfaction = "satisfaction"
)

// Sub-score defaults for missing optional features.
const (
	defaultDisengagement = 0.5
	negativeImpactAbove  = 0.5
)

// subscore is one normalized factor before weighting.
type subscore struct {
	name        string
	value       float64
	weight      float64
	description string
}

func (s *Scorer) subscores(f *models.CustomerFeatureVector) []subscore {
	w := s.cfg.Weights
	return []subscore{
		{FactorRecency, recencyScore(f.DaysSinceLastOrder), w.Recency, recencyDescription(f)},
		{FactorFrequency, frequencyScore(f.OrderFrequency, f.TotalOrders), w.Frequency, frequencyDescription(f)},
		{FactorMonetary, monetaryScore(f.TotalSpent, f.AvgOrderValue), w.Monetary, monetaryDescription(f)},
		{FactorEngagement, engagementScore(f.EmailEngagement, f.LoyaltyPoints), w.Engagement, engagementDescription(f)},
		{FactorTrend, trendScore(f.LastMonthOrders, f.PreviousMonthOrders), w.Trend, trendDescription(f)},
		{FactorSatisfaction, satisfactionScore(f.TotalOrders, f.ReturnsCount, f.ComplaintsCount), w.Satisfaction, satisfactionDescription(f)},
	}
}

func recencyScore(days int) float64 {
	switch {
	case days <= 7:
		return 0.0
	case days <= 30:
		return 0.2
	case days <= 60:
		return 0.5
	case days <= 90:
		return 0.7
	case days <= 180:
		return 0.9
	default:
		return 1.0
	}
}

func frequencyScore(perMonth float64, totalOrders int) float64 {
	switch {
	case perMonth >= 4:
		return 0.0
	case perMonth >= 2:
		return 0.2
	case perMonth >= 1:
		return 0.4
	case perMonth >= 0.5:
		return 0.6
	case totalOrders <= 1:
		return 1.0
	default:
		return 0.8
	}
}

func monetaryScore(totalSpent, avgOrderValue float64) float64 {
	switch {
	case totalSpent >= 10000:
		return 0.0
	case totalSpent >= 5000:
		return 0.1
	case totalSpent >= 2000:
		return 0.3
	case totalSpent >= 1000:
		return 0.5
	case totalSpent >= 500:
		return 0.7
	case avgOrderValue < 50:
		return 1.0
	default:
		return 0.8
	}
}

func engagementScore(email *float64, loyalty *int) float64 {
	disengagement := defaultDisengagement
	if email != nil {
		disengagement = 1 - clamp(*email, 0, 1)
	}

	points := 0
	if loyalty != nil {
		points = *loyalty
	}
	var loyaltyRisk float64
	switch {
	case points > 1000:
		loyaltyRisk = 0
	case points > 500:
		loyaltyRisk = 0.3
	default:
		loyaltyRisk = 0.7
	}

	return (disengagement + loyaltyRisk) / 2
}

func trendScore(last, previous int) float64 {
	switch {
	case last > previous:
		return 0.0
	case last == previous && last > 0:
		return 0.3
	case previous == 0:
		return 0.5
	default:
		return math.Min(1, 0.5+float64(previous-last)/float64(previous))
	}
}

func satisfactionScore(totalOrders, returns, complaints int) float64 {
	if totalOrders <= 0 {
		return 0.5
	}
	n := float64(totalOrders)
	return math.Min(1, 2*(float64(returns)/n+float64(complaints)/n))
}

func recencyDescription(f *models.CustomerFeatureVector) string {
	switch {
	case f.DaysSinceLastOrder <= 7:
		return fmt.Sprintf("Ordered recently (%d days ago)", f.DaysSinceLastOrder)
	case f.DaysSinceLastOrder <= 30:
		return fmt.Sprintf("Last order %d days ago", f.DaysSinceLastOrder)
	default:
		return fmt.Sprintf("No order in %d days", f.DaysSinceLastOrder)
	}
}

func frequencyDescription(f *models.CustomerFeatureVector) string {
	return fmt.Sprintf("Orders %.2f times per month across %d orders", f.OrderFrequency, f.TotalOrders)
}

func monetaryDescription(f *models.CustomerFeatureVector) string {
	return fmt.Sprintf("Lifetime spend %.2f with average order %.2f", f.TotalSpent, f.AvgOrderValue)
}

func engagementDescription(f *models.CustomerFeatureVector) string {
	email := "unknown email engagement"
	if f.EmailEngagement != nil {
		email = fmt.Sprintf("email engagement %.0f%%", *f.EmailEngagement*100)
	}
	points := 0
	if f.LoyaltyPoints != nil {
		points = *f.LoyaltyPoints
	}
	return fmt.Sprintf("%s, %d loyalty points", capitalize(email), points)
}

func trendDescription(f *models.CustomerFeatureVector) string {
	switch {
	case f.LastMonthOrders > f.PreviousMonthOrders:
		return fmt.Sprintf("Orders rising (%d vs %d last month)", f.LastMonthOrders, f.PreviousMonthOrders)
	case f.LastMonthOrders < f.PreviousMonthOrders:
		return fmt.Sprintf("Orders declining (%d vs %d last month)", f.LastMonthOrders, f.PreviousMonthOrders)
	default:
		return fmt.Sprintf("Orders flat at %d per month", f.LastMonthOrders)
	}
}

func satisfactionDescription(f *models.CustomerFeatureVector) string {
	return fmt.Sprintf("%d returns and %d complaints", f.ReturnsCount, f.ComplaintsCount)
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
