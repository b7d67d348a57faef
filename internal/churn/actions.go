// Merchantlens - Predictive Commerce Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/merchantlens

package churn

import (
	"fmt"

	"github.com/tomtom215/merchantlens/internal/models"
)

// recommendationRule adds a recommendation when its predicate holds.
type recommendationRule struct {
	applies func(f *models.CustomerFeatureVector, level models.RiskLevel, r RuleThresholds) bool
	message func(f *models.CustomerFeatureVector) string
}

func fixed(msg string) func(*models.CustomerFeatureVector) string {
	return func(*models.CustomerFeatureVector) string { return msg }
}

// recommendationRules is evaluated in order; output order follows it.
var recommendationRules = []recommendationRule{
	{
		applies: func(f *models.CustomerFeatureVector, _ models.RiskLevel, r RuleThresholds) bool {
			return f.DaysSinceLastOrder > r.InactivityDays
		},
		message: fixed("Launch a win-back campaign with a personalized offer"),
	},
	{
		applies: func(f *models.CustomerFeatureVector, level models.RiskLevel, r RuleThresholds) bool {
			return f.AvgOrderValue > r.VIPOrderValue && level.AtRisk()
		},
		message: fixed("Invite the customer to the VIP program with exclusive benefits"),
	},
	{
		applies: func(f *models.CustomerFeatureVector, _ models.RiskLevel, r RuleThresholds) bool {
			return f.OrderFrequency < r.LowFrequency
		},
		message: fixed("Schedule replenishment reminders based on past purchase intervals"),
	},
	{
		applies: func(f *models.CustomerFeatureVector, _ models.RiskLevel, _ RuleThresholds) bool {
			return f.ReturnsCount > 0 || f.ComplaintsCount > 0
		},
		message: fixed("Follow up on recent returns and complaints through customer service"),
	},
	{
		applies: func(f *models.CustomerFeatureVector, _ models.RiskLevel, r RuleThresholds) bool {
			return f.EmailEngagement != nil && *f.EmailEngagement < r.LowEmailEngagement
		},
		message: fixed("Reach out through an alternate channel such as SMS or push notifications"),
	},
	{
		applies: func(f *models.CustomerFeatureVector, _ models.RiskLevel, _ RuleThresholds) bool {
			return f.LastMonthOrders < f.PreviousMonthOrders
		},
		message: fixed("Investigate the month-over-month decline in orders"),
	},
	{
		applies: func(f *models.CustomerFeatureVector, _ models.RiskLevel, r RuleThresholds) bool {
			return f.LoyaltyPoints != nil && *f.LoyaltyPoints > r.LoyaltyReminderPoints
		},
		message: func(f *models.CustomerFeatureVector) string {
			return fmt.Sprintf("Remind the customer of their %d unused loyalty points", *f.LoyaltyPoints)
		},
	},
}

const keepCadence = "Maintain the current engagement cadence"

func (s *Scorer) recommendations(f *models.CustomerFeatureVector, level models.RiskLevel) []string {
	var out []string
	for _, rule := range recommendationRules {
		if rule.applies(f, level, s.cfg.Rules) {
			out = append(out, rule.message(f))
		}
	}
	if len(out) == 0 {
		out = append(out, keepCadence)
	}
	return out
}

func (s *Scorer) retentionActions(level models.RiskLevel) []string {
	d := s.cfg.Discounts
	switch level {
	case models.RiskCritical:
		return []string{
			"Contact the customer personally within 24 hours",
			fmt.Sprintf("Offer a %d%% discount on the next order", d.Critical),
			"Assign a dedicated account manager",
		}
	case models.RiskHigh:
		return []string{
			fmt.Sprintf("Offer a %d%% discount on the next order", d.High),
			"Send a personalized check-in email",
		}
	case models.RiskMedium:
		return []string{
			fmt.Sprintf("Offer a small reward such as free shipping or %d%% off", d.Medium),
			"Enroll the customer in a re-engagement email sequence",
		}
	default:
		return []string{"Continue the standard marketing cadence"}
	}
}
