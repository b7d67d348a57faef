// Merchantlens - Predictive Commerce Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/merchantlens

package models

// CustomerFeatureVector is the flat per-customer input to the churn scorer.
type CustomerFeatureVector struct {
	CustomerID string `json:"customer_id" validate:"required,max=128"`
	Name       string `json:"name" validate:"max=512"`

	TotalOrders   int     `json:"total_orders" validate:"gte=0"`
	TotalSpent    float64 `json:"total_spent" validate:"gte=0"`
	AvgOrderValue float64 `json:"avg_order_value" validate:"gte=0"`

	DaysSinceLastOrder  int `json:"days_since_last_order" validate:"gte=0"`
	DaysSinceFirstOrder int `json:"days_since_first_order" validate:"gte=0"`

	// OrderFrequency is expressed in orders per month.
	OrderFrequency float64 `json:"order_frequency" validate:"gte=0"`

	ReturnsCount    int `json:"returns_count" validate:"gte=0"`
	ComplaintsCount int `json:"complaints_count" validate:"gte=0"`

	// LoyaltyPoints is optional; nil is treated as zero points.
	LoyaltyPoints *int `json:"loyalty_points,omitempty" validate:"omitempty,gte=0"`

	// EmailEngagement is optional and in [0, 1]; nil contributes a neutral 0.5.
	EmailEngagement *float64 `json:"email_engagement,omitempty" validate:"omitempty,gte=0,lte=1"`

	LastMonthOrders     int `json:"last_month_orders" validate:"gte=0"`
	PreviousMonthOrders int `json:"previous_month_orders" validate:"gte=0"`
}

// RiskLevel buckets a churn probability.
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

// AtRisk reports whether the level warrants a retention intervention.
func (r RiskLevel) AtRisk() bool {
	return r == RiskHigh || r == RiskCritical
}

// Impact is the direction in which a factor moves churn risk.
type Impact string

const (
	// ImpactPositive factors keep the customer engaged.
	ImpactPositive Impact = "positive"
	// ImpactNegative factors push the customer towards churn.
	ImpactNegative Impact = "negative"
)

// ChurnFactor explains one weighted sub-score of a prediction.
type ChurnFactor struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Impact      Impact  `json:"impact"`
	Weight      float64 `json:"weight"`
}

// ChurnPrediction is the scored churn risk for one customer.
type ChurnPrediction struct {
	CustomerID   string `json:"customer_id"`
	CustomerName string `json:"customer_name,omitempty"`

	// ChurnProbability is an integral percentage in [0, 100].
	ChurnProbability float64   `json:"churn_probability"`
	RiskLevel        RiskLevel `json:"risk_level"`

	// Factors are ordered by absolute weight, largest first.
	Factors          []ChurnFactor `json:"factors"`
	Recommendations  []string      `json:"recommendations"`
	RetentionActions []string      `json:"retention_actions"`
}

// ChurnSummary aggregates a batch of predictions.
type ChurnSummary struct {
	Total              int               `json:"total"`
	ByRiskLevel        map[RiskLevel]int `json:"by_risk_level"`
	AverageProbability float64           `json:"average_probability"`
	AtRisk             int               `json:"at_risk"`
}
