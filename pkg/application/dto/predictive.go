package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// HealthStatus is the risk band of a failure probability
type HealthStatus string

const (
	HealthCritical HealthStatus = "Critical"
	HealthWarning  HealthStatus = "Warning"
	HealthHealthy  HealthStatus = "Healthy"
)

// FailureRisk is the rule-based failure estimate for one piece of equipment
type FailureRisk struct {
	EquipmentID           string       `json:"equipment_id" yaml:"equipment_id"`
	AvgTemp               float64      `json:"avg_temp" yaml:"avg_temp"`
	MaxVibration          float64      `json:"max_vibration" yaml:"max_vibration"`
	ReadingCount          int          `json:"reading_count" yaml:"reading_count"`
	FailureProbability    float64      `json:"failure_probability" yaml:"failure_probability"`
	FailureProbabilityPct float64      `json:"failure_probability_pct" yaml:"failure_probability_pct"`
	Insight               string       `json:"insight" yaml:"insight"`
	Status                HealthStatus `json:"status" yaml:"status"`
}

// ForecastRow is the projected spend for one future month
type ForecastRow struct {
	Month          time.Time       `json:"month" yaml:"month"`
	ForecastAmount decimal.Decimal `json:"forecast_amount" yaml:"forecast_amount"`
	LowerBound     decimal.Decimal `json:"lower_bound" yaml:"lower_bound"`
	UpperBound     decimal.Decimal `json:"upper_bound" yaml:"upper_bound"`
}

// RootCauseRow is the number of breakdowns attributed to one failure code
type RootCauseRow struct {
	FailureCode string `json:"failure_code" yaml:"failure_code"`
	Count       int    `json:"count" yaml:"count"`
}

// ParetoRow extends a root cause count with its running totals
type ParetoRow struct {
	FailureCode   string  `json:"failure_code" yaml:"failure_code"`
	Count         int     `json:"count" yaml:"count"`
	Cumulative    int     `json:"cumulative" yaml:"cumulative"`
	CumulativePct float64 `json:"cumulative_pct" yaml:"cumulative_pct"`
}

// RULEstimate is a remaining-useful-life prediction from the external model
type RULEstimate struct {
	EquipmentID string  `json:"equipment_id" yaml:"equipment_id"`
	Days        float64 `json:"days" yaml:"days"`
	Label       string  `json:"label" yaml:"label"`
}

// PredictiveReport bundles the forward-looking heuristics
type PredictiveReport struct {
	FailureRisk []FailureRisk `json:"failure_risk" yaml:"failure_risk"`
	RootCauses  []ParetoRow   `json:"root_causes" yaml:"root_causes"`
	Forecast    []ForecastRow `json:"forecast" yaml:"forecast"`
	RUL         []RULEstimate `json:"rul,omitempty" yaml:"rul,omitempty"`
}
