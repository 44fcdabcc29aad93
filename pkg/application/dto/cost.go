package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// VarianceStatus classifies spend against contract or budget
type VarianceStatus string

const (
	OverBudget  VarianceStatus = "Over Budget"
	UnderBudget VarianceStatus = "Under Budget"
	OnTrack     VarianceStatus = "On Track"
)

// PaymentVarianceRow compares a vendor's payments to its contract values
type PaymentVarianceRow struct {
	VendorID         string          `json:"vendor_id" yaml:"vendor_id"`
	TotalContract    decimal.Decimal `json:"total_contract" yaml:"total_contract"`
	TotalActual      decimal.Decimal `json:"total_actual" yaml:"total_actual"`
	TransactionCount int             `json:"transaction_count" yaml:"transaction_count"`
	Variance         decimal.Decimal `json:"variance" yaml:"variance"`
	VariancePct      float64         `json:"variance_pct" yaml:"variance_pct"`
	Status           VarianceStatus  `json:"status" yaml:"status"`
}

// BudgetAdherenceRow compares actual spend to budget for one cost center and GL account
type BudgetAdherenceRow struct {
	CostCenter   string          `json:"cost_center" yaml:"cost_center"`
	GLAccount    string          `json:"gl_account" yaml:"gl_account"`
	TotalBudget  decimal.Decimal `json:"total_budget" yaml:"total_budget"`
	TotalActual  decimal.Decimal `json:"total_actual" yaml:"total_actual"`
	Variance     decimal.Decimal `json:"variance" yaml:"variance"`
	VariancePct  float64         `json:"variance_pct" yaml:"variance_pct"`
	AdherencePct float64         `json:"adherence_pct" yaml:"adherence_pct"`
}

// MonthlyBudgetRow is the budget against actual spend for one month
type MonthlyBudgetRow struct {
	Month        time.Time       `json:"month" yaml:"month"`
	BudgetAmount decimal.Decimal `json:"budget_amount" yaml:"budget_amount"`
	ActualAmount decimal.Decimal `json:"actual_amount" yaml:"actual_amount"`
	Variance     decimal.Decimal `json:"variance" yaml:"variance"`
	VariancePct  float64         `json:"variance_pct" yaml:"variance_pct"`
}

// VendorScoreRow is a vendor with its composite reliability score and tier
type VendorScoreRow struct {
	VendorID             string  `json:"vendor_id" yaml:"vendor_id"`
	VendorName           string  `json:"vendor_name" yaml:"vendor_name"`
	Rating               float64 `json:"rating" yaml:"rating"`
	QualityScore         float64 `json:"quality_score" yaml:"quality_score"`
	AvgDeliveryDelayDays float64 `json:"avg_delivery_delay_days" yaml:"avg_delivery_delay_days"`
	DelayScore           float64 `json:"delay_score" yaml:"delay_score"`
	RawScore             float64 `json:"raw_score" yaml:"raw_score"`
	CompositeScore       float64 `json:"composite_score" yaml:"composite_score"`
	Tier                 string  `json:"tier" yaml:"tier"`
}

// CostReport bundles the cost KPIs
type CostReport struct {
	PaymentVariance []PaymentVarianceRow `json:"payment_variance" yaml:"payment_variance"`
	BudgetAdherence []BudgetAdherenceRow `json:"budget_adherence" yaml:"budget_adherence"`
	MonthlyTrend    []MonthlyBudgetRow   `json:"monthly_trend" yaml:"monthly_trend"`
	Forecast        []ForecastRow        `json:"forecast" yaml:"forecast"`
}
