package dto

import (
	"encoding/json"
	"math"

	"github.com/shopspring/decimal"
)

// TurnoverRow is the inventory turnover of a single product
type TurnoverRow struct {
	ProductID         string          `json:"product_id" yaml:"product_id"`
	ProductName       string          `json:"product_name" yaml:"product_name"`
	TotalIssues       int64           `json:"total_issues" yaml:"total_issues"`
	IssueValue        decimal.Decimal `json:"issue_value" yaml:"issue_value"`
	AvgInventoryValue decimal.Decimal `json:"avg_inventory_value" yaml:"avg_inventory_value"`
	TurnoverRatio     float64         `json:"turnover_ratio" yaml:"turnover_ratio"`
}

// CoverageStatus classifies how long current stock will last
type CoverageStatus string

const (
	CoverageNoUsage  CoverageStatus = "No Usage"
	CoverageCritical CoverageStatus = "Critical"
	CoverageWarning  CoverageStatus = "Warning"
	CoverageHealthy  CoverageStatus = "Healthy"
)

// CoverageRow is the stock coverage of a single product. CoverageDays is
// +Inf when the product had no usage in the observed period.
type CoverageRow struct {
	ProductID      string         `json:"product_id" yaml:"product_id"`
	ProductName    string         `json:"product_name" yaml:"product_name"`
	CurrentStock   int64          `json:"current_stock" yaml:"current_stock"`
	AvgDailyUsage  float64        `json:"avg_daily_usage" yaml:"avg_daily_usage"`
	CoverageDays   float64        `json:"coverage_days" yaml:"coverage_days"`
	CoverageStatus CoverageStatus `json:"coverage_status" yaml:"coverage_status"`
}

// MarshalJSON encodes infinite coverage as null since JSON has no infinity
func (r CoverageRow) MarshalJSON() ([]byte, error) {
	type plain CoverageRow
	out := struct {
		plain
		CoverageDays *float64 `json:"coverage_days"`
	}{plain: plain(r)}
	if !math.IsInf(r.CoverageDays, 0) {
		days := r.CoverageDays
		out.CoverageDays = &days
	}
	return json.Marshal(out)
}

// MarshalYAML encodes infinite coverage as null, matching the JSON form
func (r CoverageRow) MarshalYAML() (any, error) {
	out := struct {
		ProductID      string         `yaml:"product_id"`
		ProductName    string         `yaml:"product_name"`
		CurrentStock   int64          `yaml:"current_stock"`
		AvgDailyUsage  float64        `yaml:"avg_daily_usage"`
		CoverageDays   *float64       `yaml:"coverage_days"`
		CoverageStatus CoverageStatus `yaml:"coverage_status"`
	}{
		ProductID:      r.ProductID,
		ProductName:    r.ProductName,
		CurrentStock:   r.CurrentStock,
		AvgDailyUsage:  r.AvgDailyUsage,
		CoverageStatus: r.CoverageStatus,
	}
	if !math.IsInf(r.CoverageDays, 0) {
		days := r.CoverageDays
		out.CoverageDays = &days
	}
	return out, nil
}

// ReorderAlert is a product at or below its reorder point with a suggested order
type ReorderAlert struct {
	ProductID     string          `json:"product_id" yaml:"product_id"`
	ProductName   string          `json:"product_name" yaml:"product_name"`
	Category      string          `json:"category" yaml:"category"`
	ABCClass      string          `json:"abc_class" yaml:"abc_class"`
	CurrentStock  int64           `json:"current_stock" yaml:"current_stock"`
	ReorderPoint  int64           `json:"reorder_point" yaml:"reorder_point"`
	MOQ           int64           `json:"moq" yaml:"moq"`
	UnitCost      decimal.Decimal `json:"unit_cost" yaml:"unit_cost"`
	ShortageQty   int64           `json:"shortage_qty" yaml:"shortage_qty"`
	ReorderQty    int64           `json:"reorder_qty" yaml:"reorder_qty"`
	EstimatedCost decimal.Decimal `json:"estimated_cost" yaml:"estimated_cost"`
}

// StockStatusCount is the number of products in one ABC class and stock status
type StockStatusCount struct {
	ABCClass    string `json:"abc_class" yaml:"abc_class"`
	StockStatus string `json:"stock_status" yaml:"stock_status"`
	Count       int    `json:"count" yaml:"count"`
}

// InventoryReport bundles the inventory KPIs for one product set
type InventoryReport struct {
	Turnover         []TurnoverRow      `json:"turnover" yaml:"turnover"`
	Coverage         []CoverageRow      `json:"coverage" yaml:"coverage"`
	ReorderAlerts    []ReorderAlert     `json:"reorder_alerts" yaml:"reorder_alerts"`
	StockValue       decimal.Decimal    `json:"stock_value" yaml:"stock_value"`
	AvgTurnover      float64            `json:"avg_turnover" yaml:"avg_turnover"`
	TotalReorderCost decimal.Decimal    `json:"total_reorder_cost" yaml:"total_reorder_cost"`
	StatusMatrix     []StockStatusCount `json:"status_matrix" yaml:"status_matrix"`
}
