package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExecutiveSummary is the headline KPI snapshot for a filtered period
type ExecutiveSummary struct {
	RunID                string          `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	GeneratedAt          time.Time       `json:"generated_at,omitempty" yaml:"generated_at,omitempty"`
	TotalMaintenanceCost decimal.Decimal `json:"total_maintenance_cost" yaml:"total_maintenance_cost"`
	PreventiveCost       decimal.Decimal `json:"preventive_cost" yaml:"preventive_cost"`
	BreakdownCost        decimal.Decimal `json:"breakdown_cost" yaml:"breakdown_cost"`
	AvailabilityPct      float64         `json:"availability_pct" yaml:"availability_pct"`
	TotalDowntime        float64         `json:"total_downtime" yaml:"total_downtime"`
	UnplannedDowntime    float64         `json:"unplanned_downtime" yaml:"unplanned_downtime"`
	PlannedDowntime      float64         `json:"planned_downtime" yaml:"planned_downtime"`
	MTTRHours            float64         `json:"mttr_hours" yaml:"mttr_hours"`
	MTBFHours            float64         `json:"mtbf_hours" yaml:"mtbf_hours"`
	TotalWorkOrders      int             `json:"total_work_orders" yaml:"total_work_orders"`
	BreakdownCount       int             `json:"breakdown_count" yaml:"breakdown_count"`
	PreventivePct        float64         `json:"preventive_pct" yaml:"preventive_pct"`
	CriticalStockItems   int             `json:"critical_stock_items" yaml:"critical_stock_items"`
	DaysInPeriod         int             `json:"days_in_period" yaml:"days_in_period"`
	EquipmentCount       int             `json:"equipment_count" yaml:"equipment_count"`
}
