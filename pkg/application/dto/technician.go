package dto

import "github.com/shopspring/decimal"

// TechnicianStats summarizes the work completed by one technician
type TechnicianStats struct {
	TechnicianID   string          `json:"technician_id" yaml:"technician_id"`
	Name           string          `json:"name" yaml:"name"`
	SkillLevel     string          `json:"skill_level" yaml:"skill_level"`
	WorkOrderCount int             `json:"work_order_count" yaml:"work_order_count"`
	LaborHours     float64         `json:"labor_hours" yaml:"labor_hours"`
	AvgHoursPerWO  float64         `json:"avg_hours_per_wo" yaml:"avg_hours_per_wo"`
	TotalCost      decimal.Decimal `json:"total_cost" yaml:"total_cost"`
	AvgDowntime    float64         `json:"avg_downtime" yaml:"avg_downtime"`
	Efficiency     float64         `json:"efficiency" yaml:"efficiency"`
}

// SkillLevelSummary aggregates work and cost per technician skill level
type SkillLevelSummary struct {
	SkillLevel     string          `json:"skill_level" yaml:"skill_level"`
	WorkOrderCount int             `json:"work_order_count" yaml:"work_order_count"`
	LaborHours     float64         `json:"labor_hours" yaml:"labor_hours"`
	TotalCost      decimal.Decimal `json:"total_cost" yaml:"total_cost"`
	LaborCost      decimal.Decimal `json:"labor_cost" yaml:"labor_cost"`
	AvgHourlyRate  decimal.Decimal `json:"avg_hourly_rate" yaml:"avg_hourly_rate"`
	CostPerWO      decimal.Decimal `json:"cost_per_wo" yaml:"cost_per_wo"`
}

// TechnicianReport bundles technician and skill-level performance
type TechnicianReport struct {
	Technicians []TechnicianStats   `json:"technicians" yaml:"technicians"`
	SkillLevels []SkillLevelSummary `json:"skill_levels" yaml:"skill_levels"`
}
