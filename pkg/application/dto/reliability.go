package dto

import "github.com/shopspring/decimal"

// MTTRRow is the repair-time aggregate for one group of breakdowns
type MTTRRow struct {
	Key            string  `json:"key" yaml:"key"`
	MTTRHours      float64 `json:"mttr_hours" yaml:"mttr_hours"`
	BreakdownCount int     `json:"breakdown_count" yaml:"breakdown_count"`
	TotalDowntime  float64 `json:"total_downtime" yaml:"total_downtime"`
}

// MTBFRow is the failure-interval aggregate for one group of breakdowns
type MTBFRow struct {
	Key                    string  `json:"key" yaml:"key"`
	MTBFHours              float64 `json:"mtbf_hours" yaml:"mtbf_hours"`
	FailureCount           int     `json:"failure_count" yaml:"failure_count"`
	TotalUnplannedDowntime float64 `json:"total_unplanned_downtime" yaml:"total_unplanned_downtime"`
}

// Availability summarizes uptime over a period for a set of equipment
type Availability struct {
	AvailabilityPct     float64 `json:"availability_pct" yaml:"availability_pct"`
	TotalDowntimeHours  float64 `json:"total_downtime_hours" yaml:"total_downtime_hours"`
	TotalAvailableHours float64 `json:"total_available_hours" yaml:"total_available_hours"`
	UptimeHours         float64 `json:"uptime_hours" yaml:"uptime_hours"`
}

// ScheduleCompliance reports how many scheduled preventive orders ran on time
type ScheduleCompliance struct {
	CompliancePct  float64 `json:"compliance_pct" yaml:"compliance_pct"`
	LateCount      int     `json:"late_count" yaml:"late_count"`
	OnTimeCount    int     `json:"on_time_count" yaml:"on_time_count"`
	TotalScheduled int     `json:"total_scheduled" yaml:"total_scheduled"`
}

// MaintenanceMix splits work orders by maintenance type
type MaintenanceMix struct {
	PreventiveCount    int             `json:"preventive_count" yaml:"preventive_count"`
	BreakdownCount     int             `json:"breakdown_count" yaml:"breakdown_count"`
	PreventivePct      float64         `json:"preventive_pct" yaml:"preventive_pct"`
	BreakdownPct       float64         `json:"breakdown_pct" yaml:"breakdown_pct"`
	PreventiveCost     decimal.Decimal `json:"preventive_cost" yaml:"preventive_cost"`
	BreakdownCost      decimal.Decimal `json:"breakdown_cost" yaml:"breakdown_cost"`
	PreventiveDowntime float64         `json:"preventive_downtime" yaml:"preventive_downtime"`
	BreakdownDowntime  float64         `json:"breakdown_downtime" yaml:"breakdown_downtime"`
}

// OEE is overall equipment effectiveness with its three components, all in percent
type OEE struct {
	OEEPct                float64 `json:"oee_pct" yaml:"oee_pct"`
	AvailabilityComponent float64 `json:"availability_component" yaml:"availability_component"`
	PerformanceComponent  float64 `json:"performance_component" yaml:"performance_component"`
	QualityComponent      float64 `json:"quality_component" yaml:"quality_component"`
}

// EquipmentDowntime is the total downtime logged against one piece of equipment
type EquipmentDowntime struct {
	EquipmentID   string  `json:"equipment_id" yaml:"equipment_id"`
	DowntimeHours float64 `json:"downtime_hours" yaml:"downtime_hours"`
}

// ReliabilityReport bundles the reliability KPIs for one filtered work-order set
type ReliabilityReport struct {
	MTTR                  []MTTRRow           `json:"mttr" yaml:"mttr"`
	MTBF                  []MTBFRow           `json:"mtbf" yaml:"mtbf"`
	Availability          Availability        `json:"availability" yaml:"availability"`
	ScheduleCompliance    ScheduleCompliance  `json:"schedule_compliance" yaml:"schedule_compliance"`
	MaintenanceMix        MaintenanceMix      `json:"maintenance_mix" yaml:"maintenance_mix"`
	PlannedMaintenancePct float64             `json:"planned_maintenance_pct" yaml:"planned_maintenance_pct"`
	OEE                   OEE                 `json:"oee" yaml:"oee"`
	DowntimeByEquipment   []EquipmentDowntime `json:"downtime_by_equipment" yaml:"downtime_by_equipment"`
}
