package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MaintenanceType distinguishes planned from unplanned work
type MaintenanceType int

const (
	Preventive MaintenanceType = iota
	Breakdown
)

// String method for MaintenanceType enum
func (m MaintenanceType) String() string {
	switch m {
	case Preventive:
		return "Preventive"
	case Breakdown:
		return "Breakdown"
	default:
		return "Unknown"
	}
}

// ParseMaintenanceType parses the textual maintenance type used in source tables
func ParseMaintenanceType(s string) (MaintenanceType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "preventive":
		return Preventive, nil
	case "breakdown":
		return Breakdown, nil
	default:
		return Preventive, fmt.Errorf("invalid maintenance type: %s (expected: Preventive or Breakdown)", s)
	}
}

// CostSegment buckets a work order by total cost
type CostSegment int

const (
	LowCost CostSegment = iota
	MediumCost
	HighCost
)

func (c CostSegment) String() string {
	switch c {
	case LowCost:
		return "Low"
	case MediumCost:
		return "Medium"
	case HighCost:
		return "High"
	default:
		return "Unknown"
	}
}

var (
	highCostThreshold   = decimal.NewFromInt(10000)
	mediumCostThreshold = decimal.NewFromInt(2000)
)

// WorkOrder is a single maintenance event on a piece of equipment.
// FailureCode is non-empty only for breakdowns. ScheduledDate is the zero
// time when the order was not scheduled.
type WorkOrder struct {
	ID              string
	EquipmentID     string
	TechnicianID    string
	EventDate       time.Time
	ScheduledDate   time.Time
	MaintenanceType MaintenanceType
	FailureCode     string
	DowntimeHours   float64
	LaborHours      float64
	PartsCost       decimal.Decimal
	LaborCost       decimal.Decimal
	TotalCost       decimal.Decimal
	DelayMinutes    int
}

// NewWorkOrder creates a WorkOrder with TotalCost derived from parts and labor
func NewWorkOrder(
	id, equipmentID, technicianID string,
	eventDate, scheduledDate time.Time,
	maintenanceType MaintenanceType,
	failureCode string,
	downtimeHours, laborHours float64,
	partsCost, laborCost decimal.Decimal,
	delayMinutes int,
) (*WorkOrder, error) {
	if id == "" {
		return nil, NewSchemaError("work_orders", 0, "work_order_id", "", "cannot be empty")
	}
	if equipmentID == "" {
		return nil, NewSchemaError("work_orders", 0, "equipment_id", "", "cannot be empty")
	}
	if eventDate.IsZero() {
		return nil, NewSchemaError("work_orders", 0, "date", "", "cannot be empty")
	}

	return &WorkOrder{
		ID:              id,
		EquipmentID:     equipmentID,
		TechnicianID:    technicianID,
		EventDate:       eventDate,
		ScheduledDate:   scheduledDate,
		MaintenanceType: maintenanceType,
		FailureCode:     failureCode,
		DowntimeHours:   downtimeHours,
		LaborHours:      laborHours,
		PartsCost:       partsCost,
		LaborCost:       laborCost,
		TotalCost:       partsCost.Add(laborCost),
		DelayMinutes:    delayMinutes,
	}, nil
}

// IsBreakdown reports whether the order was unplanned
func (w WorkOrder) IsBreakdown() bool {
	return w.MaintenanceType == Breakdown
}

// HasSchedule reports whether a scheduled date was recorded
func (w WorkOrder) HasSchedule() bool {
	return !w.ScheduledDate.IsZero()
}

// Category returns "Planned" for preventive work and "Unplanned" otherwise
func (w WorkOrder) Category() string {
	if w.MaintenanceType == Preventive {
		return "Planned"
	}
	return "Unplanned"
}

// CostSegment classifies the order by its total cost
func (w WorkOrder) CostSegment() CostSegment {
	switch {
	case w.TotalCost.GreaterThan(highCostThreshold):
		return HighCost
	case w.TotalCost.GreaterThan(mediumCostThreshold):
		return MediumCost
	default:
		return LowCost
	}
}

// RestockingDelay reports whether the order waited more than an hour on parts
func (w WorkOrder) RestockingDelay() bool {
	return w.DelayMinutes > 60
}
