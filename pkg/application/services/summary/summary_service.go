package summary

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/config"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/dto"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/services/inventory"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/services/reliability"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/services/shared"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/domain/entities"
)

// SummaryService composes the reliability and inventory KPIs into a single
// executive snapshot
type SummaryService struct {
	thresholds  config.Thresholds
	reliability *reliability.ReliabilityService
	inventory   *inventory.InventoryService
}

// NewSummaryService creates a summary service with default thresholds
func NewSummaryService() *SummaryService {
	return NewSummaryServiceWithConfig(config.DefaultThresholds())
}

// NewSummaryServiceWithConfig creates a summary service with custom thresholds
func NewSummaryServiceWithConfig(thresholds config.Thresholds) *SummaryService {
	return &SummaryService{
		thresholds:  thresholds,
		reliability: reliability.NewReliabilityServiceWithConfig(thresholds),
		inventory:   inventory.NewInventoryServiceWithConfig(thresholds),
	}
}

// PeriodDays returns the inclusive number of days spanned by the orders'
// event dates, or the default period when there are none
func (s *SummaryService) PeriodDays(orders []*entities.WorkOrder) int {
	if len(orders) == 0 {
		return s.thresholds.DefaultPeriodDays
	}
	first, last := orders[0].EventDate, orders[0].EventDate
	for _, wo := range orders[1:] {
		if wo.EventDate.Before(first) {
			first = wo.EventDate
		}
		if wo.EventDate.After(last) {
			last = wo.EventDate
		}
	}
	return int(math.Floor(last.Sub(first).Hours()/shared.HoursPerDay)) + 1
}

// EquipmentCount returns the size of the supplied fleet, falling back to the
// distinct equipment in the orders and never less than one
func EquipmentCount(orders []*entities.WorkOrder, equipmentIDs []string) int {
	if len(equipmentIDs) > 0 {
		return len(equipmentIDs)
	}
	seen := make(map[string]struct{})
	for _, wo := range orders {
		seen[wo.EquipmentID] = struct{}{}
	}
	if len(seen) == 0 {
		return 1
	}
	return len(seen)
}

// ExecutiveSummary builds the headline snapshot for a filtered set of work
// orders and products. Availability, mix and stock status reuse the
// reliability and inventory calculations.
func (s *SummaryService) ExecutiveSummary(
	orders []*entities.WorkOrder,
	products []*entities.Product,
	equipmentIDs []string,
) dto.ExecutiveSummary {
	periodDays := s.PeriodDays(orders)
	equipmentCount := EquipmentCount(orders, equipmentIDs)

	availability := s.reliability.EquipmentAvailability(orders, equipmentCount, periodDays)
	mix := s.reliability.MaintenanceMix(orders)

	mttr, mtbf := 0.0, 0.0
	if mix.BreakdownCount > 0 {
		failures := float64(mix.BreakdownCount)
		operating := float64(equipmentCount) * reliability.OperatingHoursForPeriod(periodDays)
		mttr = mix.BreakdownDowntime / failures
		mtbf = (operating - mix.BreakdownDowntime) / failures
	}

	totalCost := decimal.Zero
	for _, wo := range orders {
		totalCost = totalCost.Add(wo.TotalCost)
	}

	return dto.ExecutiveSummary{
		TotalMaintenanceCost: shared.Money(totalCost),
		PreventiveCost:       mix.PreventiveCost,
		BreakdownCost:        mix.BreakdownCost,
		AvailabilityPct:      availability.AvailabilityPct,
		TotalDowntime:        availability.TotalDowntimeHours,
		UnplannedDowntime:    shared.Round(mix.BreakdownDowntime, 2),
		PlannedDowntime:      shared.Round(mix.PreventiveDowntime, 2),
		MTTRHours:            shared.Round(mttr, 2),
		MTBFHours:            shared.Round(mtbf, 2),
		TotalWorkOrders:      len(orders),
		BreakdownCount:       mix.BreakdownCount,
		PreventivePct:        mix.PreventivePct,
		CriticalStockItems:   s.inventory.CriticalStockCount(products),
		DaysInPeriod:         periodDays,
		EquipmentCount:       equipmentCount,
	}
}
