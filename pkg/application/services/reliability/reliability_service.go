package reliability

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/config"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/dto"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/services/shared"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/domain/entities"
)

// GroupKey extracts the grouping key of a work order for MTTR and MTBF
type GroupKey func(*entities.WorkOrder) string

// ByEquipment groups work orders by equipment
func ByEquipment(w *entities.WorkOrder) string { return w.EquipmentID }

// ByTechnician groups work orders by technician
func ByTechnician(w *entities.WorkOrder) string { return w.TechnicianID }

// ByFailureCode groups work orders by failure code
func ByFailureCode(w *entities.WorkOrder) string { return w.FailureCode }

// ReliabilityService computes repair, failure-interval and uptime KPIs
type ReliabilityService struct {
	thresholds config.Thresholds
}

// NewReliabilityService creates a reliability service with default thresholds
func NewReliabilityService() *ReliabilityService {
	return NewReliabilityServiceWithConfig(config.DefaultThresholds())
}

// NewReliabilityServiceWithConfig creates a reliability service with custom thresholds
func NewReliabilityServiceWithConfig(thresholds config.Thresholds) *ReliabilityService {
	return &ReliabilityService{thresholds: thresholds}
}

// OperatingHoursForPeriod returns the calendar hours of a period of days
func OperatingHoursForPeriod(days int) float64 {
	return float64(days) * shared.HoursPerDay
}

type breakdownGroup struct {
	count    int
	downtime float64
}

func groupBreakdowns(orders []*entities.WorkOrder, key GroupKey) map[string]*breakdownGroup {
	if key == nil {
		key = ByEquipment
	}
	groups := make(map[string]*breakdownGroup)
	for _, wo := range orders {
		if !wo.IsBreakdown() {
			continue
		}
		k := key(wo)
		g, ok := groups[k]
		if !ok {
			g = &breakdownGroup{}
			groups[k] = g
		}
		g.count++
		g.downtime += wo.DowntimeHours
	}
	return groups
}

// MTTR returns the mean downtime per breakdown for each group, ordered by key.
// A nil key groups by equipment.
func (s *ReliabilityService) MTTR(orders []*entities.WorkOrder, key GroupKey) []dto.MTTRRow {
	groups := groupBreakdowns(orders, key)
	rows := make([]dto.MTTRRow, 0, len(groups))
	for _, k := range shared.SortedKeys(groups) {
		g := groups[k]
		rows = append(rows, dto.MTTRRow{
			Key:            k,
			MTTRHours:      g.downtime / float64(g.count),
			BreakdownCount: g.count,
			TotalDowntime:  g.downtime,
		})
	}
	return rows
}

// MTBF returns the operating hours per failure for each group with at least
// one breakdown, ordered by key. A nil key groups by equipment.
func (s *ReliabilityService) MTBF(orders []*entities.WorkOrder, key GroupKey, operatingHours float64) []dto.MTBFRow {
	groups := groupBreakdowns(orders, key)
	rows := make([]dto.MTBFRow, 0, len(groups))
	for _, k := range shared.SortedKeys(groups) {
		g := groups[k]
		rows = append(rows, dto.MTBFRow{
			Key:                    k,
			MTBFHours:              math.Max(0, (operatingHours-g.downtime)/float64(g.count)),
			FailureCount:           g.count,
			TotalUnplannedDowntime: g.downtime,
		})
	}
	return rows
}

// EquipmentAvailability returns fleet uptime over the period. A fleet with no
// available hours is reported fully available.
func (s *ReliabilityService) EquipmentAvailability(orders []*entities.WorkOrder, equipmentCount, periodDays int) dto.Availability {
	available := float64(equipmentCount) * OperatingHoursForPeriod(periodDays)
	if available <= 0 {
		return dto.Availability{AvailabilityPct: 100.0}
	}

	downtime := TotalDowntime(orders)
	pct := math.Max(0, (available-downtime)/available*100)

	return dto.Availability{
		AvailabilityPct:     shared.Round(pct, 2),
		TotalDowntimeHours:  shared.Round(downtime, 2),
		TotalAvailableHours: shared.Round(available, 2),
		UptimeHours:         shared.Round(math.Max(0, available-downtime), 2),
	}
}

// TotalDowntime sums downtime across all orders
func TotalDowntime(orders []*entities.WorkOrder) float64 {
	total := 0.0
	for _, wo := range orders {
		total += wo.DowntimeHours
	}
	return total
}

// ScheduleCompliance reports the share of scheduled preventive orders that
// ran within the late tolerance of their scheduled date.
func (s *ReliabilityService) ScheduleCompliance(orders []*entities.WorkOrder) dto.ScheduleCompliance {
	tolerance := time.Duration(s.thresholds.LateToleranceDays) * 24 * time.Hour

	var result dto.ScheduleCompliance
	for _, wo := range orders {
		if wo.MaintenanceType != entities.Preventive || !wo.HasSchedule() {
			continue
		}
		result.TotalScheduled++
		if wo.EventDate.After(wo.ScheduledDate.Add(tolerance)) {
			result.LateCount++
		} else {
			result.OnTimeCount++
		}
	}

	if result.TotalScheduled == 0 {
		result.CompliancePct = 100.0
		return result
	}
	result.CompliancePct = shared.Round(shared.Percent(float64(result.OnTimeCount), float64(result.TotalScheduled)), 1)
	return result
}

// MaintenanceMix splits counts, cost and downtime between preventive and breakdown work
func (s *ReliabilityService) MaintenanceMix(orders []*entities.WorkOrder) dto.MaintenanceMix {
	mix := dto.MaintenanceMix{
		PreventiveCost: decimal.Zero,
		BreakdownCost:  decimal.Zero,
	}
	for _, wo := range orders {
		switch wo.MaintenanceType {
		case entities.Breakdown:
			mix.BreakdownCount++
			mix.BreakdownCost = mix.BreakdownCost.Add(wo.TotalCost)
			mix.BreakdownDowntime += wo.DowntimeHours
		default:
			mix.PreventiveCount++
			mix.PreventiveCost = mix.PreventiveCost.Add(wo.TotalCost)
			mix.PreventiveDowntime += wo.DowntimeHours
		}
	}

	total := float64(len(orders))
	mix.PreventivePct = shared.Round(shared.Percent(float64(mix.PreventiveCount), total), 1)
	mix.BreakdownPct = shared.Round(shared.Percent(float64(mix.BreakdownCount), total), 1)
	mix.PreventiveCost = shared.Money(mix.PreventiveCost)
	mix.BreakdownCost = shared.Money(mix.BreakdownCost)
	return mix
}

// PlannedMaintenancePercentage returns the share of preventive orders.
// An empty set is reported as fully planned.
func (s *ReliabilityService) PlannedMaintenancePercentage(orders []*entities.WorkOrder) float64 {
	if len(orders) == 0 {
		return 100.0
	}
	planned := 0
	for _, wo := range orders {
		if wo.MaintenanceType == entities.Preventive {
			planned++
		}
	}
	return shared.Round(shared.Percent(float64(planned), float64(len(orders))), 2)
}

// OEE computes overall equipment effectiveness from daily production records
func (s *ReliabilityService) OEE(records []*entities.ProductionRecord) dto.OEE {
	if len(records) == 0 {
		return dto.OEE{}
	}

	var operating, cycleSum float64
	var totalParts, goodParts int64
	for _, r := range records {
		operating += r.OperatingHours
		cycleSum += r.IdealCycleTimeSeconds
		totalParts += r.TotalPartsProduced
		goodParts += r.GoodPartsProduced
	}

	availability := operating / (float64(len(records)) * shared.HoursPerDay)

	performance := 0.0
	meanCycle := cycleSum / float64(len(records))
	if meanCycle > 0 {
		potential := operating * 3600 / meanCycle
		if potential > 0 {
			performance = math.Min(1, float64(totalParts)/potential)
		}
	}

	quality := shared.SafeDiv(float64(goodParts), float64(totalParts))

	return dto.OEE{
		OEEPct:                shared.Round(availability*performance*quality*100, 2),
		AvailabilityComponent: shared.Round(availability*100, 2),
		PerformanceComponent:  shared.Round(performance*100, 2),
		QualityComponent:      shared.Round(quality*100, 2),
	}
}

// DowntimeByEquipment sums downtime per equipment, least downtime first
func (s *ReliabilityService) DowntimeByEquipment(orders []*entities.WorkOrder) []dto.EquipmentDowntime {
	totals := make(map[string]float64)
	for _, wo := range orders {
		totals[wo.EquipmentID] += wo.DowntimeHours
	}

	rows := make([]dto.EquipmentDowntime, 0, len(totals))
	for id, hours := range totals {
		rows = append(rows, dto.EquipmentDowntime{EquipmentID: id, DowntimeHours: shared.Round(hours, 2)})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].DowntimeHours != rows[j].DowntimeHours {
			return rows[i].DowntimeHours < rows[j].DowntimeHours
		}
		return rows[i].EquipmentID < rows[j].EquipmentID
	})
	return rows
}

// Analyze builds the full reliability report for a filtered work-order set
func (s *ReliabilityService) Analyze(
	orders []*entities.WorkOrder,
	production []*entities.ProductionRecord,
	equipmentCount, periodDays int,
) *dto.ReliabilityReport {
	return &dto.ReliabilityReport{
		MTTR:                  s.MTTR(orders, ByEquipment),
		MTBF:                  s.MTBF(orders, ByEquipment, OperatingHoursForPeriod(periodDays)),
		Availability:          s.EquipmentAvailability(orders, equipmentCount, periodDays),
		ScheduleCompliance:    s.ScheduleCompliance(orders),
		MaintenanceMix:        s.MaintenanceMix(orders),
		PlannedMaintenancePct: s.PlannedMaintenancePercentage(orders),
		OEE:                   s.OEE(production),
		DowntimeByEquipment:   s.DowntimeByEquipment(orders),
	}
}
