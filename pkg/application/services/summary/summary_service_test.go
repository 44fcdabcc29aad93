package summary

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/config"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/services/reliability"
	testhelpers "github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/services/testing"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/domain/entities"
)

func TestExecutiveSummary_Fleet(t *testing.T) {
	svc := NewSummaryService()
	ds := testhelpers.BuildFleetTestData()

	s := svc.ExecutiveSummary(ds.WorkOrders, ds.Products, ds.EquipmentIDs())

	assert.Equal(t, 10, s.DaysInPeriod)
	assert.Equal(t, 3, s.EquipmentCount)
	assert.Equal(t, 96.67, s.AvailabilityPct)
	assert.Equal(t, "22600", s.TotalMaintenanceCost.String())
	assert.Equal(t, "2900", s.PreventiveCost.String())
	assert.Equal(t, "19700", s.BreakdownCost.String())
	assert.Equal(t, 24.0, s.TotalDowntime)
	assert.Equal(t, 20.0, s.UnplannedDowntime)
	assert.Equal(t, 4.0, s.PlannedDowntime)
	assert.Equal(t, 6.67, s.MTTRHours)
	assert.Equal(t, 233.33, s.MTBFHours)
	assert.Equal(t, 6, s.TotalWorkOrders)
	assert.Equal(t, 3, s.BreakdownCount)
	assert.Equal(t, 50.0, s.PreventivePct)
	assert.Equal(t, 1, s.CriticalStockItems)
}

func TestExecutiveSummary_MatchesReliabilityFormulas(t *testing.T) {
	svc := NewSummaryService()
	rel := reliability.NewReliabilityService()
	ds := testhelpers.BuildFleetTestData()

	s := svc.ExecutiveSummary(ds.WorkOrders, ds.Products, nil)
	a := rel.EquipmentAvailability(ds.WorkOrders, s.EquipmentCount, s.DaysInPeriod)
	mix := rel.MaintenanceMix(ds.WorkOrders)

	assert.Equal(t, 2, s.EquipmentCount)
	assert.Equal(t, a.AvailabilityPct, s.AvailabilityPct)
	assert.Equal(t, mix.PreventivePct, s.PreventivePct)
}

func TestExecutiveSummary_TotalsFromOrders(t *testing.T) {
	svc := NewSummaryService()
	day := testhelpers.Day(2024, time.May, 1)
	preventive := testhelpers.Preventive("WO-1", "EX-01", day, 1.004)
	preventive.TotalCost = decimal.RequireFromString("0.004")
	breakdown := testhelpers.Breakdown("WO-2", "EX-01", day, "HYD", 2.004)
	breakdown.TotalCost = decimal.RequireFromString("0.004")
	orders := []*entities.WorkOrder{preventive, breakdown}

	s := svc.ExecutiveSummary(orders, nil, []string{"EX-01"})
	a := reliability.NewReliabilityService().EquipmentAvailability(orders, s.EquipmentCount, s.DaysInPeriod)

	assert.Equal(t, "0.01", s.TotalMaintenanceCost.StringFixed(2))
	assert.True(t, s.PreventiveCost.IsZero())
	assert.True(t, s.BreakdownCost.IsZero())
	assert.Equal(t, a.TotalDowntimeHours, s.TotalDowntime)
	assert.Equal(t, 3.01, s.TotalDowntime)
}

func TestExecutiveSummary_EndToEndAvailability(t *testing.T) {
	svc := NewSummaryService()
	orders := []*entities.WorkOrder{
		testhelpers.Breakdown("WO-1", "EX-01", testhelpers.Day(2024, time.May, 1), "HYD", 10),
		testhelpers.Preventive("WO-2", "EX-01", testhelpers.Day(2024, time.May, 10), 2),
	}

	s := svc.ExecutiveSummary(orders, nil, []string{"EX-01"})
	assert.Equal(t, 10, s.DaysInPeriod)
	assert.Equal(t, 95.0, s.AvailabilityPct)
	assert.Equal(t, 10.0, s.MTTRHours)
	assert.Equal(t, 230.0, s.MTBFHours)
}

func TestExecutiveSummary_Empty(t *testing.T) {
	svc := NewSummaryService()
	s := svc.ExecutiveSummary(nil, nil, nil)

	assert.Equal(t, 365, s.DaysInPeriod)
	assert.Equal(t, 1, s.EquipmentCount)
	assert.Equal(t, 100.0, s.AvailabilityPct)
	assert.Zero(t, s.MTBFHours)
	assert.Zero(t, s.MTTRHours)
	assert.Zero(t, s.PreventivePct)
	assert.True(t, s.TotalMaintenanceCost.IsZero())
}

func TestExecutiveSummary_NoFailures(t *testing.T) {
	thresholds := config.DefaultThresholds()
	thresholds.DefaultPeriodDays = 30
	svc := NewSummaryServiceWithConfig(thresholds)
	orders := []*entities.WorkOrder{testhelpers.Preventive("WO-1", "EX-01", testhelpers.Day(2024, time.May, 1), 3)}

	s := svc.ExecutiveSummary(orders, nil, nil)
	assert.Equal(t, 1, s.DaysInPeriod)
	assert.Zero(t, s.MTBFHours)
	assert.Equal(t, 87.5, s.AvailabilityPct)
	assert.Equal(t, 30, svc.PeriodDays(nil))
}

func TestEquipmentCount(t *testing.T) {
	day := testhelpers.Day(2024, time.May, 1)
	orders := []*entities.WorkOrder{
		testhelpers.Preventive("WO-1", "EX-01", day, 1),
		testhelpers.Preventive("WO-2", "EX-01", day, 1),
		testhelpers.Preventive("WO-3", "DT-02", day, 1),
	}

	assert.Equal(t, 5, EquipmentCount(orders, []string{"A", "B", "C", "D", "E"}))
	assert.Equal(t, 2, EquipmentCount(orders, nil))
	assert.Equal(t, 1, EquipmentCount(nil, nil))
}
