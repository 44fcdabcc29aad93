package main

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/services/inventory"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/services/predictive"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/services/reliability"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/services/summary"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/domain/entities"
)

func day(d int) time.Time {
	return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
}

func mustWorkOrder(
	id, equipmentID string,
	date time.Time,
	mtype entities.MaintenanceType,
	failureCode string,
	downtime float64,
	parts int64,
) *entities.WorkOrder {
	wo, err := entities.NewWorkOrder(id, equipmentID, "T-01", date, time.Time{}, mtype,
		failureCode, downtime, downtime, decimal.NewFromInt(parts), decimal.NewFromInt(250), 0)
	if err != nil {
		panic(err)
	}
	return wo
}

func main() {
	// One month on a two-machine fleet
	orders := []*entities.WorkOrder{
		mustWorkOrder("WO-1", "EX-01", day(2), entities.Preventive, "", 3, 1200),
		mustWorkOrder("WO-2", "EX-01", day(9), entities.Breakdown, "HYD-LEAK", 8, 4800),
		mustWorkOrder("WO-3", "HT-07", day(15), entities.Breakdown, "ENG-OVERHEAT", 14, 11200),
		mustWorkOrder("WO-4", "HT-07", day(22), entities.Preventive, "", 2, 900),
		mustWorkOrder("WO-5", "EX-01", day(30), entities.Breakdown, "HYD-LEAK", 5, 2100),
	}

	filter, err := entities.NewProduct("P-10", "Hydraulic Filter", "Filters", 20, 30,
		decimal.NewFromInt(45), 7, 50, "A", 12)
	if err != nil {
		panic(err)
	}
	products := []*entities.Product{filter}

	readings := []*entities.SensorReading{
		{Timestamp: day(30).Add(8 * time.Hour), EquipmentID: "EX-01", TemperatureC: 91, VibrationMmS: 5.4},
		{Timestamp: day(30).Add(9 * time.Hour), EquipmentID: "EX-01", TemperatureC: 93, VibrationMmS: 4.1},
		{Timestamp: day(30).Add(9 * time.Hour), EquipmentID: "HT-07", TemperatureC: 72, VibrationMmS: 1.3},
	}

	s := summary.NewSummaryService().ExecutiveSummary(orders, products, []string{"EX-01", "HT-07"})
	fmt.Println("Executive summary")
	fmt.Printf("  Period: %d days, %d machines\n", s.DaysInPeriod, s.EquipmentCount)
	fmt.Printf("  Availability: %.2f%%\n", s.AvailabilityPct)
	fmt.Printf("  MTTR: %.2f h  MTBF: %.2f h\n", s.MTTRHours, s.MTBFHours)
	fmt.Printf("  Cost: %s (breakdown %s)\n", s.TotalMaintenanceCost.StringFixed(2), s.BreakdownCost.StringFixed(2))
	fmt.Println()

	fmt.Println("MTTR by failure code")
	for _, row := range reliability.NewReliabilityService().MTTR(orders, reliability.ByFailureCode) {
		fmt.Printf("  %-14s %5.2f h over %d breakdowns\n", row.Key, row.MTTRHours, row.BreakdownCount)
	}
	fmt.Println()

	fmt.Println("Reorder alerts")
	for _, a := range inventory.NewInventoryService().ReorderAlerts(products) {
		fmt.Printf("  %s: order %d (est. %s)\n", a.ProductName, a.ReorderQty, a.EstimatedCost.StringFixed(2))
	}
	fmt.Println()

	fmt.Println("Failure risk")
	for _, r := range predictive.NewPredictiveService().FailureProbability(readings, 0) {
		fmt.Printf("  %s: %.1f%% %s (%s)\n", r.EquipmentID, r.FailureProbabilityPct, r.Status, r.Insight)
	}
}
