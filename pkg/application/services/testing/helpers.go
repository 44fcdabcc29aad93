package testing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/domain/entities"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/infrastructure/repositories/memory"
)

// Day returns midnight UTC of the given date
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// MustCreateWorkOrder is a helper for tests - panics on validation error
func MustCreateWorkOrder(
	id, equipmentID string,
	eventDate time.Time,
	maintenanceType entities.MaintenanceType,
	failureCode string,
	downtimeHours float64,
	totalCost int64,
) *entities.WorkOrder {
	wo, err := entities.NewWorkOrder(
		id,
		equipmentID,
		"",
		eventDate,
		time.Time{},
		maintenanceType,
		failureCode,
		downtimeHours,
		downtimeHours,
		decimal.NewFromInt(totalCost),
		decimal.Zero,
		0,
	)
	if err != nil {
		panic(err)
	}
	return wo
}

// Breakdown creates a breakdown order with the given failure code and downtime
func Breakdown(id, equipmentID string, eventDate time.Time, failureCode string, downtimeHours float64) *entities.WorkOrder {
	return MustCreateWorkOrder(id, equipmentID, eventDate, entities.Breakdown, failureCode, downtimeHours, 0)
}

// Preventive creates an unscheduled preventive order with the given downtime
func Preventive(id, equipmentID string, eventDate time.Time, downtimeHours float64) *entities.WorkOrder {
	return MustCreateWorkOrder(id, equipmentID, eventDate, entities.Preventive, "", downtimeHours, 0)
}

// Scheduled creates a preventive order executed lateDays after its scheduled date
func Scheduled(id, equipmentID string, scheduled time.Time, lateDays float64) *entities.WorkOrder {
	wo := Preventive(id, equipmentID, scheduled.Add(time.Duration(lateDays*24*float64(time.Hour))), 0)
	wo.ScheduledDate = scheduled
	return wo
}

// mustCreateProduct is a helper for tests - panics on validation error
func mustCreateProduct(
	id, name, category string,
	reorderPoint, safetyStock entities.Quantity,
	unitCost int64,
	moq entities.Quantity,
	abcClass string,
	currentStock entities.Quantity,
) *entities.Product {
	p, err := entities.NewProduct(
		id,
		name,
		category,
		reorderPoint,
		safetyStock,
		decimal.NewFromInt(unitCost),
		14,
		moq,
		abcClass,
		currentStock,
	)
	if err != nil {
		panic(err)
	}
	return p
}

// Reading creates a sensor reading hoursAgo before the reference time
func Reading(equipmentID string, ref time.Time, hoursAgo, temperatureC, vibrationMmS float64) *entities.SensorReading {
	return &entities.SensorReading{
		Timestamp:    ref.Add(-time.Duration(hoursAgo * float64(time.Hour))),
		EquipmentID:  equipmentID,
		TemperatureC: temperatureC,
		VibrationMmS: vibrationMmS,
		Status:       "Running",
	}
}

// BudgetLine creates a single-account budget line for the given month
func BudgetLine(month time.Time, costCenter string, budget, actual int64) *entities.BudgetLine {
	return &entities.BudgetLine{
		Date:         entities.MonthStart(month),
		CostCenter:   costCenter,
		GLAccount:    "5100-Maintenance",
		BudgetAmount: decimal.NewFromInt(budget),
		ActualAmount: decimal.NewFromInt(actual),
	}
}

// BuildFleetTestData creates a small mining fleet covering every table:
//
//	EX-01 excavator: two breakdowns (HYD-LEAK) and one late preventive order
//	DT-02 dump truck: one breakdown (ENG-OVERHEAT) and one on-time preventive order
//	CR-03 crusher:    no work orders
//
// The work orders span 2024-01-01 to 2024-01-10 inclusive.
func BuildFleetTestData() *entities.Dataset {
	jan := func(d int) time.Time { return Day(2024, time.January, d) }

	wo1 := MustCreateWorkOrder("WO-001", "EX-01", jan(1), entities.Preventive, "", 2, 1500)
	wo1.TechnicianID = "T-01"
	wo1.LaborHours = 3
	wo1.ScheduledDate = jan(1)

	wo2 := MustCreateWorkOrder("WO-002", "EX-01", jan(3), entities.Breakdown, "HYD-LEAK", 6, 4200)
	wo2.TechnicianID = "T-02"
	wo2.LaborHours = 5
	wo2.DelayMinutes = 90

	wo3 := MustCreateWorkOrder("WO-003", "DT-02", jan(4), entities.Breakdown, "ENG-OVERHEAT", 10, 12500)
	wo3.TechnicianID = "T-02"
	wo3.LaborHours = 8

	wo4 := MustCreateWorkOrder("WO-004", "DT-02", jan(6), entities.Preventive, "", 1, 800)
	wo4.TechnicianID = "T-01"
	wo4.LaborHours = 2
	wo4.ScheduledDate = jan(6)

	wo5 := MustCreateWorkOrder("WO-005", "EX-01", jan(10), entities.Breakdown, "HYD-LEAK", 4, 3000)
	wo5.TechnicianID = "T-01"
	wo5.LaborHours = 4

	wo6 := MustCreateWorkOrder("WO-006", "EX-01", jan(9), entities.Preventive, "", 1, 600)
	wo6.TechnicianID = "T-03"
	wo6.LaborHours = 0
	wo6.ScheduledDate = jan(5)

	ref := Day(2024, time.January, 10)

	return &entities.Dataset{
		WorkOrders: []*entities.WorkOrder{wo1, wo2, wo3, wo4, wo5, wo6},
		SensorReadings: []*entities.SensorReading{
			Reading("EX-01", ref, 0, 97, 5.5),
			Reading("EX-01", ref, 2, 96, 4.0),
			Reading("EX-01", ref, 30, 40, 1.0),
			Reading("DT-02", ref, 0, 86, 1.2),
			Reading("DT-02", ref, 1, 88, 1.0),
			Reading("CR-03", ref, 0, 60, 2.0),
		},
		Production: []*entities.ProductionRecord{
			{Date: jan(1), EquipmentID: "CR-03", TotalPartsProduced: 1000, GoodPartsProduced: 950, OperatingHours: 20, DowntimeHours: 4, IdealCycleTimeSeconds: 60},
			{Date: jan(2), EquipmentID: "CR-03", TotalPartsProduced: 1100, GoodPartsProduced: 1078, OperatingHours: 22, DowntimeHours: 2, IdealCycleTimeSeconds: 60},
		},
		Products: []*entities.Product{
			mustCreateProduct("P-100", "Hydraulic Filter", "Filters", 20, 30, 45, 50, "A", 15),
			mustCreateProduct("P-200", "Drive Belt", "Belts", 5, 10, 120, 4, "B", 8),
			mustCreateProduct("P-300", "Idler Roller", "Undercarriage", 2, 4, 900, 1, "C", 40),
		},
		Transactions: []*entities.InventoryTransaction{
			{ID: "TX-1", Date: jan(1), ProductID: "P-100", Quantity: -10, Type: entities.Issue, UnitCost: decimal.NewFromInt(45)},
			{ID: "TX-2", Date: jan(11), ProductID: "P-100", Quantity: -20, Type: entities.Issue, UnitCost: decimal.NewFromInt(45)},
			{ID: "TX-3", Date: jan(5), ProductID: "P-100", Quantity: 50, Type: entities.Receipt, UnitCost: decimal.NewFromInt(45)},
			{ID: "TX-4", Date: jan(6), ProductID: "P-200", Quantity: -2, Type: entities.Issue, UnitCost: decimal.NewFromInt(120)},
		},
		Vendors: []*entities.Vendor{
			{ID: "V-01", Name: "Atlas Hydraulics", Rating: 4.8, AvgDeliveryDelayDays: 1, QualityScore: 95, PaymentTerms: "Net 30", Category: "Hydraulics"},
			{ID: "V-02", Name: "Delta Belts", Rating: 3.5, AvgDeliveryDelayDays: 6, QualityScore: 80, PaymentTerms: "Net 45", Category: "Consumables"},
		},
		CostRecords: []*entities.CostRecord{
			{ID: "C-1", VendorID: "V-01", ContractValue: decimal.NewFromInt(10000), ActualPayment: decimal.NewFromInt(11000)},
			{ID: "C-2", VendorID: "V-02", ContractValue: decimal.NewFromInt(5000), ActualPayment: decimal.NewFromInt(5100)},
		},
		BudgetLines: []*entities.BudgetLine{
			BudgetLine(Day(2023, time.November, 1), "Mining", 10000, 9000),
			BudgetLine(Day(2023, time.December, 1), "Mining", 10000, 11000),
			BudgetLine(Day(2024, time.January, 1), "Mining", 10000, 10000),
		},
		Technicians: []*entities.Technician{
			{ID: "T-01", Name: "Asha Rao", SkillLevel: "Senior", HourlyRate: decimal.NewFromInt(40)},
			{ID: "T-02", Name: "Bilal Khan", SkillLevel: "Junior", HourlyRate: decimal.NewFromInt(25)},
			{ID: "T-03", Name: "Chen Wei", SkillLevel: "Senior", HourlyRate: decimal.NewFromInt(42)},
		},
		Equipment: []*entities.Equipment{
			{ID: "EX-01", Name: "Excavator 1", Type: "Excavator", Criticality: "A", FunctionalLocation: "PIT-NORTH"},
			{ID: "DT-02", Name: "Dump Truck 2", Type: "Dump Truck", Criticality: "B", FunctionalLocation: "HAUL-ROAD"},
			{ID: "CR-03", Name: "Primary Crusher", Type: "Crusher", Criticality: "A", FunctionalLocation: "PLANT"},
		},
	}
}

// BuildFleetRepositories loads BuildFleetTestData into in-memory repositories
func BuildFleetRepositories() *memory.Repositories {
	repos, err := memory.NewRepositories(BuildFleetTestData())
	if err != nil {
		panic(err)
	}
	return repos
}
