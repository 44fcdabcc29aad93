package tabular

import "errors"

// ErrTableNotFound is returned by a Source that has no data for a table
var ErrTableNotFound = errors.New("table not found")

// Table describes one source table: its canonical name, the CSV file it is
// exported to and the columns a record must carry.
type Table struct {
	Name     string
	File     string
	Required bool
	Columns  []string
	Optional []string
}

// AllColumns returns the required columns followed by the optional ones
func (t Table) AllColumns() []string {
	cols := make([]string, 0, len(t.Columns)+len(t.Optional))
	cols = append(cols, t.Columns...)
	return append(cols, t.Optional...)
}

// Source tables, in load order
var (
	WorkOrders = Table{
		Name:     "work_orders",
		File:     "Fact_Maintenance_WorkOrders.csv",
		Required: true,
		Columns: []string{
			"WorkOrderID", "EquipmentID", "TechnicianID", "Date", "MaintenanceType",
			"DowntimeHours", "LaborHours", "PartsCost", "LaborCost",
		},
		Optional: []string{"ScheduledDate", "FailureCode", "DelayMinutes"},
	}
	SensorReadings = Table{
		Name:     "sensor_readings",
		File:     "Fact_Sensor_Readings.csv",
		Columns:  []string{"Timestamp", "EquipmentID", "Temperature_C", "Vibration_mm_s"},
		Optional: []string{"Status"},
	}
	Production = Table{
		Name: "production",
		File: "Fact_Production.csv",
		Columns: []string{
			"Date", "EquipmentID", "TotalPartsProduced", "GoodPartsProduced",
			"DowntimeHours", "OperatingHours", "IdealCycleTime_s",
		},
	}
	Products = Table{
		Name:     "products",
		File:     "Dim_Product.csv",
		Required: true,
		Columns: []string{
			"ProductID", "ProductName", "Category", "ReorderPoint", "SafetyStock",
			"UnitCost", "MOQ", "ABC_Class", "CurrentStock",
		},
		Optional: []string{"LeadTimeDays"},
	}
	Transactions = Table{
		Name:    "inventory_transactions",
		File:    "Fact_Inventory_Transactions.csv",
		Columns: []string{"TransactionID", "Date", "ProductID", "Quantity", "Type", "UnitCost"},
	}
	Vendors = Table{
		Name:     "vendors",
		File:     "Dim_Vendor.csv",
		Columns:  []string{"VendorID", "VendorName", "Rating", "AvgDeliveryDelay", "QualityScore"},
		Optional: []string{"PaymentTerms", "Category"},
	}
	CostRecords = Table{
		Name:    "cost_records",
		File:    "Fact_Costs.csv",
		Columns: []string{"CostID", "VendorID", "ContractValue", "ActualPayment"},
	}
	BudgetLines = Table{
		Name:    "budget",
		File:    "Fact_Budget_vs_Actual.csv",
		Columns: []string{"Date", "CostCenter", "GLAccount", "BudgetAmount", "ActualAmount"},
	}
	Technicians = Table{
		Name:    "technicians",
		File:    "Dim_Technician.csv",
		Columns: []string{"TechnicianID", "Name", "SkillLevel", "HourlyRate"},
	}
	Equipment = Table{
		Name:     "equipment",
		File:     "Dim_Equipment.csv",
		Columns:  []string{"EquipmentID", "EquipmentName", "Type"},
		Optional: []string{"Criticality", "FunctionalLocation"},
	}
)

// Tables lists every source table in load order
var Tables = []Table{
	WorkOrders, SensorReadings, Production, Products, Transactions,
	Vendors, CostRecords, BudgetLines, Technicians, Equipment,
}
