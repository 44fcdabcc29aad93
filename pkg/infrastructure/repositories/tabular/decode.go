package tabular

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/domain/entities"
)

// fields reads typed values from a record and keeps the first error, so a
// decoder can read every column and check once at the end
type fields struct {
	rec *Record
	err error
}

func (f *fields) str(name string) string {
	return f.rec.String(name)
}

func (f *fields) required(name string) string {
	if f.err != nil {
		return ""
	}
	v, err := f.rec.RequiredString(name)
	f.err = err
	return v
}

func (f *fields) float(name string) float64 {
	if f.err != nil {
		return 0
	}
	v, err := f.rec.Float(name)
	f.err = err
	return v
}

func (f *fields) int(name string) int64 {
	if f.err != nil {
		return 0
	}
	v, err := f.rec.Int(name)
	f.err = err
	return v
}

func (f *fields) decimal(name string) decimal.Decimal {
	if f.err != nil {
		return decimal.Zero
	}
	v, err := f.rec.Decimal(name)
	f.err = err
	return v
}

func (f *fields) time(name string) time.Time {
	if f.err != nil {
		return time.Time{}
	}
	v, err := f.rec.Time(name)
	f.err = err
	return v
}

func (f *fields) requiredTime(name string) time.Time {
	if f.err != nil {
		return time.Time{}
	}
	v, err := f.rec.RequiredTime(name)
	f.err = err
	return v
}

func (f *fields) quantity(name string) entities.Quantity {
	return entities.Quantity(f.int(name))
}

func decodeWorkOrder(rec *Record) (*entities.WorkOrder, error) {
	f := &fields{rec: rec}
	id := f.required("WorkOrderID")
	equipmentID := f.required("EquipmentID")
	technicianID := f.str("TechnicianID")
	eventDate := f.requiredTime("Date")
	scheduled := f.time("ScheduledDate")
	rawType := f.required("MaintenanceType")
	failureCode := f.str("FailureCode")
	downtime := f.float("DowntimeHours")
	labor := f.float("LaborHours")
	partsCost := f.decimal("PartsCost")
	laborCost := f.decimal("LaborCost")
	delay := f.int("DelayMinutes")
	if f.err != nil {
		return nil, f.err
	}

	mtype, err := entities.ParseMaintenanceType(rawType)
	if err != nil {
		return nil, rec.schemaError("MaintenanceType", rawType, "expected Preventive or Breakdown")
	}

	wo, err := entities.NewWorkOrder(id, equipmentID, technicianID, eventDate, scheduled, mtype,
		failureCode, downtime, labor, partsCost, laborCost, int(delay))
	if err != nil {
		return nil, rec.wrap(err)
	}
	return wo, nil
}

func decodeSensorReading(rec *Record) (*entities.SensorReading, error) {
	f := &fields{rec: rec}
	r := &entities.SensorReading{
		Timestamp:    f.requiredTime("Timestamp"),
		EquipmentID:  f.required("EquipmentID"),
		TemperatureC: f.float("Temperature_C"),
		VibrationMmS: f.float("Vibration_mm_s"),
		Status:       f.str("Status"),
	}
	if f.err != nil {
		return nil, f.err
	}
	return r, nil
}

func decodeProduction(rec *Record) (*entities.ProductionRecord, error) {
	f := &fields{rec: rec}
	p := &entities.ProductionRecord{
		Date:                  f.requiredTime("Date"),
		EquipmentID:           f.required("EquipmentID"),
		TotalPartsProduced:    f.int("TotalPartsProduced"),
		GoodPartsProduced:     f.int("GoodPartsProduced"),
		DowntimeHours:         f.float("DowntimeHours"),
		OperatingHours:        f.float("OperatingHours"),
		IdealCycleTimeSeconds: f.float("IdealCycleTime_s"),
	}
	if f.err != nil {
		return nil, f.err
	}
	return p, nil
}

func decodeProduct(rec *Record) (*entities.Product, error) {
	f := &fields{rec: rec}
	id := f.required("ProductID")
	name := f.str("ProductName")
	category := f.str("Category")
	reorderPoint := f.quantity("ReorderPoint")
	safetyStock := f.quantity("SafetyStock")
	unitCost := f.decimal("UnitCost")
	leadTime := f.int("LeadTimeDays")
	moq := f.quantity("MOQ")
	abc := f.str("ABC_Class")
	stock := f.quantity("CurrentStock")
	if f.err != nil {
		return nil, f.err
	}

	p, err := entities.NewProduct(id, name, category, reorderPoint, safetyStock, unitCost, int(leadTime), moq, abc, stock)
	if err != nil {
		return nil, rec.wrap(err)
	}
	return p, nil
}

func decodeTransaction(rec *Record) (*entities.InventoryTransaction, error) {
	f := &fields{rec: rec}
	t := &entities.InventoryTransaction{
		ID:        f.required("TransactionID"),
		Date:      f.requiredTime("Date"),
		ProductID: f.required("ProductID"),
		Quantity:  f.quantity("Quantity"),
		UnitCost:  f.decimal("UnitCost"),
	}
	rawType := f.required("Type")
	if f.err != nil {
		return nil, f.err
	}

	ttype, err := entities.ParseTransactionType(rawType)
	if err != nil {
		return nil, rec.schemaError("Type", rawType, "expected Issue or Receipt")
	}
	t.Type = ttype
	return t, nil
}

func decodeVendor(rec *Record) (*entities.Vendor, error) {
	f := &fields{rec: rec}
	v := &entities.Vendor{
		ID:                   f.required("VendorID"),
		Name:                 f.str("VendorName"),
		Rating:               f.float("Rating"),
		AvgDeliveryDelayDays: f.float("AvgDeliveryDelay"),
		QualityScore:         f.float("QualityScore"),
		PaymentTerms:         f.str("PaymentTerms"),
		Category:             f.str("Category"),
	}
	if f.err != nil {
		return nil, f.err
	}
	return v, nil
}

func decodeCostRecord(rec *Record) (*entities.CostRecord, error) {
	f := &fields{rec: rec}
	c := &entities.CostRecord{
		ID:            f.required("CostID"),
		VendorID:      f.required("VendorID"),
		ContractValue: f.decimal("ContractValue"),
		ActualPayment: f.decimal("ActualPayment"),
	}
	if f.err != nil {
		return nil, f.err
	}
	return c, nil
}

func decodeBudgetLine(rec *Record) (*entities.BudgetLine, error) {
	f := &fields{rec: rec}
	b := &entities.BudgetLine{
		Date:         f.requiredTime("Date"),
		CostCenter:   f.required("CostCenter"),
		GLAccount:    f.str("GLAccount"),
		BudgetAmount: f.decimal("BudgetAmount"),
		ActualAmount: f.decimal("ActualAmount"),
	}
	if f.err != nil {
		return nil, f.err
	}
	return b, nil
}

func decodeTechnician(rec *Record) (*entities.Technician, error) {
	f := &fields{rec: rec}
	t := &entities.Technician{
		ID:         f.required("TechnicianID"),
		Name:       f.str("Name"),
		SkillLevel: f.str("SkillLevel"),
		HourlyRate: f.decimal("HourlyRate"),
	}
	if f.err != nil {
		return nil, f.err
	}
	return t, nil
}

func decodeEquipment(rec *Record) (*entities.Equipment, error) {
	f := &fields{rec: rec}
	e := &entities.Equipment{
		ID:                 f.required("EquipmentID"),
		Name:               f.str("EquipmentName"),
		Type:               f.str("Type"),
		Criticality:        f.str("Criticality"),
		FunctionalLocation: f.str("FunctionalLocation"),
	}
	if f.err != nil {
		return nil, f.err
	}
	return e, nil
}
