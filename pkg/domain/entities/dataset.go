package entities

// Dataset holds every table the KPI calculations consume, as loaded from one source
type Dataset struct {
	WorkOrders     []*WorkOrder
	SensorReadings []*SensorReading
	Production     []*ProductionRecord
	Products       []*Product
	Transactions   []*InventoryTransaction
	Vendors        []*Vendor
	CostRecords    []*CostRecord
	BudgetLines    []*BudgetLine
	Technicians    []*Technician
	Equipment      []*Equipment
}

// EquipmentIDs returns the IDs of the equipment register in load order
func (d *Dataset) EquipmentIDs() []string {
	ids := make([]string, 0, len(d.Equipment))
	for _, e := range d.Equipment {
		ids = append(ids, e.ID)
	}
	return ids
}
