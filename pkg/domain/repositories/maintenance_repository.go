package repositories

import "github.com/Shyams728/maintanance-analytics-dashboard/pkg/domain/entities"

// WorkOrderRepository provides access to maintenance work orders.
// The filter category matches the order's Planned/Unplanned category.
type WorkOrderRepository interface {
	GetWorkOrders(filter Filter) ([]*entities.WorkOrder, error)
	LoadWorkOrders(orders []*entities.WorkOrder) error
}

// SensorRepository provides access to condition-monitoring readings
type SensorRepository interface {
	GetReadings(filter Filter) ([]*entities.SensorReading, error)
	LoadReadings(readings []*entities.SensorReading) error
}

// ProductionRepository provides access to daily production records
type ProductionRepository interface {
	GetProduction(filter Filter) ([]*entities.ProductionRecord, error)
	LoadProduction(records []*entities.ProductionRecord) error
}

// AssetRepository provides access to the equipment and technician registers
type AssetRepository interface {
	GetEquipment(filter Filter) ([]*entities.Equipment, error)
	GetTechnicians() ([]*entities.Technician, error)
	LoadEquipment(equipment []*entities.Equipment) error
	LoadTechnicians(technicians []*entities.Technician) error
}
