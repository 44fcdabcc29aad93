package memory

import (
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/domain/entities"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/domain/repositories"
)

// SensorRepository provides in-memory sensor reading storage
type SensorRepository struct {
	readings []entities.SensorReading
}

// NewSensorRepository creates a new in-memory sensor repository
func NewSensorRepository() *SensorRepository {
	return &SensorRepository{
		readings: []entities.SensorReading{},
	}
}

// Verify interface compliance
var _ repositories.SensorRepository = (*SensorRepository)(nil)

// LoadReadings loads sensor readings into the repository
func (r *SensorRepository) LoadReadings(readings []*entities.SensorReading) error {
	for _, reading := range readings {
		r.readings = append(r.readings, *reading)
	}
	return nil
}

// GetReadings returns readings selected by date range and equipment
func (r *SensorRepository) GetReadings(filter repositories.Filter) ([]*entities.SensorReading, error) {
	var readings []*entities.SensorReading
	for i := range r.readings {
		reading := &r.readings[i]
		if filter.InRange(reading.Timestamp) && filter.MatchesEquipment(reading.EquipmentID) {
			readings = append(readings, reading)
		}
	}
	return readings, nil
}

// ProductionRepository provides in-memory production record storage
type ProductionRepository struct {
	records []entities.ProductionRecord
}

// NewProductionRepository creates a new in-memory production repository
func NewProductionRepository() *ProductionRepository {
	return &ProductionRepository{
		records: []entities.ProductionRecord{},
	}
}

// Verify interface compliance
var _ repositories.ProductionRepository = (*ProductionRepository)(nil)

// LoadProduction loads production records into the repository
func (r *ProductionRepository) LoadProduction(records []*entities.ProductionRecord) error {
	for _, rec := range records {
		r.records = append(r.records, *rec)
	}
	return nil
}

// GetProduction returns production records selected by date range and equipment
func (r *ProductionRepository) GetProduction(filter repositories.Filter) ([]*entities.ProductionRecord, error) {
	var records []*entities.ProductionRecord
	for i := range r.records {
		rec := &r.records[i]
		if filter.InRange(rec.Date) && filter.MatchesEquipment(rec.EquipmentID) {
			records = append(records, rec)
		}
	}
	return records, nil
}
