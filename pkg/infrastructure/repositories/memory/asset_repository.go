package memory

import (
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/domain/entities"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/domain/repositories"
)

// AssetRepository provides in-memory equipment and technician registers
type AssetRepository struct {
	equipment   []entities.Equipment
	technicians []entities.Technician
}

// NewAssetRepository creates a new in-memory asset repository
func NewAssetRepository() *AssetRepository {
	return &AssetRepository{}
}

// Verify interface compliance
var _ repositories.AssetRepository = (*AssetRepository)(nil)

// LoadEquipment loads the equipment register
func (r *AssetRepository) LoadEquipment(equipment []*entities.Equipment) error {
	for _, e := range equipment {
		r.equipment = append(r.equipment, *e)
	}
	return nil
}

// LoadTechnicians loads the technician register
func (r *AssetRepository) LoadTechnicians(technicians []*entities.Technician) error {
	for _, t := range technicians {
		r.technicians = append(r.technicians, *t)
	}
	return nil
}

// GetEquipment returns equipment selected by ID and equipment type
func (r *AssetRepository) GetEquipment(filter repositories.Filter) ([]*entities.Equipment, error) {
	var equipment []*entities.Equipment
	for i := range r.equipment {
		e := &r.equipment[i]
		if filter.MatchesEquipment(e.ID) && filter.MatchesCategory(e.Type) {
			equipment = append(equipment, e)
		}
	}
	return equipment, nil
}

// GetTechnicians returns all technicians
func (r *AssetRepository) GetTechnicians() ([]*entities.Technician, error) {
	var technicians []*entities.Technician
	for i := range r.technicians {
		technicians = append(technicians, &r.technicians[i])
	}
	return technicians, nil
}
