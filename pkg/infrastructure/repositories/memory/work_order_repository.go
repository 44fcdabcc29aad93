package memory

import (
	"sort"

	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/domain/entities"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/domain/repositories"
)

// WorkOrderRepository provides in-memory work order storage
type WorkOrderRepository struct {
	orders []entities.WorkOrder
}

// NewWorkOrderRepository creates a new in-memory work order repository
func NewWorkOrderRepository(expectedOrders int) *WorkOrderRepository {
	return &WorkOrderRepository{
		orders: make([]entities.WorkOrder, 0, expectedOrders),
	}
}

// Verify interface compliance
var _ repositories.WorkOrderRepository = (*WorkOrderRepository)(nil)

// LoadWorkOrders loads work orders into the repository, keeping them sorted by event date
func (r *WorkOrderRepository) LoadWorkOrders(orders []*entities.WorkOrder) error {
	for _, wo := range orders {
		r.orders = append(r.orders, *wo)
	}
	sort.SliceStable(r.orders, func(i, j int) bool {
		return r.orders[i].EventDate.Before(r.orders[j].EventDate)
	})
	return nil
}

// GetWorkOrders returns the work orders selected by the filter
func (r *WorkOrderRepository) GetWorkOrders(filter repositories.Filter) ([]*entities.WorkOrder, error) {
	var orders []*entities.WorkOrder
	for i := range r.orders {
		wo := &r.orders[i]
		if !filter.InRange(wo.EventDate) || !filter.MatchesEquipment(wo.EquipmentID) {
			continue
		}
		if !filter.MatchesCategory(wo.Category()) {
			continue
		}
		orders = append(orders, wo)
	}
	return orders, nil
}
