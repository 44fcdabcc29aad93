package memory

import (
	"testing"
	"time"

	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/domain/entities"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/domain/repositories"
)

func day(d int) time.Time {
	return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
}

func TestWorkOrderRepository_GetWorkOrders(t *testing.T) {
	repo := NewWorkOrderRepository(4)
	err := repo.LoadWorkOrders([]*entities.WorkOrder{
		{ID: "WO-3", EquipmentID: "EX-01", EventDate: day(20), MaintenanceType: entities.Breakdown},
		{ID: "WO-1", EquipmentID: "EX-01", EventDate: day(1), MaintenanceType: entities.Preventive},
		{ID: "WO-2", EquipmentID: "DT-02", EventDate: day(10), MaintenanceType: entities.Breakdown},
		{ID: "WO-4", EquipmentID: "DT-02", EventDate: day(31), MaintenanceType: entities.Preventive},
	})
	if err != nil {
		t.Fatalf("Failed to load work orders: %v", err)
	}

	tests := []struct {
		name     string
		filter   repositories.Filter
		expected []string
	}{
		{"no filter returns all by date", repositories.Filter{}, []string{"WO-1", "WO-2", "WO-3", "WO-4"}},
		{"date range inclusive", repositories.Filter{From: day(10), To: day(20)}, []string{"WO-2", "WO-3"}},
		{"equipment", repositories.Filter{EquipmentIDs: []string{"DT-02"}}, []string{"WO-2", "WO-4"}},
		{"category", repositories.Filter{Category: "unplanned"}, []string{"WO-2", "WO-3"}},
		{"combined", repositories.Filter{To: day(15), Category: "Planned"}, []string{"WO-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders, err := repo.GetWorkOrders(tt.filter)
			if err != nil {
				t.Fatalf("Failed to get work orders: %v", err)
			}
			if len(orders) != len(tt.expected) {
				t.Fatalf("Expected %d orders, got %d", len(tt.expected), len(orders))
			}
			for i, id := range tt.expected {
				if orders[i].ID != id {
					t.Errorf("Expected order %d to be %s, got %s", i, id, orders[i].ID)
				}
			}
		})
	}
}

func TestFilter_InRangeIncludesWholeEndDay(t *testing.T) {
	f := repositories.Filter{From: day(5), To: day(5)}
	if !f.InRange(day(5).Add(23 * time.Hour)) {
		t.Errorf("Expected late reading on the end day to be in range")
	}
	if f.InRange(day(6)) {
		t.Errorf("Expected following day to be out of range")
	}
	if f.InRange(day(4).Add(23 * time.Hour)) {
		t.Errorf("Expected previous day to be out of range")
	}
}
