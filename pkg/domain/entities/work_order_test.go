package entities

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestNewWorkOrder_DerivesTotalCost(t *testing.T) {
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	wo, err := NewWorkOrder(
		"WO00001", "EX001", "T001",
		date, time.Time{},
		Breakdown, "MECH01",
		12.5, 6,
		decimal.NewFromInt(8000), decimal.RequireFromString("510.00"),
		0,
	)
	if err != nil {
		t.Fatalf("Expected valid work order creation to succeed: %v", err)
	}
	if !wo.TotalCost.Equal(decimal.RequireFromString("8510")) {
		t.Errorf("Expected total cost 8510, got %s", wo.TotalCost)
	}
	if wo.HasSchedule() {
		t.Error("Expected breakdown without scheduled date")
	}
	if !wo.IsBreakdown() {
		t.Error("Expected breakdown order")
	}
}

func TestNewWorkOrder_Validation(t *testing.T) {
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name        string
		id          string
		equipmentID string
		eventDate   time.Time
		field       string
	}{
		{"empty id", "", "EX001", date, "work_order_id"},
		{"empty equipment", "WO1", "", date, "equipment_id"},
		{"missing date", "WO1", "EX001", time.Time{}, "date"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewWorkOrder(tc.id, tc.equipmentID, "T1", tc.eventDate, time.Time{},
				Preventive, "", 1, 1, decimal.Zero, decimal.Zero, 0)
			var schemaErr *SchemaError
			if !errors.As(err, &schemaErr) {
				t.Fatalf("Expected SchemaError, got %v", err)
			}
			if schemaErr.Field != tc.field {
				t.Errorf("Expected field %s, got %s", tc.field, schemaErr.Field)
			}
		})
	}
}

func TestWorkOrder_Enrichment(t *testing.T) {
	testCases := []struct {
		name     string
		mtype    MaintenanceType
		total    string
		delay    int
		category string
		segment  CostSegment
		delayed  bool
	}{
		{"cheap preventive", Preventive, "1500", 0, "Planned", LowCost, false},
		{"boundary medium", Preventive, "2000", 61, "Planned", LowCost, true},
		{"medium breakdown", Breakdown, "2000.01", 60, "Unplanned", MediumCost, false},
		{"expensive breakdown", Breakdown, "10000.5", 240, "Unplanned", HighCost, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			wo := WorkOrder{
				MaintenanceType: tc.mtype,
				TotalCost:       decimal.RequireFromString(tc.total),
				DelayMinutes:    tc.delay,
			}
			if got := wo.Category(); got != tc.category {
				t.Errorf("Expected category %s, got %s", tc.category, got)
			}
			if got := wo.CostSegment(); got != tc.segment {
				t.Errorf("Expected segment %s, got %s", tc.segment, got)
			}
			if got := wo.RestockingDelay(); got != tc.delayed {
				t.Errorf("Expected restocking delay %v, got %v", tc.delayed, got)
			}
		})
	}
}

func TestParseMaintenanceType(t *testing.T) {
	if mt, err := ParseMaintenanceType(" breakdown "); err != nil || mt != Breakdown {
		t.Errorf("Expected Breakdown, got %v (%v)", mt, err)
	}
	if mt, err := ParseMaintenanceType("Preventive"); err != nil || mt != Preventive {
		t.Errorf("Expected Preventive, got %v (%v)", mt, err)
	}
	if _, err := ParseMaintenanceType("Corrective"); err == nil {
		t.Error("Expected error for unknown maintenance type")
	}
}
