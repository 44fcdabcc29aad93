package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/domain/entities"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/infrastructure/repositories/tabular"
)

type mapSource map[string][][]string

func (m mapSource) ReadTable(_ context.Context, t tabular.Table) ([]string, [][]string, error) {
	rows, ok := m[t.Name]
	if !ok {
		return nil, nil, tabular.ErrTableNotFound
	}
	return rows[0], rows[1:], nil
}

func requiredTables() mapSource {
	return mapSource{
		"work_orders": {
			{"WorkOrderID", "EquipmentID", "TechnicianID", "Date", "ScheduledDate", "MaintenanceType", "FailureCode", "DowntimeHours", "LaborHours", "PartsCost", "LaborCost", "TotalCost"},
			{"WO1", "EX-01", "T-01", "2024-01-05", "2024-01-04", "Preventive", "", "2.5", "3", "1200.50", "255", "1455.50"},
			{"WO2", "DT-02", "T-02", "2024-01-09", "", "Breakdown", "ENG-OVERHEAT", "8", "6", "5000", "510", "5510"},
		},
		"products": {
			{"ProductID", "ProductName", "Category", "ReorderPoint", "SafetyStock", "UnitCost", "MOQ", "ABC_Class", "CurrentStock"},
			{"P-100", "Filters", "Consumable", "20", "30", "45", "50", "A", "15"},
		},
	}
}

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "maintenance.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_ImportAndLoad(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	src := requiredTables()
	src["sensor_readings"] = [][]string{
		{"Timestamp", "EquipmentID", "Temperature_C", "Vibration_mm_s"},
		{"2024-01-09 22:00:00", "DT-02", "97.5", "5.2"},
	}

	copied, err := s.Import(ctx, src)
	require.NoError(t, err)
	assert.Equal(t, 3, copied)

	ds, err := s.Load(ctx)
	require.NoError(t, err)

	require.Len(t, ds.WorkOrders, 2)
	assert.Equal(t, "ENG-OVERHEAT", ds.WorkOrders[1].FailureCode)
	assert.Equal(t, entities.Breakdown, ds.WorkOrders[1].MaintenanceType)
	require.Len(t, ds.Products, 1)
	assert.Equal(t, entities.Quantity(15), ds.Products[0].CurrentStock)
	require.Len(t, ds.SensorReadings, 1)
	assert.Equal(t, 5.2, ds.SensorReadings[0].VibrationMmS)
	assert.Empty(t, ds.Vendors)
}

func TestStore_ImportReplacesRows(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	_, err := s.Import(ctx, requiredTables())
	require.NoError(t, err)
	_, err = s.Import(ctx, requiredTables())
	require.NoError(t, err)

	ds, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, ds.WorkOrders, 2)
}

func TestStore_MissingRequiredTable(t *testing.T) {
	s := openStore(t)

	_, err := s.Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, tabular.ErrTableNotFound))
}

func TestStore_SchemaErrorCarriesRow(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	src := requiredTables()
	src["work_orders"] = append(src["work_orders"],
		[]string{"WO3", "EX-01", "T-01", "not-a-date", "", "Preventive", "", "1", "1", "10", "10", "20"})
	_, err := s.Import(ctx, src)
	require.NoError(t, err)

	_, err = s.Load(ctx)
	var se *entities.SchemaError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "work_orders", se.Table)
	assert.Equal(t, 3, se.Row)
	assert.Equal(t, "Date", se.Field)
}

func TestStore_ImportTableWithoutKnownColumns(t *testing.T) {
	s := openStore(t)

	err := s.ImportTable(context.Background(), tabular.Equipment, []string{"Foo"}, [][]string{{"bar"}})
	var se *entities.SchemaError
	require.True(t, errors.As(err, &se))
}
