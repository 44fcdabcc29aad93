package memory

import (
	"fmt"

	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/domain/entities"
)

// Repositories bundles the in-memory stores for one loaded dataset
type Repositories struct {
	WorkOrders *WorkOrderRepository
	Sensors    *SensorRepository
	Production *ProductionRepository
	Assets     *AssetRepository
	Inventory  *InventoryRepository
	Finance    *FinanceRepository
}

// NewRepositories loads every table of the dataset into fresh in-memory stores
func NewRepositories(ds *entities.Dataset) (*Repositories, error) {
	repos := &Repositories{
		WorkOrders: NewWorkOrderRepository(len(ds.WorkOrders)),
		Sensors:    NewSensorRepository(),
		Production: NewProductionRepository(),
		Assets:     NewAssetRepository(),
		Inventory:  NewInventoryRepository(),
		Finance:    NewFinanceRepository(),
	}

	loads := []struct {
		table string
		load  func() error
	}{
		{"work_orders", func() error { return repos.WorkOrders.LoadWorkOrders(ds.WorkOrders) }},
		{"sensor_readings", func() error { return repos.Sensors.LoadReadings(ds.SensorReadings) }},
		{"production", func() error { return repos.Production.LoadProduction(ds.Production) }},
		{"equipment", func() error { return repos.Assets.LoadEquipment(ds.Equipment) }},
		{"technicians", func() error { return repos.Assets.LoadTechnicians(ds.Technicians) }},
		{"products", func() error { return repos.Inventory.LoadProducts(ds.Products) }},
		{"inventory_transactions", func() error { return repos.Inventory.LoadTransactions(ds.Transactions) }},
		{"vendors", func() error { return repos.Finance.LoadVendors(ds.Vendors) }},
		{"cost_records", func() error { return repos.Finance.LoadCostRecords(ds.CostRecords) }},
		{"budget", func() error { return repos.Finance.LoadBudgetLines(ds.BudgetLines) }},
	}
	for _, l := range loads {
		if err := l.load(); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", l.table, err)
		}
	}
	return repos, nil
}
