package repositories

import "github.com/Shyams728/maintanance-analytics-dashboard/pkg/domain/entities"

// FinanceRepository provides access to vendors, invoices and budgets.
// The filter category matches the vendor category and the cost center.
type FinanceRepository interface {
	GetVendors(filter Filter) ([]*entities.Vendor, error)
	GetCostRecords() ([]*entities.CostRecord, error)
	GetBudgetLines(filter Filter) ([]*entities.BudgetLine, error)
	LoadVendors(vendors []*entities.Vendor) error
	LoadCostRecords(records []*entities.CostRecord) error
	LoadBudgetLines(lines []*entities.BudgetLine) error
}
