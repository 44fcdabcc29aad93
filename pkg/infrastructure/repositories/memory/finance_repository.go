package memory

import (
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/domain/entities"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/domain/repositories"
)

// FinanceRepository provides in-memory vendor, invoice and budget storage
type FinanceRepository struct {
	vendors     []entities.Vendor
	costRecords []entities.CostRecord
	budget      []entities.BudgetLine
}

// NewFinanceRepository creates a new in-memory finance repository
func NewFinanceRepository() *FinanceRepository {
	return &FinanceRepository{}
}

// Verify interface compliance
var _ repositories.FinanceRepository = (*FinanceRepository)(nil)

// LoadVendors loads vendors into the repository
func (r *FinanceRepository) LoadVendors(vendors []*entities.Vendor) error {
	for _, v := range vendors {
		r.vendors = append(r.vendors, *v)
	}
	return nil
}

// LoadCostRecords loads vendor invoices into the repository
func (r *FinanceRepository) LoadCostRecords(records []*entities.CostRecord) error {
	for _, c := range records {
		r.costRecords = append(r.costRecords, *c)
	}
	return nil
}

// LoadBudgetLines loads budget lines into the repository
func (r *FinanceRepository) LoadBudgetLines(lines []*entities.BudgetLine) error {
	for _, b := range lines {
		r.budget = append(r.budget, *b)
	}
	return nil
}

// GetVendors returns vendors selected by category, in load order
func (r *FinanceRepository) GetVendors(filter repositories.Filter) ([]*entities.Vendor, error) {
	var vendors []*entities.Vendor
	for i := range r.vendors {
		if filter.MatchesCategory(r.vendors[i].Category) {
			vendors = append(vendors, &r.vendors[i])
		}
	}
	return vendors, nil
}

// GetCostRecords returns all vendor invoices
func (r *FinanceRepository) GetCostRecords() ([]*entities.CostRecord, error) {
	var records []*entities.CostRecord
	for i := range r.costRecords {
		records = append(records, &r.costRecords[i])
	}
	return records, nil
}

// GetBudgetLines returns budget lines selected by month and cost center
func (r *FinanceRepository) GetBudgetLines(filter repositories.Filter) ([]*entities.BudgetLine, error) {
	var lines []*entities.BudgetLine
	for i := range r.budget {
		b := &r.budget[i]
		if filter.InRange(b.Date) && filter.MatchesCategory(b.CostCenter) {
			lines = append(lines, b)
		}
	}
	return lines, nil
}
