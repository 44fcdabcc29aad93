package memory

import (
	"fmt"

	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/domain/entities"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/domain/repositories"
)

// InventoryRepository provides in-memory product and transaction storage
type InventoryRepository struct {
	products     []entities.Product
	productIndex map[string]int
	transactions []entities.InventoryTransaction
}

// NewInventoryRepository creates a new in-memory inventory repository
func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{
		products:     []entities.Product{},
		productIndex: make(map[string]int),
		transactions: []entities.InventoryTransaction{},
	}
}

// Verify interface compliance
var _ repositories.InventoryRepository = (*InventoryRepository)(nil)

// LoadProducts loads products into the repository. A repeated product ID
// replaces the earlier record.
func (r *InventoryRepository) LoadProducts(products []*entities.Product) error {
	for _, p := range products {
		if idx, exists := r.productIndex[p.ID]; exists {
			r.products[idx] = *p
			continue
		}
		r.productIndex[p.ID] = len(r.products)
		r.products = append(r.products, *p)
	}
	return nil
}

// LoadTransactions loads stock movements into the repository
func (r *InventoryRepository) LoadTransactions(transactions []*entities.InventoryTransaction) error {
	for _, t := range transactions {
		r.transactions = append(r.transactions, *t)
	}
	return nil
}

// GetProduct returns a product by ID
func (r *InventoryRepository) GetProduct(id string) (*entities.Product, error) {
	idx, exists := r.productIndex[id]
	if !exists {
		return nil, fmt.Errorf("product not found: %s", id)
	}
	return &r.products[idx], nil
}

// GetProducts returns products selected by category
func (r *InventoryRepository) GetProducts(filter repositories.Filter) ([]*entities.Product, error) {
	var products []*entities.Product
	for i := range r.products {
		if filter.MatchesCategory(r.products[i].Category) {
			products = append(products, &r.products[i])
		}
	}
	return products, nil
}

// GetTransactions returns stock movements within the date range whose
// product passes the category filter
func (r *InventoryRepository) GetTransactions(filter repositories.Filter) ([]*entities.InventoryTransaction, error) {
	var transactions []*entities.InventoryTransaction
	for i := range r.transactions {
		t := &r.transactions[i]
		if !filter.InRange(t.Date) {
			continue
		}
		if filter.Category != "" {
			p, err := r.GetProduct(t.ProductID)
			if err != nil || !filter.MatchesCategory(p.Category) {
				continue
			}
		}
		transactions = append(transactions, t)
	}
	return transactions, nil
}
