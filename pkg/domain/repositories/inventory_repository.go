package repositories

import "github.com/Shyams728/maintanance-analytics-dashboard/pkg/domain/entities"

// InventoryRepository provides access to spare parts and their stock movements.
// The filter category matches the product category; the date range applies
// to transactions only.
type InventoryRepository interface {
	GetProducts(filter Filter) ([]*entities.Product, error)
	GetProduct(id string) (*entities.Product, error)
	GetTransactions(filter Filter) ([]*entities.InventoryTransaction, error)
	LoadProducts(products []*entities.Product) error
	LoadTransactions(transactions []*entities.InventoryTransaction) error
}
