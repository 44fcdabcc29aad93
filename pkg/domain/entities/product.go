package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Quantity represents an integer stock quantity of discrete units
type Quantity int64

// StockStatus represents the replenishment health of a product
type StockStatus int

const (
	StockHealthy StockStatus = iota
	StockoutRisk
	StockCritical
)

// String method for StockStatus enum
func (s StockStatus) String() string {
	switch s {
	case StockHealthy:
		return "Healthy"
	case StockoutRisk:
		return "Stockout Risk"
	case StockCritical:
		return "Critical"
	default:
		return "Unknown"
	}
}

// Product represents a spare part or consumable kept in the store
type Product struct {
	ID           string
	Name         string
	Category     string
	ReorderPoint Quantity
	SafetyStock  Quantity
	UnitCost     decimal.Decimal
	LeadTimeDays int
	MOQ          Quantity
	ABCClass     string
	CurrentStock Quantity
}

// NewProduct creates a validated Product
func NewProduct(
	id, name, category string,
	reorderPoint, safetyStock Quantity,
	unitCost decimal.Decimal,
	leadTimeDays int,
	moq Quantity,
	abcClass string,
	currentStock Quantity,
) (*Product, error) {
	if id == "" {
		return nil, NewSchemaError("products", 0, "product_id", "", "cannot be empty")
	}
	if moq < 1 {
		return nil, NewSchemaError("products", 0, "moq", fmt.Sprint(moq), "must be at least 1")
	}

	return &Product{
		ID:           id,
		Name:         name,
		Category:     category,
		ReorderPoint: reorderPoint,
		SafetyStock:  safetyStock,
		UnitCost:     unitCost,
		LeadTimeDays: leadTimeDays,
		MOQ:          moq,
		ABCClass:     abcClass,
		CurrentStock: currentStock,
	}, nil
}

// NeedsReorder reports whether stock has fallen to the reorder point
func (p Product) NeedsReorder() bool {
	return p.CurrentStock <= p.ReorderPoint
}

// StockStatus classifies current stock against the reorder point first and
// the safety stock second.
func (p Product) StockStatus() StockStatus {
	switch {
	case p.CurrentStock <= p.ReorderPoint:
		return StockCritical
	case p.CurrentStock <= p.SafetyStock:
		return StockoutRisk
	default:
		return StockHealthy
	}
}

// StockValue is the value of the stock on hand at unit cost
func (p Product) StockValue() decimal.Decimal {
	return p.UnitCost.Mul(decimal.NewFromInt(int64(p.CurrentStock)))
}
