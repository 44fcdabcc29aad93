package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the direction of a stock movement
type TransactionType int

const (
	Issue TransactionType = iota
	Receipt
)

// String method for TransactionType enum
func (t TransactionType) String() string {
	switch t {
	case Issue:
		return "Issue"
	case Receipt:
		return "Receipt"
	default:
		return "Unknown"
	}
}

// ParseTransactionType parses the textual transaction type used in source tables
func ParseTransactionType(s string) (TransactionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "issue":
		return Issue, nil
	case "receipt":
		return Receipt, nil
	default:
		return Issue, fmt.Errorf("invalid transaction type: %s (expected: Issue or Receipt)", s)
	}
}

// InventoryTransaction is a signed stock movement: issues carry negative
// quantities, receipts positive ones.
type InventoryTransaction struct {
	ID        string
	Date      time.Time
	ProductID string
	Quantity  Quantity
	Type      TransactionType
	UnitCost  decimal.Decimal
}

// AbsQuantity returns the unsigned moved quantity
func (t InventoryTransaction) AbsQuantity() Quantity {
	if t.Quantity < 0 {
		return -t.Quantity
	}
	return t.Quantity
}
