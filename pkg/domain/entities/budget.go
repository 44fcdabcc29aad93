package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetLine is the planned and actual spend of one GL account in one cost
// center for one month.
type BudgetLine struct {
	Date         time.Time
	CostCenter   string
	GLAccount    string
	BudgetAmount decimal.Decimal
	ActualAmount decimal.Decimal
}

// Month returns the first day of the line's month in UTC
func (b BudgetLine) Month() time.Time {
	return MonthStart(b.Date)
}

// MonthStart truncates a date to the first day of its month in UTC
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
