package entities

import "github.com/shopspring/decimal"

// Vendor is a supplier of parts or services
type Vendor struct {
	ID                   string
	Name                 string
	Rating               float64 // 0..5
	AvgDeliveryDelayDays float64
	QualityScore         float64 // 0..100
	PaymentTerms         string
	Category             string
}

// CostRecord is a single vendor invoice against its contract value
type CostRecord struct {
	ID            string
	VendorID      string
	ContractValue decimal.Decimal
	ActualPayment decimal.Decimal
}
