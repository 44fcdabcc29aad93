package entities

import "github.com/shopspring/decimal"

// Technician performs maintenance work orders
type Technician struct {
	ID         string
	Name       string
	SkillLevel string
	HourlyRate decimal.Decimal
}

// Equipment is a maintained asset in the fleet or plant
type Equipment struct {
	ID                 string
	Name               string
	Type               string
	Criticality        string
	FunctionalLocation string
}
