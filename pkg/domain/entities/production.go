package entities

import "time"

// ProductionRecord is one day of output for one piece of equipment
type ProductionRecord struct {
	Date                  time.Time
	EquipmentID           string
	TotalPartsProduced    int64
	GoodPartsProduced     int64
	DowntimeHours         float64
	OperatingHours        float64
	IdealCycleTimeSeconds float64
}
