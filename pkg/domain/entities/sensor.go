package entities

import "time"

// SensorReading is a single condition-monitoring sample
type SensorReading struct {
	Timestamp    time.Time
	EquipmentID  string
	TemperatureC float64
	VibrationMmS float64
	Status       string
}
