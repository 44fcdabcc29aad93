package technician

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testhelpers "github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/services/testing"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/domain/entities"
)

func TestTechnicianStats(t *testing.T) {
	svc := NewTechnicianService()
	ds := testhelpers.BuildFleetTestData()

	rows := svc.TechnicianStats(ds.WorkOrders, ds.Technicians)
	require.Len(t, rows, 3)

	tests := []struct {
		name       string
		count      int
		hours      float64
		avgHours   float64
		cost       string
		downtime   float64
		efficiency float64
	}{
		{"Asha Rao", 3, 9, 3, "5300", 2.33, 0.33},
		{"Bilal Khan", 2, 13, 6.5, "16700", 8, 0.15},
		{"Chen Wei", 1, 0, 0, "600", 1, 0},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := rows[i]
			assert.Equal(t, tt.name, row.Name)
			assert.Equal(t, tt.count, row.WorkOrderCount)
			assert.Equal(t, tt.hours, row.LaborHours)
			assert.Equal(t, tt.avgHours, row.AvgHoursPerWO)
			assert.Equal(t, tt.cost, row.TotalCost.String())
			assert.Equal(t, tt.downtime, row.AvgDowntime)
			assert.Equal(t, tt.efficiency, row.Efficiency)
		})
	}
}

func TestTechnicianStats_IgnoresUnknownTechnicians(t *testing.T) {
	svc := NewTechnicianService()
	wo := testhelpers.Preventive("WO-1", "EX-01", testhelpers.Day(2024, time.May, 1), 1)
	wo.TechnicianID = "T-99"

	rows := svc.TechnicianStats([]*entities.WorkOrder{wo}, testhelpers.BuildFleetTestData().Technicians)
	assert.Empty(t, rows)
}

func TestSkillLevelSummary(t *testing.T) {
	svc := NewTechnicianService()
	ds := testhelpers.BuildFleetTestData()
	ds.WorkOrders[0].LaborCost = decimal.NewFromInt(120)

	rows := svc.SkillLevelSummary(ds.WorkOrders, ds.Technicians)
	require.Len(t, rows, 2)

	junior, senior := rows[0], rows[1]
	assert.Equal(t, "Junior", junior.SkillLevel)
	assert.Equal(t, 2, junior.WorkOrderCount)
	assert.Equal(t, "25", junior.AvgHourlyRate.String())
	assert.Equal(t, "8350", junior.CostPerWO.String())

	assert.Equal(t, "Senior", senior.SkillLevel)
	assert.Equal(t, 4, senior.WorkOrderCount)
	assert.Equal(t, 9.0, senior.LaborHours)
	assert.Equal(t, "5900", senior.TotalCost.String())
	assert.Equal(t, "120", senior.LaborCost.String())
	assert.Equal(t, "41", senior.AvgHourlyRate.String())
	assert.Equal(t, "1475", senior.CostPerWO.String())
}

func TestAnalyze_Empty(t *testing.T) {
	report := NewTechnicianService().Analyze(nil, nil)
	assert.Empty(t, report.Technicians)
	assert.Empty(t, report.SkillLevels)
}
