package cost

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/config"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/dto"
	testhelpers "github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/services/testing"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/domain/entities"
)

func record(vendorID string, contract, actual int64) *entities.CostRecord {
	return &entities.CostRecord{
		VendorID:      vendorID,
		ContractValue: decimal.NewFromInt(contract),
		ActualPayment: decimal.NewFromInt(actual),
	}
}

func TestPaymentVariance(t *testing.T) {
	svc := NewCostService()
	records := []*entities.CostRecord{
		record("V-03", 1000, 900),
		record("V-01", 6000, 6500),
		record("V-02", 1000, 1050),
		record("V-01", 4000, 4500),
		record("V-04", 0, 100),
	}

	rows := svc.PaymentVariance(records)
	require.Len(t, rows, 4)

	tests := []struct {
		vendorID string
		count    int
		variance string
		pct      float64
		status   dto.VarianceStatus
	}{
		{"V-01", 2, "1000", 10, dto.OverBudget},
		{"V-02", 1, "50", 5, dto.OnTrack},
		{"V-03", 1, "-100", -10, dto.UnderBudget},
		{"V-04", 1, "100", 0, dto.OnTrack},
	}
	for i, tt := range tests {
		t.Run(tt.vendorID, func(t *testing.T) {
			assert.Equal(t, tt.vendorID, rows[i].VendorID)
			assert.Equal(t, tt.count, rows[i].TransactionCount)
			assert.Equal(t, tt.variance, rows[i].Variance.String())
			assert.InDelta(t, tt.pct, rows[i].VariancePct, 1e-9)
			assert.Equal(t, tt.status, rows[i].Status)
		})
	}
}

func TestPaymentVariance_CustomTolerance(t *testing.T) {
	thresholds := config.DefaultThresholds()
	thresholds.VarianceTolerancePct = 15
	svc := NewCostServiceWithConfig(thresholds)

	rows := svc.PaymentVariance([]*entities.CostRecord{record("V-01", 1000, 1100)})
	assert.Equal(t, dto.OnTrack, rows[0].Status)
}

func TestPaymentVariance_Empty(t *testing.T) {
	assert.Empty(t, NewCostService().PaymentVariance(nil))
}

func TestBudgetAdherence(t *testing.T) {
	svc := NewCostService()
	month := testhelpers.Day(2024, time.January, 1)
	lines := []*entities.BudgetLine{
		testhelpers.BudgetLine(month, "Plant", 1000, 3500),
		testhelpers.BudgetLine(month, "Mining", 1000, 900),
		testhelpers.BudgetLine(month.AddDate(0, 1, 0), "Mining", 1000, 1000),
		{Date: month, CostCenter: "Mining", GLAccount: "5200-Parts", BudgetAmount: decimal.Zero, ActualAmount: decimal.NewFromInt(10)},
	}

	rows := svc.BudgetAdherence(lines)
	require.Len(t, rows, 3)

	assert.Equal(t, "Mining", rows[0].CostCenter)
	assert.Equal(t, "5100-Maintenance", rows[0].GLAccount)
	assert.Equal(t, "2000", rows[0].TotalBudget.String())
	assert.InDelta(t, -5.0, rows[0].VariancePct, 1e-9)
	assert.InDelta(t, 95.0, rows[0].AdherencePct, 1e-9)

	assert.Equal(t, "5200-Parts", rows[1].GLAccount)
	assert.Zero(t, rows[1].VariancePct)
	assert.InDelta(t, 100.0, rows[1].AdherencePct, 1e-9)

	assert.Equal(t, "Plant", rows[2].CostCenter)
	assert.InDelta(t, 250.0, rows[2].VariancePct, 1e-9)
	assert.InDelta(t, -150.0, rows[2].AdherencePct, 1e-9)
}

func TestMonthlyBudgetTrend(t *testing.T) {
	svc := NewCostService()
	ds := testhelpers.BuildFleetTestData()
	lines := append(ds.BudgetLines, testhelpers.BudgetLine(testhelpers.Day(2023, time.December, 15), "Plant", 5000, 4000))

	rows := svc.MonthlyBudgetTrend(lines)
	require.Len(t, rows, 3)

	assert.Equal(t, testhelpers.Day(2023, time.November, 1), rows[0].Month)
	assert.Equal(t, testhelpers.Day(2023, time.December, 1), rows[1].Month)
	assert.Equal(t, "15000", rows[1].BudgetAmount.String())
	assert.Equal(t, "15000", rows[1].ActualAmount.String())
	assert.Zero(t, rows[1].VariancePct)
	assert.InDelta(t, -10.0, rows[0].VariancePct, 1e-9)
}
