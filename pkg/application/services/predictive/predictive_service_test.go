package predictive

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/config"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/dto"
	testhelpers "github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/services/testing"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/domain/entities"
)

var ref = testhelpers.Day(2024, time.January, 10)

func TestFailureProbability_Fleet(t *testing.T) {
	svc := NewPredictiveService()
	risks := svc.FailureProbability(testhelpers.BuildFleetTestData().SensorReadings, 24)
	require.Len(t, risks, 3)

	cr := risks[0]
	assert.Equal(t, "CR-03", cr.EquipmentID)
	assert.Equal(t, NormalOperation, cr.Insight)
	assert.Equal(t, dto.HealthHealthy, cr.Status)

	dt := risks[1]
	assert.Equal(t, "DT-02", dt.EquipmentID)
	assert.Equal(t, 87.0, dt.AvgTemp)
	assert.Equal(t, 30.0, dt.FailureProbabilityPct)
	assert.Equal(t, dto.HealthHealthy, dt.Status)

	ex := risks[2]
	assert.Equal(t, "EX-01", ex.EquipmentID)
	assert.Equal(t, 2, ex.ReadingCount)
	assert.Equal(t, 96.5, ex.AvgTemp)
	assert.Equal(t, 5.5, ex.MaxVibration)
	assert.Equal(t, 0.99, ex.FailureProbability)
	assert.Equal(t, 99.0, ex.FailureProbabilityPct)
	assert.Equal(t, "Critical Overheating Detected + Excessive Vibration", ex.Insight)
	assert.Equal(t, dto.HealthCritical, ex.Status)
}

func TestFailureProbability_WindowIsPerEquipment(t *testing.T) {
	svc := NewPredictiveService()
	stale := ref.AddDate(0, 0, -30)
	readings := []*entities.SensorReading{
		testhelpers.Reading("EX-01", ref, 0, 60, 1),
		testhelpers.Reading("OLD-01", stale, 0, 98, 1),
		testhelpers.Reading("OLD-01", stale, 24, 20, 1),
		testhelpers.Reading("OLD-01", stale, 23.5, 98, 1),
	}

	risks := svc.FailureProbability(readings, 24)
	require.Len(t, risks, 2)
	assert.Equal(t, "OLD-01", risks[1].EquipmentID)
	assert.Equal(t, 2, risks[1].ReadingCount)
	assert.Equal(t, 98.0, risks[1].AvgTemp)
	assert.Equal(t, dto.HealthWarning, risks[1].Status)
}

func TestFailureProbability_WarningBand(t *testing.T) {
	svc := NewPredictiveService()
	risks := svc.FailureProbability([]*entities.SensorReading{testhelpers.Reading("EX-01", ref, 0, 90, 4)}, 0)
	require.Len(t, risks, 1)
	assert.InDelta(t, 0.5, risks[0].FailureProbability, 1e-9)
	assert.Equal(t, dto.HealthWarning, risks[0].Status)
	assert.Equal(t, "High Operating Temperature", risks[0].Insight)
}

func TestFailureProbability_MonotonicAndBounded(t *testing.T) {
	svc := NewPredictiveService()
	temps := []float64{20, 80, 85, 85.5, 90, 95, 95.5, 120}
	vibs := []float64{0, 3.5, 3.6, 5.0, 5.1, 9}

	score := func(temp, vib float64) float64 {
		risks := svc.FailureProbability([]*entities.SensorReading{testhelpers.Reading("EX-01", ref, 0, temp, vib)}, 24)
		require.Len(t, risks, 1)
		return risks[0].FailureProbability
	}

	for i, temp := range temps {
		for j, vib := range vibs {
			p := score(temp, vib)
			assert.GreaterOrEqual(t, p, 0.0)
			assert.LessOrEqual(t, p, 0.99)
			if i > 0 {
				assert.GreaterOrEqual(t, p, score(temps[i-1], vib), "temp %v vib %v", temp, vib)
			}
			if j > 0 {
				assert.GreaterOrEqual(t, p, score(temp, vibs[j-1]), "temp %v vib %v", temp, vib)
			}
		}
	}
}

func TestFailureProbability_CustomCap(t *testing.T) {
	thresholds := config.DefaultThresholds()
	thresholds.ProbabilityCap = 0.5
	svc := NewPredictiveServiceWithConfig(thresholds)

	risks := svc.FailureProbability([]*entities.SensorReading{testhelpers.Reading("EX-01", ref, 0, 99, 9)}, 24)
	assert.Equal(t, 0.5, risks[0].FailureProbability)
	assert.Equal(t, dto.HealthWarning, risks[0].Status)
}

func TestFailureProbability_Empty(t *testing.T) {
	assert.Empty(t, NewPredictiveService().FailureProbability(nil, 24))
}

func TestCostForecast(t *testing.T) {
	svc := NewPredictiveService()
	rows := svc.CostForecast(testhelpers.BuildFleetTestData().BudgetLines, 3)
	require.Len(t, rows, 3)

	assert.Equal(t, testhelpers.Day(2024, time.February, 1), rows[0].Month)
	assert.Equal(t, testhelpers.Day(2024, time.April, 1), rows[2].Month)

	assert.Equal(t, "10200", rows[0].ForecastAmount.String())
	assert.Equal(t, "9383.5", rows[0].LowerBound.String())
	assert.Equal(t, "11016.5", rows[0].UpperBound.String())
	assert.Equal(t, "10600", rows[2].ForecastAmount.String())
}

func TestCostForecast_UsesTrailingWindow(t *testing.T) {
	svc := NewPredictiveService()
	var lines []*entities.BudgetLine
	start := testhelpers.Day(2023, time.January, 1)
	for i := 0; i < 8; i++ {
		actual := int64(5000)
		if i < 2 {
			actual = 1000000
		}
		lines = append(lines, testhelpers.BudgetLine(start.AddDate(0, i, 0), "Mining", 5000, actual))
	}

	rows := svc.CostForecast(lines, 1)
	require.Len(t, rows, 1)
	assert.Equal(t, "5100", rows[0].ForecastAmount.String())
	assert.Equal(t, "5100", rows[0].LowerBound.String())
	assert.Equal(t, testhelpers.Day(2023, time.September, 1), rows[0].Month)
}

func TestCostForecast_Empty(t *testing.T) {
	rows := NewPredictiveService().CostForecast(nil, 3)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestFailureRootCause(t *testing.T) {
	svc := NewPredictiveService()
	day := testhelpers.Day(2024, time.January, 1)
	var orders []*entities.WorkOrder
	for i, code := range []string{"A", "B", "A", "C", "A"} {
		orders = append(orders, testhelpers.Breakdown("WO", "EX-01", day.AddDate(0, 0, i), code, 1))
	}
	orders = append(orders, testhelpers.Preventive("WO-P", "EX-01", day, 1))

	rows := svc.FailureRootCause(orders)
	assert.Equal(t, []dto.RootCauseRow{
		{FailureCode: "A", Count: 3},
		{FailureCode: "B", Count: 1},
		{FailureCode: "C", Count: 1},
	}, rows)
}

func TestFailureRootCause_TiesKeepFirstAppearance(t *testing.T) {
	svc := NewPredictiveService()
	day := testhelpers.Day(2024, time.January, 1)
	orders := []*entities.WorkOrder{
		testhelpers.Breakdown("WO-1", "EX-01", day, "C", 1),
		testhelpers.Breakdown("WO-2", "EX-01", day, "B", 1),
		testhelpers.Breakdown("WO-3", "EX-01", day, "B", 1),
		testhelpers.Breakdown("WO-4", "EX-01", day, "C", 1),
	}

	rows := svc.FailureRootCause(orders)
	require.Len(t, rows, 2)
	assert.Equal(t, "C", rows[0].FailureCode)
	assert.Equal(t, "B", rows[1].FailureCode)
}

func TestFailureRootCause_NoBreakdowns(t *testing.T) {
	svc := NewPredictiveService()
	rows := svc.FailureRootCause([]*entities.WorkOrder{testhelpers.Preventive("WO-1", "EX-01", ref, 1)})
	assert.Empty(t, rows)
}

func TestFailurePareto(t *testing.T) {
	svc := NewPredictiveService()
	rows := svc.FailurePareto(testhelpers.BuildFleetTestData().WorkOrders)
	require.Len(t, rows, 2)

	assert.Equal(t, "HYD-LEAK", rows[0].FailureCode)
	assert.Equal(t, 2, rows[0].Cumulative)
	assert.Equal(t, 66.7, rows[0].CumulativePct)
	assert.Equal(t, 3, rows[1].Cumulative)
	assert.Equal(t, 100.0, rows[1].CumulativePct)
}

func TestVendorScore(t *testing.T) {
	svc := NewPredictiveService()
	rows := svc.VendorScore(testhelpers.BuildFleetTestData().Vendors)
	require.Len(t, rows, 2)

	assert.Equal(t, "V-01", rows[0].VendorID)
	assert.Equal(t, 100.0, rows[0].CompositeScore)
	assert.Equal(t, "Strategic Partner", rows[0].Tier)
	assert.Equal(t, 75.0, rows[1].CompositeScore)
	assert.Equal(t, "Standard", rows[1].Tier)
}

type stubPredictor struct {
	days  map[float64]float64
	err   error
	calls int
}

func (p *stubPredictor) PredictRUL(_ context.Context, temperatureC, _ float64) (float64, error) {
	p.calls++
	if p.err != nil {
		return 0, p.err
	}
	return p.days[temperatureC], nil
}

func TestRULLabel(t *testing.T) {
	assert.Equal(t, "Healthy (> 40 days)", RULLabel(55))
	assert.Equal(t, "40.0 days", RULLabel(40))
	assert.Equal(t, "12.3 days", RULLabel(12.345))
}

func TestEstimateRUL(t *testing.T) {
	svc := NewPredictiveService()
	predictor := &stubPredictor{days: map[float64]float64{96.5: 6.25, 87: 80, 60: 41}}

	estimates, err := svc.EstimateRUL(context.Background(), predictor, testhelpers.BuildFleetTestData().SensorReadings)
	require.NoError(t, err)
	require.Len(t, estimates, 3)
	assert.Equal(t, 3, predictor.calls)

	assert.Equal(t, "EX-01", estimates[2].EquipmentID)
	assert.Equal(t, "6.2 days", estimates[2].Label)
	assert.Equal(t, "Healthy (> 40 days)", estimates[1].Label)
}

func TestEstimateRUL_PropagatesErrors(t *testing.T) {
	svc := NewPredictiveService()
	boom := errors.New("model unavailable")

	_, err := svc.EstimateRUL(context.Background(), &stubPredictor{err: boom}, testhelpers.BuildFleetTestData().SensorReadings)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = svc.EstimateRUL(ctx, &stubPredictor{}, testhelpers.BuildFleetTestData().SensorReadings)
	assert.ErrorIs(t, err, context.Canceled)
}
