package predictive

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/config"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/dto"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/services/shared"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/services/vendor"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/domain/entities"
)

// PredictiveService produces rule-based failure risk, cost forecasts and
// failure root-cause rankings
type PredictiveService struct {
	thresholds config.Thresholds
	rules      []RuleGroup
}

// NewPredictiveService creates a predictive service with default thresholds
func NewPredictiveService() *PredictiveService {
	return NewPredictiveServiceWithConfig(config.DefaultThresholds())
}

// NewPredictiveServiceWithConfig creates a predictive service with custom thresholds
func NewPredictiveServiceWithConfig(thresholds config.Thresholds) *PredictiveService {
	return &PredictiveService{
		thresholds: thresholds,
		rules:      DefaultRuleGroups(thresholds),
	}
}

type sensorWindow struct {
	latest  time.Time
	tempSum float64
	maxVib  float64
	count   int
}

// windowFeatures aggregates, per equipment, the readings taken strictly
// within windowHours of that equipment's latest reading.
func windowFeatures(readings []*entities.SensorReading, windowHours float64) map[string]*sensorWindow {
	windows := make(map[string]*sensorWindow)
	for _, r := range readings {
		w, ok := windows[r.EquipmentID]
		if !ok {
			w = &sensorWindow{latest: r.Timestamp}
			windows[r.EquipmentID] = w
		}
		if r.Timestamp.After(w.latest) {
			w.latest = r.Timestamp
		}
	}

	window := time.Duration(windowHours * float64(time.Hour))
	for _, r := range readings {
		w := windows[r.EquipmentID]
		if !r.Timestamp.After(w.latest.Add(-window)) {
			continue
		}
		if w.count == 0 || r.VibrationMmS > w.maxVib {
			w.maxVib = r.VibrationMmS
		}
		w.tempSum += r.TemperatureC
		w.count++
	}
	return windows
}

// FailureProbability scores each piece of equipment from its recent sensor
// readings, ordered by equipment ID. A non-positive window uses the
// configured sensor window.
func (s *PredictiveService) FailureProbability(readings []*entities.SensorReading, windowHours float64) []dto.FailureRisk {
	if windowHours <= 0 {
		windowHours = s.thresholds.SensorWindowHours
	}
	windows := windowFeatures(readings, windowHours)

	risks := make([]dto.FailureRisk, 0, len(windows))
	for _, id := range shared.SortedKeys(windows) {
		w := windows[id]
		if w.count == 0 {
			continue
		}
		f := Features{AvgTemp: w.tempSum / float64(w.count), MaxVibration: w.maxVib}
		eval := Evaluate(s.rules, f)
		prob := math.Min(eval.Score, s.thresholds.ProbabilityCap)

		risks = append(risks, dto.FailureRisk{
			EquipmentID:           id,
			AvgTemp:               shared.Round(f.AvgTemp, 1),
			MaxVibration:          shared.Round(f.MaxVibration, 2),
			ReadingCount:          w.count,
			FailureProbability:    prob,
			FailureProbabilityPct: shared.Round(prob*100, 1),
			Insight:               eval.Insight,
			Status:                s.healthStatus(prob),
		})
	}
	return risks
}

func (s *PredictiveService) healthStatus(prob float64) dto.HealthStatus {
	switch {
	case prob > s.thresholds.CriticalProbability:
		return dto.HealthCritical
	case prob > s.thresholds.WarningProbability:
		return dto.HealthWarning
	default:
		return dto.HealthHealthy
	}
}

// CostForecast projects monthly spend monthsAhead months past the last
// budget month from the mean of the trailing window, with a linear monthly
// trend and bounds of one population standard deviation. A non-positive
// horizon uses the configured one.
func (s *PredictiveService) CostForecast(lines []*entities.BudgetLine, monthsAhead int) []dto.ForecastRow {
	if monthsAhead <= 0 {
		monthsAhead = s.thresholds.ForecastMonthsAhead
	}
	if len(lines) == 0 {
		return []dto.ForecastRow{}
	}

	totals := make(map[time.Time]decimal.Decimal)
	for _, l := range lines {
		m := l.Month()
		totals[m] = totals[m].Add(l.ActualAmount)
	}
	months := make([]time.Time, 0, len(totals))
	for m := range totals {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	window := months
	if n := s.thresholds.ForecastWindowMonths; n > 0 && len(window) > n {
		window = window[len(window)-n:]
	}
	values := make([]float64, 0, len(window))
	for _, m := range window {
		values = append(values, totals[m].InexactFloat64())
	}
	avg := shared.Mean(values)
	std := shared.PopulationStdDev(values)

	last := months[len(months)-1]
	rows := make([]dto.ForecastRow, 0, monthsAhead)
	for i := 1; i <= monthsAhead; i++ {
		forecast := avg * (1 + s.thresholds.ForecastMonthlyTrend*float64(i))
		rows = append(rows, dto.ForecastRow{
			Month:          last.AddDate(0, i, 0),
			ForecastAmount: money(forecast),
			LowerBound:     money(forecast - std),
			UpperBound:     money(forecast + std),
		})
	}
	return rows
}

func money(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// FailureRootCause counts breakdowns per failure code, most frequent first.
// Equal counts keep the order in which the codes first appeared.
func (s *PredictiveService) FailureRootCause(orders []*entities.WorkOrder) []dto.RootCauseRow {
	counts := make(map[string]int)
	var order []string
	for _, wo := range orders {
		if !wo.IsBreakdown() {
			continue
		}
		if _, seen := counts[wo.FailureCode]; !seen {
			order = append(order, wo.FailureCode)
		}
		counts[wo.FailureCode]++
	}

	rows := make([]dto.RootCauseRow, 0, len(order))
	for _, code := range order {
		rows = append(rows, dto.RootCauseRow{FailureCode: code, Count: counts[code]})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Count > rows[j].Count })
	return rows
}

// FailurePareto extends the root-cause ranking with running totals
func (s *PredictiveService) FailurePareto(orders []*entities.WorkOrder) []dto.ParetoRow {
	causes := s.FailureRootCause(orders)
	total := 0
	for _, c := range causes {
		total += c.Count
	}

	rows := make([]dto.ParetoRow, 0, len(causes))
	cumulative := 0
	for _, c := range causes {
		cumulative += c.Count
		rows = append(rows, dto.ParetoRow{
			FailureCode:   c.FailureCode,
			Count:         c.Count,
			Cumulative:    cumulative,
			CumulativePct: shared.Round(shared.Percent(float64(cumulative), float64(total)), 1),
		})
	}
	return rows
}

// VendorScore ranks supplier reliability alongside the failure analytics
func (s *PredictiveService) VendorScore(vendors []*entities.Vendor) []dto.VendorScoreRow {
	return vendor.NewVendorService().Score(vendors)
}

// Analyze builds the predictive report. RUL estimates are attached separately
// by EstimateRUL because they depend on an external model.
func (s *PredictiveService) Analyze(
	readings []*entities.SensorReading,
	orders []*entities.WorkOrder,
	lines []*entities.BudgetLine,
) *dto.PredictiveReport {
	return &dto.PredictiveReport{
		FailureRisk: s.FailureProbability(readings, s.thresholds.SensorWindowHours),
		RootCauses:  s.FailurePareto(orders),
		Forecast:    s.CostForecast(lines, s.thresholds.ForecastMonthsAhead),
	}
}
