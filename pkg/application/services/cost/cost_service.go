package cost

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/config"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/dto"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/services/shared"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/domain/entities"
)

// CostService compares spend against contracts and budgets
type CostService struct {
	thresholds config.Thresholds
}

// NewCostService creates a cost service with default thresholds
func NewCostService() *CostService {
	return NewCostServiceWithConfig(config.DefaultThresholds())
}

// NewCostServiceWithConfig creates a cost service with custom thresholds
func NewCostServiceWithConfig(thresholds config.Thresholds) *CostService {
	return &CostService{thresholds: thresholds}
}

// variancePct returns variance relative to base in percent, 0 for a zero base
func variancePct(variance, base decimal.Decimal) float64 {
	return shared.DecimalRatio(variance.Mul(hundred), base)
}

var hundred = decimal.NewFromInt(100)

// PaymentVariance compares each vendor's payments to its contract values,
// ordered by vendor ID.
func (s *CostService) PaymentVariance(records []*entities.CostRecord) []dto.PaymentVarianceRow {
	byVendor := make(map[string]*dto.PaymentVarianceRow)
	for _, r := range records {
		row, ok := byVendor[r.VendorID]
		if !ok {
			row = &dto.PaymentVarianceRow{
				VendorID:      r.VendorID,
				TotalContract: decimal.Zero,
				TotalActual:   decimal.Zero,
			}
			byVendor[r.VendorID] = row
		}
		row.TotalContract = row.TotalContract.Add(r.ContractValue)
		row.TotalActual = row.TotalActual.Add(r.ActualPayment)
		row.TransactionCount++
	}

	tolerance := s.thresholds.VarianceTolerancePct
	rows := make([]dto.PaymentVarianceRow, 0, len(byVendor))
	for _, id := range shared.SortedKeys(byVendor) {
		row := byVendor[id]
		row.Variance = row.TotalActual.Sub(row.TotalContract)
		row.VariancePct = variancePct(row.Variance, row.TotalContract)
		switch {
		case row.VariancePct > tolerance:
			row.Status = dto.OverBudget
		case row.VariancePct < -tolerance:
			row.Status = dto.UnderBudget
		default:
			row.Status = dto.OnTrack
		}
		rows = append(rows, *row)
	}
	return rows
}

// BudgetAdherence compares actual spend to budget per cost center and GL
// account. Adherence is 100 minus the absolute variance percentage and goes
// negative for overruns beyond 100%.
func (s *CostService) BudgetAdherence(lines []*entities.BudgetLine) []dto.BudgetAdherenceRow {
	type key struct{ costCenter, glAccount string }
	groups := make(map[key]*dto.BudgetAdherenceRow)
	var keys []key
	for _, l := range lines {
		k := key{l.CostCenter, l.GLAccount}
		row, ok := groups[k]
		if !ok {
			row = &dto.BudgetAdherenceRow{
				CostCenter:  l.CostCenter,
				GLAccount:   l.GLAccount,
				TotalBudget: decimal.Zero,
				TotalActual: decimal.Zero,
			}
			groups[k] = row
			keys = append(keys, k)
		}
		row.TotalBudget = row.TotalBudget.Add(l.BudgetAmount)
		row.TotalActual = row.TotalActual.Add(l.ActualAmount)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].costCenter != keys[j].costCenter {
			return keys[i].costCenter < keys[j].costCenter
		}
		return keys[i].glAccount < keys[j].glAccount
	})

	rows := make([]dto.BudgetAdherenceRow, 0, len(keys))
	for _, k := range keys {
		row := groups[k]
		row.Variance = row.TotalActual.Sub(row.TotalBudget)
		row.VariancePct = variancePct(row.Variance, row.TotalBudget)
		row.AdherencePct = 100 - math.Abs(row.VariancePct)
		rows = append(rows, *row)
	}
	return rows
}

// MonthlyBudgetTrend totals budget and actual spend per month, oldest first
func (s *CostService) MonthlyBudgetTrend(lines []*entities.BudgetLine) []dto.MonthlyBudgetRow {
	byMonth := make(map[time.Time]*dto.MonthlyBudgetRow)
	for _, l := range lines {
		m := l.Month()
		row, ok := byMonth[m]
		if !ok {
			row = &dto.MonthlyBudgetRow{Month: m, BudgetAmount: decimal.Zero, ActualAmount: decimal.Zero}
			byMonth[m] = row
		}
		row.BudgetAmount = row.BudgetAmount.Add(l.BudgetAmount)
		row.ActualAmount = row.ActualAmount.Add(l.ActualAmount)
	}

	rows := make([]dto.MonthlyBudgetRow, 0, len(byMonth))
	for _, row := range byMonth {
		row.Variance = row.ActualAmount.Sub(row.BudgetAmount)
		row.VariancePct = variancePct(row.Variance, row.BudgetAmount)
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Month.Before(rows[j].Month) })
	return rows
}
