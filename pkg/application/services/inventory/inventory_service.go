package inventory

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

// InventoryService computes stock health KPIs for spare parts
type InventoryService struct {
	thresholds config.Thresholds
}

// NewInventoryService creates an inventory service with default thresholds
func NewInventoryService() *InventoryService {
	return NewInventoryServiceWithConfig(config.DefaultThresholds())
}

// NewInventoryServiceWithConfig creates an inventory service with custom thresholds
func NewInventoryServiceWithConfig(thresholds config.Thresholds) *InventoryService {
	return &InventoryService{thresholds: thresholds}
}

type issueTotals struct {
	quantity entities.Quantity
	value    decimal.Decimal
}

// totalIssues aggregates Issue transactions per product, plus the first and
// last issue dates across all products.
func totalIssues(transactions []*entities.InventoryTransaction) (map[string]*issueTotals, time.Time, time.Time) {
	totals := make(map[string]*issueTotals)
	var first, last time.Time
	for _, t := range transactions {
		if t.Type != entities.Issue {
			continue
		}
		it, ok := totals[t.ProductID]
		if !ok {
			it = &issueTotals{value: decimal.Zero}
			totals[t.ProductID] = it
		}
		it.quantity += t.Quantity
		it.value = it.value.Add(decimal.NewFromInt(int64(t.AbsQuantity())).Mul(t.UnitCost))

		if first.IsZero() || t.Date.Before(first) {
			first = t.Date
		}
		if last.IsZero() || t.Date.After(last) {
			last = t.Date
		}
	}
	for _, it := range totals {
		if it.quantity < 0 {
			it.quantity = -it.quantity
		}
	}
	return totals, first, last
}

// InventoryTurnover returns issue value over inventory value for every
// product, in product order. Products without issues report zero.
func (s *InventoryService) InventoryTurnover(
	transactions []*entities.InventoryTransaction,
	products []*entities.Product,
) []dto.TurnoverRow {
	totals, _, _ := totalIssues(transactions)

	rows := make([]dto.TurnoverRow, 0, len(products))
	for _, p := range products {
		row := dto.TurnoverRow{
			ProductID:         p.ID,
			ProductName:       p.Name,
			IssueValue:        decimal.Zero,
			AvgInventoryValue: p.StockValue(),
		}
		if it, ok := totals[p.ID]; ok {
			row.TotalIssues = int64(it.quantity)
			row.IssueValue = it.value
		}
		if row.AvgInventoryValue.IsPositive() {
			row.TurnoverRatio = shared.DecimalRatio(row.IssueValue, row.AvgInventoryValue)
		}
		rows = append(rows, row)
	}
	return rows
}

// usageSpanDays returns the whole days between the first and last issue, at least 1
func usageSpanDays(first, last time.Time) float64 {
	days := math.Floor(last.Sub(first).Hours() / 24)
	return math.Max(1, days)
}

// StockCoverageDays returns how many days current stock lasts at the average
// daily usage observed across the issue history. Products with no usage get
// infinite coverage and the No Usage status.
func (s *InventoryService) StockCoverageDays(
	transactions []*entities.InventoryTransaction,
	products []*entities.Product,
) []dto.CoverageRow {
	totals, first, last := totalIssues(transactions)
	span := usageSpanDays(first, last)

	rows := make([]dto.CoverageRow, 0, len(products))
	for _, p := range products {
		usage := 0.0
		if it, ok := totals[p.ID]; ok {
			usage = float64(it.quantity) / span
		}

		coverage := math.Inf(1)
		if usage > 0 {
			coverage = float64(p.CurrentStock) / usage
		}

		rows = append(rows, dto.CoverageRow{
			ProductID:      p.ID,
			ProductName:    p.Name,
			CurrentStock:   int64(p.CurrentStock),
			AvgDailyUsage:  usage,
			CoverageDays:   coverage,
			CoverageStatus: s.coverageStatus(coverage),
		})
	}
	return rows
}

func (s *InventoryService) coverageStatus(days float64) dto.CoverageStatus {
	switch {
	case math.IsInf(days, 1):
		return dto.CoverageNoUsage
	case days <= s.thresholds.CoverageCriticalDays:
		return dto.CoverageCritical
	case days <= s.thresholds.CoverageWarningDays:
		return dto.CoverageWarning
	default:
		return dto.CoverageHealthy
	}
}

// ReorderAlerts lists products at or below their reorder point with the
// quantity to order, never less than the minimum order quantity.
func (s *InventoryService) ReorderAlerts(products []*entities.Product) []dto.ReorderAlert {
	alerts := []dto.ReorderAlert{}
	for _, p := range products {
		if !p.NeedsReorder() {
			continue
		}
		shortage := p.ReorderPoint - p.CurrentStock
		reorderQty := shortage
		if p.MOQ > reorderQty {
			reorderQty = p.MOQ
		}
		alerts = append(alerts, dto.ReorderAlert{
			ProductID:     p.ID,
			ProductName:   p.Name,
			Category:      p.Category,
			ABCClass:      p.ABCClass,
			CurrentStock:  int64(p.CurrentStock),
			ReorderPoint:  int64(p.ReorderPoint),
			MOQ:           int64(p.MOQ),
			UnitCost:      p.UnitCost,
			ShortageQty:   int64(shortage),
			ReorderQty:    int64(reorderQty),
			EstimatedCost: decimal.NewFromInt(int64(reorderQty)).Mul(p.UnitCost),
		})
	}
	return alerts
}

// StockValue returns the value of all stock on hand
func (s *InventoryService) StockValue(products []*entities.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.StockValue())
	}
	return shared.Money(total)
}

// CriticalStockCount returns the number of products at or below their reorder point
func (s *InventoryService) CriticalStockCount(products []*entities.Product) int {
	count := 0
	for _, p := range products {
		if p.StockStatus() == entities.StockCritical {
			count++
		}
	}
	return count
}

// StockStatusMatrix counts products per ABC class and stock status
func (s *InventoryService) StockStatusMatrix(products []*entities.Product) []dto.StockStatusCount {
	type cell struct {
		class  string
		status entities.StockStatus
	}
	counts := make(map[cell]int)
	for _, p := range products {
		counts[cell{p.ABCClass, p.StockStatus()}]++
	}

	rows := make([]dto.StockStatusCount, 0, len(counts))
	for c, n := range counts {
		rows = append(rows, dto.StockStatusCount{ABCClass: c.class, StockStatus: c.status.String(), Count: n})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].ABCClass != rows[j].ABCClass {
			return rows[i].ABCClass < rows[j].ABCClass
		}
		return rows[i].StockStatus < rows[j].StockStatus
	})
	return rows
}

// Analyze builds the full inventory report
func (s *InventoryService) Analyze(
	transactions []*entities.InventoryTransaction,
	products []*entities.Product,
) *dto.InventoryReport {
	turnover := s.InventoryTurnover(transactions, products)
	alerts := s.ReorderAlerts(products)

	ratios := make([]float64, 0, len(turnover))
	for _, r := range turnover {
		ratios = append(ratios, r.TurnoverRatio)
	}
	reorderCost := decimal.Zero
	for _, a := range alerts {
		reorderCost = reorderCost.Add(a.EstimatedCost)
	}

	return &dto.InventoryReport{
		Turnover:         turnover,
		Coverage:         s.StockCoverageDays(transactions, products),
		ReorderAlerts:    alerts,
		StockValue:       s.StockValue(products),
		AvgTurnover:      shared.Round(shared.Mean(ratios), 2),
		TotalReorderCost: shared.Money(reorderCost),
		StatusMatrix:     s.StockStatusMatrix(products),
	}
}
