package output

import (
	"math"

	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/dto"
)

// SummaryReport lays out the executive snapshot as a metric/value table
func SummaryReport(s dto.ExecutiveSummary) Report {
	return Report{
		Name:  "executive_summary",
		Title: "Executive Summary",
		RunID: s.RunID,
		Data:  s,
		Tables: []Table{{
			Title:   "KPIs",
			Headers: []string{"Metric", "Value"},
			Rows: [][]any{
				{"Total maintenance cost", s.TotalMaintenanceCost},
				{"Preventive cost", s.PreventiveCost},
				{"Breakdown cost", s.BreakdownCost},
				{"Availability %", s.AvailabilityPct},
				{"Total downtime (h)", s.TotalDowntime},
				{"Unplanned downtime (h)", s.UnplannedDowntime},
				{"Planned downtime (h)", s.PlannedDowntime},
				{"MTTR (h)", s.MTTRHours},
				{"MTBF (h)", s.MTBFHours},
				{"Work orders", s.TotalWorkOrders},
				{"Breakdowns", s.BreakdownCount},
				{"Preventive %", s.PreventivePct},
				{"Critical stock items", s.CriticalStockItems},
				{"Days in period", s.DaysInPeriod},
				{"Equipment", s.EquipmentCount},
			},
		}},
	}
}

// ReliabilityReport lays out the reliability KPIs
func ReliabilityReport(r *dto.ReliabilityReport, runID string) Report {
	mttr := make([][]any, 0, len(r.MTTR))
	for _, row := range r.MTTR {
		mttr = append(mttr, []any{row.Key, row.MTTRHours, row.BreakdownCount, row.TotalDowntime})
	}
	mtbf := make([][]any, 0, len(r.MTBF))
	for _, row := range r.MTBF {
		mtbf = append(mtbf, []any{row.Key, row.MTBFHours, row.FailureCount, row.TotalUnplannedDowntime})
	}
	downtime := make([][]any, 0, len(r.DowntimeByEquipment))
	for _, row := range r.DowntimeByEquipment {
		downtime = append(downtime, []any{row.EquipmentID, row.DowntimeHours})
	}

	a, c, m, o := r.Availability, r.ScheduleCompliance, r.MaintenanceMix, r.OEE
	return Report{
		Name:  "reliability",
		Title: "Reliability",
		RunID: runID,
		Data:  r,
		Tables: []Table{
			{
				Title:   "Overview",
				Headers: []string{"Metric", "Value"},
				Rows: [][]any{
					{"Availability %", a.AvailabilityPct},
					{"Downtime (h)", a.TotalDowntimeHours},
					{"Available (h)", a.TotalAvailableHours},
					{"Uptime (h)", a.UptimeHours},
					{"Schedule compliance %", c.CompliancePct},
					{"Scheduled preventive orders", c.TotalScheduled},
					{"Late preventive orders", c.LateCount},
					{"Planned maintenance %", r.PlannedMaintenancePct},
					{"OEE %", o.OEEPct},
					{"OEE availability %", o.AvailabilityComponent},
					{"OEE performance %", o.PerformanceComponent},
					{"OEE quality %", o.QualityComponent},
				},
			},
			{
				Title:   "Maintenance Mix",
				Headers: []string{"Type", "Count", "Share %", "Cost", "Downtime (h)"},
				Rows: [][]any{
					{"Preventive", m.PreventiveCount, m.PreventivePct, m.PreventiveCost, m.PreventiveDowntime},
					{"Breakdown", m.BreakdownCount, m.BreakdownPct, m.BreakdownCost, m.BreakdownDowntime},
				},
			},
			{Title: "MTTR", Headers: []string{"Equipment", "MTTR (h)", "Breakdowns", "Downtime (h)"}, Rows: mttr},
			{Title: "MTBF", Headers: []string{"Equipment", "MTBF (h)", "Failures", "Unplanned downtime (h)"}, Rows: mtbf},
			{Title: "Downtime by Equipment", Headers: []string{"Equipment", "Downtime (h)"}, Rows: downtime},
		},
	}
}

// coverageCell shows unbounded coverage as text since neither CSV nor Excel
// has an infinity
func coverageCell(days float64) any {
	if math.IsInf(days, 1) {
		return "unbounded"
	}
	return days
}

// InventoryReport lays out the inventory KPIs
func InventoryReport(r *dto.InventoryReport, runID string) Report {
	turnover := make([][]any, 0, len(r.Turnover))
	for _, row := range r.Turnover {
		turnover = append(turnover, []any{row.ProductID, row.ProductName, row.TotalIssues,
			row.IssueValue, row.AvgInventoryValue, row.TurnoverRatio})
	}
	coverage := make([][]any, 0, len(r.Coverage))
	for _, row := range r.Coverage {
		coverage = append(coverage, []any{row.ProductID, row.ProductName, row.CurrentStock,
			row.AvgDailyUsage, coverageCell(row.CoverageDays), string(row.CoverageStatus)})
	}
	alerts := make([][]any, 0, len(r.ReorderAlerts))
	for _, a := range r.ReorderAlerts {
		alerts = append(alerts, []any{a.ProductID, a.ProductName, a.ABCClass, a.CurrentStock,
			a.ReorderPoint, a.ShortageQty, a.ReorderQty, a.EstimatedCost})
	}
	matrix := make([][]any, 0, len(r.StatusMatrix))
	for _, s := range r.StatusMatrix {
		matrix = append(matrix, []any{s.ABCClass, s.StockStatus, s.Count})
	}

	return Report{
		Name:  "inventory",
		Title: "Inventory",
		RunID: runID,
		Data:  r,
		Tables: []Table{
			{
				Title:   "Overview",
				Headers: []string{"Metric", "Value"},
				Rows: [][]any{
					{"Stock value", r.StockValue},
					{"Average turnover", r.AvgTurnover},
					{"Reorder alerts", len(r.ReorderAlerts)},
					{"Reorder cost", r.TotalReorderCost},
				},
			},
			{
				Title:   "Turnover",
				Headers: []string{"Product", "Name", "Issued", "Issue value", "Avg inventory value", "Turnover"},
				Rows:    turnover,
			},
			{
				Title:   "Coverage",
				Headers: []string{"Product", "Name", "Stock", "Daily usage", "Coverage (days)", "Status"},
				Rows:    coverage,
			},
			{
				Title:   "Reorder Alerts",
				Headers: []string{"Product", "Name", "Class", "Stock", "Reorder point", "Shortage", "Reorder qty", "Est. cost"},
				Rows:    alerts,
			},
			{Title: "Stock Status", Headers: []string{"Class", "Status", "Products"}, Rows: matrix},
		},
	}
}

func forecastRows(rows []dto.ForecastRow) [][]any {
	out := make([][]any, 0, len(rows))
	for _, f := range rows {
		out = append(out, []any{f.Month.Format("2006-01"), f.ForecastAmount, f.LowerBound, f.UpperBound})
	}
	return out
}

var forecastHeaders = []string{"Month", "Forecast", "Lower", "Upper"}

// CostReport lays out payment variance, budget adherence and the spend forecast
func CostReport(r *dto.CostReport, runID string) Report {
	variance := make([][]any, 0, len(r.PaymentVariance))
	for _, v := range r.PaymentVariance {
		variance = append(variance, []any{v.VendorID, v.TotalContract, v.TotalActual,
			v.TransactionCount, v.Variance, v.VariancePct, string(v.Status)})
	}
	adherence := make([][]any, 0, len(r.BudgetAdherence))
	for _, b := range r.BudgetAdherence {
		adherence = append(adherence, []any{b.CostCenter, b.GLAccount, b.TotalBudget, b.TotalActual,
			b.Variance, b.VariancePct, b.AdherencePct})
	}
	trend := make([][]any, 0, len(r.MonthlyTrend))
	for _, m := range r.MonthlyTrend {
		trend = append(trend, []any{m.Month.Format("2006-01"), m.BudgetAmount, m.ActualAmount, m.Variance, m.VariancePct})
	}

	return Report{
		Name:  "cost",
		Title: "Cost",
		RunID: runID,
		Data:  r,
		Tables: []Table{
			{
				Title:   "Payment Variance",
				Headers: []string{"Vendor", "Contract", "Actual", "Payments", "Variance", "Variance %", "Status"},
				Rows:    variance,
			},
			{
				Title:   "Budget Adherence",
				Headers: []string{"Cost center", "GL account", "Budget", "Actual", "Variance", "Variance %", "Adherence %"},
				Rows:    adherence,
			},
			{
				Title:   "Monthly Trend",
				Headers: []string{"Month", "Budget", "Actual", "Variance", "Variance %"},
				Rows:    trend,
			},
			{Title: "Forecast", Headers: forecastHeaders, Rows: forecastRows(r.Forecast)},
		},
	}
}

// VendorReport lays out vendor scores in input order
func VendorReport(rows []dto.VendorScoreRow, runID string) Report {
	out := make([][]any, 0, len(rows))
	for _, v := range rows {
		out = append(out, []any{v.VendorID, v.VendorName, v.Rating, v.QualityScore,
			v.AvgDeliveryDelayDays, v.CompositeScore, v.Tier})
	}
	return Report{
		Name:  "vendors",
		Title: "Vendor Scorecard",
		RunID: runID,
		Data:  rows,
		Tables: []Table{{
			Title:   "Vendors",
			Headers: []string{"Vendor", "Name", "Rating", "Quality", "Delay (days)", "Score", "Tier"},
			Rows:    out,
		}},
	}
}

// PredictiveReport lays out failure risk, root causes, forecast and any
// model-based RUL estimates
func PredictiveReport(r *dto.PredictiveReport, runID string) Report {
	risk := make([][]any, 0, len(r.FailureRisk))
	for _, f := range r.FailureRisk {
		risk = append(risk, []any{f.EquipmentID, f.AvgTemp, f.MaxVibration, f.ReadingCount,
			f.FailureProbabilityPct, string(f.Status), f.Insight})
	}
	causes := make([][]any, 0, len(r.RootCauses))
	for _, p := range r.RootCauses {
		causes = append(causes, []any{p.FailureCode, p.Count, p.Cumulative, p.CumulativePct})
	}

	tables := []Table{
		{
			Title:   "Failure Risk",
			Headers: []string{"Equipment", "Avg temp (C)", "Max vibration", "Readings", "Probability %", "Status", "Insight"},
			Rows:    risk,
		},
		{Title: "Root Causes", Headers: []string{"Failure code", "Count", "Cumulative", "Cumulative %"}, Rows: causes},
		{Title: "Forecast", Headers: forecastHeaders, Rows: forecastRows(r.Forecast)},
	}
	if len(r.RUL) > 0 {
		rul := make([][]any, 0, len(r.RUL))
		for _, e := range r.RUL {
			rul = append(rul, []any{e.EquipmentID, e.Days, e.Label})
		}
		tables = append(tables, Table{Title: "Remaining Useful Life", Headers: []string{"Equipment", "Days", "Label"}, Rows: rul})
	}

	return Report{Name: "predictive", Title: "Predictive Insights", RunID: runID, Data: r, Tables: tables}
}

// TechnicianReport lays out technician and skill-level performance
func TechnicianReport(r *dto.TechnicianReport, runID string) Report {
	techs := make([][]any, 0, len(r.Technicians))
	for _, t := range r.Technicians {
		techs = append(techs, []any{t.TechnicianID, t.Name, t.SkillLevel, t.WorkOrderCount,
			t.LaborHours, t.AvgHoursPerWO, t.TotalCost, t.AvgDowntime, t.Efficiency})
	}
	levels := make([][]any, 0, len(r.SkillLevels))
	for _, s := range r.SkillLevels {
		levels = append(levels, []any{s.SkillLevel, s.WorkOrderCount, s.LaborHours,
			s.TotalCost, s.LaborCost, s.AvgHourlyRate, s.CostPerWO})
	}

	return Report{
		Name:  "technicians",
		Title: "Technician Performance",
		RunID: runID,
		Data:  r,
		Tables: []Table{
			{
				Title:   "Technicians",
				Headers: []string{"Technician", "Name", "Skill", "Work orders", "Labor (h)", "Avg h/WO", "Cost", "Avg downtime", "WO per labor h"},
				Rows:    techs,
			},
			{
				Title:   "Skill Levels",
				Headers: []string{"Skill", "Work orders", "Labor (h)", "Total cost", "Labor cost", "Avg rate", "Cost per WO"},
				Rows:    levels,
			},
		},
	}
}
