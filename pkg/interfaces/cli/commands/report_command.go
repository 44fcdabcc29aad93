package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/dto"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/services/cost"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/services/inventory"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/services/predictive"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/services/reliability"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/services/summary"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/services/technician"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/services/vendor"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/domain/repositories"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/infrastructure/logging"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/infrastructure/predictor"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/interfaces/cli/output"
)

// ReportKind selects the KPI report a ReportCommand produces
type ReportKind string

const (
	SummaryReport     ReportKind = "summary"
	ReliabilityReport ReportKind = "reliability"
	InventoryReport   ReportKind = "inventory"
	CostReport        ReportKind = "cost"
	VendorReport      ReportKind = "vendors"
	PredictiveReport  ReportKind = "predict"
	TechnicianReport  ReportKind = "technicians"
)

// ReportCommand loads the data source and renders one KPI report
type ReportCommand struct {
	config Config
	kind   ReportKind
	logger *logging.Logger
}

// NewReportCommand creates a new report command with the given configuration
func NewReportCommand(config Config, kind ReportKind, logger *logging.Logger) *ReportCommand {
	if logger == nil {
		logger = logging.Discard()
	}
	return &ReportCommand{
		config: config,
		kind:   kind,
		logger: logger,
	}
}

// Execute runs the report command
func (c *ReportCommand) Execute(ctx context.Context) error {
	if c.config.Settings == nil {
		return fmt.Errorf("validation error: missing configuration")
	}

	filter, err := c.config.Filter()
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	session, err := OpenSession(ctx, c.config.Settings, c.logger)
	if err != nil {
		return err
	}

	runID := NewRunID()
	c.logger.Debug("run %s: building %s report", runID, c.kind)

	startTime := time.Now()
	report, err := c.build(ctx, session, filter, runID)
	if err != nil {
		return fmt.Errorf("error building %s report: %w", c.kind, err)
	}
	elapsed := time.Since(startTime)

	format := c.config.Format
	if format == "" {
		format = c.config.Settings.Output.Format
	}
	outputDir := c.config.OutputDir
	if outputDir == "" {
		outputDir = c.config.Settings.Output.Dir
	}

	outputConfig := output.Config{
		Format:      format,
		OutputDir:   outputDir,
		Verbose:     c.config.Verbose,
		ElapsedTime: elapsed,
	}
	if err := output.Generate(report, outputConfig); err != nil {
		return fmt.Errorf("error generating output: %w", err)
	}

	c.logger.Debug("run %s: %s report complete in %v", runID, c.kind, elapsed)
	return nil
}

// build computes the report selected by the command kind
func (c *ReportCommand) build(
	ctx context.Context,
	session *Session,
	filter repositories.Filter,
	runID string,
) (output.Report, error) {
	thresholds := c.config.Settings.Thresholds

	switch c.kind {
	case SummaryReport:
		s, err := BuildSummary(session, filter, thresholds)
		if err != nil {
			return output.Report{}, err
		}
		s.RunID = runID
		s.GeneratedAt = time.Now().UTC()
		return output.SummaryReport(s), nil

	case ReliabilityReport:
		orders, err := session.Repos.WorkOrders.GetWorkOrders(filter)
		if err != nil {
			return output.Report{}, err
		}
		production, err := session.Repos.Production.GetProduction(filter)
		if err != nil {
			return output.Report{}, err
		}
		ids, err := session.EquipmentIDs(filter)
		if err != nil {
			return output.Report{}, err
		}
		periodDays := summary.NewSummaryServiceWithConfig(thresholds).PeriodDays(orders)
		r := reliability.NewReliabilityServiceWithConfig(thresholds).
			Analyze(orders, production, summary.EquipmentCount(orders, ids), periodDays)
		return output.ReliabilityReport(r, runID), nil

	case InventoryReport:
		products, err := session.Repos.Inventory.GetProducts(filter)
		if err != nil {
			return output.Report{}, err
		}
		transactions, err := session.Repos.Inventory.GetTransactions(filter)
		if err != nil {
			return output.Report{}, err
		}
		r := inventory.NewInventoryServiceWithConfig(thresholds).Analyze(transactions, products)
		return output.InventoryReport(r, runID), nil

	case CostReport:
		records, err := session.Repos.Finance.GetCostRecords()
		if err != nil {
			return output.Report{}, err
		}
		lines, err := session.Repos.Finance.GetBudgetLines(filter)
		if err != nil {
			return output.Report{}, err
		}
		svc := cost.NewCostServiceWithConfig(thresholds)
		r := &dto.CostReport{
			PaymentVariance: svc.PaymentVariance(records),
			BudgetAdherence: svc.BudgetAdherence(lines),
			MonthlyTrend:    svc.MonthlyBudgetTrend(lines),
			Forecast: predictive.NewPredictiveServiceWithConfig(thresholds).
				CostForecast(lines, thresholds.ForecastMonthsAhead),
		}
		return output.CostReport(r, runID), nil

	case VendorReport:
		vendors, err := session.Repos.Finance.GetVendors(filter)
		if err != nil {
			return output.Report{}, err
		}
		return output.VendorReport(vendor.NewVendorService().Score(vendors), runID), nil

	case PredictiveReport:
		r, err := c.buildPredictive(ctx, session, filter)
		if err != nil {
			return output.Report{}, err
		}
		return output.PredictiveReport(r, runID), nil

	case TechnicianReport:
		orders, err := session.Repos.WorkOrders.GetWorkOrders(filter)
		if err != nil {
			return output.Report{}, err
		}
		technicians, err := session.Repos.Assets.GetTechnicians()
		if err != nil {
			return output.Report{}, err
		}
		r := technician.NewTechnicianService().Analyze(orders, technicians)
		return output.TechnicianReport(r, runID), nil

	default:
		return output.Report{}, fmt.Errorf("unknown report: %s", c.kind)
	}
}

func (c *ReportCommand) buildPredictive(
	ctx context.Context,
	session *Session,
	filter repositories.Filter,
) (*dto.PredictiveReport, error) {
	settings := c.config.Settings

	// Work orders are split by maintenance category; sensor and budget data are not
	byTime := repositories.Filter{From: filter.From, To: filter.To, EquipmentIDs: filter.EquipmentIDs}
	readings, err := session.Repos.Sensors.GetReadings(byTime)
	if err != nil {
		return nil, err
	}
	orders, err := session.Repos.WorkOrders.GetWorkOrders(byTime)
	if err != nil {
		return nil, err
	}
	lines, err := session.Repos.Finance.GetBudgetLines(repositories.Filter{From: filter.From, To: filter.To})
	if err != nil {
		return nil, err
	}

	svc := predictive.NewPredictiveServiceWithConfig(settings.Thresholds)
	r := svc.Analyze(readings, orders, lines)

	if !c.config.PredictRUL {
		return r, nil
	}
	if settings.Predictor.URL == "" {
		return nil, fmt.Errorf("--rul requires predictor.url to be configured")
	}
	client := predictor.NewHTTPClient(settings.Predictor.URL,
		time.Duration(settings.Predictor.TimeoutSeconds)*time.Second)
	c.logger.Debug("requesting RUL estimates from %s", settings.Predictor.URL)
	r.RUL, err = svc.EstimateRUL(ctx, client, readings)
	if err != nil {
		return nil, err
	}
	return r, nil
}
