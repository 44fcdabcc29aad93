package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/config"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/dto"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/services/predictive"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/services/summary"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/domain/repositories"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/infrastructure/logging"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/infrastructure/metrics"
)

// BuildSummary computes the executive summary for the filtered work orders.
// Products are not filtered; critical stock is a fleet-wide figure.
func BuildSummary(session *Session, filter repositories.Filter, thresholds config.Thresholds) (dto.ExecutiveSummary, error) {
	orders, err := session.Repos.WorkOrders.GetWorkOrders(filter)
	if err != nil {
		return dto.ExecutiveSummary{}, err
	}
	products, err := session.Repos.Inventory.GetProducts(repositories.Filter{})
	if err != nil {
		return dto.ExecutiveSummary{}, err
	}
	ids, err := session.EquipmentIDs(filter)
	if err != nil {
		return dto.ExecutiveSummary{}, err
	}
	return summary.NewSummaryServiceWithConfig(thresholds).ExecutiveSummary(orders, products, ids), nil
}

// RecordSnapshot computes the executive summary and failure risk and sets
// them on the registry
func RecordSnapshot(
	session *Session,
	filter repositories.Filter,
	thresholds config.Thresholds,
	registry *metrics.Registry,
	at time.Time,
) (dto.ExecutiveSummary, error) {
	s, err := BuildSummary(session, filter, thresholds)
	if err != nil {
		return s, err
	}
	readings, err := session.Repos.Sensors.GetReadings(repositories.Filter{
		From: filter.From, To: filter.To, EquipmentIDs: filter.EquipmentIDs,
	})
	if err != nil {
		return s, err
	}
	risks := predictive.NewPredictiveServiceWithConfig(thresholds).
		FailureProbability(readings, thresholds.SensorWindowHours)

	registry.Record(s, risks, at)
	return s, nil
}

// ExportMetricsCommand writes the KPI snapshot to a Prometheus textfile
type ExportMetricsCommand struct {
	config Config
	path   string
	logger *logging.Logger
}

// NewExportMetricsCommand creates a command writing to path, or to the
// configured textfile path when empty
func NewExportMetricsCommand(config Config, path string, logger *logging.Logger) *ExportMetricsCommand {
	if logger == nil {
		logger = logging.Discard()
	}
	return &ExportMetricsCommand{config: config, path: path, logger: logger}
}

// Execute runs the export
func (c *ExportMetricsCommand) Execute(ctx context.Context) error {
	if c.config.Settings == nil {
		return fmt.Errorf("validation error: missing configuration")
	}
	filter, err := c.config.Filter()
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	path := c.path
	if path == "" {
		path = c.config.Settings.Metrics.TextfilePath
	}

	session, err := OpenSession(ctx, c.config.Settings, c.logger)
	if err != nil {
		return err
	}

	registry := metrics.NewRegistry(c.config.Settings.Metrics.Namespace)
	s, err := RecordSnapshot(session, filter, c.config.Settings.Thresholds, registry, time.Now())
	if err != nil {
		return fmt.Errorf("error computing snapshot: %w", err)
	}
	if err := registry.WriteTextfile(path); err != nil {
		return err
	}

	c.logger.Info("wrote KPI snapshot to %s (availability %.2f%%, %d work orders)",
		path, s.AvailabilityPct, s.TotalWorkOrders)
	return nil
}
