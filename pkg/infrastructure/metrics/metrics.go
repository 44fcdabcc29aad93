package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/dto"
)

// Registry holds the KPI snapshot gauges. Each Record call overwrites the
// previous snapshot.
type Registry struct {
	reg *prometheus.Registry

	TotalCost          *prometheus.GaugeVec
	AvailabilityPct    prometheus.Gauge
	Downtime           *prometheus.GaugeVec
	MTTRHours          prometheus.Gauge
	MTBFHours          prometheus.Gauge
	WorkOrders         prometheus.Gauge
	Breakdowns         prometheus.Gauge
	PreventivePct      prometheus.Gauge
	CriticalStockItems prometheus.Gauge
	PeriodDays         prometheus.Gauge
	EquipmentCount     prometheus.Gauge

	FailureProbability *prometheus.GaugeVec
	LastRefresh        prometheus.Gauge
	Refreshes          prometheus.Counter
}

// NewRegistry creates the gauges under the given namespace
func NewRegistry(namespace string) *Registry {
	r := prometheus.NewRegistry()
	gauge := func(name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: name, Help: help})
	}

	totalCost := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "cost_total",
		Help:      "Maintenance cost in the period by maintenance type.",
	}, []string{"type"})
	downtime := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "downtime_hours",
		Help:      "Downtime hours in the period by category.",
	}, []string{"category"})
	failureProb := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "equipment_failure_probability",
		Help:      "Rule-based failure probability from the latest sensor window.",
	}, []string{"equipment_id", "status"})
	refreshes := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "snapshot_refresh_total",
		Help:      "Number of KPI snapshots recorded.",
	})

	m := &Registry{
		reg:                r,
		TotalCost:          totalCost,
		AvailabilityPct:    gauge("availability_percent", "Fleet availability in the period."),
		Downtime:           downtime,
		MTTRHours:          gauge("mttr_hours", "Mean time to repair."),
		MTBFHours:          gauge("mtbf_hours", "Mean time between failures."),
		WorkOrders:         gauge("work_orders", "Work orders in the period."),
		Breakdowns:         gauge("breakdowns", "Breakdown work orders in the period."),
		PreventivePct:      gauge("preventive_percent", "Share of preventive work orders."),
		CriticalStockItems: gauge("critical_stock_items", "Products at or below their reorder point."),
		PeriodDays:         gauge("period_days", "Days covered by the snapshot."),
		EquipmentCount:     gauge("equipment_count", "Equipment in the snapshot."),
		FailureProbability: failureProb,
		LastRefresh:        gauge("snapshot_timestamp_seconds", "Unix time of the last snapshot."),
		Refreshes:          refreshes,
	}

	r.MustRegister(
		m.TotalCost, m.AvailabilityPct, m.Downtime, m.MTTRHours, m.MTBFHours,
		m.WorkOrders, m.Breakdowns, m.PreventivePct, m.CriticalStockItems,
		m.PeriodDays, m.EquipmentCount, m.FailureProbability, m.LastRefresh, m.Refreshes,
	)
	return m
}

// Record sets the gauges from an executive summary and the latest failure
// risk estimates
func (m *Registry) Record(summary dto.ExecutiveSummary, risks []dto.FailureRisk, at time.Time) {
	m.TotalCost.WithLabelValues("all").Set(summary.TotalMaintenanceCost.InexactFloat64())
	m.TotalCost.WithLabelValues("preventive").Set(summary.PreventiveCost.InexactFloat64())
	m.TotalCost.WithLabelValues("breakdown").Set(summary.BreakdownCost.InexactFloat64())
	m.AvailabilityPct.Set(summary.AvailabilityPct)
	m.Downtime.WithLabelValues("total").Set(summary.TotalDowntime)
	m.Downtime.WithLabelValues("unplanned").Set(summary.UnplannedDowntime)
	m.Downtime.WithLabelValues("planned").Set(summary.PlannedDowntime)
	m.MTTRHours.Set(summary.MTTRHours)
	m.MTBFHours.Set(summary.MTBFHours)
	m.WorkOrders.Set(float64(summary.TotalWorkOrders))
	m.Breakdowns.Set(float64(summary.BreakdownCount))
	m.PreventivePct.Set(summary.PreventivePct)
	m.CriticalStockItems.Set(float64(summary.CriticalStockItems))
	m.PeriodDays.Set(float64(summary.DaysInPeriod))
	m.EquipmentCount.Set(float64(summary.EquipmentCount))

	// Equipment that dropped out of the sensor window must not keep its old value
	m.FailureProbability.Reset()
	for _, r := range risks {
		m.FailureProbability.WithLabelValues(r.EquipmentID, string(r.Status)).Set(r.FailureProbability)
	}

	m.LastRefresh.Set(float64(at.Unix()))
	m.Refreshes.Inc()
}

// WriteTextfile writes the current snapshot in the node_exporter textfile format
func (m *Registry) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.reg); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}

// Handler serves the current snapshot over HTTP
func (m *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}
