package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/infrastructure/logging"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/infrastructure/metrics"
)

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// ParseSchedule parses a standard 5-field cron expression
// (minute hour day-of-month month day-of-week)
func ParseSchedule(expr string) (cron.Schedule, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, fmt.Errorf("empty schedule")
	}
	sched, err := cronParser.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", expr, err)
	}
	return sched, nil
}

// ScheduleCommand reloads the data source and refreshes the KPI snapshot on
// a cron schedule until the context is cancelled
type ScheduleCommand struct {
	config Config
	expr   string
	listen string
	logger *logging.Logger

	// now is replaceable in tests
	now func() time.Time
}

// NewScheduleCommand creates a scheduler. An empty expr uses the configured
// schedule; a non-empty listen address also serves the snapshot at /metrics.
func NewScheduleCommand(config Config, expr, listen string, logger *logging.Logger) *ScheduleCommand {
	if logger == nil {
		logger = logging.Discard()
	}
	return &ScheduleCommand{config: config, expr: expr, listen: listen, logger: logger, now: time.Now}
}

// Execute refreshes once immediately and then on every scheduled tick
func (c *ScheduleCommand) Execute(ctx context.Context) error {
	if c.config.Settings == nil {
		return fmt.Errorf("validation error: missing configuration")
	}
	expr := c.expr
	if expr == "" {
		expr = c.config.Settings.Schedule.Cron
	}
	sched, err := ParseSchedule(expr)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	if _, err := c.config.Filter(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	registry := metrics.NewRegistry(c.config.Settings.Metrics.Namespace)

	if c.listen != "" {
		srv := &http.Server{Addr: c.listen, Handler: metricsMux(registry)}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				c.logger.Error("metrics server: %v", err)
			}
		}()
		defer srv.Close()
		c.logger.Info("serving metrics on %s/metrics", c.listen)
	}

	if err := c.refresh(ctx, registry); err != nil {
		return err
	}

	for {
		now := c.now()
		next := sched.Next(now)
		c.logger.Info("next refresh at %s (in %s)", next.Format("Mon Jan 2 15:04"), next.Sub(now).Round(time.Second))

		timer := time.NewTimer(next.Sub(now))
		select {
		case <-ctx.Done():
			timer.Stop()
			c.logger.Info("scheduler stopped")
			return nil
		case <-timer.C:
		}

		// A failed refresh keeps the previous snapshot; the next tick retries
		if err := c.refresh(ctx, registry); err != nil {
			c.logger.Error("refresh failed: %v", err)
		}
	}
}

func metricsMux(registry *metrics.Registry) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", registry.Handler())
	return mux
}

// refresh reloads the data and rewrites the snapshot
func (c *ScheduleCommand) refresh(ctx context.Context, registry *metrics.Registry) error {
	filter, err := c.config.Filter()
	if err != nil {
		return err
	}
	session, err := OpenSession(ctx, c.config.Settings, c.logger)
	if err != nil {
		return err
	}
	s, err := RecordSnapshot(session, filter, c.config.Settings.Thresholds, registry, c.now())
	if err != nil {
		return fmt.Errorf("error computing snapshot: %w", err)
	}

	if path := c.config.Settings.Metrics.TextfilePath; path != "" {
		if err := registry.WriteTextfile(path); err != nil {
			return err
		}
	}
	c.logger.Info("snapshot refreshed: availability %.2f%%, MTBF %.2f h", s.AvailabilityPct, s.MTBFHours)
	return nil
}
