package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/config"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/domain/entities"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/domain/repositories"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/infrastructure/logging"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/infrastructure/repositories/csv"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/infrastructure/repositories/memory"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/infrastructure/repositories/sqlite"
)

// dateLayout is the format of the --from and --to flags
const dateLayout = "2006-01-02"

// Config holds configuration shared by every KPI command
type Config struct {
	Settings   *config.Config
	OutputDir  string
	Format     string
	Verbose    bool
	From       string
	To         string
	Equipment  []string
	Category   string
	PredictRUL bool
}

// Filter parses the command-line filter options
func (c Config) Filter() (repositories.Filter, error) {
	var f repositories.Filter
	var err error
	if c.From != "" {
		if f.From, err = time.Parse(dateLayout, c.From); err != nil {
			return f, fmt.Errorf("invalid --from date %q (expected YYYY-MM-DD)", c.From)
		}
	}
	if c.To != "" {
		if f.To, err = time.Parse(dateLayout, c.To); err != nil {
			return f, fmt.Errorf("invalid --to date %q (expected YYYY-MM-DD)", c.To)
		}
	}
	if !f.From.IsZero() && !f.To.IsZero() && f.To.Before(f.From) {
		return f, fmt.Errorf("--to %s is before --from %s", c.To, c.From)
	}
	for _, id := range c.Equipment {
		if id = strings.TrimSpace(id); id != "" {
			f.EquipmentIDs = append(f.EquipmentIDs, id)
		}
	}
	f.Category = strings.TrimSpace(c.Category)
	return f, nil
}

// NewRunID returns an identifier for one report run
func NewRunID() string {
	return uuid.NewString()
}

// LoadDataset reads the configured data source
func LoadDataset(ctx context.Context, settings *config.Config, logger *logging.Logger) (*entities.Dataset, error) {
	switch settings.Data.Source {
	case "sqlite":
		logger.Debug("loading data from sqlite database %s", settings.Data.SQLitePath)
		store, err := sqlite.Open(settings.Data.SQLitePath)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		return store.Load(ctx)
	case "csv", "":
		logger.Debug("loading data from CSV directory %s", settings.Data.Dir)
		return csv.NewLoader(settings.Data.Dir).Load(ctx)
	default:
		return nil, fmt.Errorf("unsupported data source: %s", settings.Data.Source)
	}
}

// Session is a loaded dataset ready for filtering
type Session struct {
	Dataset *entities.Dataset
	Repos   *memory.Repositories
}

// OpenSession loads the configured data source into in-memory repositories
func OpenSession(ctx context.Context, settings *config.Config, logger *logging.Logger) (*Session, error) {
	start := time.Now()
	ds, err := LoadDataset(ctx, settings, logger)
	if err != nil {
		return nil, fmt.Errorf("error loading data: %w", err)
	}

	repos, err := memory.NewRepositories(ds)
	if err != nil {
		return nil, fmt.Errorf("failed to load data into repositories: %w", err)
	}

	logger.Info("loaded %d work orders, %d sensor readings, %d products, %d transactions in %v",
		len(ds.WorkOrders), len(ds.SensorReadings), len(ds.Products), len(ds.Transactions),
		time.Since(start).Round(time.Millisecond))
	return &Session{Dataset: ds, Repos: repos}, nil
}

// EquipmentIDs returns the registered equipment selected by the filter's
// equipment IDs. The category is not applied.
func (s *Session) EquipmentIDs(filter repositories.Filter) ([]string, error) {
	byID := repositories.Filter{EquipmentIDs: filter.EquipmentIDs}
	equipment, err := s.Repos.Assets.GetEquipment(byID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(equipment))
	for _, e := range equipment {
		ids = append(ids, e.ID)
	}
	return ids, nil
}
