package commands

import (
	"context"
	"fmt"

	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/infrastructure/logging"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/infrastructure/repositories/csv"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/infrastructure/repositories/sqlite"
)

// ImportCommand copies a directory of CSV exports into a SQLite database
type ImportCommand struct {
	csvDir     string
	sqlitePath string
	logger     *logging.Logger
}

// NewImportCommand creates a new import command
func NewImportCommand(csvDir, sqlitePath string, logger *logging.Logger) *ImportCommand {
	if logger == nil {
		logger = logging.Discard()
	}
	return &ImportCommand{csvDir: csvDir, sqlitePath: sqlitePath, logger: logger}
}

// Execute validates the CSV data and then copies it table by table
func (c *ImportCommand) Execute(ctx context.Context) error {
	loader := csv.NewLoader(c.csvDir)

	// Reject the import before touching the database if any table is invalid
	if _, err := loader.Load(ctx); err != nil {
		return err
	}

	store, err := sqlite.Open(c.sqlitePath)
	if err != nil {
		return err
	}
	defer store.Close()

	copied, err := store.Import(ctx, loader)
	if err != nil {
		return fmt.Errorf("error importing into %s: %w", c.sqlitePath, err)
	}
	c.logger.Info("imported %d tables from %s into %s", copied, c.csvDir, c.sqlitePath)
	return nil
}
