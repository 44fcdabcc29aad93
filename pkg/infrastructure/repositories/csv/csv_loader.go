package csv

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/domain/entities"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/infrastructure/repositories/tabular"
)

// Loader reads the maintenance tables from a directory of CSV exports
type Loader struct {
	dir string
}

// NewLoader creates a new CSV loader for a data directory
func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

// Verify interface compliance
var _ tabular.Source = (*Loader)(nil)

// Load reads and validates every table in the directory
func (l *Loader) Load(ctx context.Context) (*entities.Dataset, error) {
	ds, err := tabular.Load(ctx, l)
	if err != nil {
		return nil, fmt.Errorf("failed to load CSV data from %s: %w", l.dir, err)
	}
	return ds, nil
}

// ReadTable reads the CSV file of a table. An absent file yields
// tabular.ErrTableNotFound.
func (l *Loader) ReadTable(_ context.Context, t tabular.Table) ([]string, [][]string, error) {
	filename := filepath.Join(l.dir, t.File)
	file, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil, fmt.Errorf("%s: %w", filename, tabular.ErrTableNotFound)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	if len(records) == 0 {
		return nil, nil, entities.NewSchemaError(t.Name, 0, "", "", "CSV file has no header row")
	}
	return records[0], records[1:], nil
}
