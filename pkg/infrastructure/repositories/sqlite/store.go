package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/domain/entities"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/infrastructure/repositories/tabular"
)

// Store reads and writes the maintenance tables in a SQLite database. Each
// table uses the column names of its CSV export.
type Store struct {
	db *sql.DB
}

// Open opens the database at path and creates any missing tables
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", path, err)
	}
	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// Verify interface compliance
var _ tabular.Source = (*Store)(nil)

func quote(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (s *Store) initSchema() error {
	var schema strings.Builder
	for _, t := range tabular.Tables {
		cols := make([]string, 0, len(t.AllColumns()))
		for _, c := range t.AllColumns() {
			cols = append(cols, quote(c)+" TEXT DEFAULT ''")
		}
		fmt.Fprintf(&schema, "CREATE TABLE IF NOT EXISTS %s (\n\t%s\n);\n", quote(t.Name), strings.Join(cols, ",\n\t"))
	}
	schema.WriteString("CREATE INDEX IF NOT EXISTS idx_work_orders_date ON work_orders(\"Date\");\n")
	schema.WriteString("CREATE INDEX IF NOT EXISTS idx_sensor_readings_equipment ON sensor_readings(\"EquipmentID\", \"Timestamp\");\n")

	if _, err := s.db.Exec(schema.String()); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Load reads and validates every table in the database
func (s *Store) Load(ctx context.Context) (*entities.Dataset, error) {
	ds, err := tabular.Load(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("failed to load sqlite data: %w", err)
	}
	return ds, nil
}

// ReadTable returns every row of a table as text. Tables with no rows are
// reported as not found so optional tables load as empty.
func (s *Store) ReadTable(ctx context.Context, t tabular.Table) ([]string, [][]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT * FROM "+quote(t.Name)+" ORDER BY rowid")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query %s: %w", t.Name, err)
	}
	defer rows.Close()

	header, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	var records [][]string
	for rows.Next() {
		raw := make([]sql.NullString, len(header))
		dest := make([]any, len(header))
		for i := range raw {
			dest[i] = &raw[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, nil, fmt.Errorf("failed to scan %s row %d: %w", t.Name, len(records)+1, err)
		}
		values := make([]string, len(raw))
		for i, v := range raw {
			values[i] = v.String
		}
		records = append(records, values)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%s: %w", t.Name, tabular.ErrTableNotFound)
	}
	return header, records, nil
}

// ImportTable replaces the rows of a table with the given rows. Columns not
// known to the table are dropped.
func (s *Store) ImportTable(ctx context.Context, t tabular.Table, header []string, rows [][]string) error {
	known := make(map[string]bool)
	for _, c := range t.AllColumns() {
		known[c] = true
	}
	var cols []string
	var positions []int
	for i, c := range header {
		c = strings.TrimSpace(strings.TrimPrefix(c, "\ufeff"))
		if known[c] {
			cols = append(cols, quote(c))
			positions = append(positions, i)
		}
	}
	if len(cols) == 0 {
		return entities.NewSchemaError(t.Name, 0, "", "", "no known columns to import")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin import of %s: %w", t.Name, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM "+quote(t.Name)); err != nil {
		return fmt.Errorf("failed to clear %s: %w", t.Name, err)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quote(t.Name), strings.Join(cols, ", "), placeholders))
	if err != nil {
		return fmt.Errorf("failed to prepare insert into %s: %w", t.Name, err)
	}
	defer stmt.Close()

	for n, row := range rows {
		args := make([]any, len(positions))
		for i, p := range positions {
			if p < len(row) {
				args[i] = row[p]
			} else {
				args[i] = ""
			}
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("failed to insert %s row %d: %w", t.Name, n+1, err)
		}
	}
	return tx.Commit()
}

// Import copies every table available in src into the database and returns
// the number of tables copied
func (s *Store) Import(ctx context.Context, src tabular.Source) (int, error) {
	copied := 0
	for _, t := range tabular.Tables {
		header, rows, err := src.ReadTable(ctx, t)
		if errors.Is(err, tabular.ErrTableNotFound) {
			continue
		}
		if err != nil {
			return copied, fmt.Errorf("failed to read %s: %w", t.Name, err)
		}
		if err := s.ImportTable(ctx, t, header, rows); err != nil {
			return copied, err
		}
		copied++
	}
	return copied, nil
}
