package tabular

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/domain/entities"
)

var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006-01",
}

// Record is one source row addressed by column name. Getters return a
// *entities.SchemaError naming the table, row and field on bad values.
type Record struct {
	table  string
	row    int
	index  map[string]int
	values []string
}

// Header maps column names to positions and checks the table's required columns
type Header struct {
	table Table
	index map[string]int
}

// NewHeader validates a header row against the table definition
func NewHeader(t Table, columns []string) (*Header, error) {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		name := strings.TrimSpace(strings.TrimPrefix(c, "\ufeff"))
		if _, dup := index[name]; dup {
			return nil, entities.NewSchemaError(t.Name, 0, name, "", "duplicate column")
		}
		index[name] = i
	}
	for _, c := range t.Columns {
		if _, ok := index[c]; !ok {
			return nil, entities.NewSchemaError(t.Name, 0, c, "", "missing required column")
		}
	}
	return &Header{table: t, index: index}, nil
}

// Record wraps the values of 1-based data row n
func (h *Header) Record(n int, values []string) (*Record, error) {
	if len(values) < len(h.index) {
		return nil, entities.NewSchemaError(h.table.Name, n, "", "", fmt.Sprintf("expected %d columns, got %d", len(h.index), len(values)))
	}
	return &Record{table: h.table.Name, row: n, index: h.index, values: values}, nil
}

func (r *Record) schemaError(field, value, reason string) error {
	return entities.NewSchemaError(r.table, r.row, field, value, reason)
}

// wrap attaches the record's row to an error raised by an entity constructor
func (r *Record) wrap(err error) error {
	var se *entities.SchemaError
	if errors.As(err, &se) {
		annotated := *se
		annotated.Row = r.row
		return &annotated
	}
	return fmt.Errorf("%s row %d: %w", r.table, r.row, err)
}

// String returns the trimmed value of a column, empty when the column is absent
func (r *Record) String(field string) string {
	i, ok := r.index[field]
	if !ok || i >= len(r.values) {
		return ""
	}
	return strings.TrimSpace(r.values[i])
}

// RequiredString returns a non-empty value
func (r *Record) RequiredString(field string) (string, error) {
	v := r.String(field)
	if v == "" {
		return "", r.schemaError(field, "", "cannot be empty")
	}
	return v, nil
}

// Float parses a decimal number; an empty value is zero
func (r *Record) Float(field string) (float64, error) {
	v := r.String(field)
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, r.schemaError(field, v, "not a number")
	}
	return f, nil
}

// Int parses a whole number, accepting integral floats such as "12.0"
func (r *Record) Int(field string) (int64, error) {
	v := r.String(field)
	if v == "" {
		return 0, nil
	}
	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f != float64(int64(f)) {
		return 0, r.schemaError(field, v, "not a whole number")
	}
	return int64(f), nil
}

// Decimal parses a money amount; an empty value is zero
func (r *Record) Decimal(field string) (decimal.Decimal, error) {
	v := r.String(field)
	if v == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, r.schemaError(field, v, "not a decimal amount")
	}
	return d, nil
}

// Time parses a date or timestamp; an empty value is the zero time
func (r *Record) Time(field string) (time.Time, error) {
	v := r.String(field)
	if v == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, r.schemaError(field, v, "not a date")
}

// RequiredTime parses a date that must be present
func (r *Record) RequiredTime(field string) (time.Time, error) {
	if r.String(field) == "" {
		return time.Time{}, r.schemaError(field, "", "cannot be empty")
	}
	return r.Time(field)
}
