package entities

import "fmt"

// SchemaError reports a record that does not match the expected table shape.
// It is raised once at the ingestion boundary; metric functions assume
// records that already passed validation.
type SchemaError struct {
	Table  string
	Row    int // 1-based data row, 0 when not tied to a row
	Field  string
	Value  string
	Reason string
}

func (e *SchemaError) Error() string {
	loc := e.Table
	if e.Row > 0 {
		loc = fmt.Sprintf("%s row %d", e.Table, e.Row)
	}
	if e.Field == "" {
		return fmt.Sprintf("schema error in %s: %s", loc, e.Reason)
	}
	if e.Value == "" {
		return fmt.Sprintf("schema error in %s, field %s: %s", loc, e.Field, e.Reason)
	}
	return fmt.Sprintf("schema error in %s, field %s=%q: %s", loc, e.Field, e.Value, e.Reason)
}

// NewSchemaError creates a SchemaError for a specific field
func NewSchemaError(table string, row int, field, value, reason string) *SchemaError {
	return &SchemaError{
		Table:  table,
		Row:    row,
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}
