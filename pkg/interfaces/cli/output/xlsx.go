package output

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Excel limits sheet names to 31 characters
const maxSheetName = 31

func sheetName(title string) string {
	if len(title) > maxSheetName {
		return title[:maxSheetName]
	}
	return title
}

// xlsxCell converts a cell to a value excelize stores natively
func xlsxCell(v any) any {
	switch val := v.(type) {
	case decimal.Decimal:
		return val.InexactFloat64()
	case time.Time:
		return val.Format("2006-01-02")
	default:
		return val
	}
}

// WriteWorkbook writes every report table to its own sheet
func WriteWorkbook(report Report, filename string) error {
	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	first := true
	for _, t := range report.Tables {
		name := sheetName(t.Title)
		if first {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return fmt.Errorf("failed to name sheet %s: %w", name, err)
			}
			first = false
		} else if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to add sheet %s: %w", name, err)
		}

		header := make([]any, len(t.Headers))
		for i, h := range t.Headers {
			header[i] = h
		}
		if err := f.SetSheetRow(name, "A1", &header); err != nil {
			return fmt.Errorf("failed to write %s header: %w", name, err)
		}
		if len(t.Headers) > 0 {
			last, err := excelize.CoordinatesToCellName(len(t.Headers), 1)
			if err != nil {
				return err
			}
			if err := f.SetCellStyle(name, "A1", last, bold); err != nil {
				return fmt.Errorf("failed to style %s header: %w", name, err)
			}
		}

		for r, row := range t.Rows {
			values := make([]any, len(row))
			for i, v := range row {
				values[i] = xlsxCell(v)
			}
			cell, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(name, cell, &values); err != nil {
				return fmt.Errorf("failed to write %s row %d: %w", name, r+1, err)
			}
		}
	}

	if err := f.SaveAs(filename); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// generateXLSXOutput writes the report workbook into the output directory
func generateXLSXOutput(report Report, config Config) error {
	if config.OutputDir == "" {
		return fmt.Errorf("output directory required for XLSX format")
	}
	if len(report.Tables) == 0 {
		return fmt.Errorf("report %s has no tables to export", report.Name)
	}
	if err := ensureDir(config.OutputDir); err != nil {
		return err
	}

	filename := filepath.Join(config.OutputDir, report.Name+".xlsx")
	if err := WriteWorkbook(report, filename); err != nil {
		return err
	}
	if config.Verbose {
		fmt.Fprintf(config.stdout(), "Workbook saved to: %s\n", filename)
	}
	return nil
}
