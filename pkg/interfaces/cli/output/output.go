package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Config holds configuration for output generation
type Config struct {
	Format      string
	OutputDir   string
	Verbose     bool
	ElapsedTime time.Duration
	// Stdout receives console output; os.Stdout when nil
	Stdout io.Writer
}

func (c Config) stdout() io.Writer {
	if c.Stdout == nil {
		return os.Stdout
	}
	return c.Stdout
}

// Table is one tabular section of a report
type Table struct {
	Title   string
	Headers []string
	Rows    [][]any
}

// Report is a named KPI result. Data is encoded as-is for the structured
// formats; Tables are rendered for text, CSV and XLSX.
type Report struct {
	Name   string
	Title  string
	RunID  string
	Data   any
	Tables []Table
}

// Generate creates output in the specified format
func Generate(report Report, config Config) error {
	switch config.Format {
	case "text":
		return generateTextOutput(report, config)
	case "json":
		return generateStructuredOutput(report, config, "json", func(v any) ([]byte, error) {
			return json.MarshalIndent(v, "", "  ")
		})
	case "yaml":
		return generateStructuredOutput(report, config, "yaml", yaml.Marshal)
	case "csv":
		return generateCSVOutput(report, config)
	case "xlsx":
		return generateXLSXOutput(report, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// formatCell renders a cell value for text and CSV output
func formatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return fmt.Sprintf("%.2f", val)
	case decimal.Decimal:
		return val.StringFixed(2)
	case time.Time:
		return val.Format("2006-01-02")
	default:
		return fmt.Sprint(val)
	}
}

// RenderText writes the report as aligned text tables
func RenderText(w io.Writer, report Report) {
	fmt.Fprintf(w, "%s\n%s\n", report.Title, strings.Repeat("=", len(report.Title)))
	if report.RunID != "" {
		fmt.Fprintf(w, "Run: %s\n", report.RunID)
	}
	fmt.Fprintln(w)

	for _, t := range report.Tables {
		fmt.Fprintf(w, "%s:\n", t.Title)

		cells := make([][]string, len(t.Rows))
		widths := make([]int, len(t.Headers))
		for i, h := range t.Headers {
			widths[i] = len(h)
		}
		for r, row := range t.Rows {
			cells[r] = make([]string, len(row))
			for i, v := range row {
				cells[r][i] = formatCell(v)
				if i < len(widths) && len(cells[r][i]) > widths[i] {
					widths[i] = len(cells[r][i])
				}
			}
		}

		printRow := func(values []string) {
			parts := make([]string, len(values))
			for i, v := range values {
				parts[i] = fmt.Sprintf("%-*s", widths[i], v)
			}
			fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
		}
		printRow(t.Headers)
		dashes := make([]string, len(widths))
		for i, n := range widths {
			dashes[i] = strings.Repeat("-", n)
		}
		printRow(dashes)
		if len(cells) == 0 {
			fmt.Fprintln(w, "(none)")
		}
		for _, row := range cells {
			printRow(row)
		}
		fmt.Fprintln(w)
	}
}

func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// generateTextOutput prints the report and saves a copy when an output
// directory is set
func generateTextOutput(report Report, config Config) error {
	RenderText(config.stdout(), report)
	if config.ElapsedTime > 0 && config.Verbose {
		fmt.Fprintf(config.stdout(), "Computed in %v\n", config.ElapsedTime)
	}

	if config.OutputDir == "" {
		return nil
	}
	if err := ensureDir(config.OutputDir); err != nil {
		return err
	}

	filename := filepath.Join(config.OutputDir, report.Name+".txt")
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create text file: %w", err)
	}
	defer f.Close()
	RenderText(f, report)

	if config.Verbose {
		fmt.Fprintf(config.stdout(), "Results saved to: %s\n", filename)
	}
	return nil
}

// generateStructuredOutput encodes the report data to stdout or a file
func generateStructuredOutput(report Report, config Config, ext string, marshal func(any) ([]byte, error)) error {
	data, err := marshal(report.Data)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", strings.ToUpper(ext), err)
	}

	if config.OutputDir == "" {
		fmt.Fprintln(config.stdout(), strings.TrimRight(string(data), "\n"))
		return nil
	}
	if err := ensureDir(config.OutputDir); err != nil {
		return err
	}

	filename := filepath.Join(config.OutputDir, report.Name+"."+ext)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s file: %w", strings.ToUpper(ext), err)
	}
	if config.Verbose {
		fmt.Fprintf(config.stdout(), "%s results saved to: %s\n", strings.ToUpper(ext), filename)
	}
	return nil
}

// fileSlug turns a table title into a file name fragment
func fileSlug(title string) string {
	return strings.Trim(strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '_'
		}
	}, title), "_")
}

// generateCSVOutput writes one CSV file per report table
func generateCSVOutput(report Report, config Config) error {
	if config.OutputDir == "" {
		return fmt.Errorf("output directory required for CSV format")
	}
	if err := ensureDir(config.OutputDir); err != nil {
		return err
	}

	for _, t := range report.Tables {
		filename := filepath.Join(config.OutputDir, report.Name+"_"+fileSlug(t.Title)+".csv")
		if err := writeTableCSV(t, filename); err != nil {
			return fmt.Errorf("failed to write %s CSV: %w", t.Title, err)
		}
		if config.Verbose {
			fmt.Fprintf(config.stdout(), "%s: %s\n", t.Title, filename)
		}
	}
	return nil
}

func writeTableCSV(t Table, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.Headers); err != nil {
		return err
	}
	for _, row := range t.Rows {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = formatCell(v)
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
