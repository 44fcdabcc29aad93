package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/config"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/infrastructure/logging"
)

// rootOptions holds the persistent flags shared by every subcommand
type rootOptions struct {
	configFile string
	envFile    string
	source     string
	dataDir    string
	sqlitePath string
	format     string
	outputDir  string
	verbose    bool
	from       string
	to         string
	equipment  []string
	category   string

	// logOutput overrides stderr for tests
	logOutput io.Writer
}

// settings loads the configuration file and environment, then applies any
// flags that were set explicitly
func (o *rootOptions) settings(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.configFile, o.envFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("source") {
		cfg.Data.Source = o.source
	}
	if flags.Changed("data-dir") {
		cfg.Data.Dir = o.dataDir
	}
	if flags.Changed("sqlite") {
		cfg.Data.SQLitePath = o.sqlitePath
	}
	if flags.Changed("format") {
		cfg.Output.Format = o.format
	}
	if flags.Changed("output") {
		cfg.Output.Dir = o.outputDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (o *rootOptions) logger() *logging.Logger {
	if o.logOutput != nil {
		return logging.NewLoggerTo(o.logOutput, o.verbose)
	}
	return logging.NewLogger(o.verbose)
}

// commandConfig builds the shared command configuration
func (o *rootOptions) commandConfig(cmd *cobra.Command) (Config, error) {
	settings, err := o.settings(cmd)
	if err != nil {
		return Config{}, err
	}
	return Config{
		Settings:  settings,
		OutputDir: settings.Output.Dir,
		Format:    settings.Output.Format,
		Verbose:   o.verbose,
		From:      o.from,
		To:        o.to,
		Equipment: o.equipment,
		Category:  o.category,
	}, nil
}

// NewRootCommand builds the kpi command tree
func NewRootCommand() *cobra.Command {
	return newRootCommand(&rootOptions{})
}

func newRootCommand(opts *rootOptions) *cobra.Command {
	root := &cobra.Command{
		Use:   "kpi",
		Short: "Maintenance KPI and analytics for heavy-equipment fleets",
		Long: `kpi computes reliability, inventory, cost and vendor KPIs from
maintenance records, plus rule-based failure risk and spend forecasts.

Data is read from a directory of CSV exports or a SQLite database.
Settings come from kpi.yaml, a .env file and KPI_ environment variables;
flags override them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configFile, "config", "", "config file (default: kpi.yaml in . or ./config)")
	pf.StringVar(&opts.envFile, "env-file", "", "env file with KPI_ variables")
	pf.StringVar(&opts.source, "source", "csv", "data source: csv or sqlite")
	pf.StringVar(&opts.dataDir, "data-dir", "./data", "directory of CSV exports")
	pf.StringVar(&opts.sqlitePath, "sqlite", "./maintenance.db", "SQLite database path")
	pf.StringVarP(&opts.format, "format", "f", "text", "output format: text, json, yaml, csv or xlsx")
	pf.StringVarP(&opts.outputDir, "output", "o", "", "output directory (stdout when empty)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	pf.StringVar(&opts.from, "from", "", "first day to include (YYYY-MM-DD)")
	pf.StringVar(&opts.to, "to", "", "last day to include (YYYY-MM-DD)")
	pf.StringSliceVar(&opts.equipment, "equipment", nil, "equipment IDs to include")
	pf.StringVar(&opts.category, "category", "",
		"category filter: Planned/Unplanned for work orders, product category for inventory, "+
			"vendor category for vendors, cost center for cost")

	reports := []struct {
		kind  ReportKind
		short string
	}{
		{SummaryReport, "Executive KPI summary"},
		{ReliabilityReport, "MTTR, MTBF, availability, schedule compliance and OEE"},
		{InventoryReport, "Turnover, stock coverage and reorder alerts"},
		{CostReport, "Payment variance, budget adherence and spend forecast"},
		{VendorReport, "Vendor reliability scorecard"},
		{PredictiveReport, "Failure risk, root causes and spend forecast"},
		{TechnicianReport, "Technician and skill-level performance"},
	}
	for _, r := range reports {
		root.AddCommand(newReportCommand(opts, r.kind, r.short))
	}

	root.AddCommand(newExportMetricsCommand(opts))
	root.AddCommand(newScheduleCommand(opts))
	root.AddCommand(newImportCommand(opts))
	return root
}

func newReportCommand(opts *rootOptions, kind ReportKind, short string) *cobra.Command {
	var rul bool
	cmd := &cobra.Command{
		Use:   string(kind),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.commandConfig(cmd)
			if err != nil {
				return err
			}
			cfg.PredictRUL = rul
			return NewReportCommand(cfg, kind, opts.logger()).Execute(cmd.Context())
		},
	}
	if kind == PredictiveReport {
		cmd.Flags().BoolVar(&rul, "rul", false, "request remaining-useful-life estimates from predictor.url")
	}
	return cmd
}

func newExportMetricsCommand(opts *rootOptions) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "export-metrics",
		Short: "Write the KPI snapshot to a Prometheus textfile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.commandConfig(cmd)
			if err != nil {
				return err
			}
			return NewExportMetricsCommand(cfg, path, opts.logger()).Execute(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&path, "path", "", "textfile path (default: metrics.textfile_path)")
	return cmd
}

func newScheduleCommand(opts *rootOptions) *cobra.Command {
	var expr, listen string
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Refresh the KPI snapshot on a cron schedule",
		Long: `schedule reloads the data source and rewrites the metrics textfile on a
standard 5-field cron schedule (minute hour day-of-month month day-of-week),
e.g. "0 6 * * *" for 6am daily. It runs until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.commandConfig(cmd)
			if err != nil {
				return err
			}
			return NewScheduleCommand(cfg, expr, listen, opts.logger()).Execute(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&expr, "cron", "", "cron schedule (default: schedule.cron)")
	cmd.Flags().StringVar(&listen, "listen", "", "also serve /metrics on this address, e.g. :9105")
	return cmd
}

func newImportCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Copy the CSV exports into the SQLite database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := opts.settings(cmd)
			if err != nil {
				return err
			}
			if settings.Data.Dir == "" || settings.Data.SQLitePath == "" {
				return fmt.Errorf("import needs both --data-dir and --sqlite")
			}
			return NewImportCommand(settings.Data.Dir, settings.Data.SQLitePath, opts.logger()).Execute(cmd.Context())
		},
	}
	return cmd
}
