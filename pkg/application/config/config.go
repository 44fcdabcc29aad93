package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Thresholds holds the business constants used by the KPI calculations.
// DefaultThresholds returns the documented defaults.
type Thresholds struct {
	// Failure probability rules
	OverheatThresholdC        float64 `mapstructure:"overheat_threshold_c"`
	HighTemperatureThresholdC float64 `mapstructure:"high_temperature_threshold_c"`
	VibrationThresholdMmS     float64 `mapstructure:"vibration_threshold_mm_s"`
	VibrationWarningMmS       float64 `mapstructure:"vibration_warning_mm_s"`
	OverheatScore             float64 `mapstructure:"overheat_score"`
	HighTemperatureScore      float64 `mapstructure:"high_temperature_score"`
	VibrationScore            float64 `mapstructure:"vibration_score"`
	VibrationWarningScore     float64 `mapstructure:"vibration_warning_score"`
	ProbabilityCap            float64 `mapstructure:"probability_cap"`
	CriticalProbability       float64 `mapstructure:"critical_probability"`
	WarningProbability        float64 `mapstructure:"warning_probability"`
	SensorWindowHours         float64 `mapstructure:"sensor_window_hours"`

	// Inventory coverage bands
	CoverageCriticalDays float64 `mapstructure:"coverage_critical_days"`
	CoverageWarningDays  float64 `mapstructure:"coverage_warning_days"`

	// Schedule compliance
	LateToleranceDays int `mapstructure:"late_tolerance_days"`

	// Payment variance band, in percent either side of the contract value
	VarianceTolerancePct float64 `mapstructure:"variance_tolerance_pct"`

	// Cost forecast
	ForecastWindowMonths int     `mapstructure:"forecast_window_months"`
	ForecastMonthlyTrend float64 `mapstructure:"forecast_monthly_trend"`
	ForecastMonthsAhead  int     `mapstructure:"forecast_months_ahead"`

	// Executive summary period when no work orders are present
	DefaultPeriodDays int `mapstructure:"default_period_days"`
}

// DefaultThresholds returns the standard thresholds for heavy-equipment fleets
func DefaultThresholds() Thresholds {
	return Thresholds{
		OverheatThresholdC:        95,
		HighTemperatureThresholdC: 85,
		VibrationThresholdMmS:     5.0,
		VibrationWarningMmS:       3.5,
		OverheatScore:             0.6,
		HighTemperatureScore:      0.3,
		VibrationScore:            0.5,
		VibrationWarningScore:     0.2,
		ProbabilityCap:            0.99,
		CriticalProbability:       0.6,
		WarningProbability:        0.3,
		SensorWindowHours:         24,
		CoverageCriticalDays:      7,
		CoverageWarningDays:       30,
		LateToleranceDays:         1,
		VarianceTolerancePct:      5,
		ForecastWindowMonths:      6,
		ForecastMonthlyTrend:      0.02,
		ForecastMonthsAhead:       3,
		DefaultPeriodDays:         365,
	}
}

// Config holds the configuration for the kpi CLI.
type Config struct {
	Data struct {
		Source     string `mapstructure:"source"` // csv or sqlite
		Dir        string `mapstructure:"dir"`
		SQLitePath string `mapstructure:"sqlite_path"`
	} `mapstructure:"data"`
	Output struct {
		Format string `mapstructure:"format"`
		Dir    string `mapstructure:"dir"`
	} `mapstructure:"output"`
	Metrics struct {
		TextfilePath string `mapstructure:"textfile_path"`
		Namespace    string `mapstructure:"namespace"`
	} `mapstructure:"metrics"`
	Predictor struct {
		URL            string `mapstructure:"url"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	} `mapstructure:"predictor"`
	Schedule struct {
		Cron string `mapstructure:"cron"`
	} `mapstructure:"schedule"`
	Thresholds Thresholds `mapstructure:"thresholds"`
}

// Load reads configuration from an optional YAML file, an optional .env file
// and KPI_-prefixed environment variables, in increasing precedence.
// An empty configFile searches for kpi.yaml in . and ./config and tolerates
// its absence.
func Load(configFile, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("KPI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("kpi")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.Data.Source = strings.ToLower(strings.TrimSpace(cfg.Data.Source))
	cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks option values that the loaders and writers depend on
func (c *Config) Validate() error {
	switch c.Data.Source {
	case "csv", "sqlite":
	default:
		return fmt.Errorf("invalid data.source %q (expected csv or sqlite)", c.Data.Source)
	}
	switch c.Output.Format {
	case "text", "json", "yaml", "csv", "xlsx":
	default:
		return fmt.Errorf("invalid output.format %q (expected text, json, yaml, csv or xlsx)", c.Output.Format)
	}
	t := c.Thresholds
	if t.CoverageCriticalDays > t.CoverageWarningDays {
		return fmt.Errorf("thresholds.coverage_critical_days (%v) cannot exceed coverage_warning_days (%v)",
			t.CoverageCriticalDays, t.CoverageWarningDays)
	}
	if t.ForecastWindowMonths < 1 {
		return fmt.Errorf("thresholds.forecast_window_months must be positive, got %d", t.ForecastWindowMonths)
	}
	if t.ProbabilityCap <= 0 || t.ProbabilityCap > 1 {
		return fmt.Errorf("thresholds.probability_cap must be in (0, 1], got %v", t.ProbabilityCap)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data.source", "csv")
	v.SetDefault("data.dir", "./data")
	v.SetDefault("data.sqlite_path", "./maintenance.db")
	v.SetDefault("output.format", "text")
	v.SetDefault("output.dir", "")
	v.SetDefault("metrics.textfile_path", "./kpi.prom")
	v.SetDefault("metrics.namespace", "maintenance")
	v.SetDefault("predictor.url", "")
	v.SetDefault("predictor.timeout_seconds", 10)
	v.SetDefault("schedule.cron", "0 6 * * *")

	t := DefaultThresholds()
	v.SetDefault("thresholds.overheat_threshold_c", t.OverheatThresholdC)
	v.SetDefault("thresholds.high_temperature_threshold_c", t.HighTemperatureThresholdC)
	v.SetDefault("thresholds.vibration_threshold_mm_s", t.VibrationThresholdMmS)
	v.SetDefault("thresholds.vibration_warning_mm_s", t.VibrationWarningMmS)
	v.SetDefault("thresholds.overheat_score", t.OverheatScore)
	v.SetDefault("thresholds.high_temperature_score", t.HighTemperatureScore)
	v.SetDefault("thresholds.vibration_score", t.VibrationScore)
	v.SetDefault("thresholds.vibration_warning_score", t.VibrationWarningScore)
	v.SetDefault("thresholds.probability_cap", t.ProbabilityCap)
	v.SetDefault("thresholds.critical_probability", t.CriticalProbability)
	v.SetDefault("thresholds.warning_probability", t.WarningProbability)
	v.SetDefault("thresholds.sensor_window_hours", t.SensorWindowHours)
	v.SetDefault("thresholds.coverage_critical_days", t.CoverageCriticalDays)
	v.SetDefault("thresholds.coverage_warning_days", t.CoverageWarningDays)
	v.SetDefault("thresholds.late_tolerance_days", t.LateToleranceDays)
	v.SetDefault("thresholds.variance_tolerance_pct", t.VarianceTolerancePct)
	v.SetDefault("thresholds.forecast_window_months", t.ForecastWindowMonths)
	v.SetDefault("thresholds.forecast_monthly_trend", t.ForecastMonthlyTrend)
	v.SetDefault("thresholds.forecast_months_ahead", t.ForecastMonthsAhead)
	v.SetDefault("thresholds.default_period_days", t.DefaultPeriodDays)
}
