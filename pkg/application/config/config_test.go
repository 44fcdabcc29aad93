package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("", "")
	require.NoError(t, err)

	assert.Equal(t, "csv", cfg.Data.Source)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, DefaultThresholds(), cfg.Thresholds)
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "kpi.yaml")
	content := `
data:
  source: SQLite
  sqlite_path: /var/lib/kpi/maintenance.db
output:
  format: json
thresholds:
  overheat_threshold_c: 100
  coverage_warning_days: 45
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))

	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("KPI_THRESHOLDS_LATE_TOLERANCE_DAYS=2\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("KPI_THRESHOLDS_LATE_TOLERANCE_DAYS") })

	t.Setenv("KPI_OUTPUT_FORMAT", "yaml")

	cfg, err := Load(configPath, envPath)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Data.Source)
	assert.Equal(t, "/var/lib/kpi/maintenance.db", cfg.Data.SQLitePath)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, 100.0, cfg.Thresholds.OverheatThresholdC)
	assert.Equal(t, 45.0, cfg.Thresholds.CoverageWarningDays)
	assert.Equal(t, 2, cfg.Thresholds.LateToleranceDays)
	// untouched keys keep their defaults
	assert.Equal(t, 85.0, cfg.Thresholds.HighTemperatureThresholdC)
}

func TestLoad_InvalidValues(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		errMsg  string
	}{
		{"unknown source", "data:\n  source: parquet\n", `invalid data.source "parquet"`},
		{"unknown format", "output:\n  format: pdf\n", `invalid output.format "pdf"`},
		{
			"inverted coverage bands",
			"thresholds:\n  coverage_critical_days: 40\n",
			"cannot exceed coverage_warning_days",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "kpi.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0o644))

			_, err := Load(path, "")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), "")
	assert.Error(t, err)
}
