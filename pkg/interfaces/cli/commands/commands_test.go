package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/config"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

// writeFleet writes a small fleet: two excavators over ten days with two
// breakdowns totalling 10 hours
func writeFleet(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "Fact_Maintenance_WorkOrders.csv", `WorkOrderID,EquipmentID,TechnicianID,Date,ScheduledDate,MaintenanceType,FailureCode,DowntimeHours,LaborHours,PartsCost,LaborCost
WO1,EX-01,T-01,2024-01-01,2024-01-01,Preventive,,2,2,1000,500
WO2,EX-01,T-02,2024-01-03,,Breakdown,HYD-LEAK,6,5,3000,1200
WO3,EX-02,T-01,2024-01-10,,Breakdown,ENG-OVERHEAT,4,4,2500,700
`)
	writeFile(t, dir, "Dim_Product.csv", `ProductID,ProductName,Category,ReorderPoint,SafetyStock,UnitCost,MOQ,ABC_Class,CurrentStock
P-100,Hydraulic Filter,Filters,20,30,45,50,A,15
P-200,Drive Belt,Belts,5,10,120,4,B,8
`)
	writeFile(t, dir, "Fact_Sensor_Readings.csv", `Timestamp,EquipmentID,Temperature_C,Vibration_mm_s
2024-01-10 08:00:00,EX-01,97,5.5
2024-01-10 09:00:00,EX-02,70,1.0
`)
	writeFile(t, dir, "Dim_Equipment.csv", `EquipmentID,EquipmentName,Type
EX-01,Excavator 1,Excavator
EX-02,Excavator 2,Excavator
`)
	writeFile(t, dir, "Dim_Vendor.csv", `VendorID,VendorName,Rating,AvgDeliveryDelay,QualityScore
V-01,Global Spares,4.5,2,95
`)
	return dir
}

func runRoot(t *testing.T, args ...string) error {
	t.Helper()
	opts := &rootOptions{logOutput: &bytes.Buffer{}}
	root := newRootCommand(opts)
	root.SetArgs(args)
	root.SetOut(&bytes.Buffer{})
	return root.ExecuteContext(context.Background())
}

func TestConfig_Filter(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{name: "empty", config: Config{}},
		{name: "range", config: Config{From: "2024-01-01", To: "2024-01-31"}},
		{name: "same day", config: Config{From: "2024-01-05", To: "2024-01-05"}},
		{name: "bad from", config: Config{From: "01/05/2024"}, wantErr: true},
		{name: "bad to", config: Config{To: "2024-13-01"}, wantErr: true},
		{name: "reversed", config: Config{From: "2024-02-01", To: "2024-01-01"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.config.Filter()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_FilterTrimsEquipment(t *testing.T) {
	f, err := Config{Equipment: []string{" EX-01 ", "", "DT-02"}, Category: " Planned "}.Filter()
	require.NoError(t, err)
	assert.Equal(t, []string{"EX-01", "DT-02"}, f.EquipmentIDs)
	assert.Equal(t, "Planned", f.Category)
}

func TestParseSchedule(t *testing.T) {
	sched, err := ParseSchedule("0 6 * * *")
	require.NoError(t, err)
	next := sched.Next(time.Date(2024, 1, 10, 7, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 1, 11, 6, 0, 0, 0, time.UTC), next)

	_, err = ParseSchedule("")
	assert.Error(t, err)
	_, err = ParseSchedule("every day")
	assert.Error(t, err)
}

func TestRoot_SummaryJSON(t *testing.T) {
	dataDir := writeFleet(t)
	outDir := t.TempDir()

	require.NoError(t, runRoot(t, "summary", "--data-dir", dataDir, "--format", "json", "--output", outDir))

	data, err := os.ReadFile(filepath.Join(outDir, "executive_summary.json"))
	require.NoError(t, err)

	var s map[string]any
	require.NoError(t, json.Unmarshal(data, &s))
	// 2 equipment x 10 days x 24h = 480h available, 12h down
	assert.Equal(t, 97.5, s["availability_pct"])
	assert.Equal(t, 5.0, s["mttr_hours"])
	assert.Equal(t, 235.0, s["mtbf_hours"])
	assert.Equal(t, 3.0, s["total_work_orders"])
	assert.Equal(t, 1.0, s["critical_stock_items"])
	assert.NotEmpty(t, s["run_id"])
}

func TestRoot_EquipmentFilter(t *testing.T) {
	dataDir := writeFleet(t)
	outDir := t.TempDir()

	require.NoError(t, runRoot(t, "summary", "--data-dir", dataDir, "--format", "json",
		"--output", outDir, "--equipment", "EX-01"))

	data, err := os.ReadFile(filepath.Join(outDir, "executive_summary.json"))
	require.NoError(t, err)
	var s map[string]any
	require.NoError(t, json.Unmarshal(data, &s))
	assert.Equal(t, 2.0, s["total_work_orders"])
	assert.Equal(t, 1.0, s["equipment_count"])
}

func TestRoot_AllReportsRender(t *testing.T) {
	dataDir := writeFleet(t)
	for _, kind := range []ReportKind{
		SummaryReport, ReliabilityReport, InventoryReport, CostReport,
		VendorReport, PredictiveReport, TechnicianReport,
	} {
		t.Run(string(kind), func(t *testing.T) {
			outDir := t.TempDir()
			require.NoError(t, runRoot(t, string(kind), "--data-dir", dataDir, "--format", "xlsx", "--output", outDir))
			matches, err := filepath.Glob(filepath.Join(outDir, "*.xlsx"))
			require.NoError(t, err)
			assert.Len(t, matches, 1)
		})
	}
}

func TestRoot_InvalidFlags(t *testing.T) {
	dataDir := writeFleet(t)
	tests := []struct {
		name string
		args []string
	}{
		{name: "bad format", args: []string{"summary", "--data-dir", dataDir, "--format", "pdf"}},
		{name: "bad source", args: []string{"summary", "--source", "postgres"}},
		{name: "bad date", args: []string{"summary", "--data-dir", dataDir, "--from", "yesterday"}},
		{name: "missing data", args: []string{"summary", "--data-dir", t.TempDir()}},
		{name: "rul without predictor", args: []string{"predict", "--data-dir", dataDir, "--rul"}},
		{name: "bad cron", args: []string{"schedule", "--data-dir", dataDir, "--cron", "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, runRoot(t, tt.args...))
		})
	}
}

func TestRoot_ExportMetrics(t *testing.T) {
	dataDir := writeFleet(t)
	path := filepath.Join(t.TempDir(), "kpi.prom")

	require.NoError(t, runRoot(t, "export-metrics", "--data-dir", dataDir, "--path", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "maintenance_availability_percent 97.5")
	assert.Contains(t, string(data), `maintenance_equipment_failure_probability{equipment_id="EX-01",status="Critical"} 0.99`)
}

func TestRoot_ImportThenReadSQLite(t *testing.T) {
	dataDir := writeFleet(t)
	dbPath := filepath.Join(t.TempDir(), "maintenance.db")
	outDir := t.TempDir()

	require.NoError(t, runRoot(t, "import", "--data-dir", dataDir, "--sqlite", dbPath))
	require.NoError(t, runRoot(t, "summary", "--source", "sqlite", "--sqlite", dbPath,
		"--format", "json", "--output", outDir))

	data, err := os.ReadFile(filepath.Join(outDir, "executive_summary.json"))
	require.NoError(t, err)
	var s map[string]any
	require.NoError(t, json.Unmarshal(data, &s))
	assert.Equal(t, 97.5, s["availability_pct"])
}

func TestScheduleCommand_RefreshesUntilCancelled(t *testing.T) {
	dataDir := writeFleet(t)
	settings, err := config.Load("", "")
	require.NoError(t, err)
	settings.Data.Dir = dataDir
	settings.Metrics.TextfilePath = filepath.Join(t.TempDir(), "kpi.prom")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cmd := NewScheduleCommand(Config{Settings: settings}, "0 6 * * *", "", nil)
	done := make(chan error, 1)
	go func() { done <- cmd.Execute(ctx) }()

	require.Eventually(t, func() bool {
		_, err := os.Stat(settings.Metrics.TextfilePath)
		return err == nil
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop after cancel")
	}
}
