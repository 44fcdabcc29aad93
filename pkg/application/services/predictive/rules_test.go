package predictive

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/config"
)

func TestEvaluate_DefaultRules(t *testing.T) {
	groups := DefaultRuleGroups(config.DefaultThresholds())

	tests := []struct {
		name     string
		temp     float64
		vib      float64
		score    float64
		insight  string
		firedLen int
	}{
		{"overheat and vibration", 96, 6, 1.1, "Critical Overheating Detected + Excessive Vibration", 2},
		{"high temperature and vibration", 90, 6, 0.8, "High Operating Temperature + Excessive Vibration", 2},
		{"vibration only", 70, 6, 0.5, "Excessive Vibration Detected", 1},
		{"elevated vibration keeps default insight", 70, 4, 0.2, NormalOperation, 1},
		{"overheat with elevated vibration", 96, 4, 0.8, "Critical Overheating Detected", 2},
		{"high temperature only", 86, 1, 0.3, "High Operating Temperature", 1},
		{"thresholds are strict", 85, 3.5, 0, NormalOperation, 0},
		{"just above overheat", 95.01, 5.0, 0.8, "Critical Overheating Detected", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eval := Evaluate(groups, Features{AvgTemp: tt.temp, MaxVibration: tt.vib})
			assert.InDelta(t, tt.score, eval.Score, 1e-9)
			assert.Equal(t, tt.insight, eval.Insight)
			assert.Len(t, eval.Fired, tt.firedLen)
		})
	}
}

func TestEvaluate_FirstMatchWithinGroup(t *testing.T) {
	groups := []RuleGroup{{
		{Name: "wide", Applies: func(f Features) bool { return f.AvgTemp > 10 }, Outcome: Outcome{ScoreDelta: 0.1, Standalone: "wide"}},
		{Name: "narrow", Applies: func(f Features) bool { return f.AvgTemp > 20 }, Outcome: Outcome{ScoreDelta: 0.9, Standalone: "narrow"}},
	}}

	eval := Evaluate(groups, Features{AvgTemp: 30})
	assert.Equal(t, []string{"wide"}, eval.Fired)
	assert.InDelta(t, 0.1, eval.Score, 1e-9)
	assert.Equal(t, "wide", eval.Insight)
}
