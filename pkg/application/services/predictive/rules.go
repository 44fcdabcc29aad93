package predictive

import (
	"strings"

	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/config"
)

// NormalOperation is the insight reported when no rule fires
const NormalOperation = "Normal Operation"

// Features are the windowed sensor aggregates a rule inspects
type Features struct {
	AvgTemp      float64
	MaxVibration float64
}

// Outcome is the contribution of a fired rule. Fragment is appended to an
// existing insight; Standalone replaces an empty one. A rule with neither
// leaves the insight unchanged.
type Outcome struct {
	ScoreDelta float64
	Fragment   string
	Standalone string
}

// Rule fires its outcome when Applies holds
type Rule struct {
	Name    string
	Applies func(Features) bool
	Outcome Outcome
}

// RuleGroup is an ordered set of mutually exclusive rules; the first match wins
type RuleGroup []Rule

// Evaluation is the combined result of a rule set
type Evaluation struct {
	Score   float64
	Insight string
	Fired   []string
}

// DefaultRuleGroups builds the temperature and vibration rule groups from thresholds
func DefaultRuleGroups(t config.Thresholds) []RuleGroup {
	temperature := RuleGroup{
		{
			Name:    "overheat",
			Applies: func(f Features) bool { return f.AvgTemp > t.OverheatThresholdC },
			Outcome: Outcome{
				ScoreDelta: t.OverheatScore,
				Fragment:   "Critical Overheating Detected",
				Standalone: "Critical Overheating Detected",
			},
		},
		{
			Name:    "high_temperature",
			Applies: func(f Features) bool { return f.AvgTemp > t.HighTemperatureThresholdC },
			Outcome: Outcome{
				ScoreDelta: t.HighTemperatureScore,
				Fragment:   "High Operating Temperature",
				Standalone: "High Operating Temperature",
			},
		},
	}
	vibration := RuleGroup{
		{
			Name:    "excessive_vibration",
			Applies: func(f Features) bool { return f.MaxVibration > t.VibrationThresholdMmS },
			Outcome: Outcome{
				ScoreDelta: t.VibrationScore,
				Fragment:   "Excessive Vibration",
				Standalone: "Excessive Vibration Detected",
			},
		},
		{
			Name:    "elevated_vibration",
			Applies: func(f Features) bool { return f.MaxVibration > t.VibrationWarningMmS },
			Outcome: Outcome{ScoreDelta: t.VibrationWarningScore},
		},
	}
	return []RuleGroup{temperature, vibration}
}

// Evaluate applies each group in order and combines the outcomes. Scores
// add up across groups; insight fragments are joined with " + ".
func Evaluate(groups []RuleGroup, f Features) Evaluation {
	var eval Evaluation
	var parts []string
	for _, group := range groups {
		for _, rule := range group {
			if !rule.Applies(f) {
				continue
			}
			eval.Score += rule.Outcome.ScoreDelta
			eval.Fired = append(eval.Fired, rule.Name)
			switch {
			case len(parts) == 0 && rule.Outcome.Standalone != "":
				parts = append(parts, rule.Outcome.Standalone)
			case len(parts) > 0 && rule.Outcome.Fragment != "":
				parts = append(parts, rule.Outcome.Fragment)
			}
			break
		}
	}

	eval.Insight = NormalOperation
	if len(parts) > 0 {
		eval.Insight = strings.Join(parts, " + ")
	}
	return eval
}
