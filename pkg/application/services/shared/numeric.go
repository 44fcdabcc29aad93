package shared

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"
)

// HoursPerDay is the scheduled hours per equipment-day
const HoursPerDay = 24.0

// Round rounds half away from zero to the given number of decimal places.
// Infinities and NaN are returned unchanged.
func Round(v float64, places int32) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

// SafeDiv returns num/den, or 0 when den is 0
func SafeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// Percent returns part/total*100, or 0 when total is 0
func Percent(part, total float64) float64 {
	return SafeDiv(part, total) * 100
}

// DecimalRatio returns num/den as a float, or 0 when den is zero
func DecimalRatio(num, den decimal.Decimal) float64 {
	if den.IsZero() {
		return 0
	}
	return num.Div(den).InexactFloat64()
}

// Money rounds a decimal amount to cents
func Money(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Mean returns the arithmetic mean, or 0 for an empty slice
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// PopulationStdDev returns the standard deviation with divisor n
func PopulationStdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := Mean(values)
	ss := 0.0
	for _, v := range values {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(values)))
}

// SortedKeys returns the keys of m in ascending order
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
