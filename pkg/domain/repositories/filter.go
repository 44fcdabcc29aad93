package repositories

import (
	"strings"
	"time"
)

// Filter narrows a table to a date range, a set of equipment and a category.
// Zero values leave the corresponding dimension unfiltered.
type Filter struct {
	From         time.Time
	To           time.Time
	EquipmentIDs []string
	Category     string
}

// InRange reports whether t falls within [From, To], both inclusive by day
func (f Filter) InRange(t time.Time) bool {
	if !f.From.IsZero() && t.Before(startOfDay(f.From)) {
		return false
	}
	if !f.To.IsZero() && !t.Before(startOfDay(f.To).AddDate(0, 0, 1)) {
		return false
	}
	return true
}

// MatchesEquipment reports whether id is selected by the filter
func (f Filter) MatchesEquipment(id string) bool {
	if len(f.EquipmentIDs) == 0 {
		return true
	}
	for _, e := range f.EquipmentIDs {
		if e == id {
			return true
		}
	}
	return false
}

// MatchesCategory compares case-insensitively
func (f Filter) MatchesCategory(category string) bool {
	return f.Category == "" || strings.EqualFold(f.Category, category)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
