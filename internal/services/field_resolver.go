package services

import (
	"food-rescue-dashboard/internal/domain"
	"strings"
)

// Resolve returns the value of the first candidate header defined in row.
// Each candidate is tried as an exact key, then case-insensitively against
// every key of the row; when several keys differ only by case the
// lexicographically smallest wins so the result does not depend on map order.
func Resolve(row domain.RawRow, candidates ...string) (string, bool) {
	for _, name := range candidates {
		if v, ok := row[name]; ok {
			return v, true
		}

		best, found := "", false
		for key := range row {
			if strings.EqualFold(key, name) && (!found || key < best) {
				best, found = key, true
			}
		}
		if found {
			return row[best], true
		}
	}
	return "", false
}
