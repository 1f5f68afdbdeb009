package market

import (
	"slices"
	"strings"
)

// latestDates returns up to n distinct dates, most recent first.
// Dates are stored as ISO text, so lexical order is chronological order.
func latestDates(dates []string, n int) []string {
	seen := make(map[string]struct{}, len(dates))
	unique := make([]string, 0, len(dates))
	for _, d := range dates {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		unique = append(unique, d)
	}
	slices.SortFunc(unique, func(a, b string) int {
		return strings.Compare(b, a)
	})
	if len(unique) > n {
		unique = unique[:n]
	}
	return unique
}

// latestTwo returns the most recent and the previous row of a table that
// holds one row per date. The input order is irrelevant.
func latestTwo[T any](rows []T, dateOf func(T) string) (latest, previous T, ok bool) {
	if len(rows) < 2 {
		return latest, previous, false
	}
	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b T) int {
		return strings.Compare(dateOf(b), dateOf(a))
	})
	return sorted[0], sorted[1], true
}

// latestOne returns the most recent row of a table.
func latestOne[T any](rows []T, dateOf func(T) string) (latest T, ok bool) {
	if len(rows) == 0 {
		return latest, false
	}
	latest = rows[0]
	for _, r := range rows[1:] {
		if dateOf(r) > dateOf(latest) {
			latest = r
		}
	}
	return latest, true
}
