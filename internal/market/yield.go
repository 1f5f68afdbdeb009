package market

import "github.com/nao1215/marketupdate/internal/model"

// Valid yield range in percent, both bounds exclusive.
// Trades outside this range are data-entry errors in the trade feed.
const (
	MinValidYield = 0.0
	MaxValidYield = 20.0
)

// BasisPointsPerPercent converts a percent difference to basis points.
const BasisPointsPerPercent = 100.0

// ValidYield reports whether y is a plausible traded yield.
func ValidYield(y float64) bool {
	return model.IsValue(y) && y > MinValidYield && y < MaxValidYield
}

// FilterYields returns the rows whose yield passes ValidYield.
func FilterYields(rows []model.YieldRow) []model.YieldRow {
	out := make([]model.YieldRow, 0, len(rows))
	for _, r := range rows {
		if ValidYield(r.Yield) {
			out = append(out, r)
		}
	}
	return out
}

// MeanYieldByDate returns the arithmetic mean yield of the given rows per date.
// Rows are used as given; filter them first.
func MeanYieldByDate(rows []model.YieldRow) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, r := range rows {
		sums[r.Date] += r.Yield
		counts[r.Date]++
	}
	means := make(map[string]float64, len(sums))
	for d, s := range sums {
		means[d] = s / float64(counts[d])
	}
	return means
}

// YieldChange compares the average SUN yield of the two most recent trade
// dates. Change is expressed in basis points.
//
// It reports false when fewer than two rows are given or when fewer than two
// distinct dates remain after invalid yields are discarded.
func YieldChange(rows []model.YieldRow) (model.DeltaResult, bool) {
	if len(rows) < 2 {
		return model.DeltaResult{}, false
	}

	clean := FilterYields(rows)
	dates := make([]string, len(clean))
	for i, r := range clean {
		dates[i] = r.Date
	}
	latest := latestDates(dates, 2)
	if len(latest) < 2 {
		return model.DeltaResult{}, false
	}

	means := MeanYieldByDate(clean)
	today := means[latest[0]]
	yesterday := means[latest[1]]
	change := (today - yesterday) * BasisPointsPerPercent

	return model.DeltaResult{
		Date:         latest[0],
		PreviousDate: latest[1],
		Current:      today,
		Previous:     yesterday,
		Change:       change,
		Direction:    model.DirectionOf(change),
	}, true
}

// LatestTradeDate returns the most recent date in the raw yield rows,
// before any filtering. This is the date printed at the top of the report.
func LatestTradeDate(rows []model.YieldRow) (string, bool) {
	r, ok := latestOne(rows, func(r model.YieldRow) string { return r.Date })
	if !ok {
		return "", false
	}
	return r.Date, true
}
