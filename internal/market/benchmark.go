package market

import (
	"math"
	"slices"
	"strings"

	"github.com/nao1215/marketupdate/internal/model"
)

// DefaultBenchmarkSeries returns the benchmark fixed-rate series tracked in
// the headline yield table.
func DefaultBenchmarkSeries() []string {
	return []string{
		"FR0091", "FR0092", "FR0093", "FR0094", "FR0095",
		"FR0096", "FR0097", "FR0098", "FR0099",
	}
}

// BenchmarkYield is the averaged trade data of one series on one date.
type BenchmarkYield struct {
	Date     string
	Security string
	Yield    float64
	Price    float64
	Maturity string
}

// BenchmarkRow compares one benchmark series across the two dates.
type BenchmarkRow struct {
	Security      string
	Maturity      string
	Current       float64
	Previous      float64
	CurrentPrice  float64
	PreviousPrice float64

	// ChangeBps is (Current-Previous) in basis points.
	ChangeBps float64
}

// BenchmarkComparison is the benchmark yield table.
type BenchmarkComparison struct {
	Date         string
	PreviousDate string

	// Rows holds series traded on both dates, ordered by maturity.
	Rows []BenchmarkRow
}

// AverageBenchmarks averages yield and price per (date, series) for the
// allow-listed series, ignoring trades with a non-positive yield.
// The result is ordered by date (most recent first), then maturity.
func AverageBenchmarks(rows []model.YieldRow, series []string) []BenchmarkYield {
	type key struct{ date, security string }
	type acc struct {
		yield, price float64
		n, priced    int
		maturity     string
	}

	accs := make(map[key]*acc)
	order := make([]key, 0)
	for _, r := range rows {
		if !slices.Contains(series, r.Security) {
			continue
		}
		if !model.IsValue(r.Yield) || r.Yield <= 0 {
			continue
		}
		k := key{r.Date, r.Security}
		a, ok := accs[k]
		if !ok {
			a = &acc{}
			accs[k] = a
			order = append(order, k)
		}
		a.yield += r.Yield
		a.n++
		if model.IsValue(r.Price) {
			a.price += r.Price
			a.priced++
		}
		if r.Maturity > a.maturity {
			a.maturity = r.Maturity
		}
	}

	out := make([]BenchmarkYield, 0, len(order))
	for _, k := range order {
		a := accs[k]
		price := math.NaN()
		if a.priced > 0 {
			price = a.price / float64(a.priced)
		}
		out = append(out, BenchmarkYield{
			Date:     k.date,
			Security: k.security,
			Yield:    a.yield / float64(a.n),
			Price:    price,
			Maturity: a.maturity,
		})
	}

	slices.SortFunc(out, func(a, b BenchmarkYield) int {
		if c := strings.Compare(b.Date, a.Date); c != 0 {
			return c
		}
		if c := strings.Compare(a.Maturity, b.Maturity); c != 0 {
			return c
		}
		return strings.Compare(a.Security, b.Security)
	})

	return out
}

// CompareBenchmarks pairs each benchmark series of the latest date with the
// same series on the previous date. Series traded on only one of the two
// dates are skipped.
//
// It reports false when the allow-listed trades do not span two dates.
func CompareBenchmarks(rows []model.YieldRow, series []string) (BenchmarkComparison, bool) {
	averaged := AverageBenchmarks(rows, series)

	dates := make([]string, len(averaged))
	for i, b := range averaged {
		dates[i] = b.Date
	}
	latest := latestDates(dates, 2)
	if len(latest) < 2 {
		return BenchmarkComparison{}, false
	}

	previous := make(map[string]BenchmarkYield)
	for _, b := range averaged {
		if b.Date == latest[1] {
			previous[b.Security] = b
		}
	}

	cmp := BenchmarkComparison{
		Date:         latest[0],
		PreviousDate: latest[1],
		Rows:         make([]BenchmarkRow, 0),
	}
	for _, b := range averaged {
		if b.Date != latest[0] {
			continue
		}
		prev, ok := previous[b.Security]
		if !ok {
			continue
		}
		cmp.Rows = append(cmp.Rows, BenchmarkRow{
			Security:      b.Security,
			Maturity:      b.Maturity,
			Current:       b.Yield,
			Previous:      prev.Yield,
			CurrentPrice:  b.Price,
			PreviousPrice: prev.Price,
			ChangeBps:     (b.Yield - prev.Yield) * BasisPointsPerPercent,
		})
	}

	return cmp, true
}
