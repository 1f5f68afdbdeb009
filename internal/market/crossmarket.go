package market

import (
	"github.com/nao1215/marketupdate/internal/model"
)

// Delta compares two observations of the same series.
// It reports false when either value is NULL.
func Delta(date, previousDate string, current, previous float64) (model.DeltaResult, bool) {
	if !model.IsValue(current) || !model.IsValue(previous) {
		return model.DeltaResult{}, false
	}
	change := current - previous
	return model.DeltaResult{
		Date:         date,
		PreviousDate: previousDate,
		Current:      current,
		Previous:     previous,
		Change:       change,
		Direction:    model.DirectionOf(change),
	}, true
}

// PercentChange returns (current-previous)/previous*100.
// It reports false when previous is zero or either value is NULL.
func PercentChange(current, previous float64) (float64, bool) {
	if !model.IsValue(current) || !model.IsValue(previous) || previous == 0 {
		return 0, false
	}
	return (current - previous) / previous * 100, true
}

// RupiahMove compares the USD/IDR rate of the two most recent dates.
// A positive change means the rupiah weakened.
func RupiahMove(quotes []model.FXQuote) (model.DeltaResult, bool) {
	today, yesterday, ok := latestTwo(quotes, func(q model.FXQuote) string { return q.Date })
	if !ok {
		return model.DeltaResult{}, false
	}
	return Delta(today.Date, yesterday.Date, today.USD, yesterday.USD)
}

// IndexMove is the day-over-day move of an equity index.
type IndexMove struct {
	model.DeltaResult

	// Percent is the signed percentage change.
	Percent float64
}

// StockIndexMove compares the level of one market's index on the two most
// recent dates.
func StockIndexMove(quotes []model.StockIndexQuote, market string) (IndexMove, bool) {
	today, yesterday, ok := latestTwo(quotes, func(q model.StockIndexQuote) string { return q.Date })
	if !ok {
		return IndexMove{}, false
	}
	cur, known := today.Index(market)
	if !known {
		return IndexMove{}, false
	}
	prev, _ := yesterday.Index(market)

	d, ok := Delta(today.Date, yesterday.Date, cur, prev)
	if !ok {
		return IndexMove{}, false
	}
	pct, ok := PercentChange(cur, prev)
	if !ok {
		return IndexMove{}, false
	}
	return IndexMove{DeltaResult: d, Percent: pct}, true
}

// GlobalIndex names an equity index tracked in the international section.
type GlobalIndex struct {
	Market string
	Label  string
}

// DefaultGlobalIndices returns the international indices in report order.
func DefaultGlobalIndices() []GlobalIndex {
	return []GlobalIndex{
		{Market: model.MarketUSA, Label: "S&P 500"},
		{Market: model.MarketJapan, Label: "Nikkei"},
		{Market: model.MarketHongkong, Label: "Hang Seng"},
		{Market: model.MarketShanghai, Label: "Shanghai"},
		{Market: model.MarketGerman, Label: "DAX"},
	}
}

// LabeledIndexMove is an IndexMove with its display label.
type LabeledIndexMove struct {
	IndexMove
	Label string
}

// GlobalIndexMoves computes the move of every given index.
// Indices without two valid observations are skipped.
func GlobalIndexMoves(quotes []model.StockIndexQuote, indices []GlobalIndex) []LabeledIndexMove {
	moves := make([]LabeledIndexMove, 0, len(indices))
	for _, idx := range indices {
		m, ok := StockIndexMove(quotes, idx.Market)
		if !ok {
			continue
		}
		moves = append(moves, LabeledIndexMove{IndexMove: m, Label: idx.Label})
	}
	return moves
}

// TreasuryComparison compares the Indonesian USD 10Y global bond with the
// 10Y US Treasury. Yield changes and spreads are in basis points.
type TreasuryComparison struct {
	Indonesia model.DeltaResult
	USA       model.DeltaResult

	// Spread is the Indonesia-UST spread on the latest date.
	Spread float64

	// PreviousSpread is the spread on the previous date.
	PreviousSpread float64

	// SpreadChange is Spread-PreviousSpread.
	SpreadChange float64
}

// CompareTreasury computes the 10Y yield moves and the spread change.
func CompareTreasury(rows []model.TenYearYield) (TreasuryComparison, bool) {
	today, yesterday, ok := latestTwo(rows, func(r model.TenYearYield) string { return r.Date })
	if !ok {
		return TreasuryComparison{}, false
	}

	indo, ok := bpsDelta(today.Date, yesterday.Date, today.Indonesia, yesterday.Indonesia)
	if !ok {
		return TreasuryComparison{}, false
	}
	ust, ok := bpsDelta(today.Date, yesterday.Date, today.USA, yesterday.USA)
	if !ok {
		return TreasuryComparison{}, false
	}

	spread := (today.Indonesia - today.USA) * BasisPointsPerPercent
	prevSpread := (yesterday.Indonesia - yesterday.USA) * BasisPointsPerPercent

	return TreasuryComparison{
		Indonesia:      indo,
		USA:            ust,
		Spread:         spread,
		PreviousSpread: prevSpread,
		SpreadChange:   spread - prevSpread,
	}, true
}

// bpsDelta is Delta with the change converted from percent to basis points.
// Current and Previous stay in percent.
func bpsDelta(date, previousDate string, current, previous float64) (model.DeltaResult, bool) {
	d, ok := Delta(date, previousDate, current, previous)
	if !ok {
		return d, false
	}
	d.Change *= BasisPointsPerPercent
	d.Direction = model.DirectionOf(d.Change)
	return d, true
}

// NDFMove is the day-over-day move of the 1M NDF plus the latest 6M and 12M
// quotes.
type NDFMove struct {
	OneMonth model.DeltaResult
	SixMonth float64
	OneYear  float64
}

// NDFChange compares the 1M NDF of the two most recent dates.
func NDFChange(quotes []model.NDFQuote) (NDFMove, bool) {
	today, yesterday, ok := latestTwo(quotes, func(q model.NDFQuote) string { return q.Date })
	if !ok {
		return NDFMove{}, false
	}
	d, ok := Delta(today.Date, yesterday.Date, today.OneMonth, yesterday.OneMonth)
	if !ok {
		return NDFMove{}, false
	}
	return NDFMove{OneMonth: d, SixMonth: today.SixMonth, OneYear: today.OneYear}, true
}

// DefaultCDSTenors returns the CDS tenors printed in the report.
func DefaultCDSTenors() []string {
	return []string{"CDS 5Y", "CDS 10Y"}
}

// LatestCDS returns the CDS quotes of the most recent date, in input order.
// Quotes with a NULL price are dropped.
func LatestCDS(quotes []model.CDSQuote) ([]model.CDSQuote, bool) {
	latest, ok := latestOne(quotes, func(q model.CDSQuote) string { return q.Date })
	if !ok {
		return nil, false
	}
	out := make([]model.CDSQuote, 0, len(quotes))
	for _, q := range quotes {
		if q.Date == latest.Date && model.IsValue(q.Price) {
			out = append(out, q)
		}
	}
	return out, len(out) > 0
}

// LatestCommodities returns the most recent commodity quote.
func LatestCommodities(quotes []model.CommodityQuote) (model.CommodityQuote, bool) {
	return latestOne(quotes, func(q model.CommodityQuote) string { return q.Date })
}
