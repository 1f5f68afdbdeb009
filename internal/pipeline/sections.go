package pipeline

import (
	"context"
	"log/slog"

	"github.com/nao1215/marketupdate/internal/market"
	"github.com/nao1215/marketupdate/internal/model"
	"github.com/nao1215/marketupdate/internal/narrative"
)

// Settings controls what the section steps report.
type Settings struct {
	// BenchmarkSeries is the allow-list of the benchmark table.
	BenchmarkSeries []string

	// Buckets classifies transaction types into outright and repo.
	Buckets market.Buckets

	// GlobalIndices lists the international equity indices in order.
	GlobalIndices []market.GlobalIndex
}

// DefaultSettings returns the standard report settings.
func DefaultSettings() Settings {
	return Settings{
		BenchmarkSeries: market.DefaultBenchmarkSeries(),
		Buckets:         market.DefaultBuckets(),
		GlobalIndices:   market.DefaultGlobalIndices(),
	}
}

// buildFunc computes one section from the fetched data.
// It returns false when the data does not support the section.
type buildFunc func(data *Datasets) (model.Section, bool)

// SectionStep adds one report section.
type SectionStep struct {
	id     model.SectionID
	build  buildFunc
	logger *slog.Logger
}

// Name returns the section name.
func (s *SectionStep) Name() string {
	return s.id.String()
}

// Do computes the section and adds it to the report. A section without
// data is left out and logged at debug level.
func (s *SectionStep) Do(_ context.Context, data *Datasets, report *model.Report) error {
	section, ok := s.build(data)
	if !ok {
		s.logger.Debug("section omitted: insufficient data", "section", s.id.String())
		return nil
	}
	section.ID = s.id
	report.AddSection(section)
	return nil
}

// SectionSteps returns one step per report section, in render order.
func SectionSteps(settings Settings, logger *slog.Logger) []Step {
	if logger == nil {
		logger = slog.Default()
	}
	builders := []struct {
		id    model.SectionID
		build buildFunc
	}{
		{model.SectionSUNMarket, buildSUNMarket},
		{model.SectionOwnership, buildOwnership},
		{model.SectionTransactions, func(d *Datasets) (model.Section, bool) {
			return buildTransactions(d, settings.Buckets)
		}},
		{model.SectionBenchmark, func(d *Datasets) (model.Section, bool) {
			return buildBenchmark(d, settings.BenchmarkSeries)
		}},
		{model.SectionTreasury, buildTreasury},
		{model.SectionCDS, buildCDS},
		{model.SectionNDF, buildNDF},
		{model.SectionGlobalEquities, func(d *Datasets) (model.Section, bool) {
			return buildGlobalEquities(d, settings.GlobalIndices)
		}},
		{model.SectionCommodities, buildCommodities},
	}

	steps := make([]Step, 0, len(builders))
	for _, b := range builders {
		steps = append(steps, &SectionStep{id: b.id, build: b.build, logger: logger})
	}
	return steps
}

// usable reports whether ds was fetched and holds at least n rows.
func usable[T any](ds model.Dataset[T], n int) bool {
	return ds.Status() == model.StatusOK && ds.Len() >= n
}

// buildSUNMarket combines the yield headline with the rupiah and IHSG
// lines. Each line is independent; the section exists if any line does.
func buildSUNMarket(d *Datasets) (model.Section, bool) {
	var lines []string

	if usable(d.Yields, 2) {
		if delta, ok := market.YieldChange(d.Yields.Rows); ok {
			lines = append(lines, narrative.YieldHeadline(delta))
		}
	}
	if usable(d.FX, 2) {
		if delta, ok := market.RupiahMove(d.FX.Rows); ok {
			lines = append(lines, narrative.RupiahLine(delta))
		}
	}
	if usable(d.StockIndices, 2) {
		if move, ok := market.StockIndexMove(d.StockIndices.Rows, model.MarketIndonesia); ok {
			lines = append(lines, narrative.IHSGLine(move))
		}
	}

	return model.Section{Lines: lines}, len(lines) > 0
}

func buildOwnership(d *Datasets) (model.Section, bool) {
	if !usable(d.Ownership, 1) {
		return model.Section{}, false
	}
	o, ok := market.OwnershipSummary(d.Ownership.Rows)
	if !ok {
		return model.Section{}, false
	}
	return model.Section{Lines: narrative.OwnershipLines(o)}, true
}

func buildTransactions(d *Datasets, buckets market.Buckets) (model.Section, bool) {
	if !usable(d.Transactions, 1) {
		return model.Section{}, false
	}
	s, ok := market.SummarizeTransactions(d.Transactions.Rows, buckets)
	if !ok {
		return model.Section{}, false
	}
	return model.Section{Lines: narrative.TransactionLines(s)}, true
}

// buildBenchmark emits the table whenever the allow-listed trades span two
// dates, even if no series was traded on both.
func buildBenchmark(d *Datasets, series []string) (model.Section, bool) {
	if !usable(d.Yields, 2) {
		return model.Section{}, false
	}
	cmp, ok := market.CompareBenchmarks(d.Yields.Rows, series)
	if !ok {
		return model.Section{}, false
	}
	return model.Section{Table: narrative.BenchmarkTable(cmp)}, true
}

func buildTreasury(d *Datasets) (model.Section, bool) {
	if !usable(d.TenYear, 2) {
		return model.Section{}, false
	}
	t, ok := market.CompareTreasury(d.TenYear.Rows)
	if !ok {
		return model.Section{}, false
	}
	return model.Section{Lines: narrative.TreasuryLines(t)}, true
}

func buildCDS(d *Datasets) (model.Section, bool) {
	if !usable(d.CDS, 1) {
		return model.Section{}, false
	}
	quotes, ok := market.LatestCDS(d.CDS.Rows)
	if !ok {
		return model.Section{}, false
	}
	return model.Section{Lines: narrative.CDSLines(quotes)}, true
}

func buildNDF(d *Datasets) (model.Section, bool) {
	if !usable(d.NDF, 2) {
		return model.Section{}, false
	}
	m, ok := market.NDFChange(d.NDF.Rows)
	if !ok {
		return model.Section{}, false
	}
	return model.Section{Lines: narrative.NDFLines(m)}, true
}

func buildGlobalEquities(d *Datasets, indices []market.GlobalIndex) (model.Section, bool) {
	if !usable(d.StockIndices, 2) {
		return model.Section{}, false
	}
	lines := narrative.GlobalEquityLines(market.GlobalIndexMoves(d.StockIndices.Rows, indices))
	return model.Section{Lines: lines}, len(lines) > 0
}

func buildCommodities(d *Datasets) (model.Section, bool) {
	if !usable(d.Commodities, 1) {
		return model.Section{}, false
	}
	q, ok := market.LatestCommodities(d.Commodities.Rows)
	if !ok {
		return model.Section{}, false
	}
	lines := narrative.CommodityLines(q)
	return model.Section{Lines: lines}, len(lines) > 0
}
