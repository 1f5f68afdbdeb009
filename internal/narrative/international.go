package narrative

import (
	"fmt"

	"github.com/nao1215/marketupdate/internal/market"
	"github.com/nao1215/marketupdate/internal/model"
)

// TreasuryLines compares the Indonesian global bond with the US Treasury.
func TreasuryLines(t market.TreasuryComparison) []string {
	return []string{
		fmt.Sprintf("• Yield Global Bonds Indonesia (SUN Valas) 10Y bergerak %s %.1f bps ke %.3f%%.",
			Trend(t.Indonesia.Direction), abs(t.Indonesia.Change), t.Indonesia.Current),
		fmt.Sprintf("  Yield US Treasury 10Y bergerak %s %.1f bps ke %.3f%%.",
			Trend(t.USA.Direction), abs(t.USA.Change), t.USA.Current),
		fmt.Sprintf("  Spread Indonesia terhadap UST 10Y: %.0f bps (%+.0f bps dari hari sebelumnya).",
			t.Spread, t.SpreadChange),
	}
}

// CDSLines lists the sovereign CDS spreads.
func CDSLines(quotes []model.CDSQuote) []string {
	lines := make([]string, 0, len(quotes)+1)
	lines = append(lines, "• Credit Risk Indonesia (CDS):")
	for _, q := range quotes {
		lines = append(lines, fmt.Sprintf("  - %s: %.2f bps", q.Tenor, q.Price))
	}
	return lines
}

// NDFLines describes the USD/IDR non-deliverable forwards.
// Tenors without a quote are left out.
func NDFLines(m market.NDFMove) []string {
	lines := []string{
		fmt.Sprintf("• Nilai NDF bergerak %s pada hari ini:", Trend(m.OneMonth.Direction)),
		fmt.Sprintf("  - NDF 1M: %s (%+.0f poin)", Grouped(m.OneMonth.Current, 0), m.OneMonth.Change),
	}
	if model.IsValue(m.SixMonth) {
		lines = append(lines, "  - NDF 6M: "+Grouped(m.SixMonth, 0))
	}
	if model.IsValue(m.OneYear) {
		lines = append(lines, "  - NDF 12M: "+Grouped(m.OneYear, 0))
	}
	return lines
}

// GlobalEquityLines lists the international index moves.
// It returns nil when there is no move to report.
func GlobalEquityLines(moves []market.LabeledIndexMove) []string {
	if len(moves) == 0 {
		return nil
	}
	lines := make([]string, 0, len(moves)+1)
	lines = append(lines, "• Indeks Saham Global (perubahan hari ini):")
	for _, m := range moves {
		lines = append(lines, fmt.Sprintf("  - %s: %s %.2f%% ke %s",
			m.Label, Trend(m.Direction), abs(m.Percent), Grouped(m.Current, 2)))
	}
	return lines
}

// CommodityLines lists commodity prices in US dollars.
// It returns nil when no price is known.
func CommodityLines(q model.CommodityQuote) []string {
	items := []struct {
		label string
		price float64
		unit  string
	}{
		{"Minyak Mentah ICP", q.ICP, "barel"},
		{"Minyak Mentah WTI", q.WTI, "barel"},
		{"Minyak Sawit", q.PalmOil, "metric ton"},
	}

	var lines []string
	for _, it := range items {
		if !model.IsValue(it.price) {
			continue
		}
		lines = append(lines, fmt.Sprintf("  - %s: US$%.2f per %s", it.label, it.price, it.unit))
	}
	if len(lines) == 0 {
		return nil
	}
	return append([]string{"• Harga Komoditas:"}, lines...)
}
