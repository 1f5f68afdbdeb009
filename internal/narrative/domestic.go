package narrative

import (
	"fmt"
	"math"

	"github.com/nao1215/marketupdate/internal/market"
	"github.com/nao1215/marketupdate/internal/model"
)

// YieldHeadline is the opening sentence of the SUN market section.
func YieldHeadline(d model.DeltaResult) string {
	t := Trend(d.Direction)
	return fmt.Sprintf(
		"• Pasar SUN bergerak %s. Berdasarkan yield rata-rata, yield SUN bergerak %s sebesar %.1f bps dibandingkan hari kemarin (dari %.4f%% menjadi %.4f%%).",
		t, t, abs(d.Change), d.Previous, d.Current,
	)
}

// RupiahLine describes the USD/IDR move.
func RupiahLine(d model.DeltaResult) string {
	return fmt.Sprintf("  Nilai tukar Rupiah %s sebesar %.2f poin ke level Rp%s/US$.",
		RupiahTrend(d.Change), abs(d.Change), Grouped(d.Current, 0))
}

// IHSGLine describes the Jakarta composite index move.
func IHSGLine(m market.IndexMove) string {
	return fmt.Sprintf("  Indeks IHSG %s sebesar %.2f poin (%.2f%%) ke level %s.",
		Trend(m.Direction), abs(m.Change), m.Percent, Grouped(m.Current, 2))
}

// OwnershipLines lists SBN ownership per investor group.
func OwnershipLines(o market.Ownership) []string {
	return []string{
		"• Kepemilikan SBN per " + o.Date + ":",
		"  - Investor Domestik Individu: " + Trillions(o.DomesticIndividual),
		"  - Investor Domestik Korporat: " + Trillions(o.DomesticCompany),
		"  - Non Resident: " + Trillions(o.NonResident),
		"  - Total Kepemilikan: " + Trillions(o.Total),
	}
}

// TransactionLines lists the outright and repo volumes with their trade counts.
func TransactionLines(s market.TransactionSummary) []string {
	return []string{
		"• Transaksi Perdagangan Harian:",
		fmt.Sprintf("  - Transaksi Outright: %s (%s transaksi)", Trillions(s.Outright), Grouped(float64(s.OutrightTrades), 0)),
		fmt.Sprintf("  - Transaksi Repo: %s (%s transaksi)", Trillions(s.Repo), Grouped(float64(s.RepoTrades), 0)),
	}
}

// BenchmarkHeader holds the column titles of the benchmark yield table.
// The text report prints the first four columns; Markdown prints all.
var BenchmarkHeader = []string{
	"Seri", "Yield Hari Ini", "Yield Kemarin", "Perubahan (bps)",
	"Harga Hari Ini", "Harga Kemarin",
}

// BenchmarkTable converts a comparison to a table of formatted cells.
// Yields carry four decimals and a percent sign, changes two decimals,
// prices four decimals or "-" when unknown.
func BenchmarkTable(c market.BenchmarkComparison) *model.Table {
	t := &model.Table{
		Header: BenchmarkHeader,
		Rows:   make([][]string, 0, len(c.Rows)),
	}
	for _, r := range c.Rows {
		t.Rows = append(t.Rows, []string{
			r.Security,
			fmt.Sprintf("%.4f%%", r.Current),
			fmt.Sprintf("%.4f%%", r.Previous),
			fmt.Sprintf("%.2f", r.ChangeBps),
			price(r.CurrentPrice),
			price(r.PreviousPrice),
		})
	}
	return t
}

func price(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.4f", v)
}
