package market

import "github.com/nao1215/marketupdate/internal/model"

// Ownership is the SBN ownership by investor group on a single date.
// Amounts are in rupiah.
type Ownership struct {
	Date               string
	DomesticIndividual float64
	DomesticCompany    float64
	NonResident        float64
	Total              float64
}

// OwnershipSummary sums each investor group over all categories of the most
// recent date. Total is the sum of the three group sums.
// NULL amounts are absent and contribute nothing.
//
// It reports false when no rows are given.
func OwnershipSummary(rows []model.OwnershipRow) (Ownership, bool) {
	latest, ok := latestOne(rows, func(r model.OwnershipRow) string { return r.Date })
	if !ok {
		return Ownership{}, false
	}

	o := Ownership{Date: latest.Date}
	for _, r := range rows {
		if r.Date != o.Date {
			continue
		}
		o.DomesticIndividual += valueOrZero(r.DomesticIndividual)
		o.DomesticCompany += valueOrZero(r.DomesticCompany)
		o.NonResident += valueOrZero(r.NonResident)
	}
	o.Total = o.DomesticIndividual + o.DomesticCompany + o.NonResident

	return o, true
}

func valueOrZero(v float64) float64 {
	if !model.IsValue(v) {
		return 0
	}
	return v
}
