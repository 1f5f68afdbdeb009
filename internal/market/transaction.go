package market

import (
	"slices"

	"github.com/nao1215/marketupdate/internal/model"
)

// Transaction types of the settlement system.
const (
	TypeSale       = "SALE"
	TypeAllotment  = "ALLOTMENT"
	TypeFOP        = "FOP"
	TypeRepo       = "REPO"
	TypeRepoSecond = "REPO 2nd LEG"
)

// Buckets partitions transaction types into outright and repo trades.
// Types listed in neither bucket are ignored.
type Buckets struct {
	Outright []string
	Repo     []string
}

// DefaultBuckets returns the standard outright/repo classification.
func DefaultBuckets() Buckets {
	return Buckets{
		Outright: []string{TypeSale, TypeAllotment, TypeFOP},
		Repo:     []string{TypeRepo, TypeRepoSecond},
	}
}

// TransactionSummary holds the traded volumes of the latest settlement date.
// Volumes are in rupiah.
type TransactionSummary struct {
	SettleDate     string
	Outright       float64
	Repo           float64
	OutrightTrades int64
	RepoTrades     int64
}

// SummarizeTransactions sums volumes per bucket for the most recent
// settlement date. Groups from older dates are ignored.
//
// It reports false when no groups are given.
func SummarizeTransactions(groups []model.TransactionGroup, b Buckets) (TransactionSummary, bool) {
	latest, ok := latestOne(groups, func(g model.TransactionGroup) string { return g.SettleDate })
	if !ok {
		return TransactionSummary{}, false
	}

	s := TransactionSummary{SettleDate: latest.SettleDate}
	for _, g := range groups {
		if g.SettleDate != s.SettleDate {
			continue
		}
		switch {
		case slices.Contains(b.Outright, g.Type):
			s.Outright += valueOrZero(g.Volume)
			s.OutrightTrades += g.Count
		case slices.Contains(b.Repo, g.Type):
			s.Repo += valueOrZero(g.Volume)
			s.RepoTrades += g.Count
		}
	}

	return s, true
}
