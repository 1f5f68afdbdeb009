package pipeline

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/nao1215/marketupdate/internal/model"
)

// fakeSource serves fixed datasets and records fetch concurrency.
type fakeSource struct {
	data  Datasets
	delay time.Duration

	calls       atomic.Int32
	inFlight    atomic.Int32
	maxInFlight atomic.Int32
}

func (f *fakeSource) track(ctx context.Context) {
	f.calls.Add(1)
	n := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		old := f.maxInFlight.Load()
		if n <= old || f.maxInFlight.CompareAndSwap(old, n) {
			break
		}
	}
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
		}
	}
}

func (f *fakeSource) Yields(ctx context.Context) model.Dataset[model.YieldRow] {
	f.track(ctx)
	return f.data.Yields
}

func (f *fakeSource) Ownership(ctx context.Context) model.Dataset[model.OwnershipRow] {
	f.track(ctx)
	return f.data.Ownership
}

func (f *fakeSource) Transactions(ctx context.Context) model.Dataset[model.TransactionGroup] {
	f.track(ctx)
	return f.data.Transactions
}

func (f *fakeSource) FX(ctx context.Context) model.Dataset[model.FXQuote] {
	f.track(ctx)
	return f.data.FX
}

func (f *fakeSource) TenYear(ctx context.Context) model.Dataset[model.TenYearYield] {
	f.track(ctx)
	return f.data.TenYear
}

func (f *fakeSource) CDS(ctx context.Context) model.Dataset[model.CDSQuote] {
	f.track(ctx)
	return f.data.CDS
}

func (f *fakeSource) NDF(ctx context.Context) model.Dataset[model.NDFQuote] {
	f.track(ctx)
	return f.data.NDF
}

func (f *fakeSource) StockIndices(ctx context.Context) model.Dataset[model.StockIndexQuote] {
	f.track(ctx)
	return f.data.StockIndices
}

func (f *fakeSource) Commodities(ctx context.Context) model.Dataset[model.CommodityQuote] {
	f.track(ctx)
	return f.data.Commodities
}

// fullData returns two days of data for every source.
func fullData() Datasets {
	return Datasets{
		Yields: model.Rows("yields", []model.YieldRow{
			{Date: "2024-01-02", Security: "FR0096", Yield: 6.60, Price: 99, Maturity: "2033-02-15"},
			{Date: "2024-01-02", Security: "FR0100", Yield: 6.40, Price: 101, Maturity: "2034-02-15"},
			{Date: "2024-01-01", Security: "FR0096", Yield: 6.50, Price: 99.5, Maturity: "2033-02-15"},
			{Date: "2024-01-01", Security: "FR0100", Yield: 6.30, Price: 101.5, Maturity: "2034-02-15"},
		}),
		Ownership: model.Rows("ownership", []model.OwnershipRow{
			{Date: "2024-01-02", Category: "SUN", DomesticIndividual: 100e12, DomesticCompany: 200e12, NonResident: 50e12},
		}),
		Transactions: model.Rows("transactions", []model.TransactionGroup{
			{SettleDate: "2024-01-02", Type: "SALE", Volume: 10e12, Count: 3},
			{SettleDate: "2024-01-02", Type: "REPO", Volume: 5e12, Count: 1},
		}),
		FX: model.Rows("fx", []model.FXQuote{
			{Date: "2024-01-02", USD: 16250},
			{Date: "2024-01-01", USD: 16200},
		}),
		TenYear: model.Rows("ten-year", []model.TenYearYield{
			{Date: "2024-01-02", Indonesia: 5.25, USA: 4.00},
			{Date: "2024-01-01", Indonesia: 5.20, USA: 4.05},
		}),
		CDS: model.Rows("cds", []model.CDSQuote{
			{Date: "2024-01-02", Tenor: "CDS 10Y", Price: 130.5},
			{Date: "2024-01-02", Tenor: "CDS 5Y", Price: 75.25},
		}),
		NDF: model.Rows("ndf", []model.NDFQuote{
			{Date: "2024-01-02", OneMonth: 16280, SixMonth: 16340, OneYear: 16420},
			{Date: "2024-01-01", OneMonth: 16300, SixMonth: 16350, OneYear: 16430},
		}),
		StockIndices: model.Rows("stock-indices", []model.StockIndexQuote{
			{Date: "2024-01-02", Indonesia: 7070, USA: 4752, Japan: 33500, Hongkong: 16830, Shanghai: 2929, German: 16867},
			{Date: "2024-01-01", Indonesia: 7000, USA: 4800, Japan: 33000, Hongkong: 17000, Shanghai: 2900, German: 16700},
		}),
		Commodities: model.Rows("commodities", []model.CommodityQuote{
			{Date: "2024-01-02", ICP: 78.5, WTI: 74.25, PalmOil: 850},
		}),
	}
}

var errSourceDown = errors.New("source down")
