package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/nao1215/marketupdate/internal/model"
	"golang.org/x/sync/errgroup"
)

// Source provides the market data of one report.
// Every method returns a Dataset instead of an error; an unreachable source
// is a Dataset with Err set.
type Source interface {
	Yields(ctx context.Context) model.Dataset[model.YieldRow]
	Ownership(ctx context.Context) model.Dataset[model.OwnershipRow]
	Transactions(ctx context.Context) model.Dataset[model.TransactionGroup]
	FX(ctx context.Context) model.Dataset[model.FXQuote]
	TenYear(ctx context.Context) model.Dataset[model.TenYearYield]
	CDS(ctx context.Context) model.Dataset[model.CDSQuote]
	NDF(ctx context.Context) model.Dataset[model.NDFQuote]
	StockIndices(ctx context.Context) model.Dataset[model.StockIndexQuote]
	Commodities(ctx context.Context) model.Dataset[model.CommodityQuote]
}

// Datasets bundles the results of every fetch.
// It is written by the Fetcher only and read-only afterwards.
type Datasets struct {
	Yields       model.Dataset[model.YieldRow]
	Ownership    model.Dataset[model.OwnershipRow]
	Transactions model.Dataset[model.TransactionGroup]
	FX           model.Dataset[model.FXQuote]
	TenYear      model.Dataset[model.TenYearYield]
	CDS          model.Dataset[model.CDSQuote]
	NDF          model.Dataset[model.NDFQuote]
	StockIndices model.Dataset[model.StockIndexQuote]
	Commodities  model.Dataset[model.CommodityQuote]
}

// DefaultConcurrency is the number of sources fetched at once.
const DefaultConcurrency = 4

// Fetcher queries all sources of a report with bounded concurrency.
type Fetcher struct {
	source      Source
	concurrency int
	logger      *slog.Logger
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithConcurrency sets the maximum number of concurrent fetches.
// 1 fetches sources one after another. Non-positive values are ignored.
func WithConcurrency(n int) FetcherOption {
	return func(f *Fetcher) {
		if n > 0 {
			f.concurrency = n
		}
	}
}

// WithFetchLogger sets a custom logger for the fetcher.
func WithFetchLogger(logger *slog.Logger) FetcherOption {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// NewFetcher creates a Fetcher for source.
func NewFetcher(source Source, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		source:      source,
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.logger == nil {
		f.logger = slog.Default()
	}
	return f
}

// Fetch queries every source and waits for all of them.
// Each task writes only its own field of the bundle, so no locking is needed.
// The returned error is the context error if ctx was cancelled.
func (f *Fetcher) Fetch(ctx context.Context) (*Datasets, error) {
	data := &Datasets{}
	tasks := []struct {
		name string
		run  func(context.Context) int
	}{
		{"yields", func(ctx context.Context) int { data.Yields = f.source.Yields(ctx); return data.Yields.Len() }},
		{"ownership", func(ctx context.Context) int { data.Ownership = f.source.Ownership(ctx); return data.Ownership.Len() }},
		{"transactions", func(ctx context.Context) int {
			data.Transactions = f.source.Transactions(ctx)
			return data.Transactions.Len()
		}},
		{"fx", func(ctx context.Context) int { data.FX = f.source.FX(ctx); return data.FX.Len() }},
		{"ten-year", func(ctx context.Context) int { data.TenYear = f.source.TenYear(ctx); return data.TenYear.Len() }},
		{"cds", func(ctx context.Context) int { data.CDS = f.source.CDS(ctx); return data.CDS.Len() }},
		{"ndf", func(ctx context.Context) int { data.NDF = f.source.NDF(ctx); return data.NDF.Len() }},
		{"stock-indices", func(ctx context.Context) int {
			data.StockIndices = f.source.StockIndices(ctx)
			return data.StockIndices.Len()
		}},
		{"commodities", func(ctx context.Context) int {
			data.Commodities = f.source.Commodities(ctx)
			return data.Commodities.Len()
		}},
	}

	f.logger.Debug("fetching sources", "total", len(tasks), "concurrency", f.concurrency)
	start := time.Now()

	// Tasks never return an error: a failed fetch is recorded in its
	// dataset and must not cancel its siblings.
	g := new(errgroup.Group)
	g.SetLimit(f.concurrency)
	for _, task := range tasks {
		g.Go(func() error {
			n := task.run(ctx)
			f.logger.Debug("source fetched", "source", task.name, "rows", n)
			return nil
		})
	}
	_ = g.Wait()

	f.logger.Debug("fetch complete", "elapsed", time.Since(start))

	if err := ctx.Err(); err != nil {
		return data, err
	}
	return data, nil
}
