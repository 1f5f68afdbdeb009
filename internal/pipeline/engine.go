package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nao1215/marketupdate/internal/market"
	"github.com/nao1215/marketupdate/internal/model"
)

// ErrNoYieldData is returned when the yield source has no rows at all.
// Without a trade date there is nothing to report.
var ErrNoYieldData = errors.New("no yield data available")

// freshnessReporter is implemented by sources that can tell the latest
// stored date of each table.
type freshnessReporter interface {
	LatestDates(ctx context.Context) map[string]string
}

// Engine generates the daily market update.
type Engine struct {
	source      Source
	settings    Settings
	concurrency int
	logger      *slog.Logger
	now         func() time.Time
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithSettings sets the series, buckets and indices to report.
func WithSettings(s Settings) EngineOption {
	return func(e *Engine) {
		e.settings = s
	}
}

// WithFetchConcurrency sets the number of sources fetched at once.
func WithFetchConcurrency(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

// WithEngineLogger sets the logger used by the engine and its pipeline.
func WithEngineLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithClock sets the function that provides the generation timestamp.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine creates an Engine reading from source.
func NewEngine(source Source, opts ...EngineOption) *Engine {
	e := &Engine{
		source:      source,
		settings:    DefaultSettings(),
		concurrency: DefaultConcurrency,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	return e
}

// Generate fetches all data and builds the report.
//
// It returns ErrNoYieldData when the yield source is unavailable or empty,
// and the context error when ctx is cancelled. Every other problem only
// removes the affected sections.
func (e *Engine) Generate(ctx context.Context) (*model.Report, error) {
	if fr, ok := e.source.(freshnessReporter); ok && e.logger.Enabled(ctx, slog.LevelDebug) {
		for source, date := range fr.LatestDates(ctx) {
			e.logger.Debug("source freshness", "source", source, "latest", date)
		}
	}

	fetcher := NewFetcher(e.source, WithConcurrency(e.concurrency), WithFetchLogger(e.logger))
	data, err := fetcher.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch market data: %w", err)
	}

	switch data.Yields.Status() {
	case model.StatusUnavailable:
		return nil, fmt.Errorf("%w: %w", ErrNoYieldData, data.Yields.Err)
	case model.StatusEmpty:
		return nil, ErrNoYieldData
	}
	date, ok := market.LatestTradeDate(data.Yields.Rows)
	if !ok {
		return nil, ErrNoYieldData
	}

	report := model.NewReport(date, e.now())

	p := New(WithLogger(e.logger), WithContinueOnError(true))
	p.AddSteps(SectionSteps(e.settings, e.logger)...)
	if err := p.Execute(ctx, data, report); err != nil {
		return nil, fmt.Errorf("failed to build report: %w", err)
	}

	e.logger.Debug("report generated", "date", report.Date, "sections", len(report.Sections))
	return report, nil
}
