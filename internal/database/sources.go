package database

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/nao1215/marketupdate/internal/market"
	"github.com/nao1215/marketupdate/internal/model"
)

// Logical source names, used as model.Dataset.Source and in logs.
const (
	SourceYields       = "yields"
	SourceOwnership    = "ownership"
	SourceTransactions = "transactions"
	SourceFX           = "fx"
	SourceTenYear      = "ten-year"
	SourceCDS          = "cds"
	SourceNDF          = "ndf"
	SourceStockIndices = "stock-indices"
	SourceCommodities  = "commodities"
)

// DefaultTimeout bounds a single fetch when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// Files names the database file of each physical database, relative to the
// database directory.
type Files struct {
	// PLTE holds secondary market trades (yields, prices).
	PLTE string

	// Ownership holds SBN ownership per investor group.
	Ownership string

	// Transactions holds daily settlement transactions.
	Transactions string

	// Market holds FX, 10Y yields, CDS, NDF, stock indices and commodities.
	Market string
}

// handle is an opened source or the reason it could not be opened.
type handle struct {
	src *Source
	err error
}

// Sources gives access to every data source of the report.
type Sources struct {
	plte         handle
	ownership    handle
	transactions handle
	market       handle

	timeout   time.Duration
	cdsTenors []string
	logger    *slog.Logger
}

// Option configures Sources.
type Option func(*Sources)

// WithTimeout bounds every fetch. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(s *Sources) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithCDSTenors sets the CDS tenors to report.
func WithCDSTenors(tenors []string) Option {
	return func(s *Sources) {
		s.cdsTenors = tenors
	}
}

// WithLogger sets the logger for unavailable sources and fetch statistics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Sources) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Open opens the databases named by files under dir.
// It does not fail: a database that cannot be opened makes the sources
// stored in it unavailable.
func Open(dir string, files Files, opts ...Option) *Sources {
	s := newSources(opts)
	s.plte = s.open(dir, files.PLTE)
	s.ownership = s.open(dir, files.Ownership)
	s.transactions = s.open(dir, files.Transactions)
	s.market = s.open(dir, files.Market)
	return s
}

// New creates Sources from already opened databases. A nil source is
// reported as not found.
func New(plte, ownership, transactions, market *Source, opts ...Option) *Sources {
	s := newSources(opts)
	s.plte = wrap(plte)
	s.ownership = wrap(ownership)
	s.transactions = wrap(transactions)
	s.market = wrap(market)
	return s
}

func newSources(opts []Option) *Sources {
	s := &Sources{
		timeout:   DefaultTimeout,
		cdsTenors: market.DefaultCDSTenors(),
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Sources) open(dir, file string) handle {
	src, err := OpenSource(filepath.Join(dir, file))
	if err != nil {
		s.logger.Warn("failed to open database", "file", file, "error", err)
		return handle{err: err}
	}
	return handle{src: src}
}

func wrap(src *Source) handle {
	if src == nil {
		return handle{err: ErrDatabaseNotFound}
	}
	return handle{src: src}
}

// Close closes every opened database.
func (s *Sources) Close() error {
	var errs []error
	for _, h := range []handle{s.plte, s.ownership, s.transactions, s.market} {
		if h.src != nil {
			if err := h.src.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// fetch runs one source query under the fetch timeout and wraps the
// outcome in a Dataset.
func fetch[T any](ctx context.Context, s *Sources, source string, h handle, scan scanFunc[T], q string, args ...any) model.Dataset[T] {
	if h.err != nil {
		return unavailable[T](s, source, h.err)
	}

	rows, err := queryRows(ctx, h.src, s.timeout, scan, q, args...)
	if err != nil {
		return unavailable[T](s, source, err)
	}

	s.logger.Debug("fetched source", "source", source, "rows", len(rows))
	return model.Rows(source, rows)
}

// unavailable logs and wraps a fetch failure.
func unavailable[T any](s *Sources, source string, err error) model.Dataset[T] {
	s.logger.Warn("source unavailable", "source", source, "error", err)
	return model.Unavailable[T](source, &UnavailableError{Source: source, Err: err})
}
