package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// Source is a single read-only SQLite database.
type Source struct {
	// name is the file name, used in log and error messages.
	name string

	db *sql.DB
}

// OpenSource opens the database at path read-only.
// The file must exist; it is never created.
func OpenSource(path string) (*Source, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrDatabaseNotFound, path)
	} else if err != nil {
		return nil, fmt.Errorf("failed to check database path: %w", err)
	}

	dsn, err := fileURI(path, "ro")
	if err != nil {
		return nil, err
	}

	// mode=ro makes SQLite refuse to create or modify the file.
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	return NewSource(path, db), nil
}

// fileURI returns the SQLite URI of path with the given open mode.
// The path is percent-encoded, so '?', '#' and '%' in directory names stay
// part of the path instead of starting the query or fragment.
func fileURI(path, mode string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve database path: %w", err)
	}
	p := filepath.ToSlash(abs)
	if !strings.HasPrefix(p, "/") {
		// Windows drive paths become file:///C:/...
		p = "/" + p
	}
	u := &url.URL{Scheme: "file", Path: p, RawQuery: "mode=" + mode}
	return u.String(), nil
}

// NewSource wraps an already opened database handle.
func NewSource(name string, db *sql.DB) *Source {
	return &Source{name: name, db: db}
}

// Name returns the name the source was opened with.
func (s *Source) Name() string {
	return s.name
}

// Close closes the database handle.
func (s *Source) Close() error {
	return s.db.Close()
}

// LatestDate returns MAX(column) of table as text.
// An empty table yields an empty string. The caller bounds ctx.
func (s *Source) LatestDate(ctx context.Context, table, column string) (string, error) {
	q := fmt.Sprintf("SELECT CAST(MAX(%s) AS TEXT) FROM %s", quoteIdent(column), quoteIdent(table))

	var latest sql.NullString
	if err := s.db.QueryRowContext(ctx, q).Scan(&latest); err != nil {
		return "", fmt.Errorf("failed to get latest date of %s.%s: %w", table, column, err)
	}
	return latest.String, nil
}

// scanFunc reads the current row of rows into a value.
type scanFunc[T any] func(rows *sql.Rows) (T, error)

// queryRows runs q and scans every row. The timeout starts once a
// connection is held, so waiting behind another query on the same
// database does not count against it. Waiting is bounded by ctx only.
func queryRows[T any](ctx context.Context, s *Source, timeout time.Duration, scan scanFunc[T], q string, args ...any) ([]T, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection to %s: %w", s.name, err)
	}
	defer conn.Close()

	qctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	rows, err := conn.QueryContext(qctx, q, args...)
	if err != nil {
		return nil, queryError(qctx, fmt.Errorf("failed to query %s: %w", s.name, err))
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row of %s: %w", s.name, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, queryError(qctx, fmt.Errorf("failed to read rows of %s: %w", s.name, err))
	}
	return out, nil
}

// queryError adds the context error to err when the driver reported the
// cancellation with an error of its own.
func queryError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
		return errors.Join(err, ctxErr)
	}
	return err
}

// quoteIdent quotes an SQL identifier. Table names such as 10Y_General
// are not valid bare identifiers.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// placeholders returns "?, ?, ..." with n markers.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("?, ", n-1) + "?"
}

// floatOrNaN converts a nullable column to a float, NULL being NaN.
func floatOrNaN(v sql.NullFloat64) float64 {
	if !v.Valid {
		return math.NaN()
	}
	return v.Float64
}
