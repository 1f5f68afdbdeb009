package model

// Status describes the outcome of fetching one dataset.
type Status int

const (
	// StatusOK means the source answered with at least one row.
	StatusOK Status = iota

	// StatusEmpty means the source answered but had no rows.
	StatusEmpty

	// StatusUnavailable means the source could not be read at all
	// (missing file, query error, timeout).
	StatusUnavailable
)

// String returns the lower-case name of the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusEmpty:
		return "empty"
	case StatusUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// Dataset is the result of a single fetch: either rows or the error that
// made the source unavailable. A fetch never panics or aborts the report;
// consumers inspect Status and skip the affected sections.
type Dataset[T any] struct {
	// Source names the logical data source (e.g. "yields", "fx").
	Source string

	// Rows holds the fetched rows in source order. Nil when Err is set.
	Rows []T

	// Err is the reason the source was unavailable.
	Err error
}

// Rows wraps successfully fetched rows.
func Rows[T any](source string, rows []T) Dataset[T] {
	return Dataset[T]{Source: source, Rows: rows}
}

// Unavailable wraps a fetch failure.
func Unavailable[T any](source string, err error) Dataset[T] {
	return Dataset[T]{Source: source, Err: err}
}

// Status reports the fetch outcome.
func (d Dataset[T]) Status() Status {
	if d.Err != nil {
		return StatusUnavailable
	}
	if len(d.Rows) == 0 {
		return StatusEmpty
	}
	return StatusOK
}

// Len returns the number of rows. Unavailable datasets have none.
func (d Dataset[T]) Len() int {
	return len(d.Rows)
}
