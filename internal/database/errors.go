package database

import (
	"errors"
	"fmt"
)

// ErrSourceUnavailable matches every *UnavailableError through errors.Is.
var ErrSourceUnavailable = errors.New("data source unavailable")

// ErrDatabaseNotFound is returned when a database file does not exist.
var ErrDatabaseNotFound = errors.New("database file not found")

// UnavailableError describes why a data source could not be read.
type UnavailableError struct {
	// Source is the logical source name (e.g. "yields").
	Source string

	// Err is the underlying open, query or timeout error.
	Err error
}

// Error implements the error interface.
func (e *UnavailableError) Error() string {
	return fmt.Sprintf("source %s unavailable: %v", e.Source, e.Err)
}

// Unwrap returns the underlying error.
func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrSourceUnavailable.
func (e *UnavailableError) Is(target error) bool {
	return target == ErrSourceUnavailable
}
