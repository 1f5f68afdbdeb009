package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() so callers can use
// errors.Is() for programmatic handling.
var (
	// ErrInvalidFetchTimeout is returned when the fetch timeout is not positive.
	ErrInvalidFetchTimeout = errors.New("invalid fetch timeout: must be positive")

	// ErrInvalidFetchConcurrency is returned when fewer than one fetch may
	// run at a time.
	ErrInvalidFetchConcurrency = errors.New("invalid fetch concurrency: must be at least 1")

	// ErrNoDatabaseDir is returned when the database directory is empty.
	ErrNoDatabaseDir = errors.New("no database directory specified")

	// ErrNoDatabaseFile is returned when one of the database file names is empty.
	ErrNoDatabaseFile = errors.New("database file name must not be empty")

	// ErrNoOutputDir is returned when the report should be written to a file
	// but no output directory is set.
	ErrNoOutputDir = errors.New("no output directory specified")

	// ErrInvalidLogFormat is returned for a log format other than text or json.
	ErrInvalidLogFormat = errors.New("invalid log format: must be text or json")
)
