// Package log builds the application logger on top of log/slog.
//
// Loggers write to stderr so that the report on stdout stays clean. The
// level is Warn by default and Debug in verbose mode; the format is text or
// JSON.
//
// # Path shortening
//
// Database and report paths are logged often. PathHandler rewrites string
// attributes that start with the user's home directory to start with "~",
// which keeps log lines short and avoids leaking the account name when logs
// are shared.
//
// # Usage
//
//	logger := log.New(os.Stderr, log.FormatText, verbose)
//	slog.SetDefault(logger)
package log
