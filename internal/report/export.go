package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Format is an export file format.
type Format string

const (
	// FormatText is the plain text bulletin.
	FormatText Format = "txt"

	// FormatMarkdown is the Markdown rendering.
	FormatMarkdown Format = "md"
)

// ErrUnknownFormat is returned for a Format without a writer.
var ErrUnknownFormat = errors.New("unknown report format")

// filePrefix is the base name of exported reports.
const filePrefix = "Market_Update_"

// FileName returns the export file name for a report generated at t,
// e.g. Market_Update_20240102.txt.
func FileName(t time.Time, format Format) string {
	return filePrefix + t.Format("20060102") + "." + string(format)
}

// NewWriter returns the Writer for format.
func NewWriter(format Format, output io.Writer) (Writer, error) {
	switch format {
	case FormatText:
		return NewTextWriter(output), nil
	case FormatMarkdown:
		return NewMarkdownWriter(output), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Create creates the export file for a report generated at t inside dir and
// returns it with its absolute path. The directory is created if needed and
// an existing file of the same day is truncated. The caller closes the file.
func Create(dir string, t time.Time, format Format) (*os.File, string, error) {
	if format != FormatText && format != FormatMarkdown {
		return nil, "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	path, err := filepath.Abs(filepath.Join(dir, FileName(t, format)))
	if err != nil {
		return nil, "", fmt.Errorf("failed to resolve report path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, "", fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // path is built from the configured output directory
	if err != nil {
		return nil, "", fmt.Errorf("failed to create report file: %w", err)
	}
	return f, path, nil
}
