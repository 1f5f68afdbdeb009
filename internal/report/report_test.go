package report

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nao1215/marketupdate/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var generatedAt = time.Date(2024, 1, 2, 17, 30, 0, 0, time.UTC)

// createTestReport creates a report with sample sections for testing.
func createTestReport() *model.Report {
	r := model.NewReport("2024-01-02", generatedAt)
	r.AddSection(model.Section{ID: model.SectionSUNMarket, Lines: []string{
		"• Pasar SUN bergerak naik.",
		"  Nilai tukar Rupiah melemah sebesar 50.00 poin ke level Rp16,250/US$.",
	}})
	r.AddSection(model.Section{ID: model.SectionOwnership, Lines: []string{
		"• Kepemilikan SBN per 2024-01-02:",
		"  - Total Kepemilikan: Rp350.00 T",
	}})
	r.AddSection(model.Section{ID: model.SectionTransactions, Lines: []string{
		"• Transaksi Perdagangan Harian:",
		"  - Transaksi Outright: Rp10.00 T (3 transaksi)",
		"  - Transaksi Repo: Rp5.00 T (1 transaksi)",
	}})
	r.AddSection(model.Section{ID: model.SectionBenchmark, Table: &model.Table{
		Header: []string{
			"Seri", "Yield Hari Ini", "Yield Kemarin", "Perubahan (bps)",
			"Harga Hari Ini", "Harga Kemarin",
		},
		Rows: [][]string{
			{"FR0096", "6.6000%", "6.5000%", "10.00", "99.0000", "99.5000"},
			{"FR0100", "6.4000%", "6.4500%", "-5.00", "101.2500", "-"},
		},
	}})
	r.AddSection(model.Section{ID: model.SectionTreasury, Lines: []string{
		"• Yield Global Bonds Indonesia (SUN Valas) 10Y bergerak naik 5.0 bps ke 5.250%.",
	}})
	r.AddSection(model.Section{ID: model.SectionCDS, Lines: []string{
		"• Credit Risk Indonesia (CDS):",
		"  - CDS 5Y: 75.25 bps",
	}})
	r.AddSection(model.Section{ID: model.SectionCommodities, Lines: []string{
		"• Harga Komoditas:",
		"  - Minyak Mentah ICP: US$78.50 per barel",
	}})
	return r
}

// withoutTimestamp drops the "Report generated:" line.
func withoutTimestamp(s string) string {
	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, l := range lines {
		if !strings.HasPrefix(l, "Report generated:") {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n")
}

// TestTextWriter tests the plain text bulletin.
func TestTextWriter(t *testing.T) {
	t.Parallel()

	t.Run("matches golden layout", func(t *testing.T) {
		t.Parallel()

		want, err := os.ReadFile(filepath.Join("testdata", "market_update.golden"))
		require.NoError(t, err)

		var buf bytes.Buffer
		n, err := NewTextWriter(&buf).Write(createTestReport())
		require.NoError(t, err)
		assert.Equal(t, string(want), buf.String())
		assert.Equal(t, buf.Len(), n)
	})

	t.Run("group headings are always printed", func(t *testing.T) {
		t.Parallel()

		out := Render(model.NewReport("2024-01-02", generatedAt))

		assert.Contains(t, out, "Headlines Pasar SUN\n")
		assert.Contains(t, out, "Headlines Pasar Internasional\n")
		assert.NotContains(t, out, "Yield SUN Seri Benchmark")
		assert.Contains(t, out, "Report generated: 2024-01-02 17:30:00\n")
	})

	t.Run("first international block without treasury", func(t *testing.T) {
		t.Parallel()

		r := model.NewReport("2024-01-02", generatedAt)
		r.AddSection(model.Section{ID: model.SectionCDS, Lines: []string{"• Credit Risk Indonesia (CDS):"}})

		out := Render(r)
		assert.Contains(t, out, strings.Repeat("-", 80)+"\n\n• Credit Risk Indonesia (CDS):\n")
	})

	t.Run("benchmark table without rows keeps its header", func(t *testing.T) {
		t.Parallel()

		r := model.NewReport("2024-01-02", generatedAt)
		r.AddSection(model.Section{ID: model.SectionBenchmark, Table: &model.Table{
			Header: []string{"Seri", "Yield Hari Ini", "Yield Kemarin", "Perubahan (bps)"},
		}})

		out := Render(r)
		assert.Contains(t, out, "Yield SUN Seri Benchmark\n")
		assert.Contains(t, out, "Seri        Yield Hari Ini   Yield Kemarin    Perubahan (bps)\n")
	})

	t.Run("output differs only in the timestamp", func(t *testing.T) {
		t.Parallel()

		first := createTestReport()
		second := createTestReport()
		second.GeneratedAt = generatedAt.Add(3 * time.Hour)

		a, b := Render(first), Render(second)
		assert.NotEqual(t, a, b)
		assert.Equal(t, withoutTimestamp(a), withoutTimestamp(b))
	})
}

// TestMarkdownWriter tests the Markdown rendering.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	n, err := NewMarkdownWriter(&buf).Write(createTestReport())
	require.NoError(t, err)
	assert.Positive(t, n)

	out := buf.String()
	assert.Contains(t, out, "# SBN Daily Market Update")
	assert.Contains(t, out, "## Headlines Pasar SUN")
	assert.Contains(t, out, "## Yield SUN Seri Benchmark")
	assert.Contains(t, out, "## Headlines Pasar Internasional")
	assert.Contains(t, out, "Total Kepemilikan: Rp350.00 T")
	assert.Contains(t, out, "FR0096")
	assert.Contains(t, out, "Perubahan (bps)")
	assert.Contains(t, out, "Harga Hari Ini")
	assert.Contains(t, out, "Harga Kemarin")
	assert.Contains(t, out, "101.2500")
	assert.Contains(t, out, "Rp10.00 T (3 transaksi)")
	assert.Contains(t, out, "Report generated: 2024-01-02 17:30:00")
	assert.NotContains(t, out, "• ")
}

// mockWriter records the reports it receives.
type mockWriter struct {
	calls int
	err   error
}

func (m *mockWriter) Write(_ *model.Report) (int, error) {
	m.calls++
	return 10, m.err
}

// TestMultiWriter tests writing to several writers.
func TestMultiWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes to all writers", func(t *testing.T) {
		t.Parallel()

		a, b := &mockWriter{}, &mockWriter{}
		n, err := NewMultiWriter(a, b).Write(createTestReport())
		require.NoError(t, err)
		assert.Equal(t, 20, n)
		assert.Equal(t, 1, a.calls)
		assert.Equal(t, 1, b.calls)
	})

	t.Run("stops on first error", func(t *testing.T) {
		t.Parallel()

		errWrite := errors.New("disk full")
		a, b := &mockWriter{err: errWrite}, &mockWriter{}
		n, err := NewMultiWriter(a, b).Write(createTestReport())
		require.ErrorIs(t, err, errWrite)
		assert.Equal(t, 10, n)
		assert.Equal(t, 0, b.calls)
	})
}

// TestExport tests file naming and creation.
func TestExport(t *testing.T) {
	t.Parallel()

	t.Run("file names", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Market_Update_20240102.txt", FileName(generatedAt, FormatText))
		assert.Equal(t, "Market_Update_20240102.md", FileName(generatedAt, FormatMarkdown))
	})

	t.Run("writes the text bulletin", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		report := createTestReport()

		f, path, err := Create(dir, report.GeneratedAt, FormatText)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "Market_Update_20240102.txt"), path)

		w, err := NewWriter(FormatText, f)
		require.NoError(t, err)
		_, err = w.Write(report)
		require.NoError(t, err)
		require.NoError(t, f.Close())

		got, err := os.ReadFile(path) //nolint:gosec // test file
		require.NoError(t, err)
		assert.Equal(t, Render(report), string(got))
	})

	t.Run("truncates an existing file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		existing := filepath.Join(dir, "Market_Update_20240102.md")
		require.NoError(t, os.WriteFile(existing, []byte(strings.Repeat("x", 100000)), 0600))

		f, path, err := Create(dir, generatedAt, FormatMarkdown)
		require.NoError(t, err)
		w, err := NewWriter(FormatMarkdown, f)
		require.NoError(t, err)
		_, err = w.Write(createTestReport())
		require.NoError(t, err)
		require.NoError(t, f.Close())

		got, err := os.ReadFile(path) //nolint:gosec // test file
		require.NoError(t, err)
		assert.Contains(t, string(got), "# SBN Daily Market Update")
		assert.NotContains(t, string(got), "xxxx")
	})

	t.Run("creates the output directory", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "reports", "daily")
		f, path, err := Create(dir, generatedAt, FormatText)
		require.NoError(t, err)
		require.NoError(t, f.Close())
		assert.FileExists(t, path)
	})

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		_, _, err := Create(dir, generatedAt, Format("pdf"))
		require.ErrorIs(t, err, ErrUnknownFormat)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)

		_, err = NewWriter(Format("pdf"), &bytes.Buffer{})
		assert.ErrorIs(t, err, ErrUnknownFormat)
	})
}
