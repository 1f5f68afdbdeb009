package main

import (
	"bytes"
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nao1215/marketupdate/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// createDB creates a SQLite file and runs the given statements.
func createDB(t *testing.T, path string, stmts ...string) {
	t.Helper()

	db, err := sql.Open("sqlite", "file:"+path+"?mode=rwc")
	require.NoError(t, err)
	defer db.Close()

	for _, stmt := range stmts {
		_, err := db.ExecContext(context.Background(), stmt)
		require.NoError(t, err, stmt)
	}
}

// setupDatabases writes the trade and market databases. The ownership and
// transaction databases are left out.
func setupDatabases(t *testing.T, withYields bool) string {
	t.Helper()

	dir := t.TempDir()
	if withYields {
		createDB(t, filepath.Join(dir, config.DefaultPLTEFile),
			`CREATE TABLE DB_PLTE (
				tanggal_transaksi TEXT, Securities_Id TEXT, Yield REAL, Price REAL,
				Coupon_Rate REAL, Volume REAL, Value REAL, Mature_Date TEXT)`,
			`INSERT INTO DB_PLTE VALUES
				('2024-01-01', 'FR0096', 6.40, 99.0, 7.0, 1e9, 9.9e8, '2033-02-15'),
				('2024-01-02', 'FR0096', 6.50, 98.0, 7.0, 2e9, 1.96e9, '2033-02-15')`,
		)
	}
	createDB(t, filepath.Join(dir, config.DefaultMarketFile),
		`CREATE TABLE Kurs_IDR (tanggal TEXT, USD REAL, EUR REAL, JPY REAL, SGD REAL)`,
		`INSERT INTO Kurs_IDR VALUES
			('2024-01-01', 15500, 17100, 109, 11650),
			('2024-01-02', 15550, 17050, 110, 11700)`,
	)
	return dir
}

// writeConfig writes a configuration file pointing at dbDir and outDir.
func writeConfig(t *testing.T, dbDir, outDir string, extra ...string) string {
	t.Helper()

	lines := append([]string{
		"database_dir: " + quote(dbDir),
		"output_dir: " + quote(outDir),
	}, extra...)

	path := filepath.Join(t.TempDir(), ".marketupdate")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0600))
	return path
}

func quote(s string) string {
	return `"` + s + `"`
}

// runRoot executes the root command and returns stdout and stderr.
func runRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func reportFiles(t *testing.T, dir, pattern string) []string {
	t.Helper()

	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	require.NoError(t, err)
	return matches
}

// TestGenerate tests report generation through the root command.
func TestGenerate(t *testing.T) {
	t.Parallel()

	t.Run("prints and exports the report", func(t *testing.T) {
		t.Parallel()

		outDir := t.TempDir()
		cfgPath := writeConfig(t, setupDatabases(t, true), outDir)

		stdout, _, err := runRoot(t, "-c", cfgPath)
		require.NoError(t, err)

		assert.Contains(t, stdout, "\n2024-01-02\n")
		assert.Contains(t, stdout, "yield SUN bergerak naik sebesar 10.0 bps")
		assert.Contains(t, stdout, "Rp15,550/US$")
		assert.Contains(t, stdout, "FR0096             6.5000%         6.4000%             10.00")
		assert.Contains(t, stdout, "Headlines Pasar Internasional")
		assert.NotContains(t, stdout, "Kepemilikan SBN")

		files := reportFiles(t, outDir, "Market_Update_*.txt")
		require.Len(t, files, 1)
		assert.Contains(t, stdout, "Report exported to: "+files[0]+"\n")

		content, err := os.ReadFile(files[0])
		require.NoError(t, err)
		printed, _, found := strings.Cut(stdout, "Report exported to: ")
		require.True(t, found)
		assert.Equal(t, printed, string(content))
	})

	t.Run("markdown flag adds a markdown file", func(t *testing.T) {
		t.Parallel()

		outDir := t.TempDir()
		cfgPath := writeConfig(t, setupDatabases(t, true), outDir)

		stdout, _, err := runRoot(t, "-c", cfgPath, "--markdown")
		require.NoError(t, err)

		assert.Len(t, reportFiles(t, outDir, "Market_Update_*.txt"), 1)
		md := reportFiles(t, outDir, "Market_Update_*.md")
		require.Len(t, md, 1)
		assert.Equal(t, 2, strings.Count(stdout, "Report exported to: "))

		content, err := os.ReadFile(md[0])
		require.NoError(t, err)
		assert.Contains(t, string(content), "# SBN Daily Market Update")
	})

	t.Run("no-file prints only", func(t *testing.T) {
		t.Parallel()

		outDir := t.TempDir()
		cfgPath := writeConfig(t, setupDatabases(t, true), outDir)

		stdout, _, err := runRoot(t, "-c", cfgPath, "--no-file")
		require.NoError(t, err)

		assert.Contains(t, stdout, "SBN Daily Market Update")
		assert.NotContains(t, stdout, "Report exported to")
		assert.Empty(t, reportFiles(t, outDir, "*"))
	})

	t.Run("flags override the config file", func(t *testing.T) {
		t.Parallel()

		outDir := t.TempDir()
		cfgPath := writeConfig(t, t.TempDir(), t.TempDir())

		_, _, err := runRoot(t, "-c", cfgPath, "-d", setupDatabases(t, true), "-o", outDir)
		require.NoError(t, err)
		assert.Len(t, reportFiles(t, outDir, "Market_Update_*.txt"), 1)
	})

	t.Run("missing yields print no data", func(t *testing.T) {
		t.Parallel()

		outDir := t.TempDir()
		cfgPath := writeConfig(t, setupDatabases(t, false), outDir)

		stdout, _, err := runRoot(t, "-c", cfgPath)
		require.NoError(t, err)
		assert.Equal(t, "No data available\n", stdout)
		assert.Empty(t, reportFiles(t, outDir, "*"))
	})

	t.Run("verbose logs unavailable sources", func(t *testing.T) {
		t.Parallel()

		cfgPath := writeConfig(t, setupDatabases(t, true), t.TempDir())

		_, stderr, err := runRoot(t, "-c", cfgPath, "--no-file", "-v")
		require.NoError(t, err)
		assert.Contains(t, stderr, "ownership")
	})

	t.Run("invalid configuration", func(t *testing.T) {
		t.Parallel()

		cfgPath := writeConfig(t, t.TempDir(), t.TempDir(), "fetch_concurrency: 0")

		_, _, err := runRoot(t, "-c", cfgPath)
		require.ErrorIs(t, err, config.ErrInvalidFetchConcurrency)
	})

	t.Run("explicit config file must exist", func(t *testing.T) {
		t.Parallel()

		_, _, err := runRoot(t, "-c", filepath.Join(t.TempDir(), "missing.yaml"))
		require.ErrorIs(t, err, config.ErrConfigNotFound)
	})

	t.Run("rejects arguments", func(t *testing.T) {
		t.Parallel()

		_, _, err := runRoot(t, "extra")
		assert.Error(t, err)
	})
}
