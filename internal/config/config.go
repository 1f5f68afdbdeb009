package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/nao1215/marketupdate/internal/market"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "marketupdate"

	// DefaultDatabaseDir is the directory that holds the source databases,
	// relative to the working directory.
	DefaultDatabaseDir = "10. Database AKP"

	// DefaultOutputDir is where report files are written.
	DefaultOutputDir = "."

	// Default database file names.
	DefaultPLTEFile         = "DB_PLTE.db"
	DefaultOwnershipFile    = "DB_Kepemilikan.db"
	DefaultTransactionsFile = "DB_Transaksi_Harian.db"
	DefaultMarketFile       = "Database_Domestik_Internasional.db"

	// DefaultFetchTimeout bounds a single source query. The databases are
	// local files, so a query that runs longer than this is stuck.
	DefaultFetchTimeout = 30 * time.Second

	// DefaultFetchConcurrency is the number of sources queried at once.
	// Four matches the four database files.
	DefaultFetchConcurrency = 4

	// LogFormatText and LogFormatJSON are the supported log formats.
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// DatabaseFiles names the database files inside DatabaseDir.
type DatabaseFiles struct {
	PLTE         string `mapstructure:"plte"`
	Ownership    string `mapstructure:"ownership"`
	Transactions string `mapstructure:"transactions"`
	Market       string `mapstructure:"market"`
}

// LogConfig holds logging options.
type LogConfig struct {
	// Format is "text" (default) or "json".
	Format string `mapstructure:"format"`
}

// Config holds all configuration options of the generator.
// It is populated once at startup and passed down explicitly.
type Config struct {
	// DatabaseDir is the directory containing the source databases.
	DatabaseDir string `mapstructure:"database_dir"`

	// Databases names the database files inside DatabaseDir.
	Databases DatabaseFiles `mapstructure:"databases"`

	// OutputDir is where Market_Update_YYYYMMDD.txt is written.
	OutputDir string `mapstructure:"output_dir"`

	// Markdown additionally writes a Markdown rendering of the report.
	Markdown bool `mapstructure:"markdown"`

	// NoFile prints the report to stdout only.
	NoFile bool `mapstructure:"no_file"`

	// FetchTimeout bounds each source query.
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"`

	// FetchConcurrency is the number of sources queried in parallel.
	// 1 queries them one after another.
	FetchConcurrency int `mapstructure:"fetch_concurrency"`

	// BenchmarkSeries is the allow-list of the benchmark yield table.
	BenchmarkSeries []string `mapstructure:"benchmark_series"`

	// CDSTenors are the CDS tenors printed in the report.
	CDSTenors []string `mapstructure:"cds_tenors"`

	// OutrightTypes and RepoTypes classify settlement transaction types.
	// Types in neither list are not reported.
	OutrightTypes []string `mapstructure:"outright_types"`
	RepoTypes     []string `mapstructure:"repo_types"`

	// Log holds logging options.
	Log LogConfig `mapstructure:"log"`

	// Verbose enables debug logging.
	Verbose bool `mapstructure:"verbose"`

	// ConfigFilePath is the file the configuration was loaded from, if any.
	ConfigFilePath string `mapstructure:"-"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	buckets := market.DefaultBuckets()
	return &Config{
		DatabaseDir: DefaultDatabaseDir,
		Databases: DatabaseFiles{
			PLTE:         DefaultPLTEFile,
			Ownership:    DefaultOwnershipFile,
			Transactions: DefaultTransactionsFile,
			Market:       DefaultMarketFile,
		},
		OutputDir:        DefaultOutputDir,
		FetchTimeout:     DefaultFetchTimeout,
		FetchConcurrency: DefaultFetchConcurrency,
		BenchmarkSeries:  market.DefaultBenchmarkSeries(),
		CDSTenors:        market.DefaultCDSTenors(),
		OutrightTypes:    buckets.Outright,
		RepoTypes:        buckets.Repo,
		Log:              LogConfig{Format: LogFormatText},
	}
}

// XDGConfigDir returns the XDG config directory for marketupdate.
// On Linux: ~/.config/marketupdate
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if c.FetchTimeout <= 0 {
		return ErrInvalidFetchTimeout
	}
	if c.FetchConcurrency < 1 {
		return ErrInvalidFetchConcurrency
	}
	if c.DatabaseDir == "" {
		return ErrNoDatabaseDir
	}

	files := map[string]string{
		"plte":         c.Databases.PLTE,
		"ownership":    c.Databases.Ownership,
		"transactions": c.Databases.Transactions,
		"market":       c.Databases.Market,
	}
	for _, key := range []string{"plte", "ownership", "transactions", "market"} {
		if files[key] == "" {
			return fmt.Errorf("%w: databases.%s", ErrNoDatabaseFile, key)
		}
	}

	if !c.NoFile && c.OutputDir == "" {
		return ErrNoOutputDir
	}

	switch c.Log.Format {
	case LogFormatText, LogFormatJSON:
	default:
		return ErrInvalidLogFormat
	}

	return nil
}
