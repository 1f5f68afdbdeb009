package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// DefaultConfigFile is the configuration file name searched in the working
// and home directories.
const DefaultConfigFile = ".marketupdate"

// xdgConfigFile is the configuration file name inside XDGConfigDir.
const xdgConfigFile = "config.yaml"

// EnvPrefix prefixes environment overrides, e.g. MARKETUPDATE_OUTPUT_DIR.
const EnvPrefix = "MARKETUPDATE"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// Load builds a Config from defaults, the YAML file at path and
// MARKETUPDATE_* environment variables. An empty path skips the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		v.SetConfigFile(path)
		// .marketupdate has no extension to infer the type from.
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Decode into a zero Config: mapstructure reuses non-nil slices, which
	// would leave default entries behind a shorter configured list.
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.ConfigFilePath = path

	return cfg, nil
}

// setDefaults registers every key with viper. Keys unknown to viper are
// not picked up from the environment.
func setDefaults(v *viper.Viper) {
	d := NewConfig()

	v.SetDefault("database_dir", d.DatabaseDir)
	v.SetDefault("databases.plte", d.Databases.PLTE)
	v.SetDefault("databases.ownership", d.Databases.Ownership)
	v.SetDefault("databases.transactions", d.Databases.Transactions)
	v.SetDefault("databases.market", d.Databases.Market)
	v.SetDefault("output_dir", d.OutputDir)
	v.SetDefault("markdown", d.Markdown)
	v.SetDefault("no_file", d.NoFile)
	v.SetDefault("fetch_timeout", d.FetchTimeout.String())
	v.SetDefault("fetch_concurrency", d.FetchConcurrency)
	v.SetDefault("benchmark_series", d.BenchmarkSeries)
	v.SetDefault("cds_tenors", d.CDSTenors)
	v.SetDefault("outright_types", d.OutrightTypes)
	v.SetDefault("repo_types", d.RepoTypes)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("verbose", d.Verbose)
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .marketupdate in the current directory
// 3. Look for config.yaml in the XDG config directory
// 4. Look for .marketupdate in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	candidates := make([]string, 0, 3)
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, DefaultConfigFile))
	}
	candidates = append(candidates, filepath.Join(XDGConfigDir(), xdgConfigFile))
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, DefaultConfigFile))
	}

	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return ""
}
