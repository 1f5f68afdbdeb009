package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// fileView is the YAML shape of Config. Durations are written as strings
// such as "30s".
type fileView struct {
	DatabaseDir      string        `yaml:"database_dir"`
	Databases        databasesView `yaml:"databases"`
	OutputDir        string        `yaml:"output_dir"`
	Markdown         bool          `yaml:"markdown"`
	NoFile           bool          `yaml:"no_file"`
	FetchTimeout     string        `yaml:"fetch_timeout"`
	FetchConcurrency int           `yaml:"fetch_concurrency"`
	BenchmarkSeries  []string      `yaml:"benchmark_series"`
	CDSTenors        []string      `yaml:"cds_tenors"`
	OutrightTypes    []string      `yaml:"outright_types"`
	RepoTypes        []string      `yaml:"repo_types"`
	Log              logView       `yaml:"log"`
}

type databasesView struct {
	PLTE         string `yaml:"plte"`
	Ownership    string `yaml:"ownership"`
	Transactions string `yaml:"transactions"`
	Market       string `yaml:"market"`
}

type logView struct {
	Format string `yaml:"format"`
}

// templateComments documents each key of the generated file.
var templateComments = map[string]string{
	"database_dir":      "Directory containing the source SQLite databases.",
	"databases":         "Database file names inside database_dir.",
	"output_dir":        "Directory for Market_Update_YYYYMMDD.txt.",
	"markdown":          "Also write a Markdown version of the report.",
	"no_file":           "Print the report without writing a file.",
	"fetch_timeout":     "Maximum duration of a single source query.",
	"fetch_concurrency": "Number of sources queried in parallel (1 = sequential).",
	"benchmark_series":  "Series shown in the benchmark yield table.",
	"cds_tenors":        "CDS tenors shown in the international section.",
	"outright_types":    "Settlement transaction types counted as outright.",
	"repo_types":        "Settlement transaction types counted as repo.",
	"log":               "Log format: text or json.",
}

const templateHeader = `# marketupdate configuration
#
# Values can be overridden with MARKETUPDATE_* environment variables,
# e.g. MARKETUPDATE_OUTPUT_DIR or MARKETUPDATE_DATABASES_PLTE.

`

// Template renders c as a commented YAML configuration file.
func Template(c *Config) ([]byte, error) {
	view := fileView{
		DatabaseDir: c.DatabaseDir,
		Databases: databasesView{
			PLTE:         c.Databases.PLTE,
			Ownership:    c.Databases.Ownership,
			Transactions: c.Databases.Transactions,
			Market:       c.Databases.Market,
		},
		OutputDir:        c.OutputDir,
		Markdown:         c.Markdown,
		NoFile:           c.NoFile,
		FetchTimeout:     c.FetchTimeout.String(),
		FetchConcurrency: c.FetchConcurrency,
		BenchmarkSeries:  c.BenchmarkSeries,
		CDSTenors:        c.CDSTenors,
		OutrightTypes:    c.OutrightTypes,
		RepoTypes:        c.RepoTypes,
		Log:              logView{Format: c.Log.Format},
	}

	var node yaml.Node
	if err := node.Encode(view); err != nil {
		return nil, fmt.Errorf("failed to encode config template: %w", err)
	}

	// Top-level mapping: key and value nodes alternate.
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		if comment, ok := templateComments[key.Value]; ok {
			key.HeadComment = "# " + comment
		}
	}

	var buf bytes.Buffer
	buf.WriteString(templateHeader)
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return nil, fmt.Errorf("failed to write config template: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to write config template: %w", err)
	}

	return buf.Bytes(), nil
}
