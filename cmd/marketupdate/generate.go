package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/nao1215/marketupdate/internal/config"
	"github.com/nao1215/marketupdate/internal/database"
	"github.com/nao1215/marketupdate/internal/log"
	"github.com/nao1215/marketupdate/internal/market"
	"github.com/nao1215/marketupdate/internal/model"
	"github.com/nao1215/marketupdate/internal/pipeline"
	"github.com/nao1215/marketupdate/internal/report"
	"github.com/spf13/cobra"
)

// noDataMessage is printed instead of a report when there are no yields.
const noDataMessage = "No data available"

// runRootCmd generates the report.
func runRootCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.New(cmd.ErrOrStderr(), cfg.Log.Format, cfg.Verbose)
	slog.SetDefault(logger)
	if cfg.ConfigFilePath != "" {
		logger.Debug("loaded configuration", "path", cfg.ConfigFilePath)
	}

	return generate(cmd.Context(), cfg, cmd.OutOrStdout(), logger)
}

// buildConfig loads the configuration file, if any, and applies the flags
// the user set on top of it.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// An explicit path must exist; otherwise a missing file means defaults.
	path := config.FindConfigFile(configPath)
	if path == "" && configPath != "" {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, configPath)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
	}

	flags := cmd.Flags()
	if flags.Changed("db-dir") {
		if cfg.DatabaseDir, err = flags.GetString("db-dir"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("output-dir") {
		if cfg.OutputDir, err = flags.GetString("output-dir"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("markdown") {
		if cfg.Markdown, err = flags.GetBool("markdown"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("no-file") {
		if cfg.NoFile, err = flags.GetBool("no-file"); err != nil {
			return nil, err
		}
	}
	if getVerboseFlag(cmd) {
		cfg.Verbose = true
	}

	return cfg, nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// settings converts the configured lists to section settings.
func settings(cfg *config.Config) pipeline.Settings {
	s := pipeline.DefaultSettings()
	s.BenchmarkSeries = cfg.BenchmarkSeries
	s.Buckets = market.Buckets{
		Outright: cfg.OutrightTypes,
		Repo:     cfg.RepoTypes,
	}
	return s
}

// generate builds the report and writes it to out and, unless disabled, to
// the export files.
func generate(ctx context.Context, cfg *config.Config, out io.Writer, logger *slog.Logger) error {
	sources := database.Open(cfg.DatabaseDir, database.Files{
		PLTE:         cfg.Databases.PLTE,
		Ownership:    cfg.Databases.Ownership,
		Transactions: cfg.Databases.Transactions,
		Market:       cfg.Databases.Market,
	},
		database.WithTimeout(cfg.FetchTimeout),
		database.WithCDSTenors(cfg.CDSTenors),
		database.WithLogger(logger),
	)
	defer func() {
		if err := sources.Close(); err != nil {
			logger.Warn("failed to close databases", "error", err)
		}
	}()

	engine := pipeline.NewEngine(sources,
		pipeline.WithSettings(settings(cfg)),
		pipeline.WithFetchConcurrency(cfg.FetchConcurrency),
		pipeline.WithEngineLogger(logger),
	)

	rep, err := engine.Generate(ctx)
	if errors.Is(err, pipeline.ErrNoYieldData) {
		logger.Warn("report not generated", "error", err)
		fmt.Fprintln(out, noDataMessage)
		return nil
	}
	if err != nil {
		return err
	}

	return output(cfg, rep, out)
}

// output prints the bulletin and writes the export files in one pass.
func output(cfg *config.Config, rep *model.Report, out io.Writer) (err error) {
	writers := []report.Writer{report.NewTextWriter(out)}
	var paths []string

	if !cfg.NoFile {
		formats := []report.Format{report.FormatText}
		if cfg.Markdown {
			formats = append(formats, report.FormatMarkdown)
		}

		for _, format := range formats {
			f, path, createErr := report.Create(cfg.OutputDir, rep.GeneratedAt, format)
			if createErr != nil {
				return createErr
			}
			defer func(f *os.File) {
				if closeErr := f.Close(); closeErr != nil && err == nil {
					err = fmt.Errorf("failed to close report file: %w", closeErr)
				}
			}(f)

			w, wErr := report.NewWriter(format, f)
			if wErr != nil {
				return wErr
			}
			writers = append(writers, w)
			paths = append(paths, path)
		}
	}

	if _, err := report.NewMultiWriter(writers...).Write(rep); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	for _, path := range paths {
		fmt.Fprintf(out, "Report exported to: %s\n", path)
	}
	return nil
}
