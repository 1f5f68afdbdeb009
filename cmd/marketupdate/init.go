package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nao1215/marketupdate/internal/config"
	"github.com/spf13/cobra"
)

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new marketupdate configuration file",
		Long: `Initialize creates a new .marketupdate configuration file in the current directory.

The generated file contains every setting with its default value:
- Database directory and file names
- Output directory and formats
- Benchmark series, CDS tenors and transaction type buckets

Examples:
  # Create .marketupdate in current directory
  marketupdate init

  # Create config file at a specific path
  marketupdate init -o ~/.config/marketupdate/config.yaml

  # Force overwrite existing file
  marketupdate init -f`,
		Args: cobra.NoArgs,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultConfigFile,
		"Output file path for the configuration")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing configuration file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	// Check if file already exists
	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := config.Template(config.NewConfig())
	if err != nil {
		return fmt.Errorf("failed to render config template: %w", err)
	}

	// Create parent directories if needed
	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created configuration file: %s\n", outputPath)
	fmt.Fprintln(out, "\nEdit this file to configure settings such as:")
	fmt.Fprintln(out, "  - The directory of the market databases")
	fmt.Fprintln(out, "  - The output directory of Market_Update_YYYYMMDD.txt")
	fmt.Fprintln(out, "  - The benchmark series in the yield table")

	return nil
}
