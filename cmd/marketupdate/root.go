package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command. Running it without a subcommand
// generates the report.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "marketupdate",
		Short: "Generate the SBN daily market update",
		Long: `marketupdate reads the local market databases and writes the SBN daily
market update: SUN yields, ownership, transactions, benchmark series and
the international market headlines.

The report is printed to stdout and exported to
<output-dir>/Market_Update_YYYYMMDD.txt. Sources that cannot be read are
skipped and only their sections are left out.

Settings are read from .marketupdate in the current directory,
~/.config/marketupdate/config.yaml or ~/.marketupdate. Run
"marketupdate init" to create one.`,
		Version:       getVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRootCmd,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.Flags().StringP("config", "c", "", "Configuration file path")
	cmd.Flags().StringP("db-dir", "d", "", "Directory containing the source databases")
	cmd.Flags().StringP("output-dir", "o", "", "Directory for the exported report")
	cmd.Flags().BoolP("markdown", "m", false, "Also export a Markdown report")
	cmd.Flags().Bool("no-file", false, "Print the report without exporting a file")

	// Add subcommands
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command. SIGINT and SIGTERM cancel the running
// report generation.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
