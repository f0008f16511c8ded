package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/glorpus-work/doctabs/internal/cli"
	"github.com/glorpus-work/doctabs/internal/logger"
	"github.com/spf13/cobra"
)

var (
	configPath   string
	verbose      bool
	noColor      bool
	outputFormat string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Error("Command failed", logger.Fields{"error": err})
		cancel()
		os.Exit(1)
	}

	cancel()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctabs",
		Short: "Platform tabs for documentation pages",
		Long: `doctabs resolves which platform tabs a documentation page shows:
- Catalog: the fixed list of supported platforms
- Resolve: narrow the catalog to a page's selection
- Pages: keep per-page selections in a config file`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default: auto-detect)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	cmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format (text, json, yaml)")

	cli.ConfigPath = &configPath
	cli.Verbose = &verbose
	cli.NoColor = &noColor
	cli.OutputFormat = &outputFormat

	cmd.AddCommand(
		cli.NewListCmd(),
		cli.NewResolveCmd(),
		cli.NewTabsCmd(),
		cli.NewPageCmd(),
		cli.NewConfigCmd(),
		cli.NewVersionCmd(),
	)

	return cmd
}
