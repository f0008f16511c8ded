package cli

import (
	"github.com/glorpus-work/doctabs/pkg/platform"
	"github.com/spf13/cobra"
)

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all platforms",
		Long:  "List every platform in the catalog, in the order tabs are displayed.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd)
		},
	}

	return cmd
}

func runList(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	return newPrinter(cmd.OutOrStdout(), cfg).options(platform.Catalog())
}
