package cli

import (
	"github.com/glorpus-work/doctabs/internal/logger"
	"github.com/glorpus-work/doctabs/pkg/platform"
	"github.com/spf13/cobra"
)

// NewResolveCmd creates the resolve command.
func NewResolveCmd() *cobra.Command {
	var (
		active string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "resolve [PLATFORM...]",
		Short: "Resolve the platforms a page would show",
		Long: `Narrow the catalog down to the given platform identifiers.

Platforms are printed in catalog order, whatever order they were given in.
When none of the identifiers is known, the whole catalog is printed.
Use --strict to fail on unknown identifiers instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, collectIdentifiers(args, active), strict)
		},
	}

	cmd.Flags().StringVar(&active, "active", "", "Comma separated platform identifiers")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on unknown platform identifiers")

	return cmd
}

func runResolve(cmd *cobra.Command, ids []string, strict bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := checkIdentifiers(ids, strict || cfg.Settings.Strict); err != nil {
		return err
	}

	values := platform.Resolve(ids)
	logger.Debug("Resolved platforms", logger.Fields{"requested": len(ids), "resolved": len(values)})

	return newPrinter(cmd.OutOrStdout(), cfg).options(values)
}
