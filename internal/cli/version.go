package cli

import (
	"fmt"

	"github.com/glorpus-work/doctabs/pkg/config"
	"github.com/hashicorp/go-version"
	"github.com/spf13/cobra"
)

// Build information, overridden with -ldflags at release time.
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display version information for doctabs",
		Args:  cobra.NoArgs,
		RunE:  runVersion,
	}

	return cmd
}

func runVersion(cmd *cobra.Command, _ []string) error {
	v, err := version.NewVersion(Version)
	if err != nil {
		return fmt.Errorf("invalid build version %q: %w", Version, err)
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "doctabs version %s\n", v)
	_, _ = fmt.Fprintf(w, "Config schema: %s (supported: %s)\n", config.CurrentVersion, config.SupportedVersions)
	_, _ = fmt.Fprintf(w, "Build date: %s\n", BuildDate)
	_, _ = fmt.Fprintf(w, "Git commit: %s\n", GitCommit)
	return nil
}
