package cli

import (
	"github.com/glorpus-work/doctabs/pkg/platform"
	"github.com/glorpus-work/doctabs/pkg/tabs"
	"github.com/spf13/cobra"
)

// NewTabsCmd creates the tabs command.
func NewTabsCmd() *cobra.Command {
	var (
		active      string
		queryString string
		className   string
		current     string
		attrs       []string
		strict      bool
	)

	cmd := &cobra.Command{
		Use:   "tabs [PLATFORM...]",
		Short: "Show the tab set for ad-hoc props",
		Long: `Build the platform tab set exactly as a page's tab component receives it:
the resolved platforms, the query string key, the class name and any extra attributes.

The tab marked as active is --current when it is one of the tabs, otherwise the first tab.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			extra, err := parseAttrs(attrs)
			if err != nil {
				return err
			}
			props := tabs.Props{
				ActiveOptions: collectIdentifiers(args, active),
				QueryString:   queryString,
				ClassName:     className,
				Attrs:         extra,
			}
			return runTabs(cmd, props, current, strict)
		},
	}

	cmd.Flags().StringVar(&active, "active", "", "Comma separated platform identifiers")
	cmd.Flags().StringVar(&queryString, "query-string", "", "Query parameter holding the selection (default from config)")
	cmd.Flags().StringVar(&className, "class-name", "", "CSS class of the tab bar (default from config)")
	cmd.Flags().StringVar(&current, "current", "", "Currently selected platform")
	cmd.Flags().StringArrayVar(&attrs, "attr", nil, "Extra attribute passed to the tab component (key=value, repeatable)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on unknown platform identifiers")

	return cmd
}

func runTabs(cmd *cobra.Command, props tabs.Props, current string, strict bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	strict = strict || cfg.Settings.Strict
	if strict {
		if err := platform.Check(props.ActiveOptions); err != nil {
			return err
		}
	}
	if err := checkCurrent(current, strict); err != nil {
		return err
	}
	if props.QueryString == "" {
		props.QueryString = cfg.Settings.QueryString
	}
	if props.ClassName == "" {
		props.ClassName = cfg.Settings.ClassName
	}

	return tabs.Forward(cmd.Context(), newPrinter(cmd.OutOrStdout(), cfg), props, current)
}
