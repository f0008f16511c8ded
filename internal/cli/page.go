package cli

import (
	"fmt"
	"strings"

	"github.com/glorpus-work/doctabs/internal/logger"
	"github.com/glorpus-work/doctabs/pkg/config"
	"github.com/glorpus-work/doctabs/pkg/errors"
	"github.com/glorpus-work/doctabs/pkg/platform"
	"github.com/glorpus-work/doctabs/pkg/tabs"
	"github.com/spf13/cobra"
)

// NewPageCmd creates the page command with subcommands.
func NewPageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "page",
		Short: "Manage documentation pages",
		Long:  "Add, remove, list and show the platform tabs of configured documentation pages",
	}

	cmd.AddCommand(
		newPageListCmd(),
		newPageShowCmd(),
		newPageAddCmd(),
		newPageRemoveCmd(),
	)

	return cmd
}

func newPageListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List configured pages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPageList(cmd)
		},
	}

	return cmd
}

func newPageShowCmd() *cobra.Command {
	var current string

	cmd := &cobra.Command{
		Use:   "show NAME",
		Short: "Show the tab set of a page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPageShow(cmd, args[0], current)
		},
	}

	cmd.Flags().StringVar(&current, "current", "", "Currently selected platform")

	return cmd
}

func newPageAddCmd() *cobra.Command {
	var (
		active      string
		queryString string
		className   string
		attrs       []string
	)

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a page",
		Long: `Add a documentation page with its platform selection.

Without --active the page shows every platform.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			extra, err := parseAttrs(attrs)
			if err != nil {
				return err
			}
			return runPageAdd(&config.PageConfig{
				Name:          args[0],
				ActiveOptions: platform.ParseList(active),
				QueryString:   queryString,
				ClassName:     className,
				Attrs:         extra,
			})
		},
	}

	cmd.Flags().StringVar(&active, "active", "", "Comma separated platform identifiers")
	cmd.Flags().StringVar(&queryString, "query-string", "", "Query parameter holding the selection")
	cmd.Flags().StringVar(&className, "class-name", "", "CSS class of the tab bar")
	cmd.Flags().StringArrayVar(&attrs, "attr", nil, "Extra attribute passed to the tab component (key=value, repeatable)")

	return cmd
}

func newPageRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove a page",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runPageRemove(args[0])
		},
	}

	return cmd
}

// pageView is the printable summary of a configured page.
type pageView struct {
	Name        string   `yaml:"name" json:"name"`
	QueryString string   `yaml:"query_string" json:"query_string"`
	Platforms   []string `yaml:"platforms" json:"platforms"`
}

func runPageList(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	views := make([]pageView, len(cfg.Pages))
	for i, page := range cfg.Pages {
		set := tabs.Build(page.Props(cfg.Settings))
		views[i] = pageView{Name: page.Name, QueryString: set.QueryString, Platforms: set.Identifiers()}
	}

	p := newPrinter(cmd.OutOrStdout(), cfg)
	if ok, err := p.structured(views); ok {
		return err
	}

	if len(views) == 0 {
		_, _ = fmt.Fprintln(p.w, "No pages configured")
		return nil
	}

	rows := make([][]string, len(views))
	for i, v := range views {
		rows[i] = []string{v.Name, v.QueryString, strings.Join(v.Platforms, ",")}
	}
	return p.table([]string{"PAGE", "QUERY", "PLATFORMS"}, rows, nil)
}

func runPageShow(cmd *cobra.Command, name, current string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	page, err := cfg.Page(name)
	if err != nil {
		return err
	}

	if err := checkCurrent(current, cfg.Settings.Strict); err != nil {
		return err
	}

	logger.Debug("Showing page", logger.Fields{"page": page.Name})
	return tabs.Forward(cmd.Context(), newPrinter(cmd.OutOrStdout(), cfg), page.Props(cfg.Settings), current)
}

func runPageAdd(page *config.PageConfig) error {
	cfg, err := loadConfigForUpdate()
	if err != nil {
		return err
	}

	if err := cfg.AddPage(page); err != nil {
		return fmt.Errorf("failed to add page: %w", err)
	}
	if err := checkIdentifiers(page.ActiveOptions, false); err != nil {
		return err
	}

	if err := cfg.SaveConfig(getConfigPath()); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	logger.Success("Page added", logger.Fields{"page": page.Name})
	return nil
}

func runPageRemove(name string) error {
	cfg, err := loadConfigForUpdate()
	if err != nil {
		return err
	}

	if !cfg.RemovePage(name) {
		return errors.ErrPageNotFoundWithName(name)
	}

	if err := cfg.SaveConfig(getConfigPath()); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	logger.Success("Page removed", logger.Fields{"page": name})
	return nil
}
