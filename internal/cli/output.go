package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/glorpus-work/doctabs/pkg/config"
	"github.com/glorpus-work/doctabs/pkg/platform"
	"github.com/glorpus-work/doctabs/pkg/tabs"
	"gopkg.in/yaml.v3"
)

var (
	colorAccent = lipgloss.Color("99")
	colorMuted  = lipgloss.Color("243")

	styleHeader = lipgloss.NewStyle().Bold(true)
	styleActive = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	styleLabel  = lipgloss.NewStyle().Foreground(colorMuted)
)

// printer writes command results in the configured output format.
type printer struct {
	w      io.Writer
	format string
	color  bool
}

func newPrinter(w io.Writer, cfg *config.Config) printer {
	return printer{
		w:      w,
		format: cfg.Settings.OutputFormat,
		color:  cfg.Settings.ColorOutput,
	}
}

func (p printer) style(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

// structured writes v as JSON or YAML. It reports false for text output.
func (p printer) structured(v any) (bool, error) {
	switch p.format {
	case "json":
		encoder := json.NewEncoder(p.w)
		encoder.SetIndent("", "  ")
		return true, encoder.Encode(v)
	case "yaml":
		encoder := yaml.NewEncoder(p.w)
		encoder.SetIndent(config.YAMLIndent)
		defer func() { _ = encoder.Close() }()
		return true, encoder.Encode(v)
	default:
		return false, nil
	}
}

// table renders rows with a tabwriter and styles the header and the rows
// whose index is in highlight.
func (p printer) table(header []string, rows [][]string, highlight map[int]bool) error {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, TabWidth, ' ', 0)
	_, _ = fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range rows {
		_, _ = fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	for i, line := range lines {
		line = strings.TrimRight(line, " ")
		switch {
		case i == 0:
			line = p.style(styleHeader, line)
		case highlight[i-1]:
			line = p.style(styleActive, line)
		}
		if _, err := fmt.Fprintln(p.w, line); err != nil {
			return err
		}
	}
	return nil
}

func (p printer) options(opts []platform.Option) error {
	if ok, err := p.structured(opts); ok {
		return err
	}

	rows := make([][]string, len(opts))
	for i, opt := range opts {
		rows[i] = []string{opt.Identifier, opt.Label}
	}
	return p.table([]string{"VALUE", "LABEL"}, rows, nil)
}

// tabView is the printable form of a tab set.
type tabView struct {
	tabs.Set `yaml:",inline"`
	Active   string `yaml:"active" json:"active"`
}

func (p printer) tabSet(set tabs.Set, active string) error {
	if ok, err := p.structured(tabView{Set: set, Active: active}); ok {
		return err
	}

	_, _ = fmt.Fprintf(p.w, "%s %s\n", p.style(styleLabel, "Query string:"), set.QueryString)
	_, _ = fmt.Fprintf(p.w, "%s   %s\n", p.style(styleLabel, "Class name:"), set.ClassName)
	if len(set.Attrs) > 0 {
		keys := make([]string, 0, len(set.Attrs))
		for k := range set.Attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]string, len(keys))
		for i, k := range keys {
			pairs[i] = k + "=" + set.Attrs[k]
		}
		_, _ = fmt.Fprintf(p.w, "%s        %s\n", p.style(styleLabel, "Attrs:"), strings.Join(pairs, " "))
	}
	_, _ = fmt.Fprintln(p.w)

	rows := make([][]string, len(set.Values))
	highlight := make(map[int]bool)
	for i, opt := range set.Values {
		marker := ""
		if opt.Identifier == active {
			marker = ActiveMarker
			highlight[i] = true
		}
		rows[i] = []string{marker, opt.Identifier, opt.Label}
	}
	return p.table([]string{"", "VALUE", "LABEL"}, rows, highlight)
}

// RenderTabs lets a printer stand in for the page's tab component.
func (p printer) RenderTabs(_ context.Context, set tabs.Set, active string) error {
	return p.tabSet(set, active)
}
