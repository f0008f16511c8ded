// Package tabs builds the platform tab set handed to a page's tab component.
package tabs

import (
	"context"
	"fmt"
	"maps"

	"github.com/glorpus-work/doctabs/internal/logger"
	"github.com/glorpus-work/doctabs/pkg/errors"
	"github.com/glorpus-work/doctabs/pkg/platform"
)

const (
	// DefaultQueryString is the query parameter the selection is stored under.
	DefaultQueryString = "platform"
	// DefaultClassName is the CSS class of the platform tab bar.
	DefaultClassName = "platform-tabs"
)

// Props are the inputs a page passes to its platform tabs.
type Props struct {
	// ActiveOptions limits the tabs to these platform identifiers.
	// Empty means every platform.
	ActiveOptions []string
	QueryString   string
	ClassName     string
	// Values, when set, replaces the resolved options entirely.
	Values []platform.Option
	// Attrs are passed through to the renderer untouched.
	Attrs map[string]string
}

// Set is what the renderer receives.
type Set struct {
	ClassName   string            `yaml:"class_name" json:"class_name"`
	QueryString string            `yaml:"query_string" json:"query_string"`
	Values      []platform.Option `yaml:"values" json:"values"`
	Attrs       map[string]string `yaml:"attrs,omitempty" json:"attrs,omitempty"`
}

// Build turns props into a tab set, filling in defaults.
func Build(p Props) Set {
	set := Set{
		ClassName:   p.ClassName,
		QueryString: p.QueryString,
		Values:      platform.Resolve(p.ActiveOptions),
		Attrs:       maps.Clone(p.Attrs),
	}
	if set.ClassName == "" {
		set.ClassName = DefaultClassName
	}
	if set.QueryString == "" {
		set.QueryString = DefaultQueryString
	}
	if len(p.Values) > 0 {
		set.Values = append([]platform.Option(nil), p.Values...)
	}
	return set
}

// Default returns the identifier of the first tab.
func (s Set) Default() string {
	if len(s.Values) == 0 {
		return ""
	}
	return s.Values[0].Identifier
}

// Active returns current if it names one of the tabs, otherwise the default tab.
func (s Set) Active(current string) string {
	for _, opt := range s.Values {
		if opt.Identifier == current {
			return current
		}
	}
	return s.Default()
}

// Identifiers returns the tab identifiers in display order.
func (s Set) Identifiers() []string {
	return platform.Identifiers(s.Values)
}

// Forward builds the tab set for p and hands it to r with the active tab
// derived from current. Unknown identifiers in p are logged, not rejected.
func Forward(ctx context.Context, r Renderer, p Props, current string) error {
	if r == nil {
		return errors.ErrNoRenderer
	}

	for _, id := range platform.Unknown(p.ActiveOptions) {
		logger.Warn("Ignoring unknown platform", logger.Fields{"platform": platform.Describe(id)})
	}

	set := Build(p)
	active := set.Active(current)
	logger.Debug("Rendering platform tabs", logger.Fields{
		"query_string": set.QueryString,
		"tabs":         len(set.Values),
		"active":       active,
	})

	if err := r.RenderTabs(ctx, set, active); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrRender, err)
	}
	return nil
}
