//go:generate mockgen -destination=mocks/tabs.go . Renderer
package tabs

import "context"

// Renderer is the generic tab component that draws a tab set and keeps track
// of the reader's selection under Set.QueryString.
type Renderer interface {
	// RenderTabs draws the set with active as the selected tab.
	RenderTabs(ctx context.Context, set Set, active string) error
}
