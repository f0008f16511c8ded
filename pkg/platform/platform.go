// Package platform holds the catalog of platforms a documentation page can
// offer as tabs, and narrows it down to the subset a page asks for.
package platform

import (
	"fmt"
	"strings"
)

// Option is a single selectable platform tab.
type Option struct {
	Identifier string `yaml:"value" json:"value"`
	Label      string `yaml:"label" json:"label"`
}

// String returns a string representation of the option
func (o Option) String() string {
	return fmt.Sprintf("%s (%s)", o.Label, o.Identifier)
}

// Catalog returns a copy of every known option in display order.
func Catalog() []Option {
	out := make([]Option, len(catalog))
	copy(out, catalog)
	return out
}

// Resolve returns the catalog options whose identifiers appear in active, in
// catalog order. Duplicates and unknown identifiers in active are ignored.
// When nothing matches, including when active is empty, the whole catalog is
// returned, so the result is never empty.
func Resolve(active []string) []Option {
	wanted := make(map[string]struct{}, len(active))
	for _, id := range active {
		wanted[id] = struct{}{}
	}

	values := make([]Option, 0, len(wanted))
	for _, opt := range catalog {
		if _, ok := wanted[opt.Identifier]; ok {
			values = append(values, opt)
		}
	}

	if len(values) == 0 {
		return Catalog()
	}
	return values
}

// Identifiers returns the identifiers of opts in order.
func Identifiers(opts []Option) []string {
	ids := make([]string, len(opts))
	for i, opt := range opts {
		ids[i] = opt.Identifier
	}
	return ids
}

// Lookup finds the catalog option with the given identifier.
func Lookup(id string) (Option, bool) {
	i, ok := catalogIndex[id]
	if !ok {
		return Option{}, false
	}
	return catalog[i], true
}

// Valid reports whether id names a catalog option.
func Valid(id string) bool {
	_, ok := catalogIndex[id]
	return ok
}

// Unknown returns the identifiers in active that are not in the catalog,
// de-duplicated, in order of first appearance.
func Unknown(active []string) []string {
	var unknown []string
	seen := make(map[string]bool)
	for _, id := range active {
		if Valid(id) || seen[id] {
			continue
		}
		seen[id] = true
		unknown = append(unknown, id)
	}
	return unknown
}

// ParseList splits a comma separated list of identifiers. Items are trimmed
// and lowercased; empty items are dropped.
func ParseList(s string) []string {
	var ids []string
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			ids = append(ids, part)
		}
	}
	return ids
}
