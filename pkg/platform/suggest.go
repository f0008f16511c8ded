package platform

import (
	"fmt"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/glorpus-work/doctabs/pkg/errors"
)

// MaxSuggestDistance is the largest edit distance at which Suggest still
// offers a catalog identifier.
const MaxSuggestDistance = 2

// Suggest returns the catalog option whose identifier is closest to id.
// Ties go to the option listed first in the catalog.
func Suggest(id string) (Option, bool) {
	if id == "" {
		return Option{}, false
	}

	best, bestDist := -1, MaxSuggestDistance+1
	for i, opt := range catalog {
		dist := levenshtein.ComputeDistance(id, opt.Identifier)
		if dist < bestDist {
			best, bestDist = i, dist
		}
	}

	// Replacing every character is not a typo.
	if best < 0 || bestDist >= utf8.RuneCountInString(id) {
		return Option{}, false
	}
	return catalog[best], true
}

// Describe formats an unknown identifier with a hint when a close match exists.
func Describe(id string) string {
	if opt, ok := Suggest(id); ok {
		return fmt.Sprintf("%s (did you mean %s?)", id, opt.Identifier)
	}
	return id
}

// Check reports every identifier in active that is not in the catalog.
// It returns nil when all of them are known.
func Check(active []string) error {
	unknown := Unknown(active)
	if len(unknown) == 0 {
		return nil
	}

	details := make([]string, len(unknown))
	for i, id := range unknown {
		details[i] = Describe(id)
	}
	return errors.ErrUnknownPlatformWithDetails(details)
}
