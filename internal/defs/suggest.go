// internal/defs/suggest.go
package defs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance bounds how far a misspelt name may be from a known one
// and still be offered as a suggestion.
const maxSuggestDistance = 2

// suggest returns the known name closest to name, if any is close enough.
func suggest(name string, known map[string]bool) (string, bool) {
	names := make([]string, 0, len(known))
	for k := range known {
		names = append(names, k)
	}
	sort.Strings(names)

	best, bestDist := "", maxSuggestDistance+1
	for _, k := range names {
		d := levenshtein.ComputeDistance(strings.ToLower(name), strings.ToLower(k))
		if d < bestDist {
			best, bestDist = k, d
		}
	}
	return best, best != ""
}

// unknownRef formats an unknown reference error with a suggestion.
func unknownRef(kind, name string, known map[string]bool) error {
	if s, ok := suggest(name, known); ok {
		return fmt.Errorf("unknown %s %q (did you mean %q?)", kind, name, s)
	}
	return fmt.Errorf("unknown %s %q", kind, name)
}
