package workout

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// NameKey folds a user-facing name (exercise, brand) into a comparison key:
// NFKC normalized, trimmed, inner whitespace collapsed and case folded.
func NameKey(name string) string {
	name = norm.NFKC.String(name)
	name = strings.Join(strings.Fields(name), " ")
	// cases.Caser keeps state, so it is not shared between calls
	return cases.Fold().String(name)
}
