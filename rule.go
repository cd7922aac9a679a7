package ngoscan

import (
	"regexp"
	"strings"
)

// Rule is a declarative instruction describing how to derive a field
// value from page text. A rule may carry both a static value and
// patterns; Static always takes precedence and suppresses any pattern
// search.
type Rule struct {
	// Static is a fixed value. Scalar config values are normalized to a
	// one-element slice; multiple values are joined with "; " on
	// resolution. Empty means unset.
	Static []string

	// Patterns are tried in declared order against the source text.
	// The first pattern that matches anywhere wins and later patterns
	// are never evaluated. Patterns are expected to be compiled
	// case-insensitive with dot matching newlines.
	Patterns []*regexp.Regexp
}

// Resolve applies the rule to text and reports whether it produced a
// value. Pattern matches are trimmed; a static value is returned as
// configured.
func (r Rule) Resolve(text string) (string, bool) {
	if len(r.Static) > 0 {
		return strings.Join(r.Static, "; "), true
	}
	for _, re := range r.Patterns {
		loc := re.FindStringIndex(text)
		if loc != nil {
			return strings.TrimSpace(text[loc[0]:loc[1]]), true
		}
	}
	return "", false
}
