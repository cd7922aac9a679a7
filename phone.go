package ngoscan

import (
	"regexp"
	"sort"
	"strings"
)

// genericPhonePattern matches phone-shaped strings: digits with an
// optional leading +, separated by single spaces or hyphens, 7 to 15
// digit groups. Site-specific patterns layered via config take
// precedence over it.
var genericPhonePattern = regexp.MustCompile(`(?i)(?:\+?\d[\s-]?){7,15}\d`)

// PhoneRule describes how to collect and rank phone number candidates.
type PhoneRule struct {
	// Patterns collect candidates. When empty, the built-in generic
	// phone pattern is applied instead.
	Patterns []*regexp.Regexp

	// Prefer ranks already-found candidates: a candidate matching any
	// of these patterns sorts ahead of all non-matching candidates.
	// Prefer patterns never find new candidates.
	Prefer []*regexp.Regexp

	// RequiredMin is the minimum number of distinct candidates required
	// for the rule to succeed. Values below 1 are treated as 1.
	RequiredMin int
}

// Resolve collects all candidates from text, deduplicates them
// preserving first-seen order, ranks preferred candidates first with a
// stable sort, and returns the first max(k, 3) candidates joined with
// ", " where k = max(1, RequiredMin). It fails when fewer than k
// distinct candidates exist.
func (r PhoneRule) Resolve(text string) (string, bool) {
	patterns := r.Patterns
	if len(patterns) == 0 {
		patterns = []*regexp.Regexp{genericPhonePattern}
	}

	// Collect in pattern-then-position order.
	var candidates []string
	for _, re := range patterns {
		candidates = append(candidates, re.FindAllString(text, -1)...)
	}

	// Deduplicate with insertion-order set semantics.
	seen := make(map[string]struct{}, len(candidates))
	distinct := candidates[:0]
	for _, c := range candidates {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		distinct = append(distinct, c)
	}

	k := r.RequiredMin
	if k < 1 {
		k = 1
	}
	if len(distinct) < k {
		return "", false
	}

	if len(r.Prefer) > 0 {
		sort.SliceStable(distinct, func(i, j int) bool {
			return r.preferred(distinct[i]) && !r.preferred(distinct[j])
		})
	}

	n := k
	if n < 3 {
		n = 3
	}
	if n > len(distinct) {
		n = len(distinct)
	}
	return strings.Join(distinct[:n], ", "), true
}

// preferred reports whether the candidate matches any preference
// pattern.
func (r PhoneRule) preferred(candidate string) bool {
	for _, re := range r.Prefer {
		if re.MatchString(candidate) {
			return true
		}
	}
	return false
}
