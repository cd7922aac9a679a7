package ngoscan

import (
	"regexp"
	"strings"
)

// DefaultContactFormat renders the contact name followed by the phone
// number, separated by a space.
const DefaultContactFormat = "{name} {phone}"

// ContactPersonRule describes how to derive the contact person field.
type ContactPersonRule struct {
	// Static, when non-empty, is returned verbatim and suppresses
	// pattern evaluation.
	Static string

	// Page optionally names a URL to source the pattern match from
	// instead of the combined contact-page text. Source selection is
	// the orchestrator's responsibility since it owns the fetch cache.
	Page string

	// Pattern must have capture group 1 = name and may have capture
	// group 2 = phone. A nil pattern never matches, forcing explicit
	// configuration.
	Pattern *regexp.Regexp

	// Format is a template with {name} and {phone} placeholders.
	// Empty means DefaultContactFormat.
	Format string
}

// Resolve applies the rule to text and reports whether it produced a
// value.
func (r ContactPersonRule) Resolve(text string) (string, bool) {
	if r.Static != "" {
		return r.Static, true
	}
	if r.Pattern == nil {
		return "", false
	}

	m := r.Pattern.FindStringSubmatch(text)
	if m == nil || len(m) < 2 {
		return "", false
	}

	name := strings.TrimSpace(m[1])
	phone := ""
	if len(m) >= 3 {
		phone = strings.TrimSpace(m[2])
	}

	format := r.Format
	if format == "" {
		format = DefaultContactFormat
	}
	out := strings.ReplaceAll(format, "{name}", name)
	out = strings.ReplaceAll(out, "{phone}", phone)
	return strings.TrimSpace(out), true
}
