package ngoscan

import "strings"

// SiteName extracts the site or brand name from a parsed page.
// Fallback chain, first non-blank candidate wins: og:site_name
// metadata, page title, text of the first top-level heading.
func SiteName(page Page) (string, bool) {
	if v, ok := page.MetaContent("og:site_name"); ok {
		if v = strings.TrimSpace(v); v != "" {
			return v, true
		}
	}
	if v, ok := page.TitleText(); ok {
		if v = strings.TrimSpace(v); v != "" {
			return v, true
		}
	}
	if v, ok := page.FirstHeadingText(); ok {
		if v = strings.TrimSpace(v); v != "" {
			return v, true
		}
	}
	return "", false
}
