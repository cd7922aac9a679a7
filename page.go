package ngoscan

import "context"

// Page is the parsed representation of a fetched web page. It exposes
// the narrow query surface the extraction engine needs; parsing
// details stay behind the implementation.
type Page interface {
	// MetaContent returns the content of a meta tag, checking the
	// property-keyed variant first, then the name-keyed variant.
	MetaContent(key string) (string, bool)

	// TitleText returns the text of the page title element.
	TitleText() (string, bool)

	// FirstHeadingText returns the text of the first top-level heading.
	FirstHeadingText() (string, bool)

	// VisibleText returns the page text with tags stripped and
	// whitespace normalized to single spaces.
	VisibleText() string
}

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch retrieves the HTML at url. It fails on non-2xx responses
	// and timeouts and does not retry. The context controls timeout
	// and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// Parser parses raw HTML into a Page.
type Parser interface {
	Parse(html string) (Page, error)
}

// DomainLimiter throttles outbound requests per domain.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain,
	// or the context is canceled.
	Wait(ctx context.Context, domain string) error
}
