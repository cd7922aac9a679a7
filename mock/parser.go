package mock

import "github.com/fwojciec/ngoscan"

var _ ngoscan.Parser = (*Parser)(nil)

// Parser is a mock implementation of ngoscan.Parser. When ParseFn is
// unset it wraps the HTML in a Page whose visible text is the HTML
// itself, which is convenient for engine tests that feed plain text.
type Parser struct {
	ParseFn func(html string) (ngoscan.Page, error)
}

func (p *Parser) Parse(html string) (ngoscan.Page, error) {
	if p.ParseFn == nil {
		return &Page{Text: html}, nil
	}
	return p.ParseFn(html)
}
