// Package mock provides function-field mock implementations of the
// ngoscan interfaces for testing.
package mock

import "github.com/fwojciec/ngoscan"

var _ ngoscan.Page = (*Page)(nil)

// Page is a mock implementation of ngoscan.Page. Unset query functions
// report no value; an unset VisibleTextFn returns the Text field.
type Page struct {
	Text string

	MetaContentFn      func(key string) (string, bool)
	TitleTextFn        func() (string, bool)
	FirstHeadingTextFn func() (string, bool)
	VisibleTextFn      func() string
}

func (p *Page) MetaContent(key string) (string, bool) {
	if p.MetaContentFn == nil {
		return "", false
	}
	return p.MetaContentFn(key)
}

func (p *Page) TitleText() (string, bool) {
	if p.TitleTextFn == nil {
		return "", false
	}
	return p.TitleTextFn()
}

func (p *Page) FirstHeadingText() (string, bool) {
	if p.FirstHeadingTextFn == nil {
		return "", false
	}
	return p.FirstHeadingTextFn()
}

func (p *Page) VisibleText() string {
	if p.VisibleTextFn == nil {
		return p.Text
	}
	return p.VisibleTextFn()
}
