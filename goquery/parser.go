// Package goquery provides a goquery-based implementation of
// ngoscan.Parser. It exposes the narrow page query surface the
// extraction engine needs: meta tag lookup, title and heading text,
// and whitespace-normalized visible text.
package goquery

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/ngoscan"
	"golang.org/x/net/html"
)

// Ensure Parser implements ngoscan.Parser at compile time.
var _ ngoscan.Parser = (*Parser)(nil)

// Parser parses raw HTML into pages queryable by the extraction
// engine.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses the HTML document once; all page queries operate on the
// parsed tree.
func (p *Parser) Parse(rawHTML string) (ngoscan.Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, ngoscan.Errorf(ngoscan.EINVALID, "failed to parse HTML: %v", err)
	}
	return &page{doc: doc}, nil
}

var _ ngoscan.Page = (*page)(nil)

type page struct {
	doc *goquery.Document
}

// MetaContent returns the content attribute of a meta tag, checking
// the property-keyed variant first, then the name-keyed variant.
func (p *page) MetaContent(key string) (string, bool) {
	for _, attr := range []string{"property", "name"} {
		sel := p.doc.Find(fmt.Sprintf("meta[%s=%q]", attr, key)).First()
		if content, ok := sel.Attr("content"); ok {
			return content, true
		}
	}
	return "", false
}

// TitleText returns the text of the title element.
func (p *page) TitleText() (string, bool) {
	sel := p.doc.Find("title").First()
	if sel.Length() == 0 {
		return "", false
	}
	return sel.Text(), true
}

// FirstHeadingText returns the text of the first h1 element with
// nested elements joined by single spaces.
func (p *page) FirstHeadingText() (string, bool) {
	sel := p.doc.Find("h1").First()
	if sel.Length() == 0 {
		return "", false
	}
	var parts []string
	for _, node := range sel.Nodes {
		collectText(node, &parts)
	}
	return strings.Join(parts, " "), true
}

// VisibleText returns the document text with script, style and
// noscript content removed, text nodes joined by single spaces, and
// whitespace collapsed.
func (p *page) VisibleText() string {
	var parts []string
	for _, node := range p.doc.Nodes {
		collectText(node, &parts)
	}
	return strings.Join(parts, " ")
}

// skippedElements hold no visible text.
var skippedElements = map[string]struct{}{
	"script":   {},
	"style":    {},
	"noscript": {},
	"template": {},
}

// collectText walks the node tree appending non-blank text node
// contents, each internally whitespace-collapsed, to parts.
func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if fields := strings.Fields(n.Data); len(fields) > 0 {
			*parts = append(*parts, strings.Join(fields, " "))
		}
		return
	}
	if n.Type == html.ElementNode {
		if _, ok := skippedElements[n.Data]; ok {
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}
