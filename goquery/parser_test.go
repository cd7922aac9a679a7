package goquery_test

import (
	"testing"

	"github.com/fwojciec/ngoscan"
	"github.com/fwojciec/ngoscan/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, html string) ngoscan.Page {
	t.Helper()
	page, err := goquery.NewParser().Parse(html)
	require.NoError(t, err)
	return page
}

func TestParser(t *testing.T) {
	t.Parallel()

	t.Run("meta content via property attribute", func(t *testing.T) {
		t.Parallel()

		page := parse(t, `<html><head><meta property="og:site_name" content="Helping Hands"></head></html>`)

		got, ok := page.MetaContent("og:site_name")

		assert.True(t, ok)
		assert.Equal(t, "Helping Hands", got)
	})

	t.Run("meta content falls back to name attribute", func(t *testing.T) {
		t.Parallel()

		page := parse(t, `<html><head><meta name="og:site_name" content="Helping Hands"></head></html>`)

		got, ok := page.MetaContent("og:site_name")

		assert.True(t, ok)
		assert.Equal(t, "Helping Hands", got)
	})

	t.Run("missing meta tag reports no value", func(t *testing.T) {
		t.Parallel()

		page := parse(t, `<html><head><title>Acme</title></head></html>`)

		_, ok := page.MetaContent("og:site_name")

		assert.False(t, ok)
	})

	t.Run("title text", func(t *testing.T) {
		t.Parallel()

		page := parse(t, `<html><head><title>Acme Org</title></head><body></body></html>`)

		got, ok := page.TitleText()

		assert.True(t, ok)
		assert.Equal(t, "Acme Org", got)
	})

	t.Run("missing title reports no value", func(t *testing.T) {
		t.Parallel()

		page := parse(t, `<html><body><p>hello</p></body></html>`)

		_, ok := page.TitleText()

		assert.False(t, ok)
	})

	t.Run("first heading joins nested elements with spaces", func(t *testing.T) {
		t.Parallel()

		page := parse(t, `<html><body><h1><span>Helping</span><span>Hands</span></h1><h1>Second</h1></body></html>`)

		got, ok := page.FirstHeadingText()

		assert.True(t, ok)
		assert.Equal(t, "Helping Hands", got)
	})

	t.Run("missing heading reports no value", func(t *testing.T) {
		t.Parallel()

		page := parse(t, `<html><body><h2>Not a top-level heading</h2></body></html>`)

		_, ok := page.FirstHeadingText()

		assert.False(t, ok)
	})

	t.Run("visible text is whitespace normalized", func(t *testing.T) {
		t.Parallel()

		page := parse(t, "<html><body><p>Visit   us\n\tat</p><p>42 Elm Street</p></body></html>")

		assert.Equal(t, "Visit us at 42 Elm Street", page.VisibleText())
	})

	t.Run("visible text skips scripts and styles", func(t *testing.T) {
		t.Parallel()

		page := parse(t, `<html><body><script>var x = 1;</script><style>p{}</style><p>Call 555-1234</p></body></html>`)

		assert.Equal(t, "Call 555-1234", page.VisibleText())
	})

	t.Run("visible text separates adjacent inline elements", func(t *testing.T) {
		t.Parallel()

		page := parse(t, `<html><body><b>Call</b>now</body></html>`)

		assert.Equal(t, "Call now", page.VisibleText())
	})
}
