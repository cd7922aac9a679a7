package ngoscan_test

import (
	"regexp"
	"testing"

	"github.com/fwojciec/ngoscan"
	"github.com/stretchr/testify/assert"
)

func TestRuleResolve(t *testing.T) {
	t.Parallel()

	t.Run("static value wins over patterns regardless of text", func(t *testing.T) {
		t.Parallel()

		rule := ngoscan.Rule{
			Static:   []string{"123 Main St"},
			Patterns: []*regexp.Regexp{regexp.MustCompile(`(?is)match me`)},
		}

		got, ok := rule.Resolve("match me")

		assert.True(t, ok)
		assert.Equal(t, "123 Main St", got)
	})

	t.Run("static sequence is joined with semicolons", func(t *testing.T) {
		t.Parallel()

		rule := ngoscan.Rule{Static: []string{"Food aid", "Shelter", "Legal advice"}}

		got, ok := rule.Resolve("")

		assert.True(t, ok)
		assert.Equal(t, "Food aid; Shelter; Legal advice", got)
	})

	t.Run("first matching pattern wins when both match", func(t *testing.T) {
		t.Parallel()

		rule := ngoscan.Rule{
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?is)alpha \w+`),
				regexp.MustCompile(`(?is)beta \w+`),
			},
		}

		got, ok := rule.Resolve("beta one alpha two")

		assert.True(t, ok)
		assert.Equal(t, "alpha two", got)
	})

	t.Run("falls through to later patterns", func(t *testing.T) {
		t.Parallel()

		rule := ngoscan.Rule{
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?is)never-present`),
				regexp.MustCompile(`(?is)\d+ Elm Street`),
			},
		}

		got, ok := rule.Resolve("visit us at 42 Elm Street today")

		assert.True(t, ok)
		assert.Equal(t, "42 Elm Street", got)
	})

	t.Run("match is trimmed", func(t *testing.T) {
		t.Parallel()

		rule := ngoscan.Rule{
			Patterns: []*regexp.Regexp{regexp.MustCompile(`(?is)\s+42 Elm Street\s+`)},
		}

		got, ok := rule.Resolve("visit  42 Elm Street  today")

		assert.True(t, ok)
		assert.Equal(t, "42 Elm Street", got)
	})

	t.Run("no pattern matches reports no value", func(t *testing.T) {
		t.Parallel()

		rule := ngoscan.Rule{
			Patterns: []*regexp.Regexp{regexp.MustCompile(`(?is)nothing`)},
		}

		got, ok := rule.Resolve("text without the needle")

		assert.False(t, ok)
		assert.Empty(t, got)
	})

	t.Run("empty rule never matches", func(t *testing.T) {
		t.Parallel()

		got, ok := ngoscan.Rule{}.Resolve("any text at all")

		assert.False(t, ok)
		assert.Empty(t, got)
	})

	t.Run("pattern can span lines", func(t *testing.T) {
		t.Parallel()

		rule := ngoscan.Rule{
			Patterns: []*regexp.Regexp{regexp.MustCompile(`(?is)address:.*?end`)},
		}

		got, ok := rule.Resolve("Address:\n42 Elm Street\nEND")

		assert.True(t, ok)
		assert.Equal(t, "Address:\n42 Elm Street\nEND", got)
	})
}
