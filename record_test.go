package ngoscan_test

import (
	"testing"

	"github.com/fwojciec/ngoscan"
	"github.com/stretchr/testify/assert"
)

func TestColumns(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{
		"NGO Name",
		"Website",
		"Address",
		"Services Offered",
		"Contact Person",
		"Contact Number",
		"Source Pages",
	}, ngoscan.Columns())
}

func TestContactRecord(t *testing.T) {
	t.Parallel()

	record := &ngoscan.ContactRecord{
		Name:          "Helping Hands",
		Website:       "https://example.org/",
		Address:       "42 Elm Street",
		Services:      "Food aid; Shelter",
		ContactPerson: "Jane 555-1234",
		ContactNumber: "555-1234, 555-5678",
		SourcePages:   "https://example.org/contact",
	}

	t.Run("row follows column order", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{
			"Helping Hands",
			"https://example.org/",
			"42 Elm Street",
			"Food aid; Shelter",
			"Jane 555-1234",
			"555-1234, 555-5678",
			"https://example.org/contact",
		}, record.Row())
	})

	t.Run("complete record validates", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, record.Validate())
	})

	t.Run("empty field fails validation naming the column", func(t *testing.T) {
		t.Parallel()

		incomplete := *record
		incomplete.Address = ""

		err := incomplete.Validate()

		assert.Equal(t, ngoscan.EINVALID, ngoscan.ErrorCode(err))
		assert.Contains(t, ngoscan.ErrorMessage(err), "Address")
	})
}
