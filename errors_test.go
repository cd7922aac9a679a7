package ngoscan_test

import (
	"testing"

	"github.com/fwojciec/ngoscan"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := ngoscan.Errorf(ngoscan.EINVALID, "domain %q not configured", "example.org")

	assert.Equal(t, ngoscan.EINVALID, ngoscan.ErrorCode(err))
	assert.Equal(t, "domain \"example.org\" not configured", ngoscan.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ngoscan.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ngoscan.ErrorMessage(nil))
}

func TestMissingFieldError(t *testing.T) {
	t.Parallel()

	err := &ngoscan.MissingFieldError{Domain: "example.org", Field: ngoscan.ColumnAddress}

	assert.Equal(t, "example.org: missing required field -> Address", err.Error())
}
