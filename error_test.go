package docqa_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/docqa"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := docqa.Errorf(docqa.EINVALID, "max pages must be positive, got %d", 0)

	assert.Equal(t, docqa.EINVALID, docqa.ErrorCode(err))
	assert.Equal(t, "max pages must be positive, got 0", docqa.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docqa.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docqa.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("reading dataset: %w", docqa.Errorf(docqa.ENOTFOUND, "file not found"))

	assert.Equal(t, docqa.ENOTFOUND, docqa.ErrorCode(err))
	assert.Equal(t, "file not found", docqa.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, docqa.EINTERNAL, docqa.ErrorCode(err))
	assert.Equal(t, "Internal error.", docqa.ErrorMessage(err))
}
