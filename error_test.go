package docquiz_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/docquiz"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := docquiz.Errorf(docquiz.ENOTFOUND, "page %q has no content", "https://example.com")

	assert.Equal(t, docquiz.ENOTFOUND, docquiz.ErrorCode(err))
	assert.Equal(t, "page \"https://example.com\" has no content", docquiz.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docquiz.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docquiz.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("round 3: %w", docquiz.Errorf(docquiz.EMALFORMED, "malformed quiz reply"))

	assert.Equal(t, docquiz.EMALFORMED, docquiz.ErrorCode(err))
	assert.Equal(t, "malformed quiz reply", docquiz.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("connection refused")

	assert.Equal(t, docquiz.EINTERNAL, docquiz.ErrorCode(err))
	assert.Equal(t, "Internal error", docquiz.ErrorMessage(err))
}
