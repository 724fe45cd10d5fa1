package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnsupportedFormatError(t *testing.T) {
	err := NewUnsupportedFormatError(".odt")

	assert.Equal(t, "unsupported file format: .odt", err.Error())
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
	assert.False(t, errors.Is(err, ErrExtractionFailed))
}

func TestExtractionErrorUnwraps(t *testing.T) {
	cause := fmt.Errorf("corrupt xref table")
	err := NewExtractionError("cv.pdf", cause)

	assert.Equal(t, "failed to extract text from 'cv.pdf': corrupt xref table", err.Error())
	assert.True(t, errors.Is(err, ErrExtractionFailed))
	assert.True(t, errors.Is(err, cause))

	wrapped := fmt.Errorf("candidate 3: %w", err)
	var target *ExtractionError
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "cv.pdf", target.Path)
}

func TestExportTypeError(t *testing.T) {
	err := NewExportTypeError("pdf")

	assert.Equal(t, "unsupported export type 'pdf'", err.Error())
	assert.True(t, errors.Is(err, ErrUnsupportedExportType))
}

func TestBatchNotFoundError(t *testing.T) {
	err := NewBatchNotFoundError("abc")

	assert.Equal(t, "batch with ID 'abc' not found", err.Error())
	assert.True(t, errors.Is(err, ErrBatchNotFound))
	assert.False(t, errors.Is(err, ErrReferenceNotFound))
}
