package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrUnsupportedFormat is returned when no extractor handles a file extension
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrExtractionFailed is returned when a text extraction provider fails
	ErrExtractionFailed = errors.New("text extraction failed")

	// ErrEmbeddingProviderUnavailable is returned when the embedding model cannot be reached
	ErrEmbeddingProviderUnavailable = errors.New("embedding provider unavailable")

	// ErrUnsupportedExportType is returned for export file types other than csv and xlsx
	ErrUnsupportedExportType = errors.New("unsupported export type")

	// ErrReferenceNotFound is returned when no reference resume has been uploaded
	ErrReferenceNotFound = errors.New("reference resume not found")

	// ErrBatchNotFound is returned when a batch run is not found
	ErrBatchNotFound = errors.New("batch not found")
)

// UnsupportedFormatError represents an unsupported file extension
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format: %s", e.Extension)
}

func (e *UnsupportedFormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}

// NewUnsupportedFormatError creates a new UnsupportedFormatError
func NewUnsupportedFormatError(ext string) *UnsupportedFormatError {
	return &UnsupportedFormatError{Extension: ext}
}

// ExtractionError wraps a provider failure for a single file
type ExtractionError struct {
	Path string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract text from '%s': %v", e.Path, e.Err)
}

func (e *ExtractionError) Is(target error) bool {
	return target == ErrExtractionFailed
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError
func NewExtractionError(path string, err error) *ExtractionError {
	return &ExtractionError{Path: path, Err: err}
}

// ExportTypeError represents an export request for an unknown file type
type ExportTypeError struct {
	FileType string
}

func (e *ExportTypeError) Error() string {
	return fmt.Sprintf("unsupported export type '%s'", e.FileType)
}

func (e *ExportTypeError) Is(target error) bool {
	return target == ErrUnsupportedExportType
}

// NewExportTypeError creates a new ExportTypeError
func NewExportTypeError(fileType string) *ExportTypeError {
	return &ExportTypeError{FileType: fileType}
}

// BatchNotFoundError represents a missing batch run with context
type BatchNotFoundError struct {
	BatchID string
}

func (e *BatchNotFoundError) Error() string {
	return fmt.Sprintf("batch with ID '%s' not found", e.BatchID)
}

func (e *BatchNotFoundError) Is(target error) bool {
	return target == ErrBatchNotFound
}

// NewBatchNotFoundError creates a new BatchNotFoundError
func NewBatchNotFoundError(batchID string) *BatchNotFoundError {
	return &BatchNotFoundError{BatchID: batchID}
}
