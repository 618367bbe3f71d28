package compiler

import (
	"errors"
	"fmt"

	"github.com/mediawatch/monthly-compiler-go/pkg/compiler/parser"
)

// ErrRootNotFound indicates the input root does not exist or is not a directory.
var ErrRootNotFound = errors.New("input root not found")

// ErrInvalidFormat indicates a document is not a readable .docx container.
var ErrInvalidFormat = parser.ErrMissingDocumentPart

// ErrNoRecords indicates no document in the run produced a record.
// Nothing is written in that case.
var ErrNoRecords = errors.New("no records extracted")

// DocumentError represents a document that could not be read.
// The document is skipped and the run continues.
type DocumentError struct {
	Path      string
	Component string // stage that failed, e.g. "open"
	Err       error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("document %q (%s): %v", e.Path, e.Component, e.Err)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}

// NewDocumentError creates a new DocumentError.
func NewDocumentError(path, component string, err error) *DocumentError {
	return &DocumentError{
		Path:      path,
		Component: component,
		Err:       err,
	}
}
