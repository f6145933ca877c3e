package descriptor

import (
	"errors"
	"fmt"
)

// Structural errors wrapped by ParseError.
var (
	// ErrNoRootElement is returned for documents that contain no element at all.
	ErrNoRootElement = errors.New("document has no root element")

	// ErrMultipleRoots is returned when a second top-level element follows the root.
	ErrMultipleRoots = errors.New("document has more than one root element")

	// ErrContentOutsideRoot is returned for text before or after the root element.
	ErrContentOutsideRoot = errors.New("text content outside the root element")

	// ErrDuplicateAttribute is returned when an element repeats an attribute.
	ErrDuplicateAttribute = errors.New("duplicate attribute")
)

// ReadError indicates that a descriptor file could not be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read plugin descriptor %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ReadError) Unwrap() error {
	return e.Err
}

// ParseError indicates that a descriptor file is not well-formed XML.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse plugin descriptor %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
