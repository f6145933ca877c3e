package codegen

import (
	"context"
	"fmt"

	"github.com/indaco/cordovagen/internal/core"
)

// WriteError indicates that the generated module could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *WriteError) Unwrap() error {
	return e.Err
}

// Writer writes rendered modules through a core.FileSystem.
type Writer struct {
	fs core.FileSystem
}

// NewWriter creates a Writer backed by fs.
func NewWriter(fs core.FileSystem) *Writer {
	return &Writer{fs: fs}
}

// Write replaces the content of path with data.
func (w *Writer) Write(ctx context.Context, path string, data []byte) error {
	if err := w.fs.WriteFile(ctx, path, data, core.PermPublicRead); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
