package fileref

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/simonhull/audiometa"
)

// FileRef is an open, read-only handle on an audio file's metadata.
//
// A FileRef owns the underlying audiometa.File. The caller that receives a
// FileRef is responsible for calling Close exactly once:
//
//	ref, err := fileref.Open("song.mp3", fileref.Average)
//	if err != nil {
//		return err
//	}
//	defer ref.Close()
type FileRef struct {
	file   *audiometa.File
	path   string
	style  ReadStyle
	closed atomic.Bool
}

// Open opens path for reading with the given read style.
//
// Audio properties are always read; style only controls how thoroughly.
// Errors from audiometa (missing file, unsupported or corrupt format) are
// returned wrapped.
func Open(path string, style ReadStyle) (*FileRef, error) {
	return OpenContext(context.Background(), path, style)
}

// OpenContext is Open with cancellation support from audiometa.OpenContext.
func OpenContext(ctx context.Context, path string, style ReadStyle) (*FileRef, error) {
	if style < Fast || style > Accurate {
		return nil, &InvalidReadStyleError{Style: style}
	}

	file, err := audiometa.OpenContext(ctx, path, style.options()...)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	return &FileRef{
		file:  file,
		path:  path,
		style: style,
	}, nil
}

// Path returns the native path the handle was opened with.
func (r *FileRef) Path() string { return r.path }

// ReadStyle returns the style the handle was opened with.
func (r *FileRef) ReadStyle() ReadStyle { return r.style }

// IsNull reports whether r is unusable: nil or closed.
func (r *FileRef) IsNull() bool {
	return r == nil || r.file == nil || r.closed.Load()
}

// File returns the parsed metadata.
//
// The returned File must not be closed by the caller and must not be used
// after r is closed.
func (r *FileRef) File() (*audiometa.File, error) {
	if r.IsNull() {
		return nil, ErrClosed
	}
	return r.file, nil
}

// Close releases the underlying file. A second Close returns ErrClosed.
func (r *FileRef) Close() error {
	if r == nil || !r.closed.CompareAndSwap(false, true) {
		return ErrClosed
	}
	if r.file == nil {
		return nil
	}
	if err := r.file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", r.path, err)
	}
	return nil
}
