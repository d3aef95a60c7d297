package blobstore

import (
	"context"
	"errors"
	"io"
	"os"
	"path"

	"github.com/hupe1980/eusys/bstr"
)

var (
	// ErrNotFound is returned when a blob does not exist.
	//
	// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
	// The default maps to `os.ErrNotExist`.
	ErrNotFound = os.ErrNotExist

	// ErrInvalidName is returned for names that are empty, absolute, contain
	// a NUL byte, or escape the store root.
	ErrInvalidName = errors.New("blobstore: invalid blob name")

	// ErrClosed is returned when using a blob after Close.
	ErrClosed = errors.New("blobstore: blob closed")
)

// BlobStore is an abstraction for reading and writing immutable data blobs.
// Implementations must be safe for concurrent use.
type BlobStore interface {
	// Open opens a blob for reading.
	Open(ctx context.Context, name string) (Blob, error)
	// Create creates a blob for writing. The blob becomes visible on Close.
	Create(ctx context.Context, name string) (WritableBlob, error)
	// Put writes a blob atomically.
	Put(ctx context.Context, name string, data []byte) error
	// Delete removes a blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, name string) error
	// List returns the names of all blobs with the given prefix.
	List(ctx context.Context, prefix string) ([]string, error)
}

// Blob is a read-only handle to a data blob.
type Blob interface {
	io.Closer
	// ReadAt follows io.ReaderAt semantics: n < len(p) implies err != nil.
	ReadAt(ctx context.Context, p []byte, off int64) (int, error)
	// ReadRange returns a reader over at most length bytes starting at off.
	ReadRange(ctx context.Context, off, length int64) (io.ReadCloser, error)
	// Size returns the size of the blob in bytes.
	Size() int64
}

// WritableBlob is a handle to a blob being written.
type WritableBlob interface {
	io.Writer
	io.WriterAt
	io.Closer
	// Sync flushes written data to stable storage.
	Sync() error
}

// ValidateName reports whether name is usable as a blob name: a relative,
// clean, slash-separated path without NUL bytes.
func ValidateName(name string) error {
	// A terminator anywhere in the name would truncate it at the syscall layer.
	if name == "" || bstr.ValidateStr([]byte(name), 0, len(name)) {
		return ErrInvalidName
	}
	if path.IsAbs(name) || path.Clean(name) != name || name == "." ||
		bstr.StartsWith(name, "../") || name == ".." {
		return ErrInvalidName
	}
	return nil
}
