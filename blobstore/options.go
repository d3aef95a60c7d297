package blobstore

import (
	"os"

	"github.com/hupe1980/eusys/internal/fs"
)

// Logger is a simple interface for logging.
type Logger interface {
	Debugf(format string, args ...any)
	Errorf(format string, args ...any)
}

// noopLogger is a default logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debugf(format string, args ...any) {}
func (noopLogger) Errorf(format string, args ...any) {}

// Option configures a LocalStore.
type Option func(*LocalStore)

// WithLogger sets the logger for the store.
func WithLogger(l Logger) Option {
	return func(s *LocalStore) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithFileMode sets the permission bits of created blobs. Default is 0644.
func WithFileMode(mode os.FileMode) Option {
	return func(s *LocalStore) {
		s.mode = mode.Perm()
	}
}

// WithSync makes Put and Close fsync blobs before publishing them.
func WithSync(sync bool) Option {
	return func(s *LocalStore) {
		s.sync = sync
	}
}

// withFileSystem replaces the filesystem; used by tests for fault injection.
func withFileSystem(fsys fs.FileSystem) Option {
	return func(s *LocalStore) {
		s.fs = fsys
	}
}
