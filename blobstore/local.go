package blobstore

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/eusys/internal/fs"
	"github.com/hupe1980/eusys/retryio"
)

const tmpSuffix = ".tmp"

var _ BlobStore = (*LocalStore)(nil)

// LocalStore implements BlobStore using the local file system.
type LocalStore struct {
	root   string
	fs     fs.FileSystem
	logger Logger
	mode   os.FileMode
	sync   bool
}

// NewLocalStore creates a new LocalStore rooted at the given directory.
func NewLocalStore(root string, opts ...Option) *LocalStore {
	s := &LocalStore{
		root:   root,
		fs:     fs.Default,
		logger: noopLogger{},
		mode:   0o644,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *LocalStore) path(name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", fmt.Errorf("%w: %q", err, name)
	}
	if strings.HasSuffix(name, tmpSuffix) {
		return "", fmt.Errorf("%w: %q uses the reserved %s suffix", ErrInvalidName, name, tmpSuffix)
	}
	return filepath.Join(s.root, filepath.FromSlash(name)), nil
}

// Open opens a blob for reading.
func (s *LocalStore) Open(_ context.Context, name string) (Blob, error) {
	p, err := s.path(name)
	if err != nil {
		return nil, err
	}

	f, err := s.fs.OpenFile(p, os.O_RDONLY, 0)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %q is a directory", ErrNotFound, name)
	}

	return &localBlob{f: f, name: name, size: info.Size()}, nil
}

// Create creates a new writable blob. Data is written to a temporary file
// that is renamed to name on Close. Concurrent writers of the same name do
// not interfere; the last Close wins.
func (s *LocalStore) Create(_ context.Context, name string) (WritableBlob, error) {
	p, err := s.path(name)
	if err != nil {
		return nil, err
	}

	if err := s.fs.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return nil, err
	}

	tmp, err := tempName(p)
	if err != nil {
		return nil, err
	}
	f, err := s.fs.OpenFile(tmp, os.O_RDWR|os.O_CREATE|os.O_EXCL, s.mode)
	if err != nil {
		return nil, err
	}

	return &localWritableBlob{store: s, f: f, name: name, path: p, tmp: tmp}, nil
}

// tempName returns a per-writer temporary path next to p, so concurrent
// writers of one blob never share a file.
func tempName(p string) (string, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	return p + "." + hex.EncodeToString(b[:]) + tmpSuffix, nil
}

// Put writes a blob atomically.
func (s *LocalStore) Put(ctx context.Context, name string, data []byte) error {
	w, err := s.Create(ctx, name)
	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		w.(*localWritableBlob).abort()
		return err
	}

	return w.Close()
}

// PutMany writes several blobs concurrently. It stops at the first error;
// blobs already published stay in place.
func (s *LocalStore) PutMany(ctx context.Context, blobs map[string][]byte) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)

	for name, data := range blobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return s.Put(ctx, name, data)
		})
	}

	return g.Wait()
}

// Delete removes a blob.
func (s *LocalStore) Delete(_ context.Context, name string) error {
	p, err := s.path(name)
	if err != nil {
		return err
	}

	if err := s.fs.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// List returns all blobs matching the prefix. Unpublished temporary files
// are skipped.
func (s *LocalStore) List(_ context.Context, prefix string) ([]string, error) {
	var names []string

	var walk func(dir, rel string) error
	walk = func(dir, rel string) error {
		entries, err := s.fs.ReadDir(dir)
		if err != nil {
			return err
		}
		for _, e := range entries {
			name := e.Name()
			if rel != "" {
				name = rel + "/" + name
			}
			if e.IsDir() {
				if err := walk(filepath.Join(dir, e.Name()), name); err != nil {
					return err
				}
				continue
			}
			if strings.HasSuffix(name, tmpSuffix) {
				continue
			}
			if prefix == "" || strings.HasPrefix(name, prefix) {
				names = append(names, name)
			}
		}
		return nil
	}

	if err := walk(s.root, ""); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return names, nil
}

type localBlob struct {
	f    fs.File
	name string
	size int64

	mu     sync.RWMutex
	closed bool
}

// ReadAt reads len(p) bytes at off. A read crossing the end of the blob
// returns the available bytes and io.EOF.
func (b *localBlob) ReadAt(_ context.Context, p []byte, off int64) (int, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return 0, ErrClosed
	}
	if len(p) == 0 {
		return 0, nil
	}
	if off < 0 {
		return 0, fmt.Errorf("blobstore: negative offset %d", off)
	}
	if off >= b.size {
		return 0, io.EOF
	}

	want := p
	if rem := b.size - off; int64(len(want)) > rem {
		want = want[:rem]
	}

	n, err := retryio.ReadAt(b.f, want, off)
	if err != nil {
		return 0, err
	}
	if n < len(want) {
		// The file shrank underneath us.
		return n, &ShortTransferError{Op: "read", Name: b.name, Requested: len(want), Transferred: n}
	}
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (b *localBlob) ReadRange(ctx context.Context, off, length int64) (io.ReadCloser, error) {
	if off >= b.size {
		return nil, io.EOF
	}
	length = min(length, b.size-off)
	return io.NopCloser(io.NewSectionReader(readerAt{ctx: ctx, b: b}, off, length)), nil
}

func (b *localBlob) Size() int64 {
	return b.size
}

func (b *localBlob) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	return b.f.Close()
}

// readerAt adapts a context-aware Blob to io.ReaderAt.
type readerAt struct {
	ctx context.Context
	b   Blob
}

func (r readerAt) ReadAt(p []byte, off int64) (int, error) {
	return r.b.ReadAt(r.ctx, p, off)
}

type localWritableBlob struct {
	store *LocalStore
	f     fs.File
	name  string
	path  string
	tmp   string

	mu     sync.Mutex
	closed bool
}

func (w *localWritableBlob) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return 0, ErrClosed
	}
	return w.complete("write", p, func() (int, error) {
		return retryio.Write(w.f, p)
	})
}

func (w *localWritableBlob) WriteAt(p []byte, off int64) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return 0, ErrClosed
	}
	return w.complete("pwrite", p, func() (int, error) {
		return retryio.WriteAt(w.f, p, off)
	})
}

// complete turns a short retryio result into a ShortTransferError, since
// io.Writer requires an error whenever n < len(p).
func (w *localWritableBlob) complete(op string, p []byte, transfer func() (int, error)) (int, error) {
	n, err := transfer()
	if err != nil {
		w.store.logger.Errorf("blobstore: %s %q: %v", op, w.name, err)
		return 0, err
	}
	if n < len(p) {
		w.store.logger.Errorf("blobstore: short %s %q: %d of %d bytes", op, w.name, n, len(p))
		return n, &ShortTransferError{Op: op, Name: w.name, Requested: len(p), Transferred: n}
	}
	return n, nil
}

func (w *localWritableBlob) Sync() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrClosed
	}
	return w.f.Sync()
}

// Close publishes the blob under its final name.
func (w *localWritableBlob) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true

	if w.store.sync {
		if err := w.f.Sync(); err != nil {
			_ = w.f.Close()
			_ = w.store.fs.Remove(w.tmp)
			return err
		}
	}
	if err := w.f.Close(); err != nil {
		_ = w.store.fs.Remove(w.tmp)
		return err
	}
	if err := w.store.fs.Rename(w.tmp, w.path); err != nil {
		_ = w.store.fs.Remove(w.tmp)
		return err
	}

	w.store.logger.Debugf("blobstore: published %q", w.name)
	return nil
}

// abort discards the blob without publishing it.
func (w *localWritableBlob) abort() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	w.closed = true
	_ = w.f.Close()
	_ = w.store.fs.Remove(w.tmp)
}
