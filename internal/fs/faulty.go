package fs

import (
	"errors"
	"os"
	"strings"
	"sync"
	"syscall"
)

// errInjected is returned for injected failures when no Err is configured.
var errInjected = errors.New("injected fault error")

// Fault defines the failure behavior of a file.
type Fault struct {
	// Interrupts is the number of EINTR results returned before each
	// successful call to a transfer primitive.
	Interrupts int
	// MaxChunk caps the bytes moved per primitive call. 0 disables the cap.
	MaxChunk int
	// FailAfterBytes fails transfers once this many bytes have been moved
	// through the file. -1 disables the limit.
	FailAfterBytes int64
	FailOnSync     bool
	FailOnClose    bool
	Err            error
}

func (f Fault) err() error {
	if f.Err != nil {
		return f.Err
	}
	return errInjected
}

// FaultyFS is a FileSystem wrapper that injects faults into opened files.
type FaultyFS struct {
	FS      FileSystem
	Default Fault

	mu    sync.Mutex
	rules map[string]Fault // name substring -> fault
	calls int64
	moved int64
}

// NewFaultyFS creates a new FaultyFS wrapping fs (or Default if nil).
func NewFaultyFS(fs FileSystem) *FaultyFS {
	if fs == nil {
		fs = Default
	}
	return &FaultyFS{
		FS:      fs,
		Default: Fault{FailAfterBytes: -1},
		rules:   make(map[string]Fault),
	}
}

// AddRule sets the fault for files whose name contains pattern.
// When several patterns match, the longest wins.
func (f *FaultyFS) AddRule(pattern string, fault Fault) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rules[pattern] = fault
}

// Calls returns the number of transfer primitive invocations, including
// interrupted ones.
func (f *FaultyFS) Calls() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// Moved returns the total bytes transferred through faulty files.
func (f *FaultyFS) Moved() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.moved
}

func (f *FaultyFS) OpenFile(name string, flag int, perm os.FileMode) (File, error) {
	file, err := f.FS.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	fault := f.Default
	best := -1
	for pattern, rule := range f.rules {
		if strings.Contains(name, pattern) && len(pattern) > best {
			fault, best = rule, len(pattern)
		}
	}
	f.mu.Unlock()

	return &faultyFile{File: file, fs: f, fault: fault}, nil
}

func (f *FaultyFS) Remove(name string) error {
	return f.FS.Remove(name)
}

func (f *FaultyFS) Rename(oldpath, newpath string) error {
	return f.FS.Rename(oldpath, newpath)
}

func (f *FaultyFS) Stat(name string) (os.FileInfo, error) {
	return f.FS.Stat(name)
}

func (f *FaultyFS) MkdirAll(path string, perm os.FileMode) error {
	return f.FS.MkdirAll(path, perm)
}

func (f *FaultyFS) ReadDir(name string) ([]os.DirEntry, error) {
	return f.FS.ReadDir(name)
}

func (f *FaultyFS) Truncate(name string, size int64) error {
	return f.FS.Truncate(name, size)
}

type faultyFile struct {
	File
	fs    *FaultyFS
	fault Fault

	mu          sync.Mutex
	interrupted int // EINTRs returned since the last real call
	moved       int64
}

// admit runs the fault checks shared by all transfer primitives. It returns
// the (possibly shortened) buffer to hand to the real file, or an error.
func (ff *faultyFile) admit(p []byte) ([]byte, error) {
	ff.fs.mu.Lock()
	ff.fs.calls++
	ff.fs.mu.Unlock()

	ff.mu.Lock()
	defer ff.mu.Unlock()

	if ff.interrupted < ff.fault.Interrupts {
		ff.interrupted++
		return nil, syscall.EINTR
	}
	ff.interrupted = 0

	if ff.fault.FailAfterBytes >= 0 && ff.moved >= ff.fault.FailAfterBytes {
		return nil, ff.fault.err()
	}

	if ff.fault.MaxChunk > 0 && len(p) > ff.fault.MaxChunk {
		p = p[:ff.fault.MaxChunk]
	}
	if ff.fault.FailAfterBytes >= 0 {
		if left := ff.fault.FailAfterBytes - ff.moved; int64(len(p)) > left {
			p = p[:left]
		}
	}
	return p, nil
}

func (ff *faultyFile) account(n int) {
	if n <= 0 {
		return
	}
	ff.mu.Lock()
	ff.moved += int64(n)
	ff.mu.Unlock()

	ff.fs.mu.Lock()
	ff.fs.moved += int64(n)
	ff.fs.mu.Unlock()
}

func (ff *faultyFile) Write(p []byte) (int, error) {
	b, err := ff.admit(p)
	if err != nil {
		return 0, err
	}
	n, err := ff.File.Write(b)
	ff.account(n)
	return n, err
}

func (ff *faultyFile) WriteAt(p []byte, off int64) (int, error) {
	b, err := ff.admit(p)
	if err != nil {
		return 0, err
	}
	n, err := ff.File.WriteAt(b, off)
	ff.account(n)
	return n, err
}

func (ff *faultyFile) Read(p []byte) (int, error) {
	b, err := ff.admit(p)
	if err != nil {
		return 0, err
	}
	n, err := ff.File.Read(b)
	ff.account(n)
	return n, err
}

func (ff *faultyFile) ReadAt(p []byte, off int64) (int, error) {
	b, err := ff.admit(p)
	if err != nil {
		return 0, err
	}
	n, err := ff.File.ReadAt(b, off)
	ff.account(n)
	return n, err
}

func (ff *faultyFile) Sync() error {
	if ff.fault.FailOnSync {
		return ff.fault.err()
	}
	return ff.File.Sync()
}

func (ff *faultyFile) Close() error {
	if ff.fault.FailOnClose {
		_ = ff.File.Close()
		return ff.fault.err()
	}
	return ff.File.Close()
}
