package fs

import (
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFS(t *testing.T) {
	tmp := t.TempDir()
	lfs := LocalFS{}

	dir := filepath.Join(tmp, "subdir")
	assert.NoError(t, lfs.MkdirAll(dir, 0o755))

	fpath := filepath.Join(dir, "test.txt")
	f, err := lfs.OpenFile(fpath, os.O_CREATE|os.O_RDWR, 0o644)
	require.NoError(t, err)

	_, err = f.Write([]byte("hello"))
	assert.NoError(t, err)

	n, err := f.WriteAt([]byte("J"), 0)
	assert.NoError(t, err)
	assert.Equal(t, 1, n)

	buf := make([]byte, 5)
	n, err = f.ReadAt(buf, 0)
	assert.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "Jello", string(buf))

	assert.NoError(t, f.Sync())

	info, err := f.Stat()
	assert.NoError(t, err)
	assert.Equal(t, int64(5), info.Size())
	assert.Equal(t, fpath, f.Name())

	assert.NoError(t, f.Close())

	entries, err := lfs.ReadDir(dir)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)

	newPath := filepath.Join(dir, "renamed.txt")
	assert.NoError(t, lfs.Rename(fpath, newPath))

	assert.NoError(t, lfs.Truncate(newPath, 3))
	info, err = lfs.Stat(newPath)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), info.Size())

	assert.NoError(t, lfs.Remove(newPath))
	_, err = lfs.Stat(newPath)
	assert.True(t, os.IsNotExist(err))
}

func TestLocalFS_OpenMissing(t *testing.T) {
	f, err := LocalFS{}.OpenFile(filepath.Join(t.TempDir(), "missing"), os.O_RDONLY, 0)
	require.Error(t, err)
	// A nil *os.File must not leak out as a non-nil File.
	assert.Nil(t, f)
}

func TestFaultyFS_Interrupts(t *testing.T) {
	ffs := NewFaultyFS(nil)
	ffs.AddRule(".bin", Fault{Interrupts: 2, FailAfterBytes: -1})

	f, err := ffs.OpenFile(filepath.Join(t.TempDir(), "data.bin"), os.O_CREATE|os.O_RDWR, 0o644)
	require.NoError(t, err)
	defer f.Close()

	for i := 0; i < 2; i++ {
		n, err := f.Write([]byte("abc"))
		assert.ErrorIs(t, err, syscall.EINTR)
		assert.Equal(t, 0, n)
	}

	n, err := f.Write([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	// The interrupt budget resets after every real call.
	_, err = f.WriteAt([]byte("x"), 0)
	assert.ErrorIs(t, err, syscall.EINTR)

	assert.Equal(t, int64(4), ffs.Calls())
	assert.Equal(t, int64(3), ffs.Moved())
}

func TestFaultyFS_MaxChunk(t *testing.T) {
	ffs := NewFaultyFS(nil)
	ffs.Default = Fault{MaxChunk: 2, FailAfterBytes: -1}

	f, err := ffs.OpenFile(filepath.Join(t.TempDir(), "chunk"), os.O_CREATE|os.O_RDWR, 0o644)
	require.NoError(t, err)
	defer f.Close()

	n, err := f.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	buf := make([]byte, 5)
	n, err = f.ReadAt(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "he", string(buf[:n]))
}

func TestFaultyFS_FailAfterBytes(t *testing.T) {
	sentinel := errors.New("disk full")

	ffs := NewFaultyFS(nil)
	ffs.AddRule("faulty", Fault{FailAfterBytes: 5, Err: sentinel})
	ffs.AddRule("faulty.txt", Fault{FailAfterBytes: 3})

	tmp := t.TempDir()

	// Longest matching pattern wins.
	f, err := ffs.OpenFile(filepath.Join(tmp, "faulty.txt"), os.O_CREATE|os.O_RDWR, 0o644)
	require.NoError(t, err)

	n, err := f.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = f.Write([]byte("!"))
	assert.ErrorIs(t, err, errInjected)
	assert.Equal(t, 0, n)
	require.NoError(t, f.Close())

	g, err := ffs.OpenFile(filepath.Join(tmp, "faulty.log"), os.O_CREATE|os.O_RDWR, 0o644)
	require.NoError(t, err)
	defer g.Close()

	n, err = g.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	_, err = g.Write([]byte("!"))
	assert.ErrorIs(t, err, sentinel)
}

func TestFaultyFS_SyncAndClose(t *testing.T) {
	ffs := NewFaultyFS(LocalFS{})
	ffs.Default = Fault{FailAfterBytes: -1, FailOnSync: true, FailOnClose: true}

	f, err := ffs.OpenFile(filepath.Join(t.TempDir(), "x"), os.O_CREATE|os.O_RDWR, 0o644)
	require.NoError(t, err)

	assert.Error(t, f.Sync())
	assert.Error(t, f.Close())
}

func TestFaultyFS_Delegation(t *testing.T) {
	tmp := t.TempDir()
	lfs := LocalFS{}
	ffs := NewFaultyFS(lfs)

	dir := filepath.Join(tmp, "subdir")
	assert.NoError(t, ffs.MkdirAll(dir, 0o755))

	fpath := filepath.Join(dir, "test.txt")
	f, err := lfs.OpenFile(fpath, os.O_CREATE, 0o644)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.NoError(t, ffs.Truncate(fpath, 10))

	info, err := ffs.Stat(fpath)
	require.NoError(t, err)
	assert.Equal(t, int64(10), info.Size())

	assert.NoError(t, ffs.Rename(fpath, fpath+".renamed"))
	assert.NoError(t, ffs.Remove(fpath+".renamed"))

	entries, err := ffs.ReadDir(dir)
	assert.NoError(t, err)
	assert.Empty(t, entries)
}
