// Package blobstore stores named, immutable data blobs (object files, debug
// sections, extracted archives) on the local filesystem.
//
// All transfers go through [github.com/hupe1980/eusys/retryio], so EINTR is
// absorbed and short transfers are surfaced explicitly: a blob write that
// stops early fails with a [*ShortTransferError], and a blob read past the end
// returns the bytes available together with io.EOF, as io.ReaderAt requires.
//
// # Implementations
//
//   - LocalStore: files below a root directory, written via a temp file and
//     renamed into place on Close
//   - MemoryStore: in-memory store for tests
//
// # Interface
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)
//	    Create(ctx, name) (WritableBlob, error)
//	    Put(ctx, name, data) error
//	    Delete(ctx, name) error
//	    List(ctx, prefix) ([]string, error)
//	}
package blobstore
