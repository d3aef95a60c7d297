package blobstore

import (
	"fmt"
	"io"
)

// ShortTransferError indicates that a transfer stopped before the requested
// number of bytes was moved, without the underlying file reporting an error.
//
// The matching io error (io.ErrShortWrite or io.ErrUnexpectedEOF) can be
// accessed via errors.Unwrap.
type ShortTransferError struct {
	Op          string
	Name        string
	Requested   int
	Transferred int
}

func (e *ShortTransferError) Error() string {
	return fmt.Sprintf("blobstore: short %s on %q: %d of %d bytes", e.Op, e.Name, e.Transferred, e.Requested)
}

func (e *ShortTransferError) Unwrap() error {
	if e.Op == "read" {
		return io.ErrUnexpectedEOF
	}
	return io.ErrShortWrite
}
