// Package retryio drives single-shot transfer primitives (pread, pwrite,
// write) to completion across transient interruptions and short transfers.
//
// # Result
//
// Every operation returns one of three outcomes:
//
//   - (len(p), nil): the full buffer was transferred.
//   - (n, nil) with n < len(p): a short transfer. The primitive reported zero
//     bytes or failed after some progress was made. This is not an error;
//     callers that need completion loop themselves.
//   - (0, err): the primitive failed before any byte was transferred. err is
//     the primitive's error, returned verbatim.
//
// # Interruptions
//
// An error for which the transient predicate returns true (EINTR by default,
// see [WithTransient]) is retried immediately at the same position. There is
// no retry limit: a channel that is interrupted forever is retried forever.
//
// # Usage
//
//	f, _ := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
//	n, err := retryio.WriteAt(f, data, 4096)
//	if err != nil { ... }           // nothing written
//	if n < len(data) { ... }        // short write, caller decides
//
// On unix the same contract is available directly on file descriptors via
// [Pwrite], [Pread] and [WriteFD].
//
// The package holds no state, performs no logging and no buffering. It is
// safe to call concurrently on independent buffers and handles.
package retryio
