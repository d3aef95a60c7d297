// Package eusys provides low-level portability and safety helpers for
// binary-analysis tooling.
//
// # Packages
//
//   - [github.com/hupe1980/eusys/retryio]: retry-safe partial I/O over
//     pread/pwrite/write shaped primitives and io.ReaderAt/io.WriterAt/io.Writer
//   - [github.com/hupe1980/eusys/bstr]: bounds-checked NUL-terminated string
//     validation, prefix checks and a non-mutating basename
//   - [github.com/hupe1980/eusys/byteorder]: host/fixed byte order conversion
//   - [github.com/hupe1980/eusys/blobstore]: a local blob store built on retryio
//
// # Quick Start
//
//	f, _ := os.OpenFile("out.bin", os.O_RDWR|os.O_CREATE, eusys.DefFileMode)
//	n, err := retryio.WriteAt(f, data, 4096)
//	switch {
//	case err != nil:
//	    // nothing was written
//	case n < len(data):
//	    // short write; retry the tail or give up
//	}
//
//	if bstr.ValidateStr(strtab, off, len(strtab)) {
//	    name, _ := bstr.CString(strtab, off, len(strtab))
//	    _ = name
//	}
//
// This package holds the remaining mechanical helpers: permission constants,
// [IsPowerOf2], [MulSize], and a structured [Logger] for callers that want
// consistent field names when reporting transfers.
package eusys
