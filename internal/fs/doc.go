// Package fs provides filesystem abstractions for testability and fault injection.
//
// The package defines two key interfaces:
//
//   - [File]: an open file with sequential and positioned read/write
//   - [FileSystem]: filesystem operations (open, remove, rename, etc.)
//
// # Implementations
//
//   - [LocalFS]: production implementation using the os package
//   - [FaultyFS]: test utility that injects interruptions, short transfers
//     and hard failures into every transfer primitive of the files it opens
//
// # Usage
//
// Production code uses fs.Default (which is [LocalFS]):
//
//	file, err := fs.Default.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
//
// Tests inject [FaultyFS] to exercise retry and short-transfer handling:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.AddRule(".bin", fs.Fault{Interrupts: 3, MaxChunk: 512})
//	// inject ffs into component under test
//
// This package intentionally does NOT include context.Context parameters.
// Local filesystem operations are not cancellable at the syscall level.
package fs
