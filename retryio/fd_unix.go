//go:build unix

package retryio

import "golang.org/x/sys/unix"

// Pwrite writes p to the file descriptor fd at off using pwrite(2).
func Pwrite(fd int, p []byte, off int64, opts ...Option) (int, error) {
	return Positioned(func(b []byte, o int64) (int, error) {
		return unix.Pwrite(fd, b, o)
	}, p, off, opts...)
}

// Pread reads len(p) bytes from the file descriptor fd at off using pread(2).
// End of file after some progress yields a short count, not an error.
func Pread(fd int, p []byte, off int64, opts ...Option) (int, error) {
	return Positioned(func(b []byte, o int64) (int, error) {
		return unix.Pread(fd, b, o)
	}, p, off, opts...)
}

// WriteFD writes p to the file descriptor fd at its current offset using write(2).
func WriteFD(fd int, p []byte, opts ...Option) (int, error) {
	return Sequential(func(b []byte) (int, error) {
		return unix.Write(fd, b)
	}, p, opts...)
}
