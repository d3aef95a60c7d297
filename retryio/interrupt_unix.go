//go:build unix

package retryio

import (
	"errors"

	"golang.org/x/sys/unix"
)

// IsInterrupted reports whether err is EINTR.
func IsInterrupted(err error) bool {
	return errors.Is(err, unix.EINTR)
}
