//go:build !unix

package retryio

import (
	"errors"
	"syscall"
)

// IsInterrupted reports whether err is EINTR.
func IsInterrupted(err error) bool {
	return errors.Is(err, syscall.EINTR)
}
