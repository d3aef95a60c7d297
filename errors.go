package eusys

import (
	"errors"
)

var (
	// ErrOverflow is returned when a size computation does not fit in an int.
	ErrOverflow = errors.New("size overflow")
)
