package bstr

import (
	"bytes"
	"strings"
)

// Terminator marks the logical end of a bounded byte string.
const Terminator byte = 0

// ValidateStr reports whether buf[from] starts a valid string, that is,
// whether a terminator exists at some index in [from, to). to is the usable
// size of buf, not the string length; it is clamped to len(buf).
//
// ValidateStr returns false when to is zero or from >= to.
func ValidateStr(buf []byte, from, to int) bool {
	to = min(to, len(buf))
	if from < 0 || to <= 0 || from >= to {
		return false
	}
	// The last byte of a string table is usually the terminator.
	if buf[to-1] == Terminator {
		return true
	}
	return bytes.LastIndexByte(buf[from:to-1], Terminator) >= 0
}

// CString returns the bytes of the string starting at buf[from], excluding
// its terminator. ok is false if no terminator exists in [from, to).
// The result aliases buf.
func CString(buf []byte, from, to int) (s []byte, ok bool) {
	if !ValidateStr(buf, from, to) {
		return nil, false
	}
	end := bytes.IndexByte(buf[from:to], Terminator)
	return buf[from : from+end : from+end], true
}

// HasPrefix reports whether s begins with prefix. Exactly len(prefix) bytes
// are compared; an empty prefix always matches.
func HasPrefix(s, prefix []byte) bool {
	return bytes.HasPrefix(s, prefix)
}

// StartsWith is the string form of HasPrefix.
func StartsWith(s, prefix string) bool {
	return strings.HasPrefix(s, prefix)
}

// Basename returns the part of path after the last slash, or path itself if
// it contains none. Unlike filepath.Base it never trims trailing slashes, so
// "dir/" yields "".
func Basename(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}
