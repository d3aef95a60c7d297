// Package byteorder converts integers between host byte order and a fixed
// little- or big-endian order.
//
// On a host whose order matches the named one the conversions are the
// identity; otherwise they swap bytes. Each conversion is its own inverse.
package byteorder

import (
	"encoding/binary"
	"math/bits"
)

// Native returns the byte order of the host.
func Native() binary.ByteOrder {
	if littleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// IsLittleEndian reports whether the host is little-endian.
func IsLittleEndian() bool { return littleEndian }

// LE32 converts n between host order and little-endian.
func LE32(n uint32) uint32 {
	if littleEndian {
		return n
	}
	return bits.ReverseBytes32(n)
}

// LE64 converts n between host order and little-endian.
func LE64(n uint64) uint64 {
	if littleEndian {
		return n
	}
	return bits.ReverseBytes64(n)
}

// BE32 converts n between host order and big-endian.
func BE32(n uint32) uint32 {
	if littleEndian {
		return bits.ReverseBytes32(n)
	}
	return n
}

// BE64 converts n between host order and big-endian.
func BE64(n uint64) uint64 {
	if littleEndian {
		return bits.ReverseBytes64(n)
	}
	return n
}
