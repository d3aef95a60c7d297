package eusys

import "math/bits"

// IsPowerOf2 reports whether x has at most one bit set. Zero counts as a
// power of two.
func IsPowerOf2(x uint64) bool {
	return x&(x-1) == 0
}

// MulSize returns nmemb*size, or ErrOverflow if either operand is negative
// or the product does not fit in an int. Use it to size allocations derived
// from counts read out of untrusted files.
func MulSize(nmemb, size int) (int, error) {
	if nmemb < 0 || size < 0 {
		return 0, ErrOverflow
	}
	hi, lo := bits.Mul64(uint64(nmemb), uint64(size))
	if hi != 0 || lo > uint64(maxInt) {
		return 0, ErrOverflow
	}
	return int(lo), nil
}

const maxInt = int(^uint(0) >> 1)
