// Package bstr provides bounds-checked helpers for NUL-terminated byte
// strings read from untrusted binary files, such as ELF string tables.
//
// None of the functions read outside the window they are given, and none of
// them fail: degenerate or out-of-range input yields false.
package bstr
