package bstr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateStr(t *testing.T) {
	table := []byte("\x00.text\x00.data\x00")

	tests := []struct {
		name     string
		buf      []byte
		from, to int
		want     bool
	}{
		{"empty window to zero", table, 0, 0, false},
		{"from equals to", table, 5, 5, false},
		{"from beyond to", table, 8, 3, false},
		{"negative from", table, -1, len(table), false},
		{"nil buffer", nil, 0, 10, false},
		{"whole table", table, 0, len(table), true},
		{"terminator at from", table, 0, 1, true},
		{"terminator only at to-1", table, 1, 7, true},
		{"window stops before terminator", table, 1, 6, false},
		{"second entry", table, 7, len(table), true},
		{"to beyond buffer is clamped", table, 7, 1 << 20, true},
		{"no terminator at all", []byte("unterminated"), 0, 12, false},
		{"terminator before from is ignored", []byte("\x00abc"), 1, 4, false},
		{"terminator at to is ignored", []byte("abc\x00"), 0, 3, false},
		{"terminator in middle", []byte("ab\x00cd"), 0, 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateStr(tt.buf, tt.from, tt.to))
		})
	}
}

func TestValidateStr_MatchesLinearScan(t *testing.T) {
	buf := []byte{1, 0, 2, 3, 0, 0, 4, 5, 6, 0, 7}

	linear := func(from, to int) bool {
		for i := from; i < to && i < len(buf); i++ {
			if i >= 0 && buf[i] == 0 {
				return true
			}
		}
		return false
	}

	for from := -2; from <= len(buf)+2; from++ {
		for to := -1; to <= len(buf)+2; to++ {
			want := from >= 0 && linear(from, to)
			assert.Equal(t, want, ValidateStr(buf, from, to), "from=%d to=%d", from, to)
		}
	}
}

func TestCString(t *testing.T) {
	table := []byte("\x00.text\x00.data")

	s, ok := CString(table, 1, len(table))
	assert.True(t, ok)
	assert.Equal(t, ".text", string(s))

	s, ok = CString(table, 0, len(table))
	assert.True(t, ok)
	assert.Empty(t, s)

	// ".data" is not terminated within the table.
	s, ok = CString(table, 7, len(table))
	assert.False(t, ok)
	assert.Nil(t, s)

	// Appending to the result must not clobber the table.
	s, _ = CString(table, 1, len(table))
	_ = append(s, 'X')
	assert.Equal(t, byte(0), table[6])
}

func TestHasPrefix(t *testing.T) {
	assert.True(t, HasPrefix([]byte("elfutils"), []byte("elf")))
	assert.False(t, HasPrefix([]byte("elf"), []byte("elfutils")))
	assert.True(t, HasPrefix([]byte("anything"), nil))
	assert.True(t, HasPrefix(nil, []byte{}))
	assert.True(t, HasPrefix([]byte("elf"), []byte("elf")))
	assert.False(t, HasPrefix([]byte("elfutils"), []byte("elv")))
	assert.False(t, HasPrefix([]byte{}, []byte{0}))
}

func TestStartsWith(t *testing.T) {
	assert.True(t, StartsWith("elfutils", "elf"))
	assert.False(t, StartsWith("elf", "elfutils"))
	assert.True(t, StartsWith("anything", ""))
}

func TestBasename(t *testing.T) {
	tests := map[string]string{
		"":                   "",
		"libelf.so":          "libelf.so",
		"/usr/lib/libelf.so": "libelf.so",
		"dir/":               "",
		"/":                  "",
		"a//b":               "b",
	}

	for in, want := range tests {
		assert.Equal(t, want, Basename(in), "Basename(%q)", in)
	}
}
