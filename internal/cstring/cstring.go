// Package cstring converts between Go strings and NUL-terminated C strings.
package cstring

import (
	"errors"
	"strings"
	"unsafe"
)

// ErrEmbeddedNUL is returned for strings that cannot cross into C unchanged.
var ErrEmbeddedNUL = errors.New("string contains an embedded NUL byte")

// maxLen bounds GoString so a missing terminator cannot walk off into
// unrelated memory forever. SDL_GetError's buffer is far smaller.
const maxLen = 4096

// Check reports ErrEmbeddedNUL if s would be truncated by a C callee.
func Check(s string) error {
	if strings.IndexByte(s, 0) >= 0 {
		return ErrEmbeddedNUL
	}
	return nil
}

// GoString copies the NUL-terminated string at p, reading at most maxLen
// bytes. A nil p yields "".
func GoString(p *byte) string {
	if p == nil {
		return ""
	}
	for i := 0; ; i++ {
		if i >= maxLen || *(*byte)(unsafe.Add(unsafe.Pointer(p), i)) == 0 {
			return string(unsafe.Slice(p, i))
		}
	}
}
