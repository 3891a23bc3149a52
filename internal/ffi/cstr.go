package ffi

import "unsafe"

// GoString copies a NUL-terminated C string into an owned Go string.
// Returns "" for nil.
func GoString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	if n == 0 {
		return ""
	}
	return string(unsafe.Slice(p, n))
}

// BufString reads a NUL-terminated string out of a fixed-size buffer. If no
// terminator is present the whole buffer is used.
func BufString(buf []byte) string {
	for i, b := range buf {
		if b == 0 {
			return string(buf[:i])
		}
	}
	return string(buf)
}

// CString allocates a NUL-terminated copy of s in Go memory and returns a
// pointer to its first byte. The native calls taking these pointers are
// synchronous; the caller keeps the enclosing request struct alive for the
// duration of the call, which keeps the backing array reachable.
func CString(s string) *byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return &b[0]
}

// CStringOrNil is CString, except the empty string maps to a NULL pointer
// for the header's optional parameters.
func CStringOrNil(s string) *byte {
	if s == "" {
		return nil
	}
	return CString(s)
}
