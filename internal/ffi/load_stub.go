//go:build !windows || !amd64

package ffi

// Load reports that the vendor library cannot be loaded on this platform.
func Load(string) error {
	return ErrUnsupportedPlatform
}

// CallbackPtr returns 0; the stub RegisterCallback ignores it.
func CallbackPtr() uintptr {
	return 0
}
