// C string helpers shared by the finder, receiver, and sender bindings.

package ndi

import "unsafe"

// maxCStringLen bounds C string scans; NDI metadata payloads are XML
// documents that can reach tens of kilobytes.
const maxCStringLen = 1 << 20

// goString copies a NUL-terminated C string into a Go string.
func goString(ptr unsafe.Pointer) string {
	if ptr == nil {
		return ""
	}
	var length int
	for length < maxCStringLen {
		if *(*byte)(unsafe.Pointer(uintptr(ptr) + uintptr(length))) == 0 {
			break
		}
		length++
	}
	if length == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(ptr), length))
}

// goStringPtr is goString for raw pointers returned through purego.
func goStringPtr(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	return goString(unsafe.Pointer(ptr))
}

// cString returns s as a NUL-terminated byte slice suitable for passing to
// the native side. Callers must keep the slice alive across the call.
func cString(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}
