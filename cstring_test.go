package ndi

import (
	"testing"
	"unsafe"
)

func TestCString(t *testing.T) {
	b := cString("hello")
	if len(b) != 6 {
		t.Fatalf("len = %d, want 6", len(b))
	}
	if b[5] != 0 {
		t.Error("missing NUL terminator")
	}
	if string(b[:5]) != "hello" {
		t.Errorf("content = %q, want hello", b[:5])
	}
}

func TestGoString(t *testing.T) {
	if got := goString(nil); got != "" {
		t.Errorf("goString(nil) = %q, want empty", got)
	}

	b := cString("NDI Source (Camera 1)")
	if got := goString(unsafe.Pointer(&b[0])); got != "NDI Source (Camera 1)" {
		t.Errorf("goString = %q", got)
	}

	empty := []byte{0}
	if got := goString(unsafe.Pointer(&empty[0])); got != "" {
		t.Errorf("goString(\"\") = %q, want empty", got)
	}
}

func TestGoString_RoundTrip(t *testing.T) {
	for _, s := range []string{"a", "groups=Public,Private", "<xml attr=\"v\"/>"} {
		b := cString(s)
		if got := goString(unsafe.Pointer(&b[0])); got != s {
			t.Errorf("round trip %q -> %q", s, got)
		}
	}
}
