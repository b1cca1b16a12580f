//go:build darwin || linux

package ndi

import (
	"testing"
	"time"
)

func TestTimeoutMs(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want uint32
	}{
		{0, 0},
		{-time.Second, 0},
		{time.Millisecond, 1},
		{1500 * time.Millisecond, 1500},
		{100 * 24 * time.Hour, ^uint32(0)},
	}
	for _, tt := range tests {
		if got := timeoutMs(tt.d); got != tt.want {
			t.Errorf("timeoutMs(%v) = %d, want %d", tt.d, got, tt.want)
		}
	}
}

func TestInitialize(t *testing.T) {
	if !IsAvailable() {
		t.Skip("NDI runtime not available")
	}

	// Repeated Initialize is a no-op, not an error.
	if err := Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if err := Initialize(); err != nil {
		t.Errorf("second Initialize: %v", err)
	}

	if v := Version(); v == "" {
		t.Error("Version() empty with runtime initialized")
	}
}

func TestDestroy_Idempotent(t *testing.T) {
	if !IsAvailable() {
		t.Skip("NDI runtime not available")
	}

	Destroy()
	Destroy() // second call must be a guarded no-op

	if err := Initialize(); err != nil {
		t.Fatalf("re-Initialize after Destroy: %v", err)
	}
}
