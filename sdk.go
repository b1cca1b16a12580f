//go:build darwin || linux

package ndi

import (
	"errors"
	"sync"
	"time"
)

var (
	// ErrClosed is returned when an operation is attempted on a nil or
	// already-closed handle.
	ErrClosed = errors.New("ndi: handle closed")

	// ErrNotInitialized is returned when the NDI runtime could not be
	// loaded or initialized.
	ErrNotInitialized = errors.New("ndi: runtime not initialized")
)

var (
	initMu      sync.Mutex
	initialized bool
)

// Initialize loads libndi and initializes the process-wide NDI runtime.
// It is safe to call more than once; only the first call after process start
// (or after Destroy) does work. Finder/Receiver/Sender constructors call it
// lazily.
func Initialize() error {
	initMu.Lock()
	defer initMu.Unlock()

	if initialized {
		return nil
	}
	if err := loadNDI(); err != nil {
		return err
	}
	if !ndiLibInitialize() {
		return errors.New("ndi: initialization failed (CPU unsupported or runtime unusable)")
	}
	initialized = true
	return nil
}

// Destroy tears down the process-wide NDI runtime. It must only be called
// after every finder, receiver, and sender has been closed; it is a no-op if
// the runtime was never initialized. The lifecycle is not reference counted.
func Destroy() {
	initMu.Lock()
	defer initMu.Unlock()

	if !initialized {
		return
	}
	ndiLibDestroy()
	initialized = false
}

// IsAvailable reports whether the NDI runtime can be loaded and initialized
// on this machine.
func IsAvailable() bool {
	return Initialize() == nil
}

// Version returns the NDI runtime version string, or "" when the runtime is
// unavailable.
func Version() string {
	if err := Initialize(); err != nil {
		return ""
	}
	return goStringPtr(ndiLibVersion())
}

// timeoutMs converts a Go duration to the millisecond timeouts libndi
// expects. Zero and negative durations mean "return immediately".
func timeoutMs(d time.Duration) uint32 {
	if d <= 0 {
		return 0
	}
	ms := d.Milliseconds()
	if ms > int64(^uint32(0)) {
		return ^uint32(0)
	}
	return uint32(ms)
}
