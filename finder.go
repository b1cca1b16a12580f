//go:build darwin || linux

package ndi

import (
	"errors"
	"runtime"
	"strings"
	"sync"
	"time"
	"unsafe"
)

// Source is a discovered NDI endpoint. Both strings are copies; they remain
// valid after the finder that produced them is polled again or closed.
type Source struct {
	Name    string // display name, never empty for a discovered source
	Address string // URL address, may be empty
}

// nativeSource matches NDIlib_source_t.
type nativeSource struct {
	Name    unsafe.Pointer
	Address unsafe.Pointer
}

// findCreateSettings matches NDIlib_find_create_t.
type findCreateSettings struct {
	ShowLocalSources bool
	Groups           unsafe.Pointer // comma-separated, nil = default groups
	ExtraIPs         unsafe.Pointer // comma-separated, nil = none
}

// FinderConfig configures source discovery.
type FinderConfig struct {
	ShowLocalSources bool     // include sources running on this machine
	Groups           []string // restrict discovery to these groups
	ExtraAddresses   []string // additional addresses to probe
}

// DefaultFinderConfig returns the default discovery configuration: local
// sources included, default groups, no extra addresses.
func DefaultFinderConfig() *FinderConfig {
	return &FinderConfig{ShowLocalSources: true}
}

// Finder discovers NDI sources on the network. A Finder is not safe for
// concurrent use.
type Finder struct {
	mu      sync.Mutex
	handle  uintptr
	sources []Source // last snapshot
}

// NewFinder creates a finder. A nil config means DefaultFinderConfig.
func NewFinder(config *FinderConfig) (*Finder, error) {
	if err := Initialize(); err != nil {
		return nil, err
	}
	if config == nil {
		config = DefaultFinderConfig()
	}

	settings := &findCreateSettings{ShowLocalSources: config.ShowLocalSources}
	var groups, extra []byte
	if len(config.Groups) > 0 {
		groups = cString(strings.Join(config.Groups, ","))
		settings.Groups = unsafe.Pointer(&groups[0])
	}
	if len(config.ExtraAddresses) > 0 {
		extra = cString(strings.Join(config.ExtraAddresses, ","))
		settings.ExtraIPs = unsafe.Pointer(&extra[0])
	}

	handle := ndiFindCreateV2(uintptr(unsafe.Pointer(settings)))
	runtime.KeepAlive(settings)
	runtime.KeepAlive(groups)
	runtime.KeepAlive(extra)
	if handle == 0 {
		return nil, errors.New("ndi: failed to create finder")
	}
	return &Finder{handle: handle}, nil
}

// WaitForSources blocks up to timeout for the set of visible sources to
// change, then returns the current full snapshot. A timeout of 0 returns
// whatever is currently known without blocking. The returned slice and its
// strings are Go copies and stay valid across later polls.
func (f *Finder) WaitForSources(timeout time.Duration) ([]Source, error) {
	if f == nil {
		return nil, ErrClosed
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.handle == 0 {
		return nil, ErrClosed
	}

	ndiFindWaitForSources(f.handle, timeoutMs(timeout))

	var count uint32
	ptr := ndiFindGetCurrentSources(f.handle, uintptr(unsafe.Pointer(&count)))
	f.sources = copySources(ptr, int(count))
	return f.sources, nil
}

// copySources copies a native source array into Go-owned values. The native
// array is owned by the finder and valid only until the next poll, so
// everything is copied before returning.
func copySources(ptr uintptr, count int) []Source {
	if ptr == 0 || count <= 0 {
		return nil
	}
	native := unsafe.Slice((*nativeSource)(unsafe.Pointer(ptr)), count)
	out := make([]Source, count)
	for i, src := range native {
		out[i] = Source{
			Name:    goString(src.Name),
			Address: goString(src.Address),
		}
	}
	return out
}

// NumSources returns the size of the last snapshot.
func (f *Finder) NumSources() int {
	if f == nil {
		return 0
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sources)
}

// Source returns the source at index in the last snapshot taken by
// WaitForSources. Out-of-range indices return ok == false.
func (f *Finder) Source(index int) (Source, bool) {
	if f == nil {
		return Source{}, false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if index < 0 || index >= len(f.sources) {
		return Source{}, false
	}
	return f.sources[index], true
}

// Close releases the finder's discovery resources. It is safe to call on a
// nil or already-closed finder.
func (f *Finder) Close() error {
	if f == nil {
		return nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.handle != 0 {
		ndiFindDestroy(f.handle)
		f.handle = 0
	}
	f.sources = nil
	return nil
}
