//go:build darwin || linux

package ndi

import (
	"errors"
	"testing"
	"time"
)

func TestFinder_NilSafe(t *testing.T) {
	var f *Finder
	if err := f.Close(); err != nil {
		t.Errorf("nil Close() = %v, want nil", err)
	}
	if _, err := f.WaitForSources(0); !errors.Is(err, ErrClosed) {
		t.Errorf("nil WaitForSources() err = %v, want ErrClosed", err)
	}
	if _, ok := f.Source(0); ok {
		t.Error("nil Source(0) ok = true, want false")
	}
	if n := f.NumSources(); n != 0 {
		t.Errorf("nil NumSources() = %d, want 0", n)
	}
}

func TestFinder_Closed(t *testing.T) {
	f := &Finder{}
	if _, err := f.WaitForSources(0); !errors.Is(err, ErrClosed) {
		t.Errorf("WaitForSources on closed finder err = %v, want ErrClosed", err)
	}
	if err := f.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}
}

func TestFinder_SourceBounds(t *testing.T) {
	f := &Finder{sources: []Source{{Name: "MACHINE (Cam)"}}}

	if _, ok := f.Source(-1); ok {
		t.Error("Source(-1) ok = true, want false")
	}
	if _, ok := f.Source(1); ok {
		t.Error("Source(1) ok = true, want false")
	}
	src, ok := f.Source(0)
	if !ok || src.Name != "MACHINE (Cam)" {
		t.Errorf("Source(0) = %+v, %v", src, ok)
	}
}

func TestFinder_Discovery(t *testing.T) {
	if !IsAvailable() {
		t.Skip("NDI runtime not available")
	}

	f, err := NewFinder(nil)
	if err != nil {
		t.Fatalf("NewFinder: %v", err)
	}
	defer f.Close()

	// Two consecutive polls with no topology change must agree as sets.
	first, err := f.WaitForSources(2 * time.Second)
	if err != nil {
		t.Fatalf("WaitForSources: %v", err)
	}
	second, err := f.WaitForSources(0)
	if err != nil {
		t.Fatalf("WaitForSources: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("snapshot sizes differ: %d vs %d", len(first), len(second))
	}
	names := make(map[string]bool, len(first))
	for _, s := range first {
		if s.Name == "" {
			t.Error("discovered source with empty name")
		}
		names[s.Name] = true
	}
	for _, s := range second {
		if !names[s.Name] {
			t.Errorf("source %q missing from first snapshot", s.Name)
		}
	}

	if n := f.NumSources(); n != len(second) {
		t.Errorf("NumSources() = %d, want %d", n, len(second))
	}
}

func TestFinder_ConfigGroups(t *testing.T) {
	if !IsAvailable() {
		t.Skip("NDI runtime not available")
	}

	f, err := NewFinder(&FinderConfig{
		ShowLocalSources: true,
		Groups:           []string{"Public", "Studio"},
		ExtraAddresses:   []string{"127.0.0.1"},
	})
	if err != nil {
		t.Fatalf("NewFinder with config: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
