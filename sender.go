//go:build darwin || linux

package ndi

import (
	"errors"
	"runtime"
	"strings"
	"sync"
	"unsafe"
)

// sendCreateSettings matches NDIlib_send_create_t.
type sendCreateSettings struct {
	Name       unsafe.Pointer
	Groups     unsafe.Pointer
	ClockVideo bool
	ClockAudio bool
}

// SenderConfig configures a send session. ClockVideo and ClockAudio pace
// transmission to the declared frame rate and sample rate respectively;
// enable at most one to avoid double-pacing.
type SenderConfig struct {
	Name       string   // source name advertised on the network
	Groups     []string // groups to publish into, empty = default
	ClockVideo bool
	ClockAudio bool
}

// DefaultSenderConfig returns the default send configuration: video-clocked,
// default groups.
func DefaultSenderConfig() *SenderConfig {
	return &SenderConfig{Name: "ndi-go sender", ClockVideo: true}
}

// Sender publishes frames as a new NDI source. A Sender is not safe for
// concurrent use.
type Sender struct {
	mu     sync.Mutex
	handle uintptr
}

// NewSender creates a send session. A nil config means DefaultSenderConfig.
func NewSender(config *SenderConfig) (*Sender, error) {
	if err := Initialize(); err != nil {
		return nil, err
	}
	if config == nil {
		config = DefaultSenderConfig()
	}

	settings := &sendCreateSettings{
		ClockVideo: config.ClockVideo,
		ClockAudio: config.ClockAudio,
	}
	var name, groups []byte
	if config.Name != "" {
		name = cString(config.Name)
		settings.Name = unsafe.Pointer(&name[0])
	}
	if len(config.Groups) > 0 {
		groups = cString(strings.Join(config.Groups, ","))
		settings.Groups = unsafe.Pointer(&groups[0])
	}

	handle := ndiSendCreate(uintptr(unsafe.Pointer(settings)))
	runtime.KeepAlive(settings)
	runtime.KeepAlive(name)
	runtime.KeepAlive(groups)
	if handle == 0 {
		return nil, errors.New("ndi: failed to create sender")
	}
	return &Sender{handle: handle}, nil
}

// SendVideo transmits a video frame. The call is synchronous with respect to
// buffer reuse: it never takes ownership of the frame's Data or Metadata, and
// once it returns the caller may overwrite the buffers for the next frame.
// A nil frame or closed sender is a no-op.
func (s *Sender) SendVideo(frame *VideoFrame) {
	if s == nil || frame == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.handle == 0 {
		return
	}
	ndiSendSendVideoV2(s.handle, uintptr(unsafe.Pointer(frame)))
	runtime.KeepAlive(frame)
}

// SendAudio transmits an audio frame under the same ownership contract as
// SendVideo.
func (s *Sender) SendAudio(frame *AudioFrame) {
	if s == nil || frame == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.handle == 0 {
		return
	}
	ndiSendSendAudioV3(s.handle, uintptr(unsafe.Pointer(frame)))
	runtime.KeepAlive(frame)
}

// Close withdraws the source from the network and releases the session.
// Safe to call on a nil or already-closed sender.
func (s *Sender) Close() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.handle != 0 {
		ndiSendDestroy(s.handle)
		s.handle = 0
	}
	return nil
}
