//go:build darwin || linux

package ndi

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"
	"unsafe"
)

// ErrCaptureFailed is returned when the runtime reports a capture or
// connection fault. The receiver stays usable; callers decide whether to
// retry, reconnect, or close.
var ErrCaptureFailed = errors.New("ndi: capture failed")

// ColorFormat selects the pixel packing a receiver asks the runtime to
// deliver. Values match NDIlib_recv_color_format_e.
type ColorFormat int32

const (
	ColorFormatBGRXBGRA ColorFormat = 0 // BGRX, BGRA when alpha present
	ColorFormatUYVYBGRA ColorFormat = 1
	ColorFormatRGBXRGBA ColorFormat = 2
	ColorFormatUYVYRGBA ColorFormat = 3
	ColorFormatFastest  ColorFormat = 100 // whatever is cheapest for the sender
	ColorFormatBest     ColorFormat = 101 // highest fidelity available
)

// Bandwidth trades stream fidelity for network cost. Values match
// NDIlib_recv_bandwidth_e.
type Bandwidth int32

const (
	BandwidthMetadataOnly Bandwidth = -10
	BandwidthAudioOnly    Bandwidth = 10
	BandwidthLowest       Bandwidth = 0
	BandwidthHighest      Bandwidth = 100
)

// FrameType tags the outcome of a Capture call. Values match
// NDIlib_frame_type_e.
type FrameType int32

const (
	FrameTypeNone         FrameType = 0 // timeout elapsed, nothing available
	FrameTypeVideo        FrameType = 1
	FrameTypeAudio        FrameType = 2
	FrameTypeMetadata     FrameType = 3
	FrameTypeError        FrameType = 4
	FrameTypeStatusChange FrameType = 100 // stream properties changed
)

func (t FrameType) String() string {
	switch t {
	case FrameTypeNone:
		return "None"
	case FrameTypeVideo:
		return "Video"
	case FrameTypeAudio:
		return "Audio"
	case FrameTypeMetadata:
		return "Metadata"
	case FrameTypeError:
		return "Error"
	case FrameTypeStatusChange:
		return "StatusChange"
	default:
		return "Unknown"
	}
}

// metadataFrame matches NDIlib_metadata_frame_t.
type metadataFrame struct {
	Length   int32
	Timecode int64
	Data     unsafe.Pointer
}

// recvCreateSettings matches NDIlib_recv_create_v3_t.
type recvCreateSettings struct {
	SourceName    unsafe.Pointer
	SourceAddress unsafe.Pointer
	ColorFormat   ColorFormat
	Bandwidth     Bandwidth
	AllowFields   bool
	Name          unsafe.Pointer
}

// ReceiverConfig configures a receive session.
type ReceiverConfig struct {
	ColorFormat ColorFormat // requested pixel packing
	Bandwidth   Bandwidth   // fidelity vs network cost
	AllowFields bool        // deliver interlaced fields instead of frames
	Name        string      // diagnostic label visible to senders
}

// DefaultReceiverConfig returns the default receive configuration: BGRX/BGRA
// pixels, highest bandwidth, whole frames only.
func DefaultReceiverConfig() *ReceiverConfig {
	return &ReceiverConfig{
		ColorFormat: ColorFormatBGRXBGRA,
		Bandwidth:   BandwidthHighest,
		Name:        "ndi-go receiver",
	}
}

// Capture is the tagged result of one Receiver.Capture call. At most one of
// Video, Audio, and Metadata is set, according to Type.
type Capture struct {
	Type     FrameType
	Video    *VideoFrame // release with FreeVideo
	Audio    *AudioFrame // release with FreeAudio
	Metadata string      // Go-owned copy, no release needed
}

// Receiver pulls frames from one source. A Receiver is not safe for
// concurrent use; run the capture loop on a single goroutine.
type Receiver struct {
	mu     sync.Mutex
	handle uintptr

	// Persistent capture structures. The runtime fills these in place and
	// the same allocations are reused on every Capture call, so a captured
	// frame must be released before the next Capture overwrites its slot.
	video *VideoFrame
	audio *AudioFrame
	meta  *metadataFrame
}

// NewReceiver creates a receive session. A nil config means
// DefaultReceiverConfig. The receiver starts unbound; call Connect.
func NewReceiver(config *ReceiverConfig) (*Receiver, error) {
	if err := Initialize(); err != nil {
		return nil, err
	}
	if config == nil {
		config = DefaultReceiverConfig()
	}

	settings := &recvCreateSettings{
		ColorFormat: config.ColorFormat,
		Bandwidth:   config.Bandwidth,
		AllowFields: config.AllowFields,
	}
	var name []byte
	if config.Name != "" {
		name = cString(config.Name)
		settings.Name = unsafe.Pointer(&name[0])
	}

	handle := ndiRecvCreateV3(uintptr(unsafe.Pointer(settings)))
	runtime.KeepAlive(settings)
	runtime.KeepAlive(name)
	if handle == 0 {
		return nil, errors.New("ndi: failed to create receiver")
	}

	return &Receiver{
		handle: handle,
		video:  &VideoFrame{},
		audio:  &AudioFrame{},
		meta:   &metadataFrame{},
	}, nil
}

// Connect binds the receiver to a source. Connecting while already connected
// rebinds to the new source; release any outstanding captured frames first,
// their buffers do not survive a rebind.
func (r *Receiver) Connect(source Source) error {
	if r == nil {
		return ErrClosed
	}
	if source.Name == "" {
		return fmt.Errorf("ndi: connect: source name required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.handle == 0 {
		return ErrClosed
	}

	name := cString(source.Name)
	src := &nativeSource{Name: unsafe.Pointer(&name[0])}
	var addr []byte
	if source.Address != "" {
		addr = cString(source.Address)
		src.Address = unsafe.Pointer(&addr[0])
	}

	ndiRecvConnect(r.handle, uintptr(unsafe.Pointer(src)))
	runtime.KeepAlive(src)
	runtime.KeepAlive(name)
	runtime.KeepAlive(addr)
	return nil
}

// Disconnect unbinds the receiver from its current source. The receiver can
// be reconnected later.
func (r *Receiver) Disconnect() {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.handle == 0 {
		return
	}
	ndiRecvConnect(r.handle, 0)
}

// Capture blocks up to timeout for the next frame. A timeout of 0 returns
// immediately. The result carries at most one frame; loop to drain the
// stream. Video and audio frames borrow runtime-owned memory and must be
// released with FreeVideo/FreeAudio exactly once before the next Capture of
// the same kind. Metadata is returned as a Go string and needs no release.
//
// A FrameTypeNone result is a normal timeout, not an error. A FrameTypeError
// result comes with ErrCaptureFailed and leaves the session usable.
func (r *Receiver) Capture(timeout time.Duration) (Capture, error) {
	if r == nil {
		return Capture{}, ErrClosed
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.handle == 0 {
		return Capture{}, ErrClosed
	}

	*r.video = VideoFrame{}
	*r.audio = AudioFrame{}
	*r.meta = metadataFrame{}

	ft := FrameType(ndiRecvCaptureV3(
		r.handle,
		uintptr(unsafe.Pointer(r.video)),
		uintptr(unsafe.Pointer(r.audio)),
		uintptr(unsafe.Pointer(r.meta)),
		timeoutMs(timeout),
	))
	runtime.KeepAlive(r)

	switch ft {
	case FrameTypeVideo:
		return Capture{Type: FrameTypeVideo, Video: r.video}, nil
	case FrameTypeAudio:
		return Capture{Type: FrameTypeAudio, Audio: r.audio}, nil
	case FrameTypeMetadata:
		payload := goString(r.meta.Data)
		ndiRecvFreeMetadata(r.handle, uintptr(unsafe.Pointer(r.meta)))
		return Capture{Type: FrameTypeMetadata, Metadata: payload}, nil
	case FrameTypeError:
		return Capture{Type: FrameTypeError}, ErrCaptureFailed
	case FrameTypeStatusChange:
		return Capture{Type: FrameTypeStatusChange}, nil
	default:
		return Capture{Type: FrameTypeNone}, nil
	}
}

// FreeVideo returns a captured video frame's buffers to the runtime. Safe to
// call with a nil frame or on a closed receiver. The frame's pointers are
// cleared so a stale reference cannot release twice.
func (r *Receiver) FreeVideo(frame *VideoFrame) {
	if r == nil || frame == nil || frame.Data == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.handle == 0 {
		return
	}
	ndiRecvFreeVideoV2(r.handle, uintptr(unsafe.Pointer(frame)))
	runtime.KeepAlive(frame)
	frame.Data = nil
	frame.Metadata = nil
}

// FreeAudio returns a captured audio frame's buffers to the runtime. Safe to
// call with a nil frame or on a closed receiver.
func (r *Receiver) FreeAudio(frame *AudioFrame) {
	if r == nil || frame == nil || frame.Data == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.handle == 0 {
		return
	}
	ndiRecvFreeAudioV3(r.handle, uintptr(unsafe.Pointer(frame)))
	runtime.KeepAlive(frame)
	frame.Data = nil
	frame.Metadata = nil
}

// Close tears down the session regardless of state. Safe to call on a nil or
// already-closed receiver. Captured frames that were never released are
// reclaimed by the runtime along with the session.
func (r *Receiver) Close() error {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.handle != 0 {
		ndiRecvDestroy(r.handle)
		r.handle = 0
	}
	return nil
}
