// Frame structures shared with the native NDI runtime.
//
// VideoFrame and AudioFrame mirror NDIlib_video_frame_v2_t and
// NDIlib_audio_frame_v3_t field for field, so a pointer to either can be
// handed to libndi without copying. Do not add, remove, or reorder fields;
// the guards in layout.go fail the build on any drift.

package ndi

import (
	"math"
	"unsafe"
)

// TimecodeSynthesize is the sender-path timecode sentinel. A frame sent with
// this value has its timecode assigned by the NDI runtime clock.
const TimecodeSynthesize int64 = math.MinInt64

// FrameFormat describes how a video frame's lines are laid out in time.
type FrameFormat int32

const (
	FrameFormatInterleaved FrameFormat = 0 // both fields in one frame
	FrameFormatProgressive FrameFormat = 1
	FrameFormatField0      FrameFormat = 2 // first field only
	FrameFormatField1      FrameFormat = 3 // second field only
)

func (f FrameFormat) String() string {
	switch f {
	case FrameFormatInterleaved:
		return "Interleaved"
	case FrameFormatProgressive:
		return "Progressive"
	case FrameFormatField0:
		return "Field0"
	case FrameFormatField1:
		return "Field1"
	default:
		return "Unknown"
	}
}

// VideoFrame is one video frame plus its presentation metadata.
//
// On the receive path the runtime populates the frame and owns the memory
// behind Data and Metadata until Receiver.FreeVideo. On the send path the
// caller owns all referenced memory; it must stay valid and unmodified until
// Sender.SendVideo returns.
type VideoFrame struct {
	Xres               int32
	Yres               int32
	FourCC             FourCCVideo
	FrameRateN         int32
	FrameRateD         int32
	PictureAspectRatio float32
	FrameFormatType    FrameFormat
	Timecode           int64
	Data               unsafe.Pointer // pixel data
	LineStrideInBytes  int32          // may exceed Xres * bytes-per-pixel
	Metadata           unsafe.Pointer // optional NUL-terminated XML
	Timestamp          int64          // 100ns ticks, receive path only
}

// NewVideoFrame populates a frame for sending. The aspect ratio is derived
// from the resolution and the timecode defaults to TimecodeSynthesize. The
// data slice is referenced, not copied; pass nil for a frame whose buffer is
// attached later.
func NewVideoFrame(width, height int, fourCC FourCCVideo, frameRateN, frameRateD int, data []byte, lineStride int) *VideoFrame {
	f := &VideoFrame{
		Xres:              int32(width),
		Yres:              int32(height),
		FourCC:            fourCC,
		FrameRateN:        int32(frameRateN),
		FrameRateD:        int32(frameRateD),
		FrameFormatType:   FrameFormatProgressive,
		Timecode:          TimecodeSynthesize,
		LineStrideInBytes: int32(lineStride),
	}
	if height > 0 {
		f.PictureAspectRatio = float32(width) / float32(height)
	}
	if len(data) > 0 {
		f.Data = unsafe.Pointer(&data[0])
	}
	return f
}

// Bytes returns the frame's pixel data as a byte slice. The slice borrows the
// frame's underlying memory: for captured frames it is valid only until the
// matching FreeVideo call.
func (f *VideoFrame) Bytes() []byte {
	if f == nil || f.Data == nil {
		return nil
	}
	return unsafe.Slice((*byte)(f.Data), f.bufferLen())
}

// bufferLen derives the total pixel buffer size from the FourCC. Formats not
// listed are assumed to pack one frame into LineStrideInBytes * Yres.
func (f *VideoFrame) bufferLen() int {
	stride := int(f.LineStrideInBytes)
	lines := int(f.Yres)
	switch f.FourCC {
	case FourCCVideoI420, FourCCVideoYV12, FourCCVideoNV12:
		return stride * lines * 3 / 2
	case FourCCVideoP216, FourCCVideoPA16:
		return stride * lines * 2
	case FourCCVideoUYVA:
		// UYVY plane followed by a 1-byte-per-pixel alpha plane.
		return stride*lines + stride/2*lines
	default:
		return stride * lines
	}
}

// MetadataString returns the frame's XML metadata, or "" when absent.
func (f *VideoFrame) MetadataString() string {
	if f == nil {
		return ""
	}
	return goString(f.Metadata)
}

// SetMetadata attaches per-frame XML metadata for sending. The string is
// copied into a NUL-terminated buffer referenced by the frame.
func (f *VideoFrame) SetMetadata(xml string) {
	if xml == "" {
		f.Metadata = nil
		return
	}
	b := cString(xml)
	f.Metadata = unsafe.Pointer(&b[0])
}

// AudioFrame is one block of audio samples. NDI audio is 32-bit float; a
// ChannelStrideInBytes of 0 means interleaved samples, nonzero means planar
// with that many bytes between channel planes. Ownership rules match
// VideoFrame.
type AudioFrame struct {
	SampleRate           int32
	NoChannels           int32
	NoSamples            int32 // per channel
	Timecode             int64
	FourCC               FourCCAudio
	Data                 unsafe.Pointer
	ChannelStrideInBytes int32
	Metadata             unsafe.Pointer
	Timestamp            int64
}

// NewAudioFrame populates an audio frame for sending with planar float
// samples (FLTP) and a synthesized timecode. The data slice is referenced,
// not copied.
func NewAudioFrame(sampleRate, channels, samples int, data []byte, channelStride int) *AudioFrame {
	f := &AudioFrame{
		SampleRate:           int32(sampleRate),
		NoChannels:           int32(channels),
		NoSamples:            int32(samples),
		Timecode:             TimecodeSynthesize,
		FourCC:               FourCCAudioFLTP,
		ChannelStrideInBytes: int32(channelStride),
	}
	if len(data) > 0 {
		f.Data = unsafe.Pointer(&data[0])
	}
	return f
}

// Bytes returns the sample data as a byte slice, borrowing the frame's
// underlying memory.
func (f *AudioFrame) Bytes() []byte {
	if f == nil || f.Data == nil {
		return nil
	}
	return unsafe.Slice((*byte)(f.Data), f.bufferLen())
}

func (f *AudioFrame) bufferLen() int {
	if f.ChannelStrideInBytes != 0 {
		return int(f.ChannelStrideInBytes) * int(f.NoChannels)
	}
	return int(f.NoSamples) * int(f.NoChannels) * 4
}

// FloatSamples returns the sample data as float32 values, borrowing the
// frame's underlying memory. For planar frames the channel planes appear
// back to back, stride permitting.
func (f *AudioFrame) FloatSamples() []float32 {
	if f == nil || f.Data == nil {
		return nil
	}
	return unsafe.Slice((*float32)(f.Data), f.bufferLen()/4)
}

// MetadataString returns the frame's XML metadata, or "" when absent.
func (f *AudioFrame) MetadataString() string {
	if f == nil {
		return ""
	}
	return goString(f.Metadata)
}
