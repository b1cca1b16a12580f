//go:build amd64 || arm64

// Compile-time layout guards, the Go counterpart of the _Static_assert
// checks a C shim would carry. The frame structures are passed to libndi by
// pointer, so their size and field offsets must match the native
// NDIlib_video_frame_v2_t / NDIlib_audio_frame_v3_t layouts exactly. Each
// expression below indexes a one-element array with a constant that is zero
// only when the layout holds; any drift fails the build.

package ndi

import "unsafe"

// Native structure sizes on 64-bit targets.
const (
	VideoFrameStructSize = 72
	AudioFrameStructSize = 64
)

var (
	_ = [1]struct{}{}[unsafe.Sizeof(VideoFrame{})-VideoFrameStructSize]
	_ = [1]struct{}{}[unsafe.Offsetof(VideoFrame{}.FourCC)-8]
	_ = [1]struct{}{}[unsafe.Offsetof(VideoFrame{}.PictureAspectRatio)-20]
	_ = [1]struct{}{}[unsafe.Offsetof(VideoFrame{}.Timecode)-32]
	_ = [1]struct{}{}[unsafe.Offsetof(VideoFrame{}.Data)-40]
	_ = [1]struct{}{}[unsafe.Offsetof(VideoFrame{}.LineStrideInBytes)-48]
	_ = [1]struct{}{}[unsafe.Offsetof(VideoFrame{}.Metadata)-56]
	_ = [1]struct{}{}[unsafe.Offsetof(VideoFrame{}.Timestamp)-64]

	_ = [1]struct{}{}[unsafe.Sizeof(AudioFrame{})-AudioFrameStructSize]
	_ = [1]struct{}{}[unsafe.Offsetof(AudioFrame{}.Timecode)-16]
	_ = [1]struct{}{}[unsafe.Offsetof(AudioFrame{}.FourCC)-24]
	_ = [1]struct{}{}[unsafe.Offsetof(AudioFrame{}.Data)-32]
	_ = [1]struct{}{}[unsafe.Offsetof(AudioFrame{}.ChannelStrideInBytes)-40]
	_ = [1]struct{}{}[unsafe.Offsetof(AudioFrame{}.Metadata)-48]
	_ = [1]struct{}{}[unsafe.Offsetof(AudioFrame{}.Timestamp)-56]
)
