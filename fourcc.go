package ndi

// FourCCVideo identifies a video pixel layout. Values match the native
// NDIlib_FourCC_video_type_e codes.
type FourCCVideo uint32

const (
	FourCCVideoUYVY FourCCVideo = 0x59565955 // YCbCr 4:2:2
	FourCCVideoUYVA FourCCVideo = 0x41565955 // UYVY + alpha plane
	FourCCVideoP216 FourCCVideo = 0x36313250 // 16-bit 4:2:2 semi-planar
	FourCCVideoPA16 FourCCVideo = 0x36314150 // P216 + 16-bit alpha
	FourCCVideoYV12 FourCCVideo = 0x32315659 // YUV 4:2:0 planar, V before U
	FourCCVideoI420 FourCCVideo = 0x30323449 // YUV 4:2:0 planar
	FourCCVideoNV12 FourCCVideo = 0x3231564E // YUV 4:2:0 semi-planar
	FourCCVideoBGRA FourCCVideo = 0x41524742
	FourCCVideoBGRX FourCCVideo = 0x58524742
	FourCCVideoRGBA FourCCVideo = 0x41424752
	FourCCVideoRGBX FourCCVideo = 0x58424752
)

func (f FourCCVideo) String() string { return fourCCString(uint32(f)) }

// FourCCAudio identifies an audio sample layout.
type FourCCAudio uint32

// FourCCAudioFLTP is 32-bit float planar audio, the only layout the NDI v3
// audio path carries.
const FourCCAudioFLTP FourCCAudio = 0x50544C46

func (f FourCCAudio) String() string { return fourCCString(uint32(f)) }

// MakeFourCC packs four characters into a little-endian FourCC code.
func MakeFourCC(a, b, c, d byte) uint32 {
	return uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24
}

func fourCCString(v uint32) string {
	b := [4]byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
	for _, c := range b {
		if c < 0x20 || c > 0x7e {
			return "Unknown"
		}
	}
	return string(b[:])
}
