//go:build !windows && !ios && !android && (amd64 || arm64)

package sdlpix

import (
	"fmt"
	"strings"
)

// Encoding identifies a pixel layout. Values are SDL2's SDL_PIXELFORMAT_*
// constants, so an Encoding can be handed to SDL unchanged.
type Encoding uint32

// SDL_PixelType
const (
	pixelTypeUnknown = iota
	pixelTypeIndex1
	pixelTypeIndex4
	pixelTypeIndex8
	pixelTypePacked8
	pixelTypePacked16
	pixelTypePacked32
	pixelTypeArrayU8
)

// SDL_BitmapOrder
const (
	bitmapOrderNone = iota
	bitmapOrder4321
	bitmapOrder1234
)

// SDL_PackedOrder
const (
	packedOrderNone = iota
	packedOrderXRGB
	packedOrderRGBX
	packedOrderARGB
	packedOrderRGBA
	packedOrderXBGR
	packedOrderBGRX
	packedOrderABGR
	packedOrderBGRA
)

// SDL_ArrayOrder
const (
	arrayOrderNone = iota
	arrayOrderRGB
	arrayOrderRGBA
	arrayOrderARGB
	arrayOrderBGR
)

// SDL_PackedLayout
const (
	packedLayoutNone = iota
	packedLayout332
	packedLayout4444
	packedLayout1555
	packedLayout5551
	packedLayout565
	packedLayout8888
	packedLayout2101010
)

// Non-FOURCC encodings are SDL_DEFINE_PIXELFORMAT(type, order, layout, bits, bytes):
//
//	1<<28 | type<<24 | order<<20 | layout<<16 | bits<<8 | bytes
const definedFormat = 1 << 28

// Pixel encodings (from SDL_pixels.h)
const (
	EncodingUnknown Encoding = 0

	// Indexed
	EncodingIndex1LSB Encoding = definedFormat | pixelTypeIndex1<<24 | bitmapOrder4321<<20 | 1<<8
	EncodingIndex1MSB Encoding = definedFormat | pixelTypeIndex1<<24 | bitmapOrder1234<<20 | 1<<8
	EncodingIndex4LSB Encoding = definedFormat | pixelTypeIndex4<<24 | bitmapOrder4321<<20 | 4<<8
	EncodingIndex4MSB Encoding = definedFormat | pixelTypeIndex4<<24 | bitmapOrder1234<<20 | 4<<8
	EncodingIndex8    Encoding = definedFormat | pixelTypeIndex8<<24 | 8<<8 | 1

	// Packed 8-bit
	EncodingRGB332 Encoding = definedFormat | pixelTypePacked8<<24 | packedOrderXRGB<<20 | packedLayout332<<16 | 8<<8 | 1

	// Packed 16-bit
	EncodingRGB444   Encoding = definedFormat | pixelTypePacked16<<24 | packedOrderXRGB<<20 | packedLayout4444<<16 | 12<<8 | 2
	EncodingRGB555   Encoding = definedFormat | pixelTypePacked16<<24 | packedOrderXRGB<<20 | packedLayout1555<<16 | 15<<8 | 2
	EncodingBGR555   Encoding = definedFormat | pixelTypePacked16<<24 | packedOrderXBGR<<20 | packedLayout1555<<16 | 15<<8 | 2
	EncodingARGB4444 Encoding = definedFormat | pixelTypePacked16<<24 | packedOrderARGB<<20 | packedLayout4444<<16 | 16<<8 | 2
	EncodingRGBA4444 Encoding = definedFormat | pixelTypePacked16<<24 | packedOrderRGBA<<20 | packedLayout4444<<16 | 16<<8 | 2
	EncodingABGR4444 Encoding = definedFormat | pixelTypePacked16<<24 | packedOrderABGR<<20 | packedLayout4444<<16 | 16<<8 | 2
	EncodingBGRA4444 Encoding = definedFormat | pixelTypePacked16<<24 | packedOrderBGRA<<20 | packedLayout4444<<16 | 16<<8 | 2
	EncodingARGB1555 Encoding = definedFormat | pixelTypePacked16<<24 | packedOrderARGB<<20 | packedLayout1555<<16 | 16<<8 | 2
	EncodingRGBA5551 Encoding = definedFormat | pixelTypePacked16<<24 | packedOrderRGBA<<20 | packedLayout5551<<16 | 16<<8 | 2
	EncodingABGR1555 Encoding = definedFormat | pixelTypePacked16<<24 | packedOrderABGR<<20 | packedLayout1555<<16 | 16<<8 | 2
	EncodingBGRA5551 Encoding = definedFormat | pixelTypePacked16<<24 | packedOrderBGRA<<20 | packedLayout5551<<16 | 16<<8 | 2
	EncodingRGB565   Encoding = definedFormat | pixelTypePacked16<<24 | packedOrderXRGB<<20 | packedLayout565<<16 | 16<<8 | 2
	EncodingBGR565   Encoding = definedFormat | pixelTypePacked16<<24 | packedOrderXBGR<<20 | packedLayout565<<16 | 16<<8 | 2

	// Byte arrays, 24-bit
	EncodingRGB24 Encoding = definedFormat | pixelTypeArrayU8<<24 | arrayOrderRGB<<20 | 24<<8 | 3
	EncodingBGR24 Encoding = definedFormat | pixelTypeArrayU8<<24 | arrayOrderBGR<<20 | 24<<8 | 3

	// Packed 32-bit
	EncodingRGB888      Encoding = definedFormat | pixelTypePacked32<<24 | packedOrderXRGB<<20 | packedLayout8888<<16 | 24<<8 | 4
	EncodingRGBX8888    Encoding = definedFormat | pixelTypePacked32<<24 | packedOrderRGBX<<20 | packedLayout8888<<16 | 24<<8 | 4
	EncodingBGR888      Encoding = definedFormat | pixelTypePacked32<<24 | packedOrderXBGR<<20 | packedLayout8888<<16 | 24<<8 | 4
	EncodingBGRX8888    Encoding = definedFormat | pixelTypePacked32<<24 | packedOrderBGRX<<20 | packedLayout8888<<16 | 24<<8 | 4
	EncodingARGB8888    Encoding = definedFormat | pixelTypePacked32<<24 | packedOrderARGB<<20 | packedLayout8888<<16 | 32<<8 | 4
	EncodingRGBA8888    Encoding = definedFormat | pixelTypePacked32<<24 | packedOrderRGBA<<20 | packedLayout8888<<16 | 32<<8 | 4
	EncodingABGR8888    Encoding = definedFormat | pixelTypePacked32<<24 | packedOrderABGR<<20 | packedLayout8888<<16 | 32<<8 | 4
	EncodingBGRA8888    Encoding = definedFormat | pixelTypePacked32<<24 | packedOrderBGRA<<20 | packedLayout8888<<16 | 32<<8 | 4
	EncodingARGB2101010 Encoding = definedFormat | pixelTypePacked32<<24 | packedOrderARGB<<20 | packedLayout2101010<<16 | 32<<8 | 4

	// FOURCC video formats
	EncodingYV12 Encoding = 'Y' | 'V'<<8 | '1'<<16 | '2'<<24 // Planar Y + V + U (4:2:0)
	EncodingIYUV Encoding = 'I' | 'Y'<<8 | 'U'<<16 | 'V'<<24 // Planar Y + U + V (4:2:0)
	EncodingYUY2 Encoding = 'Y' | 'U'<<8 | 'Y'<<16 | '2'<<24 // Packed Y0+U0+Y1+V0 (4:2:2)
	EncodingUYVY Encoding = 'U' | 'Y'<<8 | 'V'<<16 | 'Y'<<24 // Packed U0+Y0+V0+Y1 (4:2:2)
	EncodingYVYU Encoding = 'Y' | 'V'<<8 | 'Y'<<16 | 'U'<<24 // Packed Y0+V0+Y1+U0 (4:2:2)
)

// Family groups encodings that share a sizing rule.
type Family int

const (
	FamilyUnknown   Family = iota
	FamilyIndexed          // Palette indices, 1/4/8 bits per pixel
	FamilyPackedRGB        // Direct color, 1 to 4 whole bytes per pixel
	FamilyPlanarYUV        // Separate Y, U and V planes, 4:2:0
	FamilyPackedYUV        // Interleaved Y/U/V, 4:2:2, 2 bytes per pixel
)

// String returns the string representation of the family.
func (f Family) String() string {
	switch f {
	case FamilyIndexed:
		return "indexed"
	case FamilyPackedRGB:
		return "packed-rgb"
	case FamilyPlanarYUV:
		return "planar-yuv"
	case FamilyPackedYUV:
		return "packed-yuv"
	default:
		return "unknown"
	}
}

type encodingInfo struct {
	encoding Encoding
	name     string
	family   Family
	// bytesPerPixel is 0 where a pixel does not occupy whole bytes.
	bytesPerPixel uint32
}

// encodingTable lists every Encoding in declaration order.
var encodingTable = []encodingInfo{
	{EncodingUnknown, "Unknown", FamilyUnknown, 0},
	{EncodingIndex1LSB, "Index1LSB", FamilyIndexed, 0},
	{EncodingIndex1MSB, "Index1MSB", FamilyIndexed, 0},
	{EncodingIndex4LSB, "Index4LSB", FamilyIndexed, 0},
	{EncodingIndex4MSB, "Index4MSB", FamilyIndexed, 0},
	{EncodingIndex8, "Index8", FamilyIndexed, 1},
	{EncodingRGB332, "RGB332", FamilyPackedRGB, 1},
	{EncodingRGB444, "RGB444", FamilyPackedRGB, 2},
	{EncodingRGB555, "RGB555", FamilyPackedRGB, 2},
	{EncodingBGR555, "BGR555", FamilyPackedRGB, 2},
	{EncodingARGB4444, "ARGB4444", FamilyPackedRGB, 2},
	{EncodingRGBA4444, "RGBA4444", FamilyPackedRGB, 2},
	{EncodingABGR4444, "ABGR4444", FamilyPackedRGB, 2},
	{EncodingBGRA4444, "BGRA4444", FamilyPackedRGB, 2},
	{EncodingARGB1555, "ARGB1555", FamilyPackedRGB, 2},
	{EncodingRGBA5551, "RGBA5551", FamilyPackedRGB, 2},
	{EncodingABGR1555, "ABGR1555", FamilyPackedRGB, 2},
	{EncodingBGRA5551, "BGRA5551", FamilyPackedRGB, 2},
	{EncodingRGB565, "RGB565", FamilyPackedRGB, 2},
	{EncodingBGR565, "BGR565", FamilyPackedRGB, 2},
	{EncodingRGB24, "RGB24", FamilyPackedRGB, 3},
	{EncodingBGR24, "BGR24", FamilyPackedRGB, 3},
	{EncodingRGB888, "RGB888", FamilyPackedRGB, 4},
	{EncodingRGBX8888, "RGBX8888", FamilyPackedRGB, 4},
	{EncodingBGR888, "BGR888", FamilyPackedRGB, 4},
	{EncodingBGRX8888, "BGRX8888", FamilyPackedRGB, 4},
	{EncodingARGB8888, "ARGB8888", FamilyPackedRGB, 4},
	{EncodingRGBA8888, "RGBA8888", FamilyPackedRGB, 4},
	{EncodingABGR8888, "ABGR8888", FamilyPackedRGB, 4},
	{EncodingBGRA8888, "BGRA8888", FamilyPackedRGB, 4},
	{EncodingARGB2101010, "ARGB2101010", FamilyPackedRGB, 4},
	{EncodingYV12, "YV12", FamilyPlanarYUV, 2},
	{EncodingIYUV, "IYUV", FamilyPlanarYUV, 2},
	{EncodingYUY2, "YUY2", FamilyPackedYUV, 2},
	{EncodingUYVY, "UYVY", FamilyPackedYUV, 2},
	{EncodingYVYU, "YVYU", FamilyPackedYUV, 2},
}

var encodingIndex = func() map[Encoding]*encodingInfo {
	m := make(map[Encoding]*encodingInfo, len(encodingTable))
	for i := range encodingTable {
		m[encodingTable[i].encoding] = &encodingTable[i]
	}
	return m
}()

func (e Encoding) info() (*encodingInfo, bool) {
	info, ok := encodingIndex[e]
	return info, ok
}

// Encodings returns every known encoding in declaration order.
func Encodings() []Encoding {
	out := make([]Encoding, len(encodingTable))
	for i, info := range encodingTable {
		out[i] = info.encoding
	}
	return out
}

// EncodingFromValue maps a raw SDL_PIXELFORMAT_* value to an Encoding.
func EncodingFromValue(v uint32) (Encoding, error) {
	e := Encoding(v)
	if !e.Valid() {
		return EncodingUnknown, &EncodingError{Op: "EncodingFromValue", Encoding: e}
	}
	return e, nil
}

// ParseEncoding looks an encoding up by name, ignoring case ("argb8888").
func ParseEncoding(name string) (Encoding, error) {
	for _, info := range encodingTable {
		if strings.EqualFold(info.name, name) {
			return info.encoding, nil
		}
	}
	return EncodingUnknown, fmt.Errorf("sdlpix: unknown pixel encoding name %q: %w", name, ErrUnsupportedEncoding)
}

// Valid reports whether e is one of the declared encodings.
func (e Encoding) Valid() bool {
	_, ok := e.info()
	return ok
}

// Family returns the family e belongs to.
func (e Encoding) Family() Family {
	if info, ok := e.info(); ok {
		return info.family
	}
	return FamilyUnknown
}

// IsIndexed reports whether pixels are palette indices.
func (e Encoding) IsIndexed() bool {
	return e.Family() == FamilyIndexed
}

// IsPlanar reports whether e stores luma and chroma in separate planes.
func (e Encoding) IsPlanar() bool {
	return e.Family() == FamilyPlanarYUV
}

// String returns the short SDL name, e.g. "ARGB8888".
func (e Encoding) String() string {
	if info, ok := e.info(); ok {
		return info.name
	}
	return fmt.Sprintf("Encoding(0x%08x)", uint32(e))
}
