//go:build !windows && !ios && !android && (amd64 || arm64)

package sdlpix

import (
	"encoding/binary"

	"github.com/gogpu/gputypes"
)

// littleEndian is true on hosts where packed 32-bit pixels are stored low byte first.
var littleEndian = binary.NativeEndian.Uint16([]byte{1, 0}) == 1

// TextureFormat returns the GPU texture format whose memory layout matches
// e byte for byte, so pixels can be uploaded without conversion.
//
// SDL's packed 32-bit encodings name channels from the most significant
// byte, so on little-endian hosts ABGR8888 is R,G,B,A in memory and
// ARGB8888 is B,G,R,A. Encodings with no exact match return
// gputypes.TextureFormatUndefined.
func (e Encoding) TextureFormat() gputypes.TextureFormat {
	return textureFormatFor(e, littleEndian)
}

func textureFormatFor(e Encoding, le bool) gputypes.TextureFormat {
	switch {
	case e == EncodingABGR8888 && le, e == EncodingRGBA8888 && !le:
		return gputypes.TextureFormatRGBA8Unorm
	case e == EncodingARGB8888 && le, e == EncodingBGRA8888 && !le:
		return gputypes.TextureFormatBGRA8Unorm
	default:
		return gputypes.TextureFormatUndefined
	}
}

// TextureDataLayout returns the upload layout for a tightly packed
// width*height image in encoding e. Planar encodings cannot be described by
// a single layout and fail, as do encodings without a whole-byte pixel size.
func (e Encoding) TextureDataLayout(width, height uint32) (gputypes.TextureDataLayout, error) {
	bpp, err := e.BytesPerPixel()
	if err != nil {
		return gputypes.TextureDataLayout{}, err
	}
	if e.IsPlanar() {
		return gputypes.TextureDataLayout{}, &EncodingError{Op: "TextureDataLayout", Encoding: e}
	}
	return gputypes.TextureDataLayout{
		BytesPerRow:  width * bpp,
		RowsPerImage: height,
	}, nil
}
