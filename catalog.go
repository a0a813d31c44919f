//go:build !windows && !ios && !android && (amd64 || arm64)

package sdlpix

// BytesPerPixel returns the number of bytes one pixel occupies.
//
// Planar and packed YUV encodings report 2, the figure SDL uses for their
// luma plane. Unknown and the 1/4-bit indexed encodings have no whole-byte
// size and return an *EncodingError.
func (e Encoding) BytesPerPixel() (uint32, error) {
	info, ok := e.info()
	if !ok || info.bytesPerPixel == 0 {
		return 0, &EncodingError{Op: "BytesPerPixel", Encoding: e}
	}
	return info.bytesPerPixel, nil
}

// BytesForPixelCount returns how many bytes count pixels occupy.
//
// Planar 4:2:0 encodings use (count/2)*3. The division truncates, so an odd
// count is one byte short of count*1.5; callers sizing buffers for odd
// dimensions should round up themselves. Arithmetic wraps modulo 2^32.
func (e Encoding) BytesForPixelCount(count uint32) (uint32, error) {
	info, ok := e.info()
	if !ok || info.bytesPerPixel == 0 {
		return 0, &EncodingError{Op: "BytesForPixelCount", Encoding: e}
	}
	switch info.family {
	case FamilyPlanarYUV:
		return (count / 2) * 3, nil
	case FamilyPackedYUV:
		return count * 2, nil
	default:
		return count * info.bytesPerPixel, nil
	}
}

// BytesForPitchAndHeight returns the size of a buffer with the given row
// pitch (bytes per luma row) and height. For planar 4:2:0 the two chroma
// planes each add (pitch/2)*(height/2). Defined for every value of e.
func (e Encoding) BytesForPitchAndHeight(pitch, height uint) uint {
	if e.IsPlanar() {
		return pitch*height + 2*((pitch/2)*(height/2))
	}
	return pitch * height
}
