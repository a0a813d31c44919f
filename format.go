//go:build !windows && !ios && !android && (amd64 || arm64)

package sdlpix

import (
	"unsafe"

	"github.com/sirupsen/logrus"
)

// SDL_PixelFormat field offsets used here. format is a Uint32 at the start;
// palette is the pointer that follows it.
const (
	pixelFormatPaletteOffset = unsafe.Sizeof(uintptr(0))
)

// Format is a borrowed reference to an SDL_PixelFormat. It must not outlive
// the object it refers to; once the owning OwnedFormat is freed every copy
// reports ErrReleased. The zero Format reports ErrNilHandle.
type Format struct {
	ref *nativeRef
}

// BorrowFormat wraps an SDL_PixelFormat owned elsewhere, for example a
// surface's format. The caller keeps it alive for as long as the Format is
// used. A nil ptr yields the zero Format.
func (l *Library) BorrowFormat(ptr unsafe.Pointer) Format {
	return Format{ref: newRef(l, ptr)}
}

// AllocFormat allocates a descriptor for enc. Free it with OwnedFormat.Free.
func (l *Library) AllocFormat(enc Encoding) (*OwnedFormat, error) {
	ptr := l.svc.AllocFormat(uint32(enc))
	if ptr == nil {
		return nil, l.nativeError("SDL_AllocFormat")
	}
	l.log.WithField("encoding", enc).Debug("allocated pixel format")
	return &OwnedFormat{Format: Format{ref: newRef(l, ptr)}}, nil
}

// Ptr returns the SDL_PixelFormat pointer, or nil if f is nil or released.
func (f Format) Ptr() unsafe.Pointer {
	if f.ref == nil {
		return nil
	}
	return f.ref.load()
}

// Valid reports whether f still refers to a live descriptor.
func (f Format) Valid() bool {
	return f.Ptr() != nil
}

// Equal reports whether f and other refer to the same live descriptor.
func (f Format) Equal(other Format) bool {
	return sameObject(f.ref, other.ref)
}

// Encoding returns the encoding stored in the descriptor.
func (f Format) Encoding() (Encoding, error) {
	p, _, err := f.ref.resolve()
	if err != nil {
		return EncodingUnknown, err
	}
	return Encoding(*(*uint32)(p)), nil
}

// Palette returns the palette attached to the descriptor as a borrowed
// Palette that becomes invalid when f is released. Non-indexed formats have
// none and return the zero Palette.
func (f Format) Palette() (Palette, error) {
	p, _, err := f.ref.resolve()
	if err != nil {
		return Palette{}, err
	}
	pal := *(*unsafe.Pointer)(unsafe.Add(p, pixelFormatPaletteOffset))
	return Palette{ref: f.ref.derive(pal)}, nil
}

// SetPalette attaches pal to an indexed descriptor. SDL keeps its own
// reference, so pal may be freed afterwards.
func (f Format) SetPalette(pal Palette) error {
	fp, lib, err := f.ref.resolve()
	if err != nil {
		return err
	}
	pp, _, err := pal.ref.resolve()
	if err != nil {
		return err
	}
	if lib.svc.SetPixelFormatPalette(fp, pp) < 0 {
		return lib.nativeError("SDL_SetPixelFormatPalette")
	}
	return nil
}

// OwnedFormat is a descriptor allocated by Library.AllocFormat.
type OwnedFormat struct {
	Format
}

// Free releases the descriptor. Borrowed copies of f.Format become invalid.
// Calling Free more than once is a no-op.
func (f *OwnedFormat) Free() {
	if f == nil || f.ref == nil {
		return
	}
	ptr := f.ref.release()
	if ptr == nil {
		return
	}
	lib := f.ref.lib
	enc := Encoding(*(*uint32)(ptr))
	lib.svc.FreeFormat(ptr)
	lib.log.WithFields(logrus.Fields{
		"encoding": enc,
	}).Debug("freed pixel format")
}
