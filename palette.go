//go:build !windows && !ios && !android && (amd64 || arm64)

package sdlpix

import (
	"fmt"
	"math"
	"unsafe"
)

// SDL_Palette begins with int ncolors followed by SDL_Color *colors.
const paletteColorsOffset = unsafe.Sizeof(uintptr(0))

// Palette is a borrowed reference to an SDL_Palette, compared by identity.
// It must not outlive its owner; after OwnedPalette.Free every copy reports
// ErrReleased. The zero Palette reports ErrNilHandle.
type Palette struct {
	ref *nativeRef
}

// BorrowPalette wraps an SDL_Palette owned elsewhere. A nil ptr yields the
// zero Palette.
func (l *Library) BorrowPalette(ptr unsafe.Pointer) Palette {
	return Palette{ref: newRef(l, ptr)}
}

// AllocPalette allocates a palette of n colors, all initialized by SDL to
// opaque white. n above math.MaxInt32 fails with ErrPaletteTooLarge without
// calling into SDL.
func (l *Library) AllocPalette(n int) (*OwnedPalette, error) {
	if n > math.MaxInt32 {
		return nil, fmt.Errorf("%w: %d colors", ErrPaletteTooLarge, n)
	}
	ptr := l.svc.AllocPalette(int32(n))
	if ptr == nil {
		return nil, l.nativeError("SDL_AllocPalette")
	}
	l.log.WithField("colors", n).Debug("allocated palette")
	return &OwnedPalette{Palette: Palette{ref: newRef(l, ptr)}}, nil
}

// Ptr returns the SDL_Palette pointer, or nil if p is nil or released.
func (p Palette) Ptr() unsafe.Pointer {
	if p.ref == nil {
		return nil
	}
	return p.ref.load()
}

// Valid reports whether p still refers to a live palette.
func (p Palette) Valid() bool {
	return p.Ptr() != nil
}

// Equal reports whether p and other refer to the same live palette.
func (p Palette) Equal(other Palette) bool {
	return sameObject(p.ref, other.ref)
}

// Len returns the number of entries in the palette.
func (p Palette) Len() (int, error) {
	ptr, _, err := p.ref.resolve()
	if err != nil {
		return 0, err
	}
	return int(*(*int32)(ptr)), nil
}

// Colors returns a copy of the palette entries as alpha-bearing colors.
func (p Palette) Colors() ([]Color, error) {
	ptr, _, err := p.ref.resolve()
	if err != nil {
		return nil, err
	}
	n := int(*(*int32)(ptr))
	entries := *(**byte)(unsafe.Add(ptr, paletteColorsOffset))
	if n <= 0 || entries == nil {
		return nil, nil
	}
	raw := unsafe.Slice(entries, n*4)
	colors := make([]Color, n)
	for i := range colors {
		colors[i] = RGBA(raw[i*4], raw[i*4+1], raw[i*4+2], raw[i*4+3])
	}
	return colors, nil
}

// OwnedPalette is a palette allocated by Library.AllocPalette.
type OwnedPalette struct {
	Palette
}

// Free releases the palette. Calling Free more than once is a no-op.
func (p *OwnedPalette) Free() {
	if p == nil || p.ref == nil {
		return
	}
	ptr := p.ref.release()
	if ptr == nil {
		return
	}
	p.ref.lib.svc.FreePalette(ptr)
	p.ref.lib.log.Debug("freed palette")
}
