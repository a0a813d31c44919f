//go:build cgo && sdl2cgo && !windows && !ios && !android && (amd64 || arm64)

// Package sdlcgo is an sdlpix Service backed by github.com/veandco/go-sdl2.
//
// It is for programs that already link SDL2 through cgo and go-sdl2 and want
// sdlpix to share that copy of the library. Build with -tags sdl2cgo.
//
// go-sdl2 takes Go functions for log output, not C function pointers, so this
// backend does not implement sdlpix.LogRouter and Library.RouteNativeLogs
// reports sdlpix.ErrLogRoutingUnsupported.
package sdlcgo

import (
	"unsafe"

	"github.com/obinnaokechukwu/sdlpix"
	"github.com/veandco/go-sdl2/sdl"
)

// Service forwards sdlpix native calls to go-sdl2.
type Service struct{}

var _ sdlpix.Service = Service{}

// New returns a Library using go-sdl2.
func New(opts ...sdlpix.Option) (*sdlpix.Library, error) {
	return sdlpix.NewLibrary(Service{}, opts...)
}

// FormatOf borrows the descriptor of a go-sdl2 pixel format, such as a
// surface's Format field.
func FormatOf(lib *sdlpix.Library, f *sdl.PixelFormat) sdlpix.Format {
	return lib.BorrowFormat(unsafe.Pointer(f))
}

// WindowOf borrows a go-sdl2 window as a message box parent.
func WindowOf(lib *sdlpix.Library, w *sdl.Window) *sdlpix.Window {
	return lib.BorrowWindow(unsafe.Pointer(w))
}

func (Service) MapRGB(format unsafe.Pointer, r, g, b uint8) uint32 {
	return sdl.MapRGB((*sdl.PixelFormat)(format), r, g, b)
}

func (Service) MapRGBA(format unsafe.Pointer, r, g, b, a uint8) uint32 {
	return sdl.MapRGBA((*sdl.PixelFormat)(format), r, g, b, a)
}

func (Service) GetRGBA(pixel uint32, format unsafe.Pointer) (r, g, b, a uint8) {
	return sdl.GetRGBA(pixel, (*sdl.PixelFormat)(format))
}

func (Service) AllocFormat(pixelFormat uint32) unsafe.Pointer {
	f, err := sdl.AllocFormat(uint(pixelFormat))
	if err != nil {
		return nil
	}
	return unsafe.Pointer(f)
}

func (Service) FreeFormat(format unsafe.Pointer) {
	if format != nil {
		(*sdl.PixelFormat)(format).Free()
	}
}

func (Service) AllocPalette(ncolors int32) unsafe.Pointer {
	p, err := sdl.AllocPalette(int(ncolors))
	if err != nil {
		return nil
	}
	return unsafe.Pointer(p)
}

func (Service) FreePalette(palette unsafe.Pointer) {
	if palette != nil {
		(*sdl.Palette)(palette).Free()
	}
}

func (Service) SetPixelFormatPalette(format, palette unsafe.Pointer) int32 {
	if err := (*sdl.PixelFormat)(format).SetPalette((*sdl.Palette)(palette)); err != nil {
		return -1
	}
	return 0
}

func (Service) ShowSimpleMessageBox(flags uint32, title, message string, window unsafe.Pointer) int32 {
	if err := sdl.ShowSimpleMessageBox(flags, title, message, (*sdl.Window)(window)); err != nil {
		return -1
	}
	return 0
}

func (Service) GetError() string {
	if err := sdl.GetError(); err != nil {
		return err.Error()
	}
	return ""
}

func (Service) ClearError() {
	sdl.ClearError()
}

// Version reports the SDL version go-sdl2 is linked against.
func (Service) Version() (major, minor, patch uint8) {
	var v sdl.Version
	sdl.GetVersion(&v)
	return v.Major, v.Minor, v.Patch
}
