//go:build !windows && !ios && !android && (amd64 || arm64)

package sdlpix

import (
	"unsafe"

	"github.com/obinnaokechukwu/sdlpix/internal/bindings"
)

// Service is the native side of sdlpix: the SDL2 functions that own the
// packing rules and the lifetime of pixel formats and palettes.
//
// Pointers are SDL_PixelFormat*, SDL_Palette* and SDL_Window* values. Return
// conventions follow SDL: allocation returns nil on failure, status calls
// return a negative value on failure, and GetError describes the last failure.
type Service interface {
	MapRGB(format unsafe.Pointer, r, g, b uint8) uint32
	MapRGBA(format unsafe.Pointer, r, g, b, a uint8) uint32
	GetRGBA(pixel uint32, format unsafe.Pointer) (r, g, b, a uint8)

	AllocFormat(pixelFormat uint32) unsafe.Pointer
	FreeFormat(format unsafe.Pointer)
	AllocPalette(ncolors int32) unsafe.Pointer
	FreePalette(palette unsafe.Pointer)
	SetPixelFormatPalette(format, palette unsafe.Pointer) int32

	ShowSimpleMessageBox(flags uint32, title, message string, window unsafe.Pointer) int32

	GetError() string
	ClearError()
}

// versioner is implemented by services that can report the linked SDL version.
type versioner interface {
	Version() (major, minor, patch uint8)
}

// LogRouter is implemented by services that can replace SDL's log output
// function with a C-callable callback.
type LogRouter interface {
	LogOutput() (callback, userdata uintptr)
	SetLogOutput(callback, userdata uintptr)
	SetLogPriority(priority int32)
}

var (
	_ Service   = bindings.Native{}
	_ versioner = bindings.Native{}
	_ LogRouter = bindings.Native{}
)
