//go:build !windows && !ios && !android && (amd64 || arm64)

package sdlpix

import (
	"errors"
	"fmt"

	"github.com/obinnaokechukwu/sdlpix/internal/bindings"
)

// Common errors
var (
	// ErrUnsupportedEncoding indicates the encoding has no whole-byte size per
	// pixel (sub-byte indexed layouts) or is not a known encoding at all.
	ErrUnsupportedEncoding = errors.New("sdlpix: unsupported pixel encoding")

	// ErrInvalidText indicates a string contains a NUL byte and cannot be
	// passed to SDL without being truncated.
	ErrInvalidText = errors.New("sdlpix: text contains an embedded NUL byte")

	// ErrReleased indicates a borrowed handle outlived the native object.
	ErrReleased = errors.New("sdlpix: native object has been released")

	// ErrNilHandle indicates a zero-value Format, Palette or Window was used.
	ErrNilHandle = errors.New("sdlpix: nil native handle")

	// ErrPaletteTooLarge indicates a palette size SDL cannot represent.
	ErrPaletteTooLarge = errors.New("sdlpix: palette size exceeds the int32 range")

	// ErrLogRoutingUnsupported indicates the Service cannot redirect SDL's log output.
	ErrLogRoutingUnsupported = errors.New("sdlpix: backend cannot route native logs")

	// ErrNotLoaded indicates SDL2 is not loaded.
	ErrNotLoaded = bindings.ErrNotLoaded

	// ErrLibraryNotFound indicates no SDL2 shared library could be opened.
	ErrLibraryNotFound = bindings.ErrLibraryNotFound
)

// EncodingError reports a size query on an encoding without a fixed byte size.
type EncodingError struct {
	Op       string   // Operation that failed
	Encoding Encoding // Offending encoding
}

// Error implements the error interface.
func (e *EncodingError) Error() string {
	return fmt.Sprintf("sdlpix %s: unsupported pixel encoding %s", e.Op, e.Encoding)
}

// Unwrap makes errors.Is(err, ErrUnsupportedEncoding) hold.
func (e *EncodingError) Unwrap() error {
	return ErrUnsupportedEncoding
}

// NativeError is a failure reported by SDL. Message is SDL_GetError() read
// immediately after the failing call.
type NativeError struct {
	Op      string // SDL function that failed
	Message string // Human-readable message from SDL
}

// Error implements the error interface.
func (e *NativeError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("sdl %s failed", e.Op)
	}
	return fmt.Sprintf("sdl %s: %s", e.Op, e.Message)
}

// IsUnsupportedEncoding returns true if err came from a size query on an
// encoding without a fixed byte size.
func IsUnsupportedEncoding(err error) bool {
	return errors.Is(err, ErrUnsupportedEncoding)
}

// NativeMessage returns the SDL error message carried by err, or "" if err
// is not a NativeError.
func NativeMessage(err error) string {
	var nErr *NativeError
	if errors.As(err, &nErr) {
		return nErr.Message
	}
	return ""
}
