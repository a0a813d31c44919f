//go:build !windows && !ios && !android && (amd64 || arm64)

// Package platform knows how shared libraries are named on the Unix-like
// systems purego can dlopen from.
package platform

import (
	"fmt"
	"runtime"
)

// LibraryExtension is the file extension for shared libraries on this platform.
var LibraryExtension string

// LibraryPrefix is the prefix for shared library names on this platform.
var LibraryPrefix string

func init() {
	switch runtime.GOOS {
	case "darwin":
		LibraryExtension = ".dylib"
		LibraryPrefix = "lib"
	default: // linux, freebsd, etc.
		LibraryExtension = ".so"
		LibraryPrefix = "lib"
	}
}

// FormatLibraryName returns the platform-specific library filename.
// An empty version returns the unversioned name.
//
// Examples:
//   - Linux:   FormatLibraryName("SDL2-2.0", "0") -> "libSDL2-2.0.so.0"
//   - macOS:   FormatLibraryName("SDL2-2.0", "0") -> "libSDL2-2.0.0.dylib"
func FormatLibraryName(name, version string) string {
	if version == "" {
		return fmt.Sprintf("%s%s%s", LibraryPrefix, name, LibraryExtension)
	}
	switch runtime.GOOS {
	case "darwin":
		return fmt.Sprintf("%s%s.%s%s", LibraryPrefix, name, version, LibraryExtension)
	default: // linux, freebsd
		return fmt.Sprintf("%s%s%s.%s", LibraryPrefix, name, LibraryExtension, version)
	}
}

// SDLLibraryNames returns the file names SDL2 is commonly installed under,
// most specific first.
func SDLLibraryNames() []string {
	return []string{
		FormatLibraryName("SDL2-2.0", "0"),
		FormatLibraryName("SDL2-2.0", ""),
		FormatLibraryName("SDL2", ""),
	}
}
