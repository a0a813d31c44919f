//go:build !windows && !ios && !android && (amd64 || arm64)

// Package bindings loads the SDL2 shared library and registers the pixel,
// palette, message box and log functions sdlpix needs, using purego.
package bindings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/obinnaokechukwu/sdlpix/internal/cstring"
	"github.com/obinnaokechukwu/sdlpix/internal/platform"
)

// LibraryEnv names an environment variable holding an explicit SDL2 path.
const LibraryEnv = "SDLPIX_SDL2_LIBRARY"

// ErrNotLoaded is returned when SDL functions are called before Load().
var ErrNotLoaded = errors.New("sdlpix: SDL2 library not loaded; call sdlpix.Open() first")

// ErrLibraryNotFound is returned when no SDL2 shared library can be opened.
var ErrLibraryNotFound = errors.New("sdlpix: SDL2 library not found")

var (
	libSDL  uintptr
	libPath string

	loaded   bool
	loadOnce sync.Once
	loadErr  error
)

// SDL_version
type version struct {
	Major, Minor, Patch uint8
}

var (
	sdlGetVersion func(v *version)
	sdlGetError   func() *byte
	sdlClearError func()

	sdlMapRGB  func(format unsafe.Pointer, r, g, b uint8) uint32
	sdlMapRGBA func(format unsafe.Pointer, r, g, b, a uint8) uint32
	sdlGetRGBA func(pixel uint32, format unsafe.Pointer, r, g, b, a *uint8)

	sdlAllocFormat           func(pixelFormat uint32) unsafe.Pointer
	sdlFreeFormat            func(format unsafe.Pointer)
	sdlAllocPalette          func(ncolors int32) unsafe.Pointer
	sdlFreePalette           func(palette unsafe.Pointer)
	sdlSetPixelFormatPalette func(format, palette unsafe.Pointer) int32

	sdlShowSimpleMessageBox func(flags uint32, title, message string, window unsafe.Pointer) int32

	sdlLogGetOutputFunction func(callback, userdata *uintptr)
	sdlLogSetOutputFunction func(callback, userdata uintptr)
	sdlLogSetAllPriority    func(priority int32)
)

// IsLoaded returns true if SDL2 has been successfully loaded.
func IsLoaded() bool {
	return loaded
}

// Path returns the file SDL2 was loaded from, or "" before a successful Load.
func Path() string {
	return libPath
}

// Load opens SDL2 and registers all function bindings. Candidates in paths are
// tried before the environment and the platform defaults.
// Only the first call does any work; later calls return its result.
func Load(paths ...string) error {
	loadOnce.Do(func() {
		loadErr = doLoad(paths)
		if loadErr == nil {
			loaded = true
		}
	})
	return loadErr
}

func doLoad(paths []string) error {
	lib, path, err := openSDL(paths)
	if err != nil {
		return err
	}
	libSDL, libPath = lib, path

	purego.RegisterLibFunc(&sdlGetVersion, lib, "SDL_GetVersion")
	purego.RegisterLibFunc(&sdlGetError, lib, "SDL_GetError")
	purego.RegisterLibFunc(&sdlClearError, lib, "SDL_ClearError")

	purego.RegisterLibFunc(&sdlMapRGB, lib, "SDL_MapRGB")
	purego.RegisterLibFunc(&sdlMapRGBA, lib, "SDL_MapRGBA")
	purego.RegisterLibFunc(&sdlGetRGBA, lib, "SDL_GetRGBA")

	purego.RegisterLibFunc(&sdlAllocFormat, lib, "SDL_AllocFormat")
	purego.RegisterLibFunc(&sdlFreeFormat, lib, "SDL_FreeFormat")
	purego.RegisterLibFunc(&sdlAllocPalette, lib, "SDL_AllocPalette")
	purego.RegisterLibFunc(&sdlFreePalette, lib, "SDL_FreePalette")
	purego.RegisterLibFunc(&sdlSetPixelFormatPalette, lib, "SDL_SetPixelFormatPalette")

	purego.RegisterLibFunc(&sdlShowSimpleMessageBox, lib, "SDL_ShowSimpleMessageBox")

	purego.RegisterLibFunc(&sdlLogGetOutputFunction, lib, "SDL_LogGetOutputFunction")
	purego.RegisterLibFunc(&sdlLogSetOutputFunction, lib, "SDL_LogSetOutputFunction")
	purego.RegisterLibFunc(&sdlLogSetAllPriority, lib, "SDL_LogSetAllPriority")

	return nil
}

// openSDL tries explicit paths, then $SDLPIX_SDL2_LIBRARY, then every search
// directory with every known file name, then bare names for the system loader.
func openSDL(paths []string) (uintptr, string, error) {
	candidates := append([]string(nil), paths...)
	if env := os.Getenv(LibraryEnv); env != "" {
		candidates = append(candidates, env)
	}
	for _, dir := range LibrarySearchPaths() {
		for _, name := range platform.SDLLibraryNames() {
			candidates = append(candidates, filepath.Join(dir, name))
		}
	}
	candidates = append(candidates, platform.SDLLibraryNames()...)

	for _, path := range candidates {
		lib, err := tryOpen(path)
		if err == nil {
			return lib, path, nil
		}
	}
	return 0, "", fmt.Errorf("%w (tried %d candidates)", ErrLibraryNotFound, len(candidates))
}

func tryOpen(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

// FindLibrary searches the default directories for SDL2 and returns its full
// path. Useful for diagnostics.
func FindLibrary() (string, error) {
	for _, dir := range LibrarySearchPaths() {
		for _, name := range platform.SDLLibraryNames() {
			fullPath := filepath.Join(dir, name)
			if _, err := os.Stat(fullPath); err == nil {
				return fullPath, nil
			}
		}
	}
	return "", ErrLibraryNotFound
}

// LibrarySearchPaths returns platform-specific library search paths.
func LibrarySearchPaths() []string {
	var paths []string

	switch runtime.GOOS {
	case "linux":
		if ldPath := os.Getenv("LD_LIBRARY_PATH"); ldPath != "" {
			paths = append(paths, filepath.SplitList(ldPath)...)
		}
		paths = append(paths,
			"/usr/lib/x86_64-linux-gnu",
			"/usr/lib/aarch64-linux-gnu",
			"/usr/local/lib",
			"/usr/lib64",
			"/usr/lib",
			"/lib/x86_64-linux-gnu",
			"/lib",
		)

	case "darwin":
		if dyldPath := os.Getenv("DYLD_LIBRARY_PATH"); dyldPath != "" {
			paths = append(paths, filepath.SplitList(dyldPath)...)
		}
		paths = append(paths,
			"/opt/homebrew/lib",
			"/usr/local/lib",
			"/opt/homebrew/opt/sdl2/lib",
			"/usr/local/opt/sdl2/lib",
		)

	case "freebsd":
		if ldPath := os.Getenv("LD_LIBRARY_PATH"); ldPath != "" {
			paths = append(paths, filepath.SplitList(ldPath)...)
		}
		paths = append(paths,
			"/usr/local/lib",
			"/usr/lib",
		)
	}

	return paths
}

// Handle returns the dlopen handle of SDL2, or 0 before a successful Load.
func Handle() uintptr {
	return libSDL
}

// Version returns the linked SDL version, or zeros if not loaded.
func Version() (major, minor, patch uint8) {
	if !loaded {
		return 0, 0, 0
	}
	var v version
	sdlGetVersion(&v)
	return v.Major, v.Minor, v.Patch
}

// Native is the purego-backed SDL2 service. Its methods must only be called
// after a successful Load; before that they return zero values.
type Native struct{}

func (Native) MapRGB(format unsafe.Pointer, r, g, b uint8) uint32 {
	if !loaded {
		return 0
	}
	return sdlMapRGB(format, r, g, b)
}

func (Native) MapRGBA(format unsafe.Pointer, r, g, b, a uint8) uint32 {
	if !loaded {
		return 0
	}
	return sdlMapRGBA(format, r, g, b, a)
}

func (Native) GetRGBA(pixel uint32, format unsafe.Pointer) (r, g, b, a uint8) {
	if !loaded {
		return 0, 0, 0, 0
	}
	sdlGetRGBA(pixel, format, &r, &g, &b, &a)
	return r, g, b, a
}

func (Native) AllocFormat(pixelFormat uint32) unsafe.Pointer {
	if !loaded {
		return nil
	}
	return sdlAllocFormat(pixelFormat)
}

func (Native) FreeFormat(format unsafe.Pointer) {
	if !loaded || format == nil {
		return
	}
	sdlFreeFormat(format)
}

func (Native) AllocPalette(ncolors int32) unsafe.Pointer {
	if !loaded {
		return nil
	}
	return sdlAllocPalette(ncolors)
}

func (Native) FreePalette(palette unsafe.Pointer) {
	if !loaded || palette == nil {
		return
	}
	sdlFreePalette(palette)
}

func (Native) SetPixelFormatPalette(format, palette unsafe.Pointer) int32 {
	if !loaded {
		return -1
	}
	return sdlSetPixelFormatPalette(format, palette)
}

// ShowSimpleMessageBox expects title and message to be free of NUL bytes;
// purego would otherwise truncate them silently.
func (Native) ShowSimpleMessageBox(flags uint32, title, message string, window unsafe.Pointer) int32 {
	if !loaded {
		return -1
	}
	return sdlShowSimpleMessageBox(flags, title, message, window)
}

func (Native) GetError() string {
	if !loaded {
		return ErrNotLoaded.Error()
	}
	return cstring.GoString(sdlGetError())
}

func (Native) ClearError() {
	if loaded {
		sdlClearError()
	}
}

func (Native) Version() (major, minor, patch uint8) {
	return Version()
}

// LogOutput returns SDL's current log output function and its userdata.
func (Native) LogOutput() (callback, userdata uintptr) {
	if !loaded {
		return 0, 0
	}
	sdlLogGetOutputFunction(&callback, &userdata)
	return callback, userdata
}

// SetLogOutput installs a C-callable log output function (see purego.NewCallback).
func (Native) SetLogOutput(callback, userdata uintptr) {
	if loaded {
		sdlLogSetOutputFunction(callback, userdata)
	}
}

// SetLogPriority sets the minimum priority SDL logs for every category.
func (Native) SetLogPriority(priority int32) {
	if loaded {
		sdlLogSetAllPriority(priority)
	}
}
