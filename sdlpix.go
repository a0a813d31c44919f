//go:build !windows && !ios && !android && (amd64 || arm64)

// Package sdlpix describes SDL2 pixel encodings and packs colors through
// SDL2 without CGO, using purego.
//
// The catalog half is pure Go: every Encoding knows its family and how many
// bytes a pixel, a run of pixels, or a pitch*height buffer occupies.
//
// The native half needs a Library. Open loads SDL2 from the system; NewLibrary
// wraps any other Service, such as the go-sdl2 backend in package sdlcgo.
//
//	lib, err := sdlpix.Open()
//	if err != nil {
//		return err
//	}
//	f, err := lib.AllocFormat(sdlpix.EncodingARGB8888)
//	if err != nil {
//		return err
//	}
//	defer f.Free()
//
//	packed, err := sdlpix.RGBA(0x11, 0x22, 0x33, 0x44).ToPacked(f.Format)
package sdlpix

import (
	"errors"
	"fmt"
	"sync"

	"github.com/obinnaokechukwu/sdlpix/internal/bindings"
	"github.com/sirupsen/logrus"
)

// Library binds the color model, handles and message boxes to one Service.
// A Library is safe for concurrent use; the native objects it hands out are not.
type Library struct {
	svc Service
	log logrus.FieldLogger

	routeMu sync.Mutex
	route   *logRoute
}

// Open loads SDL2 and returns a Library backed by it.
// The shared library is loaded once per process; later calls reuse it.
func Open(opts ...Option) (*Library, error) {
	cfg := newConfig(opts)
	if err := bindings.Load(cfg.libraryPaths...); err != nil {
		cfg.logger.WithError(err).Debug("SDL2 load failed")
		return nil, err
	}

	lib := newLibrary(bindings.Native{}, cfg)
	major, minor, patch := bindings.Version()
	lib.log.WithFields(logrus.Fields{
		"path":    bindings.Path(),
		"version": fmt.Sprintf("%d.%d.%d", major, minor, patch),
	}).Debug("SDL2 loaded")
	return lib, nil
}

// NewLibrary returns a Library that forwards native calls to svc.
func NewLibrary(svc Service, opts ...Option) (*Library, error) {
	if svc == nil {
		return nil, errors.New("sdlpix: nil Service")
	}
	return newLibrary(svc, newConfig(opts)), nil
}

func newLibrary(svc Service, cfg config) *Library {
	return &Library{
		svc: svc,
		log: cfg.logger,
	}
}

// IsLoaded returns true if SDL2 has been loaded by Open.
func IsLoaded() bool {
	return bindings.IsLoaded()
}

// Service returns the backend this library calls into.
func (l *Library) Service() Service {
	return l.svc
}

// Logger returns the logger diagnostics are written to.
func (l *Library) Logger() logrus.FieldLogger {
	return l.log
}

// Version returns the linked SDL version. ok is false if the Service cannot
// report one.
func (l *Library) Version() (major, minor, patch uint8, ok bool) {
	v, ok := l.svc.(versioner)
	if !ok {
		return 0, 0, 0, false
	}
	major, minor, patch = v.Version()
	return major, minor, patch, true
}

// LastError returns SDL's message for the most recent failure on this thread.
func (l *Library) LastError() string {
	return l.svc.GetError()
}

// ClearError resets the message returned by LastError.
func (l *Library) ClearError() {
	l.svc.ClearError()
}

// Close undoes RouteNativeLogs if it is active. Handles already issued stay
// valid; Close does not free them.
func (l *Library) Close() error {
	l.routeMu.Lock()
	route := l.route
	l.routeMu.Unlock()
	if route != nil {
		route.restore()
	}
	return nil
}

// nativeError captures SDL_GetError for a failed call to op.
func (l *Library) nativeError(op string) error {
	err := &NativeError{Op: op, Message: l.svc.GetError()}
	l.log.WithField("op", op).WithError(err).Warn("native call failed")
	return err
}
