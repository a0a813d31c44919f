//go:build !windows && !ios && !android && (amd64 || arm64)

package sdlpix

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/obinnaokechukwu/sdlpix/internal/cstring"
	"github.com/sirupsen/logrus"
)

// MessageBoxFlag selects the icon of a message box (SDL_MessageBoxFlags).
type MessageBoxFlag uint32

const (
	MessageBoxError       MessageBoxFlag = 0x10
	MessageBoxWarning     MessageBoxFlag = 0x20
	MessageBoxInformation MessageBoxFlag = 0x40
)

var messageBoxFlagNames = []struct {
	flag MessageBoxFlag
	name string
}{
	{MessageBoxError, "error"},
	{MessageBoxWarning, "warning"},
	{MessageBoxInformation, "information"},
}

// String returns the set flags joined by "|", e.g. "error|warning".
func (f MessageBoxFlag) String() string {
	if f == 0 {
		return "none"
	}
	var parts []string
	rest := f
	for _, n := range messageBoxFlagNames {
		if f&n.flag != 0 {
			parts = append(parts, n.name)
			rest &^= n.flag
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("%#x", uint32(rest)))
	}
	return strings.Join(parts, "|")
}

// Window is a borrowed SDL_Window used as the parent of a message box.
type Window struct {
	ref *nativeRef
}

// BorrowWindow wraps an SDL_Window owned elsewhere. It returns nil for a nil ptr.
func (l *Library) BorrowWindow(ptr unsafe.Pointer) *Window {
	if ptr == nil {
		return nil
	}
	return &Window{ref: newRef(l, ptr)}
}

// Ptr returns the SDL_Window pointer.
func (w *Window) Ptr() unsafe.Pointer {
	if w == nil || w.ref == nil {
		return nil
	}
	return w.ref.load()
}

// ShowSimpleMessageBox shows a modal message box and blocks until it is
// dismissed. window may be nil for a box without a parent.
//
// Title and message must not contain NUL bytes; such text is rejected with
// ErrInvalidText before SDL is called.
func (l *Library) ShowSimpleMessageBox(flags MessageBoxFlag, title, message string, window *Window) error {
	if err := cstring.Check(title); err != nil {
		return fmt.Errorf("%w: title: %v", ErrInvalidText, err)
	}
	if err := cstring.Check(message); err != nil {
		return fmt.Errorf("%w: message: %v", ErrInvalidText, err)
	}

	var parent unsafe.Pointer
	if window != nil {
		p, _, err := window.ref.resolve()
		if err != nil {
			return err
		}
		parent = p
	}

	l.log.WithFields(logrus.Fields{
		"flags": flags,
		"title": title,
	}).Debug("showing message box")
	if l.svc.ShowSimpleMessageBox(uint32(flags), title, message, parent) != 0 {
		return l.nativeError("SDL_ShowSimpleMessageBox")
	}
	return nil
}
