//go:build !windows && !ios && !android && (amd64 || arm64)

package sdlpix

import (
	"sync/atomic"
	"unsafe"
)

// nativeRef is the shared cell behind every copy of a borrowed handle.
// Releasing the owner clears ptr, so stale copies fail with ErrReleased
// instead of dereferencing freed memory.
//
// A ref derived from another object's field, such as the palette attached
// to a format, has that object as parent and is released with it.
type nativeRef struct {
	lib    *Library
	ptr    unsafe.Pointer // accessed atomically
	parent *nativeRef
}

func newRef(lib *Library, ptr unsafe.Pointer) *nativeRef {
	if ptr == nil {
		return nil
	}
	return &nativeRef{lib: lib, ptr: ptr}
}

// derive returns a ref to ptr that is invalidated along with r.
func (r *nativeRef) derive(ptr unsafe.Pointer) *nativeRef {
	if ptr == nil {
		return nil
	}
	return &nativeRef{lib: r.lib, ptr: ptr, parent: r}
}

// load returns nil once r or any of its parents has been released.
func (r *nativeRef) load() unsafe.Pointer {
	for p := r.parent; p != nil; p = p.parent {
		if atomic.LoadPointer(&p.ptr) == nil {
			return nil
		}
	}
	return atomic.LoadPointer(&r.ptr)
}

// release clears the cell and returns the previous pointer; nil when it was
// already released.
func (r *nativeRef) release() unsafe.Pointer {
	return atomic.SwapPointer(&r.ptr, nil)
}

// resolve returns the live pointer and its library.
func (r *nativeRef) resolve() (unsafe.Pointer, *Library, error) {
	if r == nil {
		return nil, nil, ErrNilHandle
	}
	p := r.load()
	if p == nil {
		return nil, nil, ErrReleased
	}
	return p, r.lib, nil
}

// sameObject reports whether two refs currently point at one native object.
func sameObject(a, b *nativeRef) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	pa := a.load()
	return pa != nil && pa == b.load()
}
