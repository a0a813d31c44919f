// Package handles maps Go values to integer handles that can be stored in C memory.
//
// C code must never hold Go pointers. When a native callback needs to find its
// Go-side owner, the owner is registered here and the returned uintptr is passed
// as the callback's opaque userdata instead.
package handles

import (
	"sync"
)

// Registry stores values of type T under non-zero handles.
// The zero value is ready to use and safe for concurrent use.
type Registry[T any] struct {
	mu     sync.RWMutex
	values map[uintptr]T
	nextID uintptr
}

// Register stores v and returns its handle. Handles are never reused.
func (r *Registry[T]) Register(v T) uintptr {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.values == nil {
		r.values = make(map[uintptr]T)
	}
	r.nextID++
	r.values[r.nextID] = v
	return r.nextID
}

// Lookup returns the value registered under id.
func (r *Registry[T]) Lookup(id uintptr) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[id]
	return v, ok
}

// Unregister drops id. Unknown handles are ignored.
func (r *Registry[T]) Unregister(id uintptr) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.values, id)
}

// Len returns the number of live handles.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.values)
}
