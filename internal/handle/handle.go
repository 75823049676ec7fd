// Package handle maps opaque integer handles to Go values.
//
// Handles cross the C boundary in place of pointers: the C side only ever
// sees a nonzero integer, and every lookup goes through a Table that knows
// which handles are live. Handles are never reused within a process, so a
// stale handle is always detected instead of silently aliasing a newer object.
package handle

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

// ErrInvalidHandle reports a handle that is zero, already destroyed, or
// belongs to a different kind of object.
var ErrInvalidHandle = errors.New("vc: invalid handle")

// Handle is an opaque reference to an object held by a Table.
// The zero Handle is never valid.
type Handle uintptr

// next is shared by all tables so a handle of one kind can never be
// mistaken for a live handle of another kind.
var next atomic.Uintptr

// Table holds objects of one kind.
//
// Thread safety: Table is safe for concurrent use.
type Table[T any] struct {
	kind    string
	mu      sync.RWMutex
	objects map[Handle]T
}

// NewTable creates an empty table. kind names the object type in
// diagnostics ("path", "context", ...).
func NewTable[T any](kind string) *Table[T] {
	return &Table[T]{
		kind:    kind,
		objects: make(map[Handle]T),
	}
}

// Kind returns the object kind this table holds.
func (t *Table[T]) Kind() string { return t.kind }

// Insert stores v and returns its new handle.
func (t *Table[T]) Insert(v T) Handle {
	h := Handle(next.Add(1))
	t.mu.Lock()
	t.objects[h] = v
	t.mu.Unlock()
	return h
}

// Lookup returns the object for h, reporting whether it is live.
func (t *Table[T]) Lookup(h Handle) (T, bool) {
	t.mu.RLock()
	v, ok := t.objects[h]
	t.mu.RUnlock()
	return v, ok
}

// Get returns the object for h. It panics if h is not live in this table.
func (t *Table[T]) Get(h Handle) T {
	v, ok := t.Lookup(h)
	if !ok {
		panic(t.invalid(h))
	}
	return v
}

// Remove deletes h and returns the object it referred to.
// It panics if h is not live, which catches double destroys.
func (t *Table[T]) Remove(h Handle) T {
	t.mu.Lock()
	v, ok := t.objects[h]
	if ok {
		delete(t.objects, h)
	}
	t.mu.Unlock()
	if !ok {
		panic(t.invalid(h))
	}
	return v
}

// Len returns the number of live handles.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.objects)
}

func (t *Table[T]) invalid(h Handle) error {
	if h == 0 {
		return fmt.Errorf("%w: null %s handle", ErrInvalidHandle, t.kind)
	}
	return fmt.Errorf("%w: %s handle %#x is not live", ErrInvalidHandle, t.kind, uintptr(h))
}
