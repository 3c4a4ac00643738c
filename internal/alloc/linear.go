// Package alloc implements the bump-allocated scratch memory used by the
// script executor: a LinearAllocator owning a fixed buffer, ArenaViews that
// reserve LIFO sub-slabs of it, and a Scope that layers destructor
// tracking on top for typed, finalised allocations.
package alloc

import "errors"

// ErrOutOfMemory is returned by Allocate when the LinearAllocator's capacity
// has been exhausted.
var ErrOutOfMemory = errors.New("alloc: out of memory")

// alignment all allocations are rounded up to.
const alignment = 16

// alignedSize rounds size up to the next multiple of alignment.
func alignedSize(size int) int {
	return (size + (alignment - 1)) &^ (alignment - 1)
}

// LinearAllocator is a bump allocator over a fixed-size buffer. Allocate
// advances a cursor; Rewind resets it. Memory must be returned in LIFO order:
// rewinding to a point ahead of the current cursor is a programming error.
type LinearAllocator struct {
	buf     []byte
	cursor  int
	highest int
}

// NewLinear creates a LinearAllocator with the given capacity in bytes.
func NewLinear(capacity int) *LinearAllocator {
	return &LinearAllocator{buf: make([]byte, alignedSize(capacity))}
}

// Cap returns the allocator's total capacity in bytes.
func (a *LinearAllocator) Cap() int { return len(a.buf) }

// Cursor returns the current bump-cursor offset, suitable for passing to
// Rewind later.
func (a *LinearAllocator) Cursor() int { return a.cursor }

// Allocate reserves size bytes (rounded up to alignment) and returns a slice
// over them. The slice is only valid until the allocator is rewound past it.
func (a *LinearAllocator) Allocate(size int) ([]byte, error) {
	n := alignedSize(size)
	if a.cursor+n > len(a.buf) {
		return nil, ErrOutOfMemory
	}
	s := a.buf[a.cursor : a.cursor+n : a.cursor+n]
	a.cursor += n
	if a.cursor > a.highest {
		a.highest = a.cursor
	}
	return s, nil
}

// Rewind resets the cursor to a previous value obtained from Cursor. Rewinding
// forward (to a cursor greater than the current one) panics: it would expose
// memory that hasn't been allocated and breaks the LIFO discipline the rest
// of the allocator relies on.
func (a *LinearAllocator) Rewind(cursor int) {
	if cursor > a.cursor {
		panic("alloc: rewind must not advance the cursor")
	}
	a.cursor = cursor
}

// Reset returns the allocator to its initial, empty state. Equivalent to
// Rewind(0) but also clears the high-water mark used by HighWater.
func (a *LinearAllocator) Reset() {
	a.cursor = 0
	a.highest = 0
}

// HighWater returns the largest cursor value reached since the last Reset,
// useful for sizing per-chunk arenas in the script executor.
func (a *LinearAllocator) HighWater() int { return a.highest }

// Empty reports whether all memory has been returned (cursor is back at 0).
// Dropping a LinearAllocator while this is false indicates a leaked scope.
func (a *LinearAllocator) Empty() bool { return a.cursor == 0 }
