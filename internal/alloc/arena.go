package alloc

import "sync"

// ArenaView is a shareable, reference-counted handle onto a sub-slab of a
// LinearAllocator. Deallocate is a no-op for individual allocations; when the
// last view over a slab is dropped via Release, the slab is rewound in the
// underlying LinearAllocator. This gives LIFO-scoped arenas without interior
// fragmentation: many short-lived borrows can share one bump region as long
// as they're all released before an enclosing scope rewinds past it.
type ArenaView struct {
	parent *LinearAllocator
	start  int
	cursor int
	mu     sync.Mutex
	refs   int
}

// NewArenaView reserves a new sub-slab of parent starting at its current
// cursor. The returned view holds one reference; call Acquire/Release to
// manage additional sharers.
func NewArenaView(parent *LinearAllocator) *ArenaView {
	return &ArenaView{parent: parent, start: parent.Cursor(), cursor: parent.Cursor(), refs: 1}
}

// Acquire adds a reference to the view, returning the same view for chaining.
func (v *ArenaView) Acquire() *ArenaView {
	v.mu.Lock()
	v.refs++
	v.mu.Unlock()
	return v
}

// Allocate bumps size bytes within the view's slab.
func (v *ArenaView) Allocate(size int) ([]byte, error) {
	n := alignedSize(size)
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.parent.cursor != v.cursor {
		// Another view (or scope) bumped the shared allocator since our
		// last allocation; this only happens if views aren't used in
		// strict LIFO order, which is a programming error.
		panic("alloc: arena view is not at the allocator's current cursor")
	}
	b, err := v.parent.Allocate(n)
	if err != nil {
		return nil, err
	}
	v.cursor = v.parent.cursor
	return b, nil
}

// Deallocate is a no-op: individual allocations within an arena view are
// never freed one at a time, only the whole slab is rewound on Release.
func (v *ArenaView) Deallocate([]byte) {}

// Release drops a reference to the view. When the last reference is
// released, the underlying LinearAllocator is rewound to the point the view
// was created at, returning the whole slab at once.
func (v *ArenaView) Release() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.refs--
	if v.refs > 0 {
		return
	}
	v.parent.Rewind(v.start)
}
