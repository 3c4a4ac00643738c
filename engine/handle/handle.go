// Package handle implements the generational entity-id table (spec 4.B):
// fixed-capacity, O(1) alloc/free/validate, with a free list threaded through
// the slot array itself. The table is owned exclusively by the world; it is
// not safe for concurrent mutation, matching spec 4.B's concurrency note.
package handle

import "fmt"

// sentinel marks both an empty free-list link and an invalid EntityId field.
const sentinel = ^uint32(0)

// EntityId is a 64-bit (generation, index) pair. Equality uses both fields.
// The zero value is NOT invalid — use Invalid for that; Go's zero value
// (gen=0, index=0) addresses the first slot at its first generation, which is
// a perfectly valid id once allocated.
type EntityId struct {
	Index uint32
	Gen   uint32
}

// Invalid is the default/invalid id: all-ones in both fields, per spec 3.
var Invalid = EntityId{Index: sentinel, Gen: sentinel}

// IsInvalid reports whether id is the sentinel invalid value.
func (id EntityId) IsInvalid() bool { return id == Invalid }

// String renders the id as "gen:index" for logs and debugging.
func (id EntityId) String() string { return fmt.Sprintf("%d:%d", id.Gen, id.Index) }

// entry is one handle-table slot. While free, Data threads the free list;
// while allocated, Data carries the caller's auxiliary payload.
type entry struct {
	Data uint32
	Gen  uint32
}

// ErrCapacityExhausted is returned by Alloc when no free slot remains.
type ErrCapacityExhausted struct{ Capacity uint32 }

func (e *ErrCapacityExhausted) Error() string {
	return fmt.Sprintf("handle: table at capacity (%d)", e.Capacity)
}

// Table is a fixed-capacity generational handle table.
type Table struct {
	entries  []entry
	freeHead uint32
	live     uint32
}

// New creates a Table with the given fixed capacity.
func New(capacity uint32) *Table {
	entries := make([]entry, capacity)
	for i := range entries {
		entries[i].Data = uint32(i) + 1
	}
	if capacity == 0 {
		return &Table{entries: entries, freeHead: sentinel}
	}
	entries[capacity-1].Data = sentinel
	return &Table{entries: entries, freeHead: 0}
}

// Cap returns the table's fixed capacity.
func (t *Table) Cap() uint32 { return uint32(len(t.entries)) }

// Len returns the number of currently allocated (live) ids.
func (t *Table) Len() uint32 { return t.live }

// Alloc pops the free-list head and returns a new EntityId for it, carrying
// aux as its auxiliary payload. Returns ErrCapacityExhausted if the free list
// is empty.
func (t *Table) Alloc(aux uint32) (EntityId, error) {
	if t.freeHead == sentinel {
		return Invalid, &ErrCapacityExhausted{Capacity: t.Cap()}
	}
	index := t.freeHead
	e := &t.entries[index]
	t.freeHead = e.Data
	e.Data = aux
	t.live++
	return EntityId{Index: index, Gen: e.Gen}, nil
}

// Free returns id's slot to the free list and bumps its generation, so any
// id referencing the old generation is never valid again.
func (t *Table) Free(id EntityId) {
	if !t.IsValid(id) {
		return
	}
	e := &t.entries[id.Index]
	e.Data = t.freeHead
	e.Gen++
	t.freeHead = id.Index
	t.live--
}

// IsValid reports whether id currently addresses a live slot.
func (t *Table) IsValid(id EntityId) bool {
	if id.Index >= t.Cap() {
		return false
	}
	return t.entries[id.Index].Gen == id.Gen
}

// LookUp returns the auxiliary payload stored for id. The second return
// value is false if id is not valid.
func (t *Table) LookUp(id EntityId) (uint32, bool) {
	if !t.IsValid(id) {
		return 0, false
	}
	return t.entries[id.Index].Data, true
}

// Update overwrites the auxiliary payload stored for id. Reports false if id
// is not valid.
func (t *Table) Update(id EntityId, aux uint32) bool {
	if !t.IsValid(id) {
		return false
	}
	t.entries[id.Index].Data = aux
	return true
}
