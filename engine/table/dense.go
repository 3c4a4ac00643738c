// Package table implements the component-table storage variants from spec
// 4.C: dense page tables, sparse flag tables, B-tree tables, unique
// singleton tables, hex-grid tables, and the Morton-of-Morton RoomIndex
// (mortonofmorton.go), which is built on engine/morton's Table.
package table

import "github.com/hiveworld/simcore/engine/handle"

const pageSize = 512

// page holds up to pageSize slots of component data for a contiguous range
// of entity indices, with a bitset tracking which slots are occupied and a
// per-slot generation so a stale EntityId (index reused, generation
// advanced) never reads someone else's row.
type page[V any] struct {
	occupied [pageSize / 64]uint64
	gens     [pageSize]uint32
	values   [pageSize]V
}

func (p *page[V]) isSet(slot int) bool {
	return p.occupied[slot/64]&(1<<uint(slot%64)) != 0
}

func (p *page[V]) set(slot int) {
	p.occupied[slot/64] |= 1 << uint(slot%64)
}

func (p *page[V]) clear(slot int) {
	p.occupied[slot/64] &^= 1 << uint(slot%64)
}

// Dense is a page table keyed by handle.EntityId: O(1) access, cache-dense
// iteration in index order. Used for most per-entity components (position,
// carry, hp, energy, script, ...).
type Dense[V any] struct {
	pages []*page[V]
}

// NewDense constructs an empty Dense table.
func NewDense[V any]() *Dense[V] { return &Dense[V]{} }

func (d *Dense[V]) pageFor(index uint32) (*page[V], int) {
	pi := int(index) / pageSize
	for len(d.pages) <= pi {
		d.pages = append(d.pages, &page[V]{})
	}
	return d.pages[pi], int(index) % pageSize
}

// Insert stores value for id, overwriting any prior row at that slot and
// stamping the slot's generation to id.Gen.
func (d *Dense[V]) Insert(id handle.EntityId, value V) {
	p, slot := d.pageFor(id.Index)
	p.gens[slot] = id.Gen
	p.values[slot] = value
	p.set(slot)
}

// Get returns the row for id if present and the slot's generation matches.
func (d *Dense[V]) Get(id handle.EntityId) (V, bool) {
	var zero V
	pi := int(id.Index) / pageSize
	if pi >= len(d.pages) {
		return zero, false
	}
	p := d.pages[pi]
	slot := int(id.Index) % pageSize
	if !p.isSet(slot) || p.gens[slot] != id.Gen {
		return zero, false
	}
	return p.values[slot], true
}

// Contains reports whether id has a row whose slot generation matches
// id.Gen (the same check Get makes).
func (d *Dense[V]) Contains(id handle.EntityId) bool {
	_, ok := d.Get(id)
	return ok
}

// Remove drops id's row, if any.
func (d *Dense[V]) Remove(id handle.EntityId) {
	pi := int(id.Index) / pageSize
	if pi >= len(d.pages) {
		return
	}
	p := d.pages[pi]
	slot := int(id.Index) % pageSize
	if p.isSet(slot) && p.gens[slot] == id.Gen {
		p.clear(slot)
	}
}

// Each calls fn for every occupied row in page-major (index) order.
func (d *Dense[V]) Each(fn func(id handle.EntityId, value V)) {
	for pi, p := range d.pages {
		for slot := 0; slot < pageSize; slot++ {
			if !p.isSet(slot) {
				continue
			}
			index := uint32(pi*pageSize + slot)
			fn(handle.EntityId{Index: index, Gen: p.gens[slot]}, p.values[slot])
		}
	}
}

// Len returns the number of occupied rows.
func (d *Dense[V]) Len() int {
	n := 0
	for _, p := range d.pages {
		for _, word := range p.occupied {
			n += popcount(word)
		}
	}
	return n
}

func popcount(w uint64) int {
	n := 0
	for w != 0 {
		w &= w - 1
		n++
	}
	return n
}
