package table

import "github.com/hiveworld/simcore/engine/handle"

// Sparse is a tag-only presence table: no payload, just "does this entity
// have this flag" (e.g. IsBot, IsStructure). Backed by the same page/bitset
// layout as Dense but without a values array.
type Sparse struct {
	pages []*sparsePage
}

type sparsePage struct {
	occupied [pageSize / 64]uint64
	gens     [pageSize]uint32
}

func (p *sparsePage) isSet(slot int) bool { return p.occupied[slot/64]&(1<<uint(slot%64)) != 0 }
func (p *sparsePage) set(slot int)        { p.occupied[slot/64] |= 1 << uint(slot%64) }
func (p *sparsePage) clear(slot int)      { p.occupied[slot/64] &^= 1 << uint(slot%64) }

// NewSparse constructs an empty Sparse table.
func NewSparse() *Sparse { return &Sparse{} }

func (s *Sparse) pageFor(index uint32) (*sparsePage, int) {
	pi := int(index) / pageSize
	for len(s.pages) <= pi {
		s.pages = append(s.pages, &sparsePage{})
	}
	return s.pages[pi], int(index) % pageSize
}

// Set tags id as present.
func (s *Sparse) Set(id handle.EntityId) {
	p, slot := s.pageFor(id.Index)
	p.gens[slot] = id.Gen
	p.set(slot)
}

// Has reports whether id is tagged, matching generation.
func (s *Sparse) Has(id handle.EntityId) bool {
	pi := int(id.Index) / pageSize
	if pi >= len(s.pages) {
		return false
	}
	p := s.pages[pi]
	slot := int(id.Index) % pageSize
	return p.isSet(slot) && p.gens[slot] == id.Gen
}

// Clear removes id's tag, if present.
func (s *Sparse) Clear(id handle.EntityId) {
	pi := int(id.Index) / pageSize
	if pi >= len(s.pages) {
		return
	}
	p := s.pages[pi]
	slot := int(id.Index) % pageSize
	if p.isSet(slot) && p.gens[slot] == id.Gen {
		p.clear(slot)
	}
}

// Each calls fn for every tagged id in index order.
func (s *Sparse) Each(fn func(id handle.EntityId)) {
	for pi, p := range s.pages {
		for slot := 0; slot < pageSize; slot++ {
			if !p.isSet(slot) {
				continue
			}
			fn(handle.EntityId{Index: uint32(pi*pageSize + slot), Gen: p.gens[slot]})
		}
	}
}
