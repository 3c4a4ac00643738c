package morton

import (
	"sort"

	"github.com/brentp/intintmap"

	"github.com/hiveworld/simcore/engine/geom"
)

const (
	radixMaskLen = 8
	numBuckets   = 1 << radixMaskLen
	radixMask    = numBuckets - 1
	mortonBits   = 32
)

// Table is a spatial index keyed by geom.Axial, storing values of type V in
// three parallel slices sorted by Morton key. Keys outside [0, 65535] on
// either axis are rejected: this is the same restriction the linear quadtree
// it is modeled on imposes, trading addressable range for scan speed.
type Table[V any] struct {
	keys   []Key
	points []geom.Axial
	values []V

	// index maps a packed (x,y) pair to its slot, for O(1) GetByID/ContainsKey
	// without a binary search; rebuilt alongside the sorted slices.
	index *intintmap.Map
}

// New constructs an empty Table.
func New[V any]() *Table[V] {
	return &Table[V]{index: intintmap.New(64, 0.6)}
}

// InRange reports whether p's axes both fit into a uint16, the precondition
// for every operation on Table.
func InRange(p geom.Axial) bool {
	return p.Q >= 0 && p.Q <= 0xffff && p.R >= 0 && p.R <= 0xffff
}

func packed(p geom.Axial) int64 {
	return int64(p.Q)<<32 | int64(uint32(p.R))
}

// Len returns the number of entries in the table.
func (t *Table[V]) Len() int { return len(t.keys) }

// Clear empties the table.
func (t *Table[V]) Clear() {
	t.keys = t.keys[:0]
	t.points = t.points[:0]
	t.values = t.values[:0]
	t.index = intintmap.New(64, 0.6)
}

// Insert places a single (point, value) pair, keeping keys sorted. Returns
// false if point is out of range. Triggers a shift of the tail of the
// slices; Extend is preferred for bulk loads.
func (t *Table[V]) Insert(point geom.Axial, value V) bool {
	if !InRange(point) {
		return false
	}
	k := Encode(uint16(point.Q), uint16(point.R))
	i := sort.Search(len(t.keys), func(i int) bool { return t.keys[i] >= k })

	t.keys = append(t.keys, 0)
	copy(t.keys[i+1:], t.keys[i:])
	t.keys[i] = k

	t.points = append(t.points, geom.Axial{})
	copy(t.points[i+1:], t.points[i:])
	t.points[i] = point

	var zero V
	t.values = append(t.values, zero)
	copy(t.values[i+1:], t.values[i:])
	t.values[i] = value

	t.rebuildIndexFrom(i)
	return true
}

// rebuildIndexFrom refreshes index entries for slots >= from, whose position
// shifted by an insert or delete.
func (t *Table[V]) rebuildIndexFrom(from int) {
	for i := from; i < len(t.points); i++ {
		t.index.Put(packed(t.points[i]), int64(i))
	}
}

// Extend bulk-loads (point, value) pairs, appending and then radix-sorting
// the whole backing store in one pass. Out-of-range points are skipped.
func (t *Table[V]) Extend(points []geom.Axial, values []V) {
	for i, p := range points {
		if !InRange(p) {
			continue
		}
		t.keys = append(t.keys, Encode(uint16(p.Q), uint16(p.R)))
		t.points = append(t.points, p)
		t.values = append(t.values, values[i])
	}
	radixSort(t.keys, t.points, t.values)
	t.index = intintmap.New(int64(len(t.points))*2+64, 0.6)
	t.rebuildIndexFrom(0)
}

// GetByID returns the value stored at point, if any.
func (t *Table[V]) GetByID(point geom.Axial) (V, bool) {
	var zero V
	if !InRange(point) {
		return zero, false
	}
	i, ok := t.index.Get(packed(point))
	if !ok {
		return zero, false
	}
	return t.values[i], true
}

// ContainsKey reports whether point has an entry.
func (t *Table[V]) ContainsKey(point geom.Axial) bool {
	if !InRange(point) {
		return false
	}
	_, ok := t.index.Get(packed(point))
	return ok
}

// Delete removes the entry at point, if any, and reports whether it found one.
func (t *Table[V]) Delete(point geom.Axial) bool {
	if !InRange(point) {
		return false
	}
	i, ok := t.index.Get(packed(point))
	if !ok {
		return false
	}
	idx := int(i)
	t.keys = append(t.keys[:idx], t.keys[idx+1:]...)
	t.points = append(t.points[:idx], t.points[idx+1:]...)
	t.values = append(t.values[:idx], t.values[idx+1:]...)
	t.index = intintmap.New(int64(len(t.points))*2+64, 0.6)
	t.rebuildIndexFrom(0)
	return true
}

// Entry pairs a point with its value, returned by range queries.
type Entry[V any] struct {
	Point geom.Axial
	Value V
}

// FindByRange returns entries at hex distance less than radius from center.
// It first narrows to the Morton-sorted slice whose keys lie between those
// of the box corners center-(radius/2+1) and center+(radius/2+1), then
// filters that slice by true hex distance. Entries whose keys fall outside
// that span are not returned; for radius above 4 the box does not cover
// every hex closer than radius.
func (t *Table[V]) FindByRange(center geom.Axial, radius uint32) []Entry[V] {
	r := int32(radius)/2 + 1
	min := geom.Axial{Q: center.Q - r, R: center.R - r}
	max := geom.Axial{Q: center.Q + r, R: center.R + r}

	lo, hi := t.boundIndices(min, max)
	var out []Entry[V]
	for i := lo; i <= hi && i < len(t.points); i++ {
		p := t.points[i]
		if geom.HexDistance(p, center) < radius {
			out = append(out, Entry[V]{Point: p, Value: t.values[i]})
		}
	}
	return out
}

// CountInRange mirrors FindByRange without allocating entries.
func (t *Table[V]) CountInRange(center geom.Axial, radius uint32) int {
	r := int32(radius)/2 + 1
	min := geom.Axial{Q: center.Q - r, R: center.R - r}
	max := geom.Axial{Q: center.Q + r, R: center.R + r}

	lo, hi := t.boundIndices(min, max)
	n := 0
	for i := lo; i <= hi && i < len(t.points); i++ {
		if geom.HexDistance(t.points[i], center) < radius {
			n++
		}
	}
	return n
}

// boundIndices clamps min/max into range and returns the key-sorted index
// span covering them.
func (t *Table[V]) boundIndices(min, max geom.Axial) (int, int) {
	lo := 0
	if InRange(min) {
		k := Encode(uint16(min.Q), uint16(min.R))
		lo = sort.Search(len(t.keys), func(i int) bool { return t.keys[i] >= k })
	}
	hi := len(t.keys) - 1
	if hi < 0 {
		hi = 0
	}
	if InRange(max) {
		k := Encode(uint16(max.Q), uint16(max.R))
		found := sort.Search(len(t.keys), func(i int) bool { return t.keys[i] >= k })
		if found < len(t.keys) {
			hi = found
		}
	}
	return lo, hi
}

// FindClosestByFilter expands ring by ring from center (up to maxRadius)
// and returns the first entry satisfying filter, preferring closer rings.
func (t *Table[V]) FindClosestByFilter(center geom.Axial, maxRadius uint32, filter func(geom.Axial, V) bool) (Entry[V], bool) {
	var zero Entry[V]
	if v, ok := t.GetByID(center); ok && filter(center, v) {
		return Entry[V]{Point: center, Value: v}, true
	}
	for r := uint32(1); r <= maxRadius; r++ {
		ring := geom.NewHexagon(center, int32(r)).IterEdge()
		for _, p := range ring {
			if v, ok := t.GetByID(p); ok && filter(p, v) {
				return Entry[V]{Point: p, Value: v}, true
			}
		}
	}
	return zero, false
}

// radixSort sorts keys/points/values in lockstep by key, 8 bits at a time,
// using a double-buffered (index, key) scratch pair so every pass is a
// stable counting sort.
func radixSort[V any](keys []Key, points []geom.Axial, values []V) {
	n := len(keys)
	if n < 2 {
		return
	}
	type idxKey struct {
		i int
		k Key
	}
	bufA := make([]idxKey, n)
	bufB := make([]idxKey, n)
	for i, k := range keys {
		bufA[i] = idxKey{i: i, k: k}
	}

	src, dst := bufA, bufB
	for shift := 0; shift <= mortonBits; shift += radixMaskLen {
		var buckets [numBuckets]int
		for _, e := range src {
			buckets[bucket(e.k, shift)]++
		}
		base := 0
		for b := 0; b < numBuckets; b++ {
			buckets[b] += base
			base = buckets[b]
		}
		for i := n - 1; i >= 0; i-- {
			e := src[i]
			b := bucket(e.k, shift)
			buckets[b]--
			dst[buckets[b]] = e
		}
		src, dst = dst, src
	}

	sortedPoints := make([]geom.Axial, n)
	sortedValues := make([]V, n)
	for i, e := range src {
		keys[i] = e.k
		sortedPoints[i] = points[e.i]
		sortedValues[i] = values[e.i]
	}
	copy(points, sortedPoints)
	copy(values, sortedValues)
}

func bucket(k Key, shift int) int {
	return int((uint32(k) >> uint(shift)) & radixMask)
}
