package table

import (
	"fmt"

	"github.com/hiveworld/simcore/engine/geom"
)

// HexGrid is a flat array sized to a hex of given radius, keyed by Axial
// positions inside that hex. Used for immutable per-room terrain: built
// once at room generation, read every tick, never resized.
type HexGrid[V any] struct {
	center geom.Axial
	radius int32
	values []V
	index  map[geom.Axial]int
}

// NewHexGrid constructs a HexGrid covering every point within radius
// hex-steps of center, all slots holding the zero value of V.
func NewHexGrid[V any](center geom.Axial, radius int32) *HexGrid[V] {
	points := geom.NewHexagon(center, radius).IterPoints()
	g := &HexGrid[V]{
		center: center,
		radius: radius,
		values: make([]V, len(points)),
		index:  make(map[geom.Axial]int, len(points)),
	}
	for i, p := range points {
		g.index[p] = i
	}
	return g
}

// Get returns the value at p and whether p lies within the grid.
func (g *HexGrid[V]) Get(p geom.Axial) (V, bool) {
	var zero V
	i, ok := g.index[p]
	if !ok {
		return zero, false
	}
	return g.values[i], true
}

// Set stores value at p, returning false if p is out of bounds.
func (g *HexGrid[V]) Set(p geom.Axial, value V) bool {
	i, ok := g.index[p]
	if !ok {
		return false
	}
	g.values[i] = value
	return true
}

// Area returns the number of cells in the grid.
func (g *HexGrid[V]) Area() int { return len(g.values) }

// Serialize returns the grid's values in spiral order (center first, then
// ring 1, ring 2, ... matching geom.Hexagon.IterPoints), suitable for
// persisting and later reconstructing via DeserializeHexGrid.
func (g *HexGrid[V]) Serialize() []V {
	out := make([]V, len(g.values))
	copy(out, g.values)
	return out
}

// DeserializeHexGrid rebuilds a HexGrid from a spiral-ordered value slice
// produced by Serialize. The slice length must exactly equal the area of a
// hex with the given radius.
func DeserializeHexGrid[V any](center geom.Axial, radius int32, values []V) (*HexGrid[V], error) {
	points := geom.NewHexagon(center, radius).IterPoints()
	if len(values) != len(points) {
		return nil, fmt.Errorf("table: hex grid length mismatch: got %d values, want %d for radius %d", len(values), len(points), radius)
	}
	g := &HexGrid[V]{
		center: center,
		radius: radius,
		values: values,
		index:  make(map[geom.Axial]int, len(points)),
	}
	for i, p := range points {
		g.index[p] = i
	}
	return g, nil
}
