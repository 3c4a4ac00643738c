package mapgen

import "github.com/hiveworld/simcore/engine/geom"

// RoomConnection describes a bridge from one room to a specific neighbor:
// the neighbor's direction and where along the shared edge the bridge's
// points start and end.
type RoomConnection struct {
	Direction   geom.Axial
	OffsetStart uint32
	OffsetEnd   uint32
}

// RoomConnections holds up to 6 neighbor connections, nil where a room has
// no neighbor in that direction (world edge).
type RoomConnections [6]*RoomConnection

// RoomComponent is the per-room overworld-layout row: its offset in the
// overworld hex grid and the seed its terrain was generated from.
type RoomComponent struct {
	Offset geom.Axial
	Seed   uint64
}

// RoomProperties is the single world-wide room-shape singleton: every room
// shares the same radius and local center.
type RoomProperties struct {
	Radius uint32
	Center geom.Axial
}

// neighborDirs are the 6 unit axial directions a room can connect through,
// in the same ordering convention as geom.Hexagon's edge iteration.
var neighborDirs = [6]geom.Axial{
	{Q: 0, R: -1}, {Q: 1, R: -1}, {Q: 1, R: 0},
	{Q: 0, R: 1}, {Q: -1, R: 1}, {Q: -1, R: 0},
}
