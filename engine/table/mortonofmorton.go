package table

import (
	"github.com/brentp/intintmap"

	"github.com/hiveworld/simcore/engine/geom"
	"github.com/hiveworld/simcore/engine/morton"
)

// RoomIndex is a two-level Morton index: an outer table keyed by room
// coordinate selects an inner morton.Table keyed by in-room position. Used
// for the per-room WorldPosition -> EntityComponent index (spec 4.C), where
// queries always operate within one room at a time.
type RoomIndex[V any] struct {
	rooms     map[geom.Axial]*morton.Table[V]
	roomOrder *intintmap.Map // room key -> insertion order, for stable iteration
	order     []geom.Axial
}

func roomKey(room geom.Axial) int64 {
	return int64(room.Q)<<32 | int64(uint32(room.R))
}

// NewRoomIndex constructs an empty RoomIndex.
func NewRoomIndex[V any]() *RoomIndex[V] {
	return &RoomIndex[V]{
		rooms:     make(map[geom.Axial]*morton.Table[V]),
		roomOrder: intintmap.New(64, 0.6),
	}
}

// EnsureRoom guarantees an (initially empty) inner table exists for room,
// satisfying the invariant that every room in the room table has a
// corresponding (possibly empty) position-index entry.
func (r *RoomIndex[V]) EnsureRoom(room geom.Axial) *morton.Table[V] {
	if t, ok := r.rooms[room]; ok {
		return t
	}
	t := morton.New[V]()
	r.rooms[room] = t
	r.roomOrder.Put(roomKey(room), int64(len(r.order)))
	r.order = append(r.order, room)
	return t
}

// At returns the inner table for room, if the room has been registered.
func (r *RoomIndex[V]) At(room geom.Axial) (*morton.Table[V], bool) {
	t, ok := r.rooms[room]
	return t, ok
}

// Rooms returns every registered room coordinate, in registration order.
func (r *RoomIndex[V]) Rooms() []geom.Axial {
	out := make([]geom.Axial, len(r.order))
	copy(out, r.order)
	return out
}

// Insert places value at pos within room's inner table, creating the inner
// table if needed.
func (r *RoomIndex[V]) Insert(room, pos geom.Axial, value V) bool {
	return r.EnsureRoom(room).Insert(pos, value)
}

// Delete removes the entry at pos within room, if any.
func (r *RoomIndex[V]) Delete(room, pos geom.Axial) bool {
	t, ok := r.rooms[room]
	if !ok {
		return false
	}
	return t.Delete(pos)
}
