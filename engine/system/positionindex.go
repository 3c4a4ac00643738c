package system

import "github.com/hiveworld/simcore/engine/world"

// PositionIndexRebuild empties every room's inner table of the
// WorldPosition -> EntityId index and reinserts one entry per Position
// component, so the index reflects this tick's positions. It does not
// enforce one entity per cell: two entities whose Positions name the same
// cell both get an entry there.
func PositionIndexRebuild(w *world.World) {
	for _, room := range w.PositionIndex.Rooms() {
		if inner, ok := w.PositionIndex.At(room); ok {
			inner.Clear()
		}
	}

	w.Positions.Each(func(id world.EntityId, pos world.Position) {
		w.PositionIndex.EnsureRoom(pos.Pos.Room)
		w.PositionIndex.Insert(pos.Pos.Room, pos.Pos.Pos, id)
	})
}
