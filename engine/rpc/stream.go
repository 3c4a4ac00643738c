package rpc

import "github.com/hiveworld/simcore/engine/world"

// BuildStreamPayload walks every bot, structure, and resource archetype and
// groups their position/identity snapshots by room, the read-only view a
// WorldStream subscriber receives once per tick. Callers hold at least the
// World's shared lock for the duration (engine/tick.Loop.Tick already does,
// calling this from within its post-apply RLock section).
func BuildStreamPayload(w *world.World, tickTime uint64) StreamPayload {
	rooms := make(map[world.Room]RoomEntities)

	w.IsBot.Each(func(id world.EntityId) {
		pos, ok := w.Positions.Get(id)
		if !ok {
			return
		}
		entry := rooms[pos.Pos.Room]
		entry.Bots = append(entry.Bots, EntitySnapshot{ID: id, Pos: pos.Pos})
		rooms[pos.Pos.Room] = entry
	})

	w.IsStructure.Each(func(id world.EntityId) {
		pos, ok := w.Positions.Get(id)
		if !ok {
			return
		}
		entry := rooms[pos.Pos.Room]
		entry.Structures = append(entry.Structures, EntitySnapshot{ID: id, Pos: pos.Pos})
		rooms[pos.Pos.Room] = entry
	})

	w.Resources.Each(func(id world.EntityId, _ world.Resource) {
		pos, ok := w.Positions.Get(id)
		if !ok {
			return
		}
		entry := rooms[pos.Pos.Room]
		entry.Resources = append(entry.Resources, EntitySnapshot{ID: id, Pos: pos.Pos})
		rooms[pos.Pos.Room] = entry
	})

	return StreamPayload{Time: tickTime, Rooms: rooms}
}
