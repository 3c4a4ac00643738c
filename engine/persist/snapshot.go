// Package persist implements per-tick world snapshotting (spec section 12's
// world_serde/hex_grid serde supplement): a CaoloWorld struct mirroring the
// original's serialized shape, JSON encoding via goccy/go-json, zstd
// compression of the resulting blob, and a df-mc/goleveldb-backed store
// keyed by tick number.
package persist

import (
	"github.com/hiveworld/simcore/engine/geom"
	"github.com/hiveworld/simcore/engine/mapgen"
	"github.com/hiveworld/simcore/engine/table"
	"github.com/hiveworld/simcore/engine/world"
)

// BotSnapshot is one bot's persisted row.
type BotSnapshot struct {
	ID     world.EntityId
	Pos    world.WorldPosition
	Hp     world.Hp
	Energy world.Energy
	Carry  world.Carry
	Owner  world.Owner
	Script world.Script
}

// StructureSnapshot is one structure's persisted row.
type StructureSnapshot struct {
	ID    world.EntityId
	Pos   world.WorldPosition
	Owner world.Owner
	Queue world.SpawnQueue
}

// ResourceSnapshot is one resource's persisted row.
type ResourceSnapshot struct {
	ID     world.EntityId
	Pos    world.WorldPosition
	Energy world.Energy
	Kind   world.ResourceKind
}

// UserSnapshot is one registered user's persisted row.
type UserSnapshot struct {
	ID    world.UserId
	Rooms []world.Room
}

// RoomSnapshot is one room's persisted terrain, in the HexGrid's own
// spiral serialization order (reconstructable via
// table.DeserializeHexGrid given the room's radius).
type RoomSnapshot struct {
	Coord   geom.Axial
	Terrain []world.TerrainTile
}

// CaoloWorld is the full per-tick snapshot shape, field order and naming
// matching the original's Serialize impl (time, bots, structures,
// resources, users, rooms, room_properties, game_config; "scripts" is
// omitted here since compiled bytecode is this engine's Non-goal, per
// SPEC_FULL.md section 12 — script *assignment* is preserved in each
// BotSnapshot's Script field).
type CaoloWorld struct {
	Time           uint64
	Bots           []BotSnapshot
	Structures     []StructureSnapshot
	Resources      []ResourceSnapshot
	Users          []UserSnapshot
	Rooms          []RoomSnapshot
	RoomProperties mapgen.RoomProperties
	GameConfig     world.GameConfig
}

// BuildSnapshot reads w under a shared lock and produces a CaoloWorld.
// Callers wanting a consistent point-in-time snapshot should call this
// during the tick loop's publish phase (spec 4.H), which already holds a
// read-snapshot borrow.
func BuildSnapshot(w *world.World, props mapgen.RoomProperties) CaoloWorld {
	snap := CaoloWorld{GameConfig: mustConfig(w), RoomProperties: props}
	snap.Time, _ = w.Time.Get()

	w.IsBot.Each(func(id world.EntityId) {
		pos, _ := w.Positions.Get(id)
		hp, _ := w.Hps.Get(id)
		energy, _ := w.Energies.Get(id)
		carry, _ := w.Carries.Get(id)
		owner, _ := w.Owners.Get(id)
		script, _ := w.Scripts.Get(id)
		snap.Bots = append(snap.Bots, BotSnapshot{ID: id, Pos: pos.Pos, Hp: hp, Energy: energy, Carry: carry, Owner: owner, Script: script})
	})

	w.IsStructure.Each(func(id world.EntityId) {
		pos, _ := w.Positions.Get(id)
		owner, _ := w.Owners.Get(id)
		queue, _ := w.SpawnQueues.Get(id)
		snap.Structures = append(snap.Structures, StructureSnapshot{ID: id, Pos: pos.Pos, Owner: owner, Queue: queue})
	})

	w.Resources.Each(func(id world.EntityId, r world.Resource) {
		pos, _ := w.Positions.Get(id)
		energy, _ := w.Energies.Get(id)
		snap.Resources = append(snap.Resources, ResourceSnapshot{ID: id, Pos: pos.Pos, Energy: energy, Kind: r.Kind})
	})

	w.Users.Ascend(func(key table.BTreeKey, info world.UserInfo) bool {
		snap.Users = append(snap.Users, UserSnapshot{ID: key.(world.UserId), Rooms: info.Rooms})
		return true
	})

	for coord, grid := range w.Terrain {
		snap.Rooms = append(snap.Rooms, RoomSnapshot{Coord: coord, Terrain: grid.Serialize()})
	}
	return snap
}

func mustConfig(w *world.World) world.GameConfig {
	cfg, _ := w.Config.Get()
	return cfg
}
