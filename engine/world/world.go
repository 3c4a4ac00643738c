package world

import (
	"sync"

	"github.com/hiveworld/simcore/engine/geom"
	"github.com/hiveworld/simcore/engine/handle"
	"github.com/hiveworld/simcore/engine/table"
)

// GameConfig is re-declared here (rather than imported from
// internal/config) to avoid a dependency cycle: internal/config wraps
// GameConfig for TOML loading, world only needs the shape.
type GameConfig struct {
	WorldRadius     uint32
	RoomRadius      uint32
	QueenTag        string
	ExecutionLimit  uint32
	MaxRoomsPerUser uint32
}

// World is the sole owner of all simulation state: the handle table, every
// archetype's component tables, and the deferred-delete buffer. All
// mutation happens through an exclusive lock (Lock/Unlock); reads happen
// through a shared lock (RLock/RUnlock), mirroring the read-snapshot /
// exclusive phases of the tick loop (spec 4.H).
type World struct {
	mu sync.RWMutex

	handles *handle.Table

	// Per-entity dense components.
	Positions     *table.Dense[Position]
	Carries       *table.Dense[Carry]
	Hps           *table.Dense[Hp]
	Energies      *table.Dense[Energy]
	EnergyRegens  *table.Dense[EnergyRegen]
	Decays        *table.Dense[Decay]
	RespawnTimers *table.Dense[RespawnTimer]
	SpawnQueues   *table.Dense[SpawnQueue]
	Spawns        *table.Dense[Spawn]
	Scripts       *table.Dense[Script]
	Owners        *table.Dense[Owner]
	Resources     *table.Dense[Resource]
	CachedPaths   *table.Dense[[]geom.Axial]

	// Sparse presence tags.
	IsBot       *table.Sparse
	IsStructure *table.Sparse

	// Position index: per-room Morton table of Axial -> EntityId.
	PositionIndex *table.RoomIndex[EntityId]

	// Terrain: per-room hex grid, populated at map-generation time.
	Terrain map[Room]*table.HexGrid[TerrainTile]

	// Ordered indices.
	Users   *table.BTree[UserInfo]
	ScriptPrograms *table.BTree[CompiledProgram]

	// Singletons.
	Time   *table.Unique[uint64]
	Config *table.Unique[GameConfig]

	// RoomOwners records which user currently holds each claimed room,
	// populated by the TakeRoom command (spec 4.I / section 6).
	RoomOwners map[Room]UserId

	deferred []EntityId
}

// TerrainTile is the immutable per-cell terrain payload stored in a room's
// hex grid.
type TerrainTile struct {
	Kind TileTerrainType
}

// TileTerrainType enumerates the terrain kinds a hex grid cell can hold.
type TileTerrainType int

const (
	TerrainPlain TileTerrainType = iota
	TerrainWall
	TerrainBridge
)

// UserInfo is the row stored per registered user in the Users B-tree.
type UserInfo struct {
	ID      UserId
	Rooms   []Room
	ScriptID ScriptId
}

// CompiledProgram is an opaque compiled-script handle; engine/script treats
// its contents as a black box (spec 4.G Non-goal: VM internals).
type CompiledProgram struct {
	Bytecode []byte
}

// New constructs an empty World with capacity for up to maxEntities live
// handles at once.
func New(cfg GameConfig, maxEntities uint32) *World {
	w := &World{
		handles:       handle.New(maxEntities),
		Positions:     table.NewDense[Position](),
		Carries:       table.NewDense[Carry](),
		Hps:           table.NewDense[Hp](),
		Energies:      table.NewDense[Energy](),
		EnergyRegens:  table.NewDense[EnergyRegen](),
		Decays:        table.NewDense[Decay](),
		RespawnTimers: table.NewDense[RespawnTimer](),
		SpawnQueues:   table.NewDense[SpawnQueue](),
		Spawns:        table.NewDense[Spawn](),
		Scripts:       table.NewDense[Script](),
		Owners:        table.NewDense[Owner](),
		Resources:     table.NewDense[Resource](),
		CachedPaths:   table.NewDense[[]geom.Axial](),
		IsBot:         table.NewSparse(),
		IsStructure:   table.NewSparse(),
		PositionIndex: table.NewRoomIndex[EntityId](),
		Terrain:       make(map[Room]*table.HexGrid[TerrainTile]),
		Users:         table.NewBTree[UserInfo](32),
		ScriptPrograms:      table.NewBTree[CompiledProgram](32),
		Time:          table.NewUnique[uint64](0),
		Config:        table.NewUnique(cfg),
		RoomOwners:    make(map[Room]UserId),
	}
	return w
}

// Lock acquires exclusive access to the world, for the apply/systems phase.
func (w *World) Lock() { w.mu.Lock() }

// Unlock releases exclusive access.
func (w *World) Unlock() { w.mu.Unlock() }

// RLock acquires a read-snapshot borrow, for the script-execution and
// publish phases.
func (w *World) RLock() { w.mu.RLock() }

// RUnlock releases a read-snapshot borrow.
func (w *World) RUnlock() { w.mu.RUnlock() }

// AllocEntity reserves a new handle. Callers must hold the exclusive lock.
func (w *World) AllocEntity() (EntityId, error) {
	return w.handles.Alloc(0)
}

// IsValid reports whether id currently addresses a live entity.
func (w *World) IsValid(id EntityId) bool {
	return w.handles.IsValid(id)
}

// DeferDelete queues id for removal at the end of the current tick's
// systems phase (spec 4.F Death cleanup / 4.I post_process).
func (w *World) DeferDelete(id EntityId) {
	w.deferred = append(w.deferred, id)
}

// PostProcess runs every deferred delete (dropping component rows across
// every per-entity table and freeing the handle), then advances Time.
// Callers must hold the exclusive lock.
func (w *World) PostProcess() {
	for _, id := range w.deferred {
		w.dropEntity(id)
	}
	w.deferred = w.deferred[:0]
	w.Time.Update(func(t uint64) uint64 { return t + 1 })
}

func (w *World) dropEntity(id EntityId) {
	if pos, ok := w.Positions.Get(id); ok {
		if inner, ok := w.PositionIndex.At(pos.Pos.Room); ok {
			inner.Delete(pos.Pos.Pos)
		}
	}
	w.Positions.Remove(id)
	w.Carries.Remove(id)
	w.Hps.Remove(id)
	w.Energies.Remove(id)
	w.EnergyRegens.Remove(id)
	w.Decays.Remove(id)
	w.RespawnTimers.Remove(id)
	w.SpawnQueues.Remove(id)
	w.Spawns.Remove(id)
	w.Scripts.Remove(id)
	w.Owners.Remove(id)
	w.Resources.Remove(id)
	w.CachedPaths.Remove(id)
	w.IsBot.Clear(id)
	w.IsStructure.Clear(id)
	w.handles.Free(id)
}
