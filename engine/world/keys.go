// Package world composes the component tables of engine/table into the
// archetypes of spec 4.C/4.D: the typed keys entities and rooms are
// addressed by, the component structs stored per key, and the World
// store itself (handle table + archetype tables + deferred-delete buffer).
package world

import (
	"bytes"

	"github.com/google/uuid"

	"github.com/hiveworld/simcore/engine/geom"
	"github.com/hiveworld/simcore/engine/handle"
	"github.com/hiveworld/simcore/engine/table"
)

// EntityId is the generational handle identifying any live entity (bot,
// structure, or resource).
type EntityId = handle.EntityId

// Room is a room coordinate: a hex cell in the overworld grid, itself home
// to a room_radius hex of terrain and entities. An alias (not a distinct
// named type) so it composes directly with geom/morton/table APIs that
// operate on geom.Axial.
type Room = geom.Axial

// WorldPosition locates an entity within a specific room.
type WorldPosition struct {
	Room Room
	Pos  geom.Axial
}

// UserId identifies a registered player/account.
type UserId uuid.UUID

// Less orders UserId lexicographically by its byte representation, so it
// can key a table.BTree.
func (u UserId) Less(than table.BTreeKey) bool {
	o := than.(UserId)
	return bytes.Compare(u[:], o[:]) < 0
}

// ScriptId identifies a compiled user script.
type ScriptId uuid.UUID

// Less orders ScriptId lexicographically, so it can key a table.BTree.
func (s ScriptId) Less(than table.BTreeKey) bool {
	o := than.(ScriptId)
	return bytes.Compare(s[:], o[:]) < 0
}

// IntentId identifies one intent within a tick's batch, assigned in
// script-execution order.
type IntentId uint32

// EntityTime pairs an entity with the tick it was observed at, used for
// ordering events that must not be reordered across ticks.
type EntityTime struct {
	Entity EntityId
	Time   uint64
}

// EmptyKey is the zero-sized marker key for unindexed singleton tables.
type EmptyKey struct{}

// ConfigKey is the marker key for the GameConfig singleton table.
type ConfigKey struct{}
