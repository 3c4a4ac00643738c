package intent

import (
	"github.com/hiveworld/simcore/engine/geom"
	"github.com/hiveworld/simcore/engine/world"
)

// MoveIntent requests that Bot step toward Target within its current room.
type MoveIntent struct {
	Bot    world.EntityId
	Target geom.Axial
}

// AttackIntent requests that Bot damage Target.
type AttackIntent struct {
	Bot, Target world.EntityId
}

// MineIntent requests that Bot harvest from the resource Target.
type MineIntent struct {
	Bot, Target world.EntityId
	Amount      int32
}

// DropoffIntent requests that Bot deposit its carried resources into Target.
type DropoffIntent struct {
	Bot, Target world.EntityId
}

// CachePathIntent stores a precomputed path for Bot to replay on later ticks.
type CachePathIntent struct {
	Bot  world.EntityId
	Path []geom.Axial
}

// SpawnIntent requests that Structure enqueue a new bot described by
// Description.
type SpawnIntent struct {
	Structure   world.EntityId
	Description world.SpawnDescription
}

// LogIntent appends Message to Bot's script console log.
type LogIntent struct {
	Bot     world.EntityId
	Message string
}

// SayIntent broadcasts Message from Bot to nearby observers.
type SayIntent struct {
	Bot     world.EntityId
	Message string
}

// BotIntents bundles every intent one executed entity emitted in a single
// script run, in the order the script emitted them.
type BotIntents struct {
	Entity     world.EntityId
	Moves      []MoveIntent
	Attacks    []AttackIntent
	Mines      []MineIntent
	Dropoffs   []DropoffIntent
	CachePaths []CachePathIntent
	Spawns     []SpawnIntent
	Logs       []LogIntent
	Says       []SayIntent
}

// Batches holds one flattened vector per intent kind, fanned out from a
// tick's []BotIntents by MoveIntoStorage. This is the Go shape of the
// per-kind Intents<T> unique-table singletons spec 4.E describes.
type Batches struct {
	Moves      []MoveIntent
	Attacks    []AttackIntent
	Mines      []MineIntent
	Dropoffs   []DropoffIntent
	CachePaths []CachePathIntent
	Spawns     []SpawnIntent
	Logs       []LogIntent
	Says       []SayIntent
}

// MoveIntoStorage fans a tick's script-execution output into one vector per
// intent kind, preserving within-kind order as the concatenation of each
// bot's intents in script-execution (iteration) order.
func MoveIntoStorage(batch []BotIntents) *Batches {
	b := &Batches{}
	for _, bi := range batch {
		b.Moves = append(b.Moves, bi.Moves...)
		b.Attacks = append(b.Attacks, bi.Attacks...)
		b.Mines = append(b.Mines, bi.Mines...)
		b.Dropoffs = append(b.Dropoffs, bi.Dropoffs...)
		b.CachePaths = append(b.CachePaths, bi.CachePaths...)
		b.Spawns = append(b.Spawns, bi.Spawns...)
		b.Logs = append(b.Logs, bi.Logs...)
		b.Says = append(b.Says, bi.Says...)
	}
	return b
}
