// Package system implements the derived-state phase of spec 4.F: energy
// regen, decay, mineral respawn, spawn queue advancement, position-index
// rebuild, and death cleanup, run in a fixed sequence after intents apply.
package system

import "github.com/hiveworld/simcore/engine/world"

// RunAll invokes every system in the fixed order spec 4.F specifies.
// Callers must hold the world's exclusive lock; PostProcess (deferred
// deletes + Time++) is the caller's responsibility afterward, per 4.H.
func RunAll(w *world.World) {
	EnergyRegen(w)
	Decay(w)
	MineralRespawn(w)
	SpawnQueueAdvance(w)
	PositionIndexRebuild(w)
	DeathCleanup(w)
}
