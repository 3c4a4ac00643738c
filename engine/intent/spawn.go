package intent

import "github.com/hiveworld/simcore/engine/world"

// CheckSpawn validates a structure's request to enqueue a new bot.
func CheckSpawn(w *world.World, in SpawnIntent) OperationResult {
	if !w.IsStructure.Has(in.Structure) {
		return InvalidInput
	}
	if _, ok := w.SpawnQueues.Get(in.Structure); !ok {
		return InvalidInput
	}
	return Ok
}

// ApplySpawn appends Description to the structure's spawn queue; the spawn
// system (spec 4.F) later pops it and begins the countdown.
func ApplySpawn(w *world.World, in SpawnIntent) {
	q, _ := w.SpawnQueues.Get(in.Structure)
	q.Queue = append(q.Queue, in.Description)
	w.SpawnQueues.Insert(in.Structure, q)
}
