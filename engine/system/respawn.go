package system

import "github.com/hiveworld/simcore/engine/world"

// MineralRespawn counts down the RespawnTimer of every depleted resource;
// on reaching zero it restores the resource's Energy to Max and resets the
// timer's TimeRemaining to its Interval.
func MineralRespawn(w *world.World) {
	w.RespawnTimers.Each(func(id world.EntityId, timer world.RespawnTimer) {
		energy, ok := w.Energies.Get(id)
		if !ok || energy.Current > 0 {
			return
		}
		timer.TimeRemaining--
		if timer.TimeRemaining <= 0 {
			energy.Current = energy.Max
			w.Energies.Insert(id, energy)
			timer.TimeRemaining = timer.Interval
		}
		w.RespawnTimers.Insert(id, timer)
	})
}
