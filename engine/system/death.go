package system

import "github.com/hiveworld/simcore/engine/world"

// DeathCleanup defers the deletion of any entity whose Hp has reached
// zero; post_process (spec 4.F/4.I) performs the actual row drop and
// handle free at the end of the tick.
func DeathCleanup(w *world.World) {
	var dead []world.EntityId
	w.Hps.Each(func(id world.EntityId, hp world.Hp) {
		if hp.Current <= 0 {
			dead = append(dead, id)
		}
	})
	for _, id := range dead {
		w.DeferDelete(id)
	}
}
