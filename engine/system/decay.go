package system

import "github.com/hiveworld/simcore/engine/world"

// Decay counts down every Decay component's TimeRemaining; on reaching
// zero it subtracts HpAmount from the entity's Hp (saturating to zero)
// and resets TimeRemaining to Interval.
func Decay(w *world.World) {
	w.Decays.Each(func(id world.EntityId, d world.Decay) {
		d.TimeRemaining--
		if d.TimeRemaining <= 0 {
			if hp, ok := w.Hps.Get(id); ok {
				hp.Current -= d.HpAmount
				if hp.Current < 0 {
					hp.Current = 0
				}
				w.Hps.Insert(id, hp)
			}
			d.TimeRemaining = d.Interval
		}
		w.Decays.Insert(id, d)
	})
}
