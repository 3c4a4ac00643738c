package system

import "github.com/hiveworld/simcore/engine/world"

// EnergyRegen adds EnergyRegen.Amount to every entity carrying both an
// EnergyRegen and an Energy component, clamped to Energy.Max.
func EnergyRegen(w *world.World) {
	w.EnergyRegens.Each(func(id world.EntityId, regen world.EnergyRegen) {
		energy, ok := w.Energies.Get(id)
		if !ok {
			return
		}
		energy.Current += regen.Amount
		if energy.Current > energy.Max {
			energy.Current = energy.Max
		}
		w.Energies.Insert(id, energy)
	})
}
