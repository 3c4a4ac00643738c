package intent

import (
	"github.com/hiveworld/simcore/engine/geom"
	"github.com/hiveworld/simcore/engine/world"
)

// CheckMine runs the canonical 7-step mine check from spec 4.E.
func CheckMine(w *world.World, in MineIntent) OperationResult {
	if !w.IsBot.Has(in.Bot) {
		return InvalidInput
	}
	if _, ok := w.Owners.Get(in.Bot); !ok {
		return NotOwner
	}
	botPos, ok := w.Positions.Get(in.Bot)
	if !ok {
		return NotInSameRoom
	}
	targetPos, ok := w.Positions.Get(in.Target)
	if !ok {
		return NotInSameRoom
	}
	if botPos.Pos.Room != targetPos.Pos.Room {
		return NotInRange
	}
	if geom.HexDistance(botPos.Pos.Pos, targetPos.Pos.Pos) > 1 {
		return NotInRange
	}
	carry, ok := w.Carries.Get(in.Bot)
	if !ok || carry.Current >= carry.Max {
		return Full
	}
	res, ok := w.Resources.Get(in.Target)
	if !ok || res.Kind != world.ResourceEnergy {
		return InvalidInput
	}
	energy, ok := w.Energies.Get(in.Target)
	if !ok || energy.Current <= 0 {
		return Empty
	}
	return Ok
}

// ApplyMine transfers energy from Target into Bot's carry, bounded by the
// bot's free capacity and the target's remaining energy.
func ApplyMine(w *world.World, in MineIntent) {
	carry, _ := w.Carries.Get(in.Bot)
	energy, _ := w.Energies.Get(in.Target)

	amount := in.Amount
	if free := carry.Max - carry.Current; amount > free {
		amount = free
	}
	if amount > energy.Current {
		amount = energy.Current
	}
	if amount <= 0 {
		return
	}
	carry.Current += amount
	energy.Current -= amount
	w.Carries.Insert(in.Bot, carry)
	w.Energies.Insert(in.Target, energy)
}
