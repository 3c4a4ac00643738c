package intent

import (
	"github.com/hiveworld/simcore/engine/geom"
	"github.com/hiveworld/simcore/engine/world"
)

// CheckDropoff validates a bot's request to deposit its carry into Target
// (typically a structure acting as storage).
func CheckDropoff(w *world.World, in DropoffIntent) OperationResult {
	if !w.IsBot.Has(in.Bot) {
		return InvalidInput
	}
	if _, ok := w.Owners.Get(in.Bot); !ok {
		return NotOwner
	}
	carry, ok := w.Carries.Get(in.Bot)
	if !ok || carry.Current <= 0 {
		return Empty
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
	if _, ok := w.Energies.Get(in.Target); !ok {
		return InvalidInput
	}
	return Ok
}

// ApplyDropoff moves as much of the bot's carry as fits into Target's
// energy store.
func ApplyDropoff(w *world.World, in DropoffIntent) {
	carry, _ := w.Carries.Get(in.Bot)
	energy, _ := w.Energies.Get(in.Target)

	amount := carry.Current
	if free := energy.Max - energy.Current; amount > free {
		amount = free
	}
	if amount <= 0 {
		return
	}
	carry.Current -= amount
	energy.Current += amount
	w.Carries.Insert(in.Bot, carry)
	w.Energies.Insert(in.Target, energy)
}
