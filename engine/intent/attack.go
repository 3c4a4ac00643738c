package intent

import (
	"github.com/hiveworld/simcore/engine/geom"
	"github.com/hiveworld/simcore/engine/world"
)

// CheckAttack validates a bot's request to damage Target: bot owned,
// both entities positioned in the same room, within striking range.
func CheckAttack(w *world.World, in AttackIntent) OperationResult {
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
	if _, ok := w.Hps.Get(in.Target); !ok {
		return InvalidInput
	}
	return Ok
}

// attackDamage is the fixed per-hit damage dealt by ApplyAttack.
const attackDamage = 10

// ApplyAttack subtracts attackDamage from Target's Hp, saturating to zero.
func ApplyAttack(w *world.World, in AttackIntent) {
	hp, ok := w.Hps.Get(in.Target)
	if !ok {
		return
	}
	hp.Current -= attackDamage
	if hp.Current < 0 {
		hp.Current = 0
	}
	w.Hps.Insert(in.Target, hp)
}
