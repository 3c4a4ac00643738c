package intent

import (
	"github.com/hiveworld/simcore/engine/geom"
	"github.com/hiveworld/simcore/engine/world"
)

// CheckMove validates a bot's request to step toward Target within its
// current room: the bot must exist, be owned, and the step must be a
// single hex (adjacent or the bot's current cell).
func CheckMove(w *world.World, in MoveIntent) OperationResult {
	if !w.IsBot.Has(in.Bot) {
		return InvalidInput
	}
	if _, ok := w.Owners.Get(in.Bot); !ok {
		return NotOwner
	}
	pos, ok := w.Positions.Get(in.Bot)
	if !ok {
		return InvalidInput
	}
	if geom.HexDistance(pos.Pos.Pos, in.Target) > 1 {
		return NotInRange
	}
	return Ok
}

// ApplyMove updates the bot's position component; the position-index
// system reconciles the WorldPosition -> EntityId table afterward.
func ApplyMove(w *world.World, in MoveIntent) {
	pos, ok := w.Positions.Get(in.Bot)
	if !ok {
		return
	}
	pos.Pos.Pos = in.Target
	w.Positions.Insert(in.Bot, pos)
}
