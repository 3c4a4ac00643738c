package intent

import "github.com/hiveworld/simcore/engine/world"

// CheckLog validates that Bot exists before its console message is
// recorded.
func CheckLog(w *world.World, in LogIntent) OperationResult {
	if !w.IsBot.Has(in.Bot) {
		return InvalidInput
	}
	return Ok
}

// CheckSay validates that Bot exists before its broadcast is recorded.
func CheckSay(w *world.World, in SayIntent) OperationResult {
	if !w.IsBot.Has(in.Bot) {
		return InvalidInput
	}
	return Ok
}
