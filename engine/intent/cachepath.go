package intent

import "github.com/hiveworld/simcore/engine/world"

// CheckCachePath validates that Bot exists and is owned before its computed
// path is cached for replay on subsequent ticks.
func CheckCachePath(w *world.World, in CachePathIntent) OperationResult {
	if !w.IsBot.Has(in.Bot) {
		return InvalidInput
	}
	if _, ok := w.Owners.Get(in.Bot); !ok {
		return NotOwner
	}
	if len(in.Path) == 0 {
		return Empty
	}
	return Ok
}

// ApplyCachePath stores Path for later reuse by the bot's script.
func ApplyCachePath(w *world.World, in CachePathIntent) {
	w.CachedPaths.Insert(in.Bot, in.Path)
}
