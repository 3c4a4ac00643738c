package main

import (
	"context"

	"github.com/hiveworld/simcore/engine/intent"
	"github.com/hiveworld/simcore/engine/script"
	"github.com/hiveworld/simcore/engine/world"
	"github.com/hiveworld/simcore/internal/alloc"
)

// defaultExecutor implements engine/tick.Executor by pulling one script.Task
// per bot that has a Script row. defaultHost does not consult the World's
// ScriptPrograms table: its Lookup reports every ScriptId as not found, so
// script.Execute counts each task as a missing script and never calls Run
// (which would return an empty BotIntents). Running a compiled program's
// bytecode is a named Non-goal (spec section 13); intent apply, systems and
// publish still run every tick, with no script-produced intents.
type defaultExecutor struct{}

func (defaultExecutor) Tasks(w *world.World) []script.Task {
	var tasks []script.Task
	w.IsBot.Each(func(id world.EntityId) {
		s, ok := w.Scripts.Get(id)
		if !ok {
			return
		}
		tasks = append(tasks, script.Task{Entity: id, ScriptID: s.ScriptID})
	})
	return tasks
}

func (defaultExecutor) Host() script.Host { return defaultHost{} }

type defaultHost struct{}

func (defaultHost) Lookup(id script.ScriptID) (script.CompiledProgram, bool) {
	return nil, false
}

func (defaultHost) Run(_ context.Context, entity world.EntityId, _ script.CompiledProgram, _ *alloc.LinearAllocator) (intent.BotIntents, error) {
	return intent.BotIntents{Entity: entity}, nil
}
