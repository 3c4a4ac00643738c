package main

import (
	"context"
	"testing"

	"github.com/hiveworld/simcore/engine/world"
)

func TestDefaultExecutorTasksOnlyIncludesScriptedBots(t *testing.T) {
	w := world.New(world.GameConfig{WorldRadius: 1, RoomRadius: 10, MaxRoomsPerUser: 1}, 8)

	scripted, _ := w.AllocEntity()
	w.IsBot.Set(scripted)
	w.Scripts.Insert(scripted, world.Script{ScriptID: world.ScriptId{}})

	unscripted, _ := w.AllocEntity()
	w.IsBot.Set(unscripted)

	var exec defaultExecutor
	tasks := exec.Tasks(w)
	if len(tasks) != 1 || tasks[0].Entity != scripted {
		t.Fatalf("expected exactly one task for the scripted bot, got %+v", tasks)
	}
}

func TestDefaultHostRunReturnsEmptyIntents(t *testing.T) {
	var host defaultHost
	intents, err := host.Run(context.Background(), world.EntityId{}, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(intents.Moves) != 0 || len(intents.Attacks) != 0 {
		t.Fatalf("expected empty intents, got %+v", intents)
	}
}
