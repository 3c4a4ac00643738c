package rpc

import (
	"testing"

	"github.com/hiveworld/simcore/engine/geom"
	"github.com/hiveworld/simcore/engine/world"
)

func TestBuildStreamPayloadGroupsByRoom(t *testing.T) {
	w := newTestWorld(t, 3)
	room := geom.NewAxial(0, 0)
	w.PositionIndex.EnsureRoom(room)

	bot, _ := w.AllocEntity()
	w.IsBot.Set(bot)
	w.Positions.Insert(bot, world.Position{Pos: world.WorldPosition{Room: room, Pos: geom.NewAxial(1, 1)}})

	structure, _ := w.AllocEntity()
	w.IsStructure.Set(structure)
	w.Positions.Insert(structure, world.Position{Pos: world.WorldPosition{Room: room, Pos: geom.NewAxial(2, 2)}})

	payload := BuildStreamPayload(w, 7)
	if payload.Time != 7 {
		t.Fatalf("expected Time 7, got %d", payload.Time)
	}
	entry, ok := payload.Rooms[room]
	if !ok {
		t.Fatalf("expected room %v present in payload, got %+v", room, payload.Rooms)
	}
	if len(entry.Bots) != 1 || len(entry.Structures) != 1 {
		t.Fatalf("expected 1 bot and 1 structure, got %+v", entry)
	}
}

func TestBuildStreamPayloadSkipsEntitiesWithoutPosition(t *testing.T) {
	w := newTestWorld(t, 3)
	bot, _ := w.AllocEntity()
	w.IsBot.Set(bot)

	payload := BuildStreamPayload(w, 1)
	if len(payload.Rooms) != 0 {
		t.Fatalf("expected no rooms for a positionless bot, got %+v", payload.Rooms)
	}
}
