package persist

import (
	"testing"

	"github.com/google/uuid"

	"github.com/hiveworld/simcore/engine/geom"
	"github.com/hiveworld/simcore/engine/mapgen"
	"github.com/hiveworld/simcore/engine/table"
	"github.com/hiveworld/simcore/engine/world"
)

func buildPopulatedWorld(t *testing.T) *world.World {
	t.Helper()
	w := world.New(world.GameConfig{RoomRadius: 10, WorldRadius: 1}, 16)
	room := geom.NewAxial(0, 0)
	w.PositionIndex.EnsureRoom(room)

	bot, _ := w.AllocEntity()
	w.IsBot.Set(bot)
	w.Positions.Insert(bot, world.Position{Pos: world.WorldPosition{Room: room, Pos: geom.NewAxial(1, 1)}})
	w.Hps.Insert(bot, world.Hp{Current: 90, Max: 100})
	owner := world.UserId(uuid.New())
	w.Owners.Insert(bot, world.Owner{UserID: owner})
	w.Users.Insert(owner, world.UserInfo{ID: owner, Rooms: []world.Room{room}})

	structure, _ := w.AllocEntity()
	w.IsStructure.Set(structure)
	w.Positions.Insert(structure, world.Position{Pos: world.WorldPosition{Room: room, Pos: geom.NewAxial(2, 2)}})

	resource, _ := w.AllocEntity()
	w.Resources.Insert(resource, world.Resource{Kind: world.ResourceEnergy})
	w.Positions.Insert(resource, world.Position{Pos: world.WorldPosition{Room: room, Pos: geom.NewAxial(3, 3)}})
	w.Energies.Insert(resource, world.Energy{Current: 50, Max: 100})

	w.Terrain[room] = table.NewHexGrid[world.TerrainTile](geom.Axial{}, 10)
	return w
}

func TestBuildSnapshotCapturesEveryArchetype(t *testing.T) {
	w := buildPopulatedWorld(t)
	snap := BuildSnapshot(w, mapgen.RoomProperties{Radius: 10})

	if len(snap.Bots) != 1 || len(snap.Structures) != 1 || len(snap.Resources) != 1 {
		t.Fatalf("expected 1 of each archetype, got bots=%d structures=%d resources=%d", len(snap.Bots), len(snap.Structures), len(snap.Resources))
	}
	if len(snap.Users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(snap.Users))
	}
	if len(snap.Rooms) != 1 || len(snap.Rooms[0].Terrain) != 331 {
		t.Fatalf("expected 1 room with 331 terrain cells, got %+v", snap.Rooms)
	}
}

func TestSnapshotJSONRoundTrip(t *testing.T) {
	w := buildPopulatedWorld(t)
	snap := BuildSnapshot(w, mapgen.RoomProperties{Radius: 10})

	raw, err := EncodeJSON(snap)
	if err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}
	got, err := DecodeJSON(raw)
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if got.Time != snap.Time || len(got.Bots) != len(snap.Bots) || len(got.Rooms) != len(snap.Rooms) {
		t.Fatalf("round-tripped snapshot mismatch: got %+v, want %+v", got, snap)
	}
	if got.Bots[0].ID != snap.Bots[0].ID || got.Bots[0].Owner.UserID != snap.Bots[0].Owner.UserID {
		t.Fatalf("expected bot fields to survive round trip, got %+v", got.Bots[0])
	}
}

func TestCompressDecompressRoundTrip(t *testing.T) {
	raw := []byte("a reasonably compressible payload, repeated, repeated, repeated")
	blob, err := CompressBlob(raw)
	if err != nil {
		t.Fatalf("unexpected compress error: %v", err)
	}
	back, err := DecompressBlob(blob)
	if err != nil {
		t.Fatalf("unexpected decompress error: %v", err)
	}
	if string(back) != string(raw) {
		t.Fatalf("expected round trip to reproduce input, got %q", back)
	}
}
