package mapgen

import (
	"testing"

	"github.com/hiveworld/simcore/engine/world"
)

// TestWorldInitScenario mirrors spec section 8's "World init" testable
// property: GameConfig{world_radius=2, room_radius=10} should produce at
// least one room, every room's hex grid area must be 331 (1 + 3*10*11), and
// a freshly constructed world's Time is 0.
func TestWorldInitScenario(t *testing.T) {
	w := world.New(world.GameConfig{WorldRadius: 2, RoomRadius: 10}, 16)
	overworld := OverworldGenerationParams{WorldRadius: 2, RoomRadius: 10, MinBridgeLen: 2, MaxBridgeLen: 4}
	room := RoomGenerationParams{Radius: 10, ChancePlain: 0.55, ChanceWall: 0.35, PlainDilation: 2}

	result, err := GenerateFullMap(w, overworld, room, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Rooms) == 0 {
		t.Fatalf("expected at least one room")
	}
	for coord, grid := range w.Terrain {
		if grid.Area() != 331 {
			t.Fatalf("room %v: expected area 331, got %d", coord, grid.Area())
		}
	}

	tm, _ := w.Time.Get()
	if tm != 0 {
		t.Fatalf("expected fresh world time 0, got %d", tm)
	}
}

func TestGenerateFullMapRejectsSmallRoomRadius(t *testing.T) {
	w := world.New(world.GameConfig{}, 4)
	_, err := GenerateFullMap(w, DefaultOverworldParams(), RoomGenerationParams{Radius: 6}, 1)
	if err == nil {
		t.Fatalf("expected error for room radius <= 6")
	}
}

func TestGenerateFullMapDeterministicPerWorldSeed(t *testing.T) {
	w1 := world.New(world.GameConfig{}, 4)
	w2 := world.New(world.GameConfig{}, 4)
	overworld := DefaultOverworldParams()
	room := DefaultRoomParams()

	r1, err := GenerateFullMap(w1, overworld, room, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r2, err := GenerateFullMap(w2, overworld, room, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(r1.Rooms) != len(r2.Rooms) {
		t.Fatalf("expected same room count for same seed, got %d vs %d", len(r1.Rooms), len(r2.Rooms))
	}
	for coord, comp1 := range r1.Rooms {
		comp2, ok := r2.Rooms[coord]
		if !ok || comp1.Seed != comp2.Seed {
			t.Fatalf("expected identical room seed at %v, got %+v vs %+v", coord, comp1, comp2)
		}
		g1, _ := w1.Terrain[coord]
		g2, _ := w2.Terrain[coord]
		s1, s2 := g1.Serialize(), g2.Serialize()
		if len(s1) != len(s2) {
			t.Fatalf("expected identical terrain length at %v", coord)
		}
		for i := range s1 {
			if s1[i] != s2[i] {
				t.Fatalf("expected identical terrain at %v cell %d, got %v vs %v", coord, i, s1[i], s2[i])
			}
		}
	}
}

func TestCarveBridgesMarksOffsetRun(t *testing.T) {
	conns := RoomConnections{0: {Direction: neighborDirs[0], OffsetStart: 1, OffsetEnd: 1}}
	grid := GenerateRoomTerrain(RoomGenerationParams{Radius: 10, ChancePlain: 0, ChanceWall: 1, PlainDilation: 0}, conns, 5)

	var bridgeTiles int
	for _, v := range grid.Serialize() {
		if v.Kind == world.TerrainBridge {
			bridgeTiles++
		}
	}
	// sectorLen(10) - offsetStart(1) - offsetEnd(1) = 8 bridge tiles.
	if bridgeTiles != 8 {
		t.Fatalf("expected 8 bridge tiles, got %d", bridgeTiles)
	}
}
