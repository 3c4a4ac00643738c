package mapgen

import (
	"fmt"

	"github.com/hiveworld/simcore/engine/geom"
	"github.com/hiveworld/simcore/engine/world"
)

// Result is everything a full map generation pass produces, for a caller
// that wants to inspect the layout (an operator console, a test) beyond
// what ended up wired into the World.
type Result struct {
	Rooms       map[geom.Axial]RoomComponent
	Connections map[geom.Axial]RoomConnections
	Properties  RoomProperties
}

// GenerateFullMap lays out the overworld, generates each room's terrain,
// and installs the terrain grids into w.Terrain plus an (initially empty)
// position-index room for each. Must be called before the tick loop starts
// (spec section 7: map-generation failure is fatal for initialization,
// never during steady state); w must not be concurrently ticked while this
// runs.
func GenerateFullMap(w *world.World, overworld OverworldGenerationParams, room RoomGenerationParams, worldSeed uint64) (Result, error) {
	if room.Radius <= 6 {
		return Result{}, fmt.Errorf("mapgen: room radius must be > 6, got %d", room.Radius)
	}

	rooms, conns := GenerateOverworldLayout(overworld, worldSeed)
	if len(rooms) == 0 {
		return Result{}, fmt.Errorf("mapgen: overworld layout produced no rooms")
	}

	for coord, comp := range rooms {
		grid := GenerateRoomTerrain(room, conns[coord], comp.Seed)
		w.Terrain[coord] = grid
		w.PositionIndex.EnsureRoom(coord)
	}

	props := RoomProperties{Radius: room.Radius, Center: geom.Axial{}}
	return Result{Rooms: rooms, Connections: conns, Properties: props}, nil
}
