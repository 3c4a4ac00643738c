package mapgen

import (
	"math/rand/v2"

	"github.com/hiveworld/simcore/engine/geom"
	"github.com/hiveworld/simcore/engine/table"
	"github.com/hiveworld/simcore/engine/world"
)

// plainDilationThreshold is how many of a wall cell's 6 neighbors must
// already be Plain for a dilation pass to convert it, opening up walkable
// pockets without completely erasing the wall structure.
const plainDilationThreshold = 4

// GenerateRoomTerrain builds one room's terrain grid: an initial random
// plain/wall fill from params.ChancePlain/ChanceWall, params.PlainDilation
// smoothing passes, then bridge carving for every non-nil connection so
// neighboring rooms are walkably joined. center is the room-local hex
// origin (always the zero Axial; rooms are addressed globally by the
// world.Room they're stored under, not by an offset terrain origin).
func GenerateRoomTerrain(params RoomGenerationParams, conns RoomConnections, seed uint64) *table.HexGrid[world.TerrainTile] {
	center := geom.Axial{}
	radius := int32(params.Radius)
	grid := table.NewHexGrid[world.TerrainTile](center, radius)

	rng := rand.New(rand.NewPCG(seed, 1))
	for _, p := range geom.NewHexagon(center, radius).IterPoints() {
		grid.Set(p, world.TerrainTile{Kind: rollTerrain(rng, params)})
	}

	for i := uint32(0); i < params.PlainDilation; i++ {
		dilatePlain(grid, center, radius)
	}

	carveBridges(grid, center, radius, conns)
	return grid
}

func rollTerrain(rng *rand.Rand, params RoomGenerationParams) world.TileTerrainType {
	r := rng.Float64()
	if r < params.ChancePlain {
		return world.TerrainPlain
	}
	if r < params.ChancePlain+params.ChanceWall {
		return world.TerrainWall
	}
	return world.TerrainPlain
}

func dilatePlain(grid *table.HexGrid[world.TerrainTile], center geom.Axial, radius int32) {
	points := geom.NewHexagon(center, radius).IterPoints()
	flips := make([]geom.Axial, 0)
	for _, p := range points {
		tile, _ := grid.Get(p)
		if tile.Kind != world.TerrainWall {
			continue
		}
		plainNeighbors := 0
		for _, dir := range neighborDirs {
			if n, ok := grid.Get(p.Add(dir)); ok && n.Kind == world.TerrainPlain {
				plainNeighbors++
			}
		}
		if plainNeighbors >= plainDilationThreshold {
			flips = append(flips, p)
		}
	}
	for _, p := range flips {
		grid.Set(p, world.TerrainTile{Kind: world.TerrainPlain})
	}
}

// carveBridges marks a run of Plain/Bridge tiles along the edge sector
// facing each non-nil connection, from offset_start to radius-offset_end,
// matching the original's comment: "Length of the Bridge is defined by
// radius - offset_end - offset_start".
func carveBridges(grid *table.HexGrid[world.TerrainTile], center geom.Axial, radius int32, conns RoomConnections) {
	if radius <= 0 {
		return
	}
	edge := geom.NewHexagon(center, radius).IterEdge()
	sectorLen := int(radius)
	for sector, conn := range conns {
		if conn == nil {
			continue
		}
		start := sector * sectorLen
		end := start + sectorLen
		if end > len(edge) {
			end = len(edge)
		}
		lo := start + int(conn.OffsetStart)
		hi := end - int(conn.OffsetEnd)
		for i := lo; i < hi && i >= start && i < end; i++ {
			grid.Set(edge[i], world.TerrainTile{Kind: world.TerrainBridge})
		}
	}
}
