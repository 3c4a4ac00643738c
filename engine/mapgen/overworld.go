package mapgen

import (
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"

	"github.com/hiveworld/simcore/engine/geom"
)

// GenerateOverworldLayout places one RoomComponent per hex cell within
// params.WorldRadius of the origin and wires up to 6 neighbor
// RoomConnections per room with a bridge offset drawn from
// [MinBridgeLen, MaxBridgeLen]. Each room's seed is derived from worldSeed
// and its own coordinate via xxhash, so regenerating with the same
// worldSeed reproduces the same per-room seeds regardless of iteration
// order.
func GenerateOverworldLayout(params OverworldGenerationParams, worldSeed uint64) (map[geom.Axial]RoomComponent, map[geom.Axial]RoomConnections) {
	hex := geom.NewHexagon(geom.Axial{}, int32(params.WorldRadius))
	points := hex.IterPoints()

	rooms := make(map[geom.Axial]RoomComponent, len(points))
	for _, p := range points {
		rooms[p] = RoomComponent{Offset: p, Seed: roomSeed(worldSeed, p)}
	}

	conns := make(map[geom.Axial]RoomConnections, len(points))
	for _, p := range points {
		var c RoomConnections
		rng := rand.New(rand.NewPCG(roomSeed(worldSeed, p), 0))
		for i, dir := range neighborDirs {
			neighbor := p.Add(dir)
			if _, ok := rooms[neighbor]; !ok {
				continue
			}
			span := params.MaxBridgeLen - params.MinBridgeLen
			offsetStart := params.MinBridgeLen
			if span > 0 {
				offsetStart += uint32(rng.IntN(int(span) + 1))
			}
			offsetEnd := offsetStart
			if span > 0 {
				offsetEnd = params.MinBridgeLen + uint32(rng.IntN(int(span)+1))
			}
			c[i] = &RoomConnection{Direction: dir, OffsetStart: offsetStart, OffsetEnd: offsetEnd}
		}
		conns[p] = c
	}
	return rooms, conns
}

// roomSeed derives a deterministic per-room PRNG seed from a world seed and
// a room coordinate, so terrain regeneration is reproducible per room
// independent of generation order.
func roomSeed(worldSeed uint64, room geom.Axial) uint64 {
	h := xxhash.New()
	var buf [16]byte
	putUint64(buf[0:8], worldSeed)
	putUint32(buf[8:12], uint32(room.Q))
	putUint32(buf[12:16], uint32(room.R))
	_, _ = h.Write(buf[:])
	return h.Sum64()
}

func putUint64(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
}

func putUint32(b []byte, v uint32) {
	for i := 0; i < 4; i++ {
		b[i] = byte(v >> (8 * i))
	}
}
