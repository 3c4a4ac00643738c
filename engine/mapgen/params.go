// Package mapgen implements the map-generation boundary spec 4.I/section 6
// names but treats as out of core scope: a minimal but real overworld and
// room-terrain generator so a fresh World has something to simulate. It
// generates RoomComponent/RoomConnections/RoomProperties and per-room
// TerrainComponent grids from OverworldGenerationParams/RoomGenerationParams,
// then hands terrain off into engine/world's own Terrain storage.
package mapgen

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/df-mc/jsonc"
)

// OverworldGenerationParams configures the room layout pass: how far the
// overworld extends and how long inter-room bridges may be.
type OverworldGenerationParams struct {
	WorldRadius  uint32 `json:"worldRadius"`
	RoomRadius   uint32 `json:"roomRadius"`
	MinBridgeLen uint32 `json:"minBridgeLen"`
	MaxBridgeLen uint32 `json:"maxBridgeLen"`
}

// RoomGenerationParams configures one room's terrain pass.
type RoomGenerationParams struct {
	Radius        uint32  `json:"radius"`
	ChancePlain   float64 `json:"chancePlain"`
	ChanceWall    float64 `json:"chanceWall"`
	PlainDilation uint32  `json:"plainDilation"`
}

// DefaultOverworldParams mirrors the teacher's pattern of a sane zero-config
// default (spec section 6 gives room_radius > 6 as the only hard
// constraint); callers needing something different load a params file.
func DefaultOverworldParams() OverworldGenerationParams {
	return OverworldGenerationParams{WorldRadius: 2, RoomRadius: 10, MinBridgeLen: 2, MaxBridgeLen: 4}
}

// DefaultRoomParams is the default terrain-generation tuning.
func DefaultRoomParams() RoomGenerationParams {
	return RoomGenerationParams{Radius: 10, ChancePlain: 0.55, ChanceWall: 0.35, PlainDilation: 2}
}

// LoadOverworldParams reads a JSON-with-comments params file (teacher's
// resource-pack manifest format, github.com/df-mc/jsonc) into an
// OverworldGenerationParams.
func LoadOverworldParams(path string) (OverworldGenerationParams, error) {
	var p OverworldGenerationParams
	if err := loadJSONC(path, &p); err != nil {
		return p, err
	}
	return p, nil
}

// LoadRoomParams reads a room-generation params file the same way.
func LoadRoomParams(path string) (RoomGenerationParams, error) {
	var p RoomGenerationParams
	if err := loadJSONC(path, &p); err != nil {
		return p, err
	}
	return p, nil
}

func loadJSONC(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("mapgen: reading %s: %w", path, err)
	}
	clean := jsonc.ToJSON(raw)
	if err := json.Unmarshal(clean, v); err != nil {
		return fmt.Errorf("mapgen: parsing %s: %w", path, err)
	}
	return nil
}
