// Package config mirrors the teacher's Config/UserConfig split
// (server/conf.go): a code-level GameConfig built with Go defaults plus a
// serialisable UserConfig loaded from a TOML file on disk.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"

	"github.com/hiveworld/simcore/engine/mapgen"
	"github.com/hiveworld/simcore/engine/world"
)

// UserConfig holds the operator-facing settings that are expected to be
// edited by hand between runs, the same role server/conf.go's Config
// struct plays for a dragonfly server, loaded from a TOML file the way
// the teacher's whitelist is.
type UserConfig struct {
	// WorldRadius and RoomRadius seed GameConfig and the overworld
	// generator (spec section 6; room_radius must be > 6).
	WorldRadius uint32 `toml:"world_radius"`
	RoomRadius  uint32 `toml:"room_radius"`
	// QueenTag names the archetype tag identifying a colony's queen bot.
	QueenTag string `toml:"queen_tag"`
	// ExecutionLimit bounds script VM instructions per bot per tick.
	ExecutionLimit uint32 `toml:"execution_limit"`
	// MaxRoomsPerUser caps how many rooms a single user may hold via
	// TakeRoom (spec section 4.I).
	MaxRoomsPerUser uint32 `toml:"max_rooms_per_user"`
	// TickIntervalMillis is the target wall-clock tick period (spec
	// 4.H); the "tick_latency" environment knob from spec section 6.
	TickIntervalMillis uint32 `toml:"tick_interval_millis"`
	// LogHuman lets internal/logging pick text output when stdout is a
	// terminal (JSON otherwise); left false, logs are always JSON (the
	// "log-human" environment knob, spec section 6).
	LogHuman bool `toml:"log_human"`
	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `toml:"log_level"`
	// PersistPath, if non-empty, enables per-tick snapshotting to a
	// goleveldb store at this path (engine/persist).
	PersistPath string `toml:"persist_path"`
	// PersistEveryTicks throttles snapshot frequency; 0 snapshots every
	// tick.
	PersistEveryTicks uint64 `toml:"persist_every_ticks"`
	// OverworldParamsPath and RoomParamsPath, if non-empty, override
	// mapgen's built-in defaults with a JSONC params file.
	OverworldParamsPath string `toml:"overworld_params_path"`
	RoomParamsPath      string `toml:"room_params_path"`
}

// Default returns the zero-config UserConfig: a small world that is safe
// to boot without a config file on disk, mirroring the teacher's pattern
// of a Config that works with every optional field left at its zero
// value.
func Default() UserConfig {
	return UserConfig{
		WorldRadius:        2,
		RoomRadius:         10,
		QueenTag:           "queen",
		ExecutionLimit:     10_000,
		MaxRoomsPerUser:    3,
		TickIntervalMillis: 200,
		LogLevel:           "info",
		PersistEveryTicks:  1,
	}
}

// Load reads a TOML UserConfig from path, unmarshalling it on top of
// Default() so that fields the file does not set keep their default
// values, and validates the result.
func Load(path string) (UserConfig, error) {
	cfg := Default()
	contents, err := os.ReadFile(path)
	if err != nil {
		return UserConfig{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		return UserConfig{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return UserConfig{}, err
	}
	return cfg, nil
}

// Save writes cfg to path as TOML, creating the file if it does not
// exist.
func Save(path string, cfg UserConfig) error {
	encoded, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: encoding config: %w", err)
	}
	if err := os.WriteFile(path, encoded, 0644); err != nil {
		return fmt.Errorf("config: writing %s: %w", path, err)
	}
	return nil
}

// Validate checks the invariants GameConfig and the map generator both
// rely on (spec section 6: room_radius must be > 6).
func (c UserConfig) Validate() error {
	if c.RoomRadius <= 6 {
		return fmt.Errorf("config: room_radius must be > 6, got %d", c.RoomRadius)
	}
	if c.WorldRadius == 0 {
		return fmt.Errorf("config: world_radius must be > 0")
	}
	if c.MaxRoomsPerUser == 0 {
		return fmt.Errorf("config: max_rooms_per_user must be > 0")
	}
	return nil
}

// GameConfig projects the UserConfig fields engine/world needs into its
// own GameConfig shape (duplicated there to avoid an import cycle; this
// is the one place the two are kept in sync).
func (c UserConfig) GameConfig() world.GameConfig {
	return world.GameConfig{
		WorldRadius:     c.WorldRadius,
		RoomRadius:      c.RoomRadius,
		QueenTag:        c.QueenTag,
		ExecutionLimit:  c.ExecutionLimit,
		MaxRoomsPerUser: c.MaxRoomsPerUser,
	}
}

// OverworldParams resolves the overworld generation parameters, loading
// OverworldParamsPath if set and falling back to mapgen's own defaults
// sized from WorldRadius/RoomRadius otherwise.
func (c UserConfig) OverworldParams() (mapgen.OverworldGenerationParams, error) {
	if c.OverworldParamsPath == "" {
		p := mapgen.DefaultOverworldParams()
		p.WorldRadius, p.RoomRadius = c.WorldRadius, c.RoomRadius
		return p, nil
	}
	return mapgen.LoadOverworldParams(c.OverworldParamsPath)
}

// RoomParams resolves the room-terrain generation parameters the same
// way OverworldParams does.
func (c UserConfig) RoomParams() (mapgen.RoomGenerationParams, error) {
	if c.RoomParamsPath == "" {
		p := mapgen.DefaultRoomParams()
		p.Radius = c.RoomRadius
		return p, nil
	}
	return mapgen.LoadRoomParams(c.RoomParamsPath)
}
