// Package rpc defines the message shapes and typed errors of the engine's
// external boundary (spec 4.I / section 6): commands that mutate the world
// under its exclusive lock, a world-stream payload shape, and the
// scripting/health surfaces delegated to collaborating services. Real wire
// transport (gRPC/connect service definitions, codecs) is explicitly out of
// scope here; this package only gives that layer something typed to wrap.
package rpc

import "github.com/hiveworld/simcore/engine/world"

// EntitySnapshot is the read-only view of one entity published in a
// WorldStream payload room: just enough to render or react to, never a
// handle back into the live World.
type EntitySnapshot struct {
	ID  world.EntityId
	Pos world.WorldPosition
}

// LogLine is one console message attached to its room for the tick that
// produced it.
type LogLine struct {
	Bot     world.EntityId
	Message string
	Say     bool
}

// RoomEntities is the per-room slice of a WorldStream payload: every bot,
// structure and resource currently in the room, plus the log/say lines
// emitted there this tick.
type RoomEntities struct {
	Bots       []EntitySnapshot
	Structures []EntitySnapshot
	Resources  []EntitySnapshot
	Logs       []LogLine
}

// StreamPayload is one tick's world-stream message: every touched room
// keyed by its axial coordinate, plus the tick number it was built at.
type StreamPayload struct {
	Time  uint64
	Rooms map[world.Room]RoomEntities
}

// Scripting is the compile/save surface spec section 6 delegates to a
// collaborating scripting service; this engine never parses or executes
// script source, only stores the resulting ScriptId against a user.
type Scripting interface {
	Compile(source []byte) (world.ScriptId, error)
	SaveScript(user world.UserId, source []byte) (world.ScriptId, error)
}

// Health is the liveness surface spec section 6 names as Health.Ping.
type Health interface {
	Ping() error
}
