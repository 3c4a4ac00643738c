// Package script implements the parallel script-execution stage of spec
// 4.G: partition entities into chunks, run each chunk's VMs concurrently
// against a per-chunk linear allocator, and reduce the per-chunk intent
// bundles into one ordered result.
package script

import (
	"context"
	"encoding/binary"

	"github.com/segmentio/fasthash/fnv1a"
	"golang.org/x/sync/errgroup"

	"github.com/hiveworld/simcore/engine/intent"
	"github.com/hiveworld/simcore/engine/world"
	"github.com/hiveworld/simcore/internal/alloc"
)

// minChunk and maxChunk bound the chunk size spec 4.G specifies:
// clamp(len, 8, 256).
const (
	minChunk = 8
	maxChunk = 256

	// chunkArenaSize is the per-chunk linear allocator size (100 MiB).
	chunkArenaSize = 100 << 20
)

// ScriptID identifies a compiled program.
type ScriptID = world.ScriptId

// Task is one (EntityId, EntityScript{script_id}) input pair from spec 4.G.
type Task struct {
	Entity   world.EntityId
	ScriptID ScriptID
}

// CompiledProgram is an opaque handle a Host resolves and executes; its
// shape is entirely up to the Host implementation (spec 4.G treats VM
// internals as a black box, outside this engine's scope).
type CompiledProgram any

// Host is the per-execution callback surface a VM uses to read the world
// and emit intents.
type Host interface {
	// Lookup returns the compiled program for id, or false if none exists.
	Lookup(id ScriptID) (CompiledProgram, bool)
	// Run executes program for entity against arena a, returning the
	// intents it emitted or an error (counted as a runtime error, never
	// aborting the tick).
	Run(ctx context.Context, entity world.EntityId, program CompiledProgram, a *alloc.LinearAllocator) (intent.BotIntents, error)
}

// Stats accumulates the counters spec 4.G calls for: scripts not found and
// scripts that errored at runtime, neither of which aborts the tick.
type Stats struct {
	NumScriptsNotFound int
	NumScriptsErrored  int
	// PanicChunks records the label (see chunkLabel) of every chunk whose
	// Host.Run panicked. A panicking script is a Host bug, not a tick
	// failure: the chunk's remaining tasks are abandoned but the tick
	// continues, matching spec 4.G's "a runtime error never aborts the
	// tick" for the catastrophic case a plain error return can't express.
	PanicChunks []uint64
}

func (s *Stats) add(o Stats) {
	s.NumScriptsNotFound += o.NumScriptsNotFound
	s.NumScriptsErrored += o.NumScriptsErrored
	s.PanicChunks = append(s.PanicChunks, o.PanicChunks...)
}

// chunkLabel derives a stable, cheap identifier for a chunk of tasks from
// the entity indices it contains, used only to tag diagnostics (PanicChunks)
// rather than for any indexing or correctness purpose.
func chunkLabel(chunk []Task) uint64 {
	var buf [4]byte
	h := fnv1a.Init64
	for _, t := range chunk {
		binary.LittleEndian.PutUint32(buf[:], t.Entity.Index)
		h = fnv1a.AddBytes64(h, buf[:])
	}
	return h
}

// Execute runs host.Run for every task, chunked and run in parallel, and
// returns the reduced, order-preserving slice of BotIntents plus aggregate
// Stats. Host must only read the world during this call: script execution
// never mutates it directly (spec 4.G contract).
func Execute(ctx context.Context, host Host, tasks []Task) ([]intent.BotIntents, Stats) {
	if len(tasks) == 0 {
		return nil, Stats{}
	}

	chunkSize := len(tasks)
	if chunkSize < minChunk {
		chunkSize = minChunk
	}
	if chunkSize > maxChunk {
		chunkSize = maxChunk
	}

	var chunks [][]Task
	for i := 0; i < len(tasks); i += chunkSize {
		end := i + chunkSize
		if end > len(tasks) {
			end = len(tasks)
		}
		chunks = append(chunks, tasks[i:end])
	}

	results := make([][]intent.BotIntents, len(chunks))
	chunkStats := make([]Stats, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	for ci, chunk := range chunks {
		ci, chunk := ci, chunk
		g.Go(func() (err error) {
			arena := alloc.NewLinear(chunkArenaSize)
			out := make([]intent.BotIntents, 0, len(chunk))
			var st Stats
			processed := 0
			defer func() {
				if r := recover(); r != nil {
					st.NumScriptsErrored += len(chunk) - processed
					st.PanicChunks = append(st.PanicChunks, chunkLabel(chunk))
				}
				results[ci] = out
				chunkStats[ci] = st
			}()
			for _, task := range chunk {
				program, ok := host.Lookup(task.ScriptID)
				if !ok {
					st.NumScriptsNotFound++
					processed++
					continue
				}
				bi, runErr := host.Run(gctx, task.Entity, program, arena)
				if runErr != nil {
					st.NumScriptsErrored++
					processed++
					continue
				}
				out = append(out, bi)
				processed++
			}
			return nil
		})
	}
	// No chunk goroutine above ever returns a non-nil error; a script's own
	// runtime error is recorded in Stats instead of aborting the tick, per
	// spec 4.G ("On runtime error, ... continue").
	_ = g.Wait()

	var total Stats
	var reduced []intent.BotIntents
	for ci := range chunks {
		reduced = append(reduced, results[ci]...)
		total.add(chunkStats[ci])
	}
	return reduced, total
}
