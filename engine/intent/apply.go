package intent

import "github.com/hiveworld/simcore/engine/world"

// LogEntry is one console message produced by an applied log or say
// intent, collected for the tick's publish payload.
type LogEntry struct {
	Bot     world.EntityId
	Message string
	Say     bool
}

// Report summarizes the outcome of Apply: how many intents of each kind
// were dropped by their checker, and the console messages that survived.
type Report struct {
	Dropped map[string]int
	Logs    []LogEntry
}

func newReport() *Report {
	return &Report{Dropped: make(map[string]int)}
}

func (r *Report) drop(kind string) { r.Dropped[kind]++ }

// Apply consumes a tick's staged Batches in the fixed intent-kind order
// move -> attack -> mine -> dropoff -> cache_path -> spawn -> log -> say,
// running each intent's checker and, only on Ok, its applier. Callers must
// hold the world's exclusive lock.
func Apply(w *world.World, b *Batches) *Report {
	r := newReport()

	for _, in := range b.Moves {
		if CheckMove(w, in) == Ok {
			ApplyMove(w, in)
		} else {
			r.drop("move")
		}
	}
	for _, in := range b.Attacks {
		if CheckAttack(w, in) == Ok {
			ApplyAttack(w, in)
		} else {
			r.drop("attack")
		}
	}
	for _, in := range b.Mines {
		if CheckMine(w, in) == Ok {
			ApplyMine(w, in)
		} else {
			r.drop("mine")
		}
	}
	for _, in := range b.Dropoffs {
		if CheckDropoff(w, in) == Ok {
			ApplyDropoff(w, in)
		} else {
			r.drop("dropoff")
		}
	}
	for _, in := range b.CachePaths {
		if CheckCachePath(w, in) == Ok {
			ApplyCachePath(w, in)
		} else {
			r.drop("cache_path")
		}
	}
	for _, in := range b.Spawns {
		if CheckSpawn(w, in) == Ok {
			ApplySpawn(w, in)
		} else {
			r.drop("spawn")
		}
	}
	for _, in := range b.Logs {
		if CheckLog(w, in) == Ok {
			r.Logs = append(r.Logs, LogEntry{Bot: in.Bot, Message: in.Message})
		} else {
			r.drop("log")
		}
	}
	for _, in := range b.Says {
		if CheckSay(w, in) == Ok {
			r.Logs = append(r.Logs, LogEntry{Bot: in.Bot, Message: in.Message, Say: true})
		} else {
			r.drop("say")
		}
	}
	return r
}
