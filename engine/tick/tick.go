// Package tick implements the tick-scheduling loop of spec 4.H: the
// read-snapshot / exclusive / read-snapshot phase sequence, lag-compensated
// sleep, and TPS tracking, in the style of the teacher's own ticker
// (server/world/tick.go): a small struct driving a loop that checks the
// context between ticks and sleeps off each tick's remaining slack with
// time.Sleep, reporting throughput via an atomic.
package tick

import (
	"context"
	"log/slog"
	"math"
	"sync/atomic"
	"time"

	"github.com/hiveworld/simcore/engine/intent"
	"github.com/hiveworld/simcore/engine/script"
	"github.com/hiveworld/simcore/engine/system"
	"github.com/hiveworld/simcore/engine/world"
)

const tpsSampleSize = 20

// Payload is the room-keyed delta published to subscribers after a tick's
// exclusive phase completes. The precise room-delta shape is an RPC
// boundary concern (engine/rpc); tick only needs to know it builds one and
// hands it to Publish.
type Payload struct {
	Time uint64
}

// Executor resolves the script tasks to run this tick and executes them,
// wrapping engine/script.Execute so Loop stays host-agnostic.
type Executor interface {
	Tasks(w *world.World) []script.Task
	Host() script.Host
}

// Loop drives the world one tick at a time per spec 4.H. It is not safe
// for concurrent use; Run blocks until ctx is cancelled.
type Loop struct {
	World    *world.World
	Exec     Executor
	Interval time.Duration
	Log      *slog.Logger

	// Publish is called once per tick with a read-snapshot still held; it
	// must not block indefinitely (spec 4.H: "publish ... best-effort,
	// drop-on-closed").
	Publish func(Payload)

	lag         time.Duration
	tps         atomic.Uint64
	durationSum time.Duration
	ticksCount  int
}

// TPS returns the most recently measured ticks-per-second, 0 before the
// first sample window completes.
func (l *Loop) TPS() float64 { return math.Float64frombits(l.tps.Load()) }

// Lag returns the current accumulated overrun, for diagnostics/tests.
func (l *Loop) Lag() time.Duration { return l.lag }

// Run executes ticks every Interval until ctx is cancelled, applying lag
// compensation: a tick that finishes faster than Interval subtracts the
// slack from lag (saturating at zero); a tick that finishes slower adds the
// excess to lag and skips sleeping. While lag > 0, no sleep occurs.
func (l *Loop) Run(ctx context.Context) {
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		tickStart := time.Now()
		l.observeTPS(tickStart.Sub(last))
		last = tickStart

		l.Tick(ctx)
		l.sleep(time.Since(tickStart))
	}
}

// sleep applies spec 4.H's lag-compensated sleep for a tick that took
// elapsed to run. A tick slower than Interval adds its excess to lag and
// never sleeps. A tick faster than Interval only sleeps once lag has been
// drained to zero; until then the slack is spent paying down lag instead.
func (l *Loop) sleep(elapsed time.Duration) {
	if elapsed >= l.Interval {
		l.lag += elapsed - l.Interval
		return
	}
	slack := l.Interval - elapsed
	if l.lag > 0 {
		l.lag -= slack
		if l.lag < 0 {
			l.lag = 0
		}
		return
	}
	time.Sleep(slack)
}

func (l *Loop) observeTPS(d time.Duration) {
	if d <= 0 {
		return
	}
	l.durationSum += d
	l.ticksCount++
	if l.ticksCount < tpsSampleSize {
		return
	}
	avg := l.durationSum / time.Duration(l.ticksCount)
	if avg > 0 {
		tps := 1.0 / avg.Seconds()
		l.tps.Store(math.Float64bits(tps))
		if target := 1.0 / l.Interval.Seconds(); l.Log != nil && tps < target*0.95 {
			l.Log.Warn("tick rate below target", "tps", tps, "target", target)
		}
	}
	l.durationSum = 0
	l.ticksCount = 0
}

// Tick runs exactly one iteration of the spec 4.H phase sequence. Exported
// so tests (and a driving caller that wants its own sleep policy) can step
// the loop deterministically.
func (l *Loop) Tick(ctx context.Context) {
	l.World.RLock()
	tasks := l.Exec.Tasks(l.World)
	host := l.Exec.Host()
	l.World.RUnlock()

	intents, stats := script.Execute(ctx, host, tasks)
	if stats.NumScriptsNotFound > 0 || stats.NumScriptsErrored > 0 {
		if l.Log != nil {
			l.Log.Warn("script execution errors this tick", "not_found", stats.NumScriptsNotFound, "errored", stats.NumScriptsErrored)
		}
	}

	l.World.Lock()
	batch := intent.MoveIntoStorage(intents)
	intent.Apply(l.World, batch)
	system.RunAll(l.World)
	l.World.PostProcess()
	l.World.Unlock()

	l.World.RLock()
	if l.Publish != nil {
		tm, _ := l.World.Time.Get()
		l.Publish(Payload{Time: tm})
	}
	l.World.RUnlock()
}
