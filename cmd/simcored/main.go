// Command simcored boots the deterministic tick engine: it loads
// configuration, generates (or would, in a future version, load) the
// world, then runs the tick loop while serving an operator console, the
// same top-level shape as the teacher's own cmd/dragonfly entrypoint
// (load Config, build the Server, Listen/Accept, run console.Console
// alongside it).
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hiveworld/simcore/engine/mapgen"
	"github.com/hiveworld/simcore/engine/persist"
	"github.com/hiveworld/simcore/engine/rpc"
	"github.com/hiveworld/simcore/engine/tick"
	"github.com/hiveworld/simcore/engine/world"
	"github.com/hiveworld/simcore/internal/config"
	"github.com/hiveworld/simcore/internal/logging"
)

// defaultMaxEntities bounds the handle table's capacity; large enough for
// a modest deployment without needing to be configurable on day one.
const defaultMaxEntities = 1 << 20

func main() {
	configPath := flag.String("config", "", "path to a UserConfig TOML file (defaults to built-in defaults)")
	logHuman := flag.Bool("log-human", false, "human-readable text logs when stdout is a terminal, JSON otherwise (without it, logs are always JSON)")
	worldSeed := flag.Uint64("seed", 0, "world generation seed (0 picks a random seed)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "simcored:", err)
		os.Exit(1)
	}
	if *logHuman {
		cfg.LogHuman = true
	}

	log := logging.New(logging.Config{Level: cfg.LogLevel, JSON: !cfg.LogHuman})

	seed := *worldSeed
	if seed == 0 {
		seed = rand.Uint64()
	}

	w := world.New(cfg.GameConfig(), defaultMaxEntities)

	overworldParams, err := cfg.OverworldParams()
	if err != nil {
		log.Error("loading overworld params", "err", err)
		os.Exit(1)
	}
	roomParams, err := cfg.RoomParams()
	if err != nil {
		log.Error("loading room params", "err", err)
		os.Exit(1)
	}
	result, err := mapgen.GenerateFullMap(w, overworldParams, roomParams, seed)
	if err != nil {
		log.Error("generating world", "err", err)
		os.Exit(1)
	}
	log.Info("world generated", "rooms", len(result.Rooms), "seed", seed)

	var store *persist.Store
	if cfg.PersistPath != "" {
		store, err = persist.Open(cfg.PersistPath)
		if err != nil {
			log.Error("opening persistence store", "err", err)
			os.Exit(1)
		}
		defer store.Close()
	}

	broadcaster := rpc.NewBroadcaster(func(subscriberID int) {
		log.Warn("dropped world-stream payload for slow subscriber", "subscriber", subscriberID)
	})
	cmds := rpc.New(w)

	loop := &tick.Loop{
		World:    w,
		Exec:     defaultExecutor{},
		Interval: time.Duration(cfg.TickIntervalMillis) * time.Millisecond,
		Log:      log,
		Publish:  publisher(w, result.Properties, store, cfg, broadcaster, log),
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go loop.Run(ctx)

	newConsole(cmds, log).run(ctx)
}

func loadConfig(path string) (config.UserConfig, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// publisher builds the tick.Loop.Publish callback: it fans the tick out to
// the WorldStream broadcaster and, if persistence is enabled, snapshots the
// world every PersistEveryTicks ticks.
func publisher(w *world.World, props mapgen.RoomProperties, store *persist.Store, cfg config.UserConfig, b *rpc.Broadcaster, log *slog.Logger) func(tick.Payload) {
	return func(p tick.Payload) {
		b.Publish(rpc.BuildStreamPayload(w, p.Time))
		if store == nil {
			return
		}
		if cfg.PersistEveryTicks > 1 && p.Time%cfg.PersistEveryTicks != 0 {
			return
		}
		snap := persist.BuildSnapshot(w, props)
		if err := store.Put(p.Time, snap); err != nil {
			log.Error("persisting snapshot", "tick", p.Time, "err", err)
		}
	}
}
