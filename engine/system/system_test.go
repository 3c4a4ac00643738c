package system

import (
	"testing"

	"github.com/hiveworld/simcore/engine/geom"
	"github.com/hiveworld/simcore/engine/world"
)

func TestEnergyRegenClampsToMax(t *testing.T) {
	w := world.New(world.GameConfig{}, 4)
	id, _ := w.AllocEntity()
	w.EnergyRegens.Insert(id, world.EnergyRegen{Amount: 20})
	w.Energies.Insert(id, world.Energy{Current: 490, Max: 500})

	EnergyRegen(w)

	e, _ := w.Energies.Get(id)
	if e.Current != 500 {
		t.Fatalf("expected energy clamped to 500, got %d", e.Current)
	}
}

func TestDecayAppliesDamageAndResets(t *testing.T) {
	w := world.New(world.GameConfig{}, 4)
	id, _ := w.AllocEntity()
	w.Decays.Insert(id, world.Decay{TimeRemaining: 1, Interval: 10, HpAmount: 5})
	w.Hps.Insert(id, world.Hp{Current: 12, Max: 100})

	Decay(w)

	hp, _ := w.Hps.Get(id)
	if hp.Current != 7 {
		t.Fatalf("expected hp 7, got %d", hp.Current)
	}
	d, _ := w.Decays.Get(id)
	if d.TimeRemaining != 10 {
		t.Fatalf("expected timer reset to 10, got %d", d.TimeRemaining)
	}
}

func TestMineralRespawnRestoresEnergy(t *testing.T) {
	w := world.New(world.GameConfig{}, 4)
	id, _ := w.AllocEntity()
	w.Energies.Insert(id, world.Energy{Current: 0, Max: 100})
	w.RespawnTimers.Insert(id, world.RespawnTimer{TimeRemaining: 1, Interval: 2})

	MineralRespawn(w)

	e, _ := w.Energies.Get(id)
	if e.Current != 100 {
		t.Fatalf("expected energy restored to 100, got %d", e.Current)
	}
	timer, _ := w.RespawnTimers.Get(id)
	if timer.TimeRemaining != 2 {
		t.Fatalf("expected timer reset to 2, got %d", timer.TimeRemaining)
	}
}

func TestPositionIndexRebuildReflectsMoves(t *testing.T) {
	w := world.New(world.GameConfig{}, 4)
	id, _ := w.AllocEntity()
	room := geom.NewAxial(0, 0)
	w.PositionIndex.EnsureRoom(room)
	w.Positions.Insert(id, world.Position{Pos: world.WorldPosition{Room: room, Pos: geom.NewAxial(1, 1)}})

	PositionIndexRebuild(w)

	inner, _ := w.PositionIndex.At(room)
	got, ok := inner.GetByID(geom.NewAxial(1, 1))
	if !ok || got != id {
		t.Fatalf("expected entity at (1,1), got (%v,%v)", got, ok)
	}

	w.Positions.Insert(id, world.Position{Pos: world.WorldPosition{Room: room, Pos: geom.NewAxial(2, 2)}})
	PositionIndexRebuild(w)

	if inner.ContainsKey(geom.NewAxial(1, 1)) {
		t.Fatalf("expected stale position entry to be cleared")
	}
	got, ok = inner.GetByID(geom.NewAxial(2, 2))
	if !ok || got != id {
		t.Fatalf("expected entity at (2,2), got (%v,%v)", got, ok)
	}
}

// TestDeathScenario mirrors spec section 8's "Death" testable property:
// after DeathCleanup + PostProcess, an entity with Hp 0 is no longer valid
// and all its component rows are gone.
func TestDeathScenario(t *testing.T) {
	w := world.New(world.GameConfig{}, 4)
	id, _ := w.AllocEntity()
	w.Hps.Insert(id, world.Hp{Current: 0, Max: 100})
	w.Carries.Insert(id, world.Carry{Current: 10, Max: 50})

	DeathCleanup(w)
	w.PostProcess()

	if w.IsValid(id) {
		t.Fatalf("expected entity to be invalid after death cleanup")
	}
	if _, ok := w.Hps.Get(id); ok {
		t.Fatalf("expected Hp row dropped")
	}
	if _, ok := w.Carries.Get(id); ok {
		t.Fatalf("expected Carry row dropped")
	}
}

func TestSpawnQueueAdvanceMaterializesBot(t *testing.T) {
	w := world.New(world.GameConfig{}, 8)
	structure, _ := w.AllocEntity()
	w.IsStructure.Set(structure)
	w.SpawnQueues.Insert(structure, world.SpawnQueue{Queue: []world.SpawnDescription{{}}})
	room := geom.NewAxial(0, 0)
	w.Positions.Insert(structure, world.Position{Pos: world.WorldPosition{Room: room, Pos: geom.NewAxial(3, 3)}})

	botCountBefore := 0
	w.IsBot.Each(func(world.EntityId) { botCountBefore++ })

	for i := 0; i < defaultSpawnCountdown; i++ {
		SpawnQueueAdvance(w)
	}

	botCountAfter := 0
	var spawned world.EntityId
	w.IsBot.Each(func(id world.EntityId) {
		botCountAfter++
		spawned = id
	})
	if botCountAfter != botCountBefore+1 {
		t.Fatalf("expected exactly one new bot, before=%d after=%d", botCountBefore, botCountAfter)
	}

	hp, ok := w.Hps.Get(spawned)
	if !ok {
		t.Fatalf("expected spawned bot to have an Hp row")
	}
	if hp.Current != 50 || hp.Max != 50 {
		t.Fatalf("expected a freshly spawned bot at 50/50 HP, got %+v", hp)
	}
}
