package system

import "github.com/hiveworld/simcore/engine/world"

// Default per-tick numeric parameters fixed in SPEC_FULL.md section 12,
// taken from the original implementation's archetype snapshots.
const (
	defaultEnergyRegenAmount = 20
	defaultSpawnEnergyMax    = 500
	defaultBotCarryMax       = 50
	defaultSpawnCountdown    = 5
	defaultBotHp             = 50
)

// SpawnQueueAdvance pops the head of every idle structure's SpawnQueue into
// its Spawn countdown, and materializes a new bot archetype once a
// countdown reaches zero.
func SpawnQueueAdvance(w *world.World) {
	w.SpawnQueues.Each(func(id world.EntityId, q world.SpawnQueue) {
		spawn, _ := w.Spawns.Get(id)

		if spawn.Pending == nil && len(q.Queue) > 0 {
			desc := q.Queue[0]
			q.Queue = q.Queue[1:]
			spawn.Pending = &desc
			spawn.Countdown = defaultSpawnCountdown
			w.SpawnQueues.Insert(id, q)
		}

		if spawn.Pending == nil {
			return
		}

		spawn.Countdown--
		if spawn.Countdown > 0 {
			w.Spawns.Insert(id, spawn)
			return
		}

		pos, hasPos := w.Positions.Get(id)
		desc := *spawn.Pending
		spawn.Pending = nil
		w.Spawns.Insert(id, spawn)

		newID, err := w.AllocEntity()
		if err != nil {
			return
		}
		w.IsBot.Set(newID)
		w.Owners.Insert(newID, world.Owner{UserID: desc.OwnerID})
		w.Scripts.Insert(newID, world.Script{ScriptID: desc.ScriptID})
		w.Carries.Insert(newID, world.Carry{Current: 0, Max: defaultBotCarryMax})
		w.Energies.Insert(newID, world.Energy{Current: defaultSpawnEnergyMax, Max: defaultSpawnEnergyMax})
		w.EnergyRegens.Insert(newID, world.EnergyRegen{Amount: defaultEnergyRegenAmount})
		w.Hps.Insert(newID, world.Hp{Current: defaultBotHp, Max: defaultBotHp})
		if hasPos {
			w.Positions.Insert(newID, pos)
		}
	})
}
