package world

// Position is the per-entity WorldPosition component, the authoritative
// location read by the position-index-rebuild system.
type Position struct {
	Pos WorldPosition
}

// Carry tracks a bot's held resources against its capacity.
type Carry struct {
	Current, Max int32
}

// Hp is an entity's hit points; reaching zero triggers death cleanup.
type Hp struct {
	Current, Max int32
}

// Energy is a resource's or bot's energy reserve.
type Energy struct {
	Current, Max int32
}

// EnergyRegen marks an entity that regenerates Energy every tick.
type EnergyRegen struct {
	Amount int32
}

// Decay periodically damages an entity (e.g. structures under siege).
type Decay struct {
	TimeRemaining int32
	Interval      int32
	HpAmount      int32
}

// RespawnTimer counts down until a depleted resource's Energy is restored.
type RespawnTimer struct {
	TimeRemaining int32
	Interval      int32
}

// SpawnDescription is one queued request to create a new bot.
type SpawnDescription struct {
	OwnerID UserId
	ScriptID ScriptId
}

// SpawnQueue holds the FIFO of pending spawn requests for a structure.
type SpawnQueue struct {
	Queue []SpawnDescription
}

// Spawn is the in-progress countdown for the head of a SpawnQueue, once
// popped. Countdown <= 0 and Pending != nil means the new bot is ready to
// be materialized this tick.
type Spawn struct {
	Countdown int32
	Pending   *SpawnDescription
}

// Script attaches a compiled program to an entity (only bots have one).
type Script struct {
	ScriptID ScriptId
}

// Owner attaches a UserId to an entity (bots and structures may be owned;
// resources and unclaimed structures have no Owner row).
type Owner struct {
	UserID UserId
}

// ResourceKind enumerates harvestable resource types (spec 4.E step 6
// currently permits only Energy, but the type leaves room to grow).
type ResourceKind int

const (
	ResourceEnergy ResourceKind = iota
)

// Resource marks an entity as a harvestable resource of the given kind.
type Resource struct {
	Kind ResourceKind
}
