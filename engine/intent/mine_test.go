package intent

import (
	"testing"

	"github.com/google/uuid"

	"github.com/hiveworld/simcore/engine/geom"
	"github.com/hiveworld/simcore/engine/world"
)

func setupBotAndResource(t *testing.T) (*world.World, world.EntityId, world.EntityId) {
	t.Helper()
	w := world.New(world.GameConfig{}, 16)
	owner := world.UserId(uuid.MustParse("00000000-0000-0000-0000-00000000000a"))

	bot, err := w.AllocEntity()
	if err != nil {
		t.Fatal(err)
	}
	w.IsBot.Set(bot)
	w.Owners.Insert(bot, world.Owner{UserID: owner})
	w.Carries.Insert(bot, world.Carry{Current: 0, Max: 50})
	w.Positions.Insert(bot, world.Position{Pos: world.WorldPosition{
		Room: geom.NewAxial(0, 0),
		Pos:  geom.NewAxial(5, 5),
	}})

	res, err := w.AllocEntity()
	if err != nil {
		t.Fatal(err)
	}
	w.Resources.Insert(res, world.Resource{Kind: world.ResourceEnergy})
	w.Energies.Insert(res, world.Energy{Current: 100, Max: 100})
	w.Positions.Insert(res, world.Position{Pos: world.WorldPosition{
		Room: geom.NewAxial(0, 0),
		Pos:  geom.NewAxial(5, 6),
	}})

	return w, bot, res
}

func TestMineCheckOk(t *testing.T) {
	w, bot, res := setupBotAndResource(t)
	if got := CheckMine(w, MineIntent{Bot: bot, Target: res, Amount: 10}); got != Ok {
		t.Fatalf("expected Ok, got %v", got)
	}
}

func TestMineCheckNotInRangeAcrossRooms(t *testing.T) {
	w, bot, res := setupBotAndResource(t)
	p, _ := w.Positions.Get(res)
	p.Pos.Room = geom.NewAxial(0, 1)
	w.Positions.Insert(res, p)

	if got := CheckMine(w, MineIntent{Bot: bot, Target: res, Amount: 10}); got != NotInRange {
		t.Fatalf("expected NotInRange, got %v", got)
	}
}

func TestMineCheckEmptyResource(t *testing.T) {
	w, bot, res := setupBotAndResource(t)
	w.Energies.Insert(res, world.Energy{Current: 0, Max: 100})

	if got := CheckMine(w, MineIntent{Bot: bot, Target: res, Amount: 10}); got != Empty {
		t.Fatalf("expected Empty, got %v", got)
	}
}

func TestApplyMineTransfersEnergy(t *testing.T) {
	w, bot, res := setupBotAndResource(t)
	in := MineIntent{Bot: bot, Target: res, Amount: 30}
	if got := CheckMine(w, in); got != Ok {
		t.Fatalf("expected Ok, got %v", got)
	}
	ApplyMine(w, in)

	carry, _ := w.Carries.Get(bot)
	if carry.Current != 30 {
		t.Fatalf("expected bot carry 30, got %d", carry.Current)
	}
	energy, _ := w.Energies.Get(res)
	if energy.Current != 70 {
		t.Fatalf("expected resource energy 70, got %d", energy.Current)
	}
}

func TestApplyFixedOrderMineBeforeDropoff(t *testing.T) {
	w, bot, res := setupBotAndResource(t)

	structure, err := w.AllocEntity()
	if err != nil {
		t.Fatal(err)
	}
	w.IsStructure.Set(structure)
	w.Energies.Insert(structure, world.Energy{Current: 0, Max: 200})
	w.Positions.Insert(structure, world.Position{Pos: world.WorldPosition{
		Room: geom.NewAxial(0, 0),
		Pos:  geom.NewAxial(5, 5),
	}})

	batch := &Batches{
		Mines:     []MineIntent{{Bot: bot, Target: res, Amount: 40}},
		Dropoffs:  []DropoffIntent{{Bot: bot, Target: structure}},
	}
	report := Apply(w, batch)
	if len(report.Dropped) != 0 {
		t.Fatalf("expected no drops, got %v", report.Dropped)
	}

	carry, _ := w.Carries.Get(bot)
	if carry.Current != 0 {
		t.Fatalf("expected bot carry emptied by same-tick dropoff, got %d", carry.Current)
	}
	structEnergy, _ := w.Energies.Get(structure)
	if structEnergy.Current != 40 {
		t.Fatalf("expected structure energy 40, got %d", structEnergy.Current)
	}
}
