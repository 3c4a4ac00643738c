package world

import (
	"testing"

	"github.com/google/uuid"

	"github.com/hiveworld/simcore/engine/geom"
)

func TestAllocDeferDeletePostProcess(t *testing.T) {
	w := New(GameConfig{WorldRadius: 1, RoomRadius: 10}, 16)
	id, err := w.AllocEntity()
	if err != nil {
		t.Fatalf("alloc: %v", err)
	}
	room := geom.NewAxial(0, 0)
	w.PositionIndex.EnsureRoom(room)
	pos := WorldPosition{Room: room, Pos: geom.NewAxial(1, 1)}
	w.Positions.Insert(id, Position{Pos: pos})
	w.Hps.Insert(id, Hp{Current: 0, Max: 10})

	w.DeferDelete(id)
	if tm, _ := w.Time.Get(); tm != 0 {
		t.Fatalf("expected time 0 before post-process, got %d", tm)
	}
	w.PostProcess()

	if w.IsValid(id) {
		t.Fatalf("expected deferred-delete entity to be freed")
	}
	if _, ok := w.Hps.Get(id); ok {
		t.Fatalf("expected Hp row to be dropped")
	}
	if tm, _ := w.Time.Get(); tm != 1 {
		t.Fatalf("expected time to advance to 1, got %d", tm)
	}
}

func TestUsersBTreeOrdering(t *testing.T) {
	w := New(GameConfig{}, 4)
	a := UserId(uuid.MustParse("00000000-0000-0000-0000-000000000001"))
	b := UserId(uuid.MustParse("00000000-0000-0000-0000-000000000002"))
	w.Users.Insert(a, UserInfo{ID: a})
	w.Users.Insert(b, UserInfo{ID: b})
	if w.Users.Len() != 2 {
		t.Fatalf("expected 2 users, got %d", w.Users.Len())
	}
}
