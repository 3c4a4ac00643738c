package persist

import (
	"errors"
	"testing"

	"github.com/df-mc/goleveldb/leveldb"

	"github.com/hiveworld/simcore/engine/mapgen"
)

func TestStorePutGetRoundTrip(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected open error: %v", err)
	}
	defer store.Close()

	w := buildPopulatedWorld(t)
	snap := BuildSnapshot(w, mapgen.RoomProperties{Radius: 10})

	if err := store.Put(7, snap); err != nil {
		t.Fatalf("unexpected put error: %v", err)
	}

	got, err := store.Get(7)
	if err != nil {
		t.Fatalf("unexpected get error: %v", err)
	}
	if len(got.Bots) != len(snap.Bots) || len(got.Rooms) != len(snap.Rooms) {
		t.Fatalf("round-tripped snapshot mismatch: got %+v", got)
	}
}

func TestStoreGetMissingTick(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected open error: %v", err)
	}
	defer store.Close()

	if _, err := store.Get(1); !errors.Is(err, leveldb.ErrNotFound) {
		t.Fatalf("expected wrapped ErrNotFound, got %v", err)
	}
}

func TestStoreLatestScansBackward(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected open error: %v", err)
	}
	defer store.Close()

	w := buildPopulatedWorld(t)
	snap := BuildSnapshot(w, mapgen.RoomProperties{Radius: 10})
	if err := store.Put(3, snap); err != nil {
		t.Fatalf("unexpected put error: %v", err)
	}

	tick, _, err := store.Latest(10)
	if err != nil {
		t.Fatalf("unexpected latest error: %v", err)
	}
	if tick != 3 {
		t.Fatalf("expected latest tick 3, got %d", tick)
	}
}
