package handle

import "testing"

func TestAllocFreeRoundTrip(t *testing.T) {
	tbl := New(8)
	var ids []EntityId
	for i := 0; i < 8; i++ {
		id, err := tbl.Alloc(42)
		if err != nil {
			t.Fatalf("alloc %d: %v", i, err)
		}
		if !tbl.IsValid(id) {
			t.Fatalf("expected id %v to be valid", id)
		}
		ids = append(ids, id)
	}
	if _, err := tbl.Alloc(0); err == nil {
		t.Fatalf("expected capacity exhausted error")
	}

	for _, id := range ids {
		tbl.Free(id)
		if tbl.IsValid(id) {
			t.Fatalf("expected id %v to be invalid after free", id)
		}
	}
}

func TestFreedIdNeverValidAfterReuse(t *testing.T) {
	tbl := New(4)
	id, err := tbl.Alloc(1)
	if err != nil {
		t.Fatal(err)
	}
	tbl.Free(id)

	reused, err := tbl.Alloc(2)
	if err != nil {
		t.Fatal(err)
	}
	if reused.Index != id.Index {
		t.Fatalf("expected slot reuse, got different index")
	}
	if reused.Gen <= id.Gen {
		t.Fatalf("expected strictly greater generation on reuse, old=%d new=%d", id.Gen, reused.Gen)
	}
	if tbl.IsValid(id) {
		t.Fatalf("stale id must not validate against the reused slot")
	}
}

func TestHandleReuseAfterReverseFree(t *testing.T) {
	const n = 16
	tbl := New(n)
	ids := make([]EntityId, n)
	for i := range ids {
		id, err := tbl.Alloc(0)
		if err != nil {
			t.Fatal(err)
		}
		ids[i] = id
	}
	for i := n - 1; i >= 0; i-- {
		tbl.Free(ids[i])
	}
	seenIndex := map[uint32]uint32{}
	for range ids {
		id, err := tbl.Alloc(0)
		if err != nil {
			t.Fatal(err)
		}
		seenIndex[id.Index] = id.Gen
	}
	for _, old := range ids {
		newGen, ok := seenIndex[old.Index]
		if !ok {
			t.Fatalf("expected index %d to be reallocated", old.Index)
		}
		if newGen <= old.Gen {
			t.Fatalf("expected strictly greater generation for index %d", old.Index)
		}
	}
}

func TestLookUpAndUpdate(t *testing.T) {
	tbl := New(4)
	id, _ := tbl.Alloc(7)
	v, ok := tbl.LookUp(id)
	if !ok || v != 7 {
		t.Fatalf("expected (7, true), got (%d, %v)", v, ok)
	}
	if !tbl.Update(id, 9) {
		t.Fatalf("expected update to succeed")
	}
	v, _ = tbl.LookUp(id)
	if v != 9 {
		t.Fatalf("expected updated value 9, got %d", v)
	}

	tbl.Free(id)
	if _, ok := tbl.LookUp(id); ok {
		t.Fatalf("expected lookup to fail for freed id")
	}
}

func TestInvalidSentinel(t *testing.T) {
	if !Invalid.IsInvalid() {
		t.Fatalf("expected Invalid.IsInvalid() to be true")
	}
	tbl := New(4)
	if tbl.IsValid(Invalid) {
		t.Fatalf("sentinel id must never validate")
	}
}
