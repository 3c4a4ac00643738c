package alloc

import "testing"

func TestScopeFinalizersRunInReverseOrder(t *testing.T) {
	lin := NewLinear(4096)
	sc := NewScope(lin)

	var order []int
	for i := 0; i < 6; i++ {
		i := i
		if _, err := sc.AllocObj(32, func() { order = append(order, i) }); err != nil {
			t.Fatal(err)
		}
	}
	if len(order) != 0 {
		t.Fatalf("expected no finalizers to have run yet")
	}
	sc.Close()
	if len(order) != 6 {
		t.Fatalf("expected 6 finalizers to have run, got %d", len(order))
	}
	for i, v := range order {
		if v != 5-i {
			t.Fatalf("expected reverse order, got %v", order)
		}
	}
	if !lin.Empty() {
		t.Fatalf("expected allocator rewound to empty after scope close")
	}
}

func TestScopeCloseIdempotent(t *testing.T) {
	lin := NewLinear(1024)
	sc := NewScope(lin)
	calls := 0
	sc.AllocObj(16, func() { calls++ })
	sc.Close()
	sc.Close()
	if calls != 1 {
		t.Fatalf("expected finalizer to run exactly once, got %d", calls)
	}
}

func TestNestedScopesMustCloseLIFO(t *testing.T) {
	lin := NewLinear(1024)
	outer := NewScope(lin)
	outer.AllocPod(16)
	inner := NewScope(lin)
	inner.AllocPod(16)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic closing outer scope before inner")
		}
	}()
	outer.Close()
}
