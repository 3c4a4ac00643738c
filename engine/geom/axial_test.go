package geom

import "testing"

func TestHexDistance(t *testing.T) {
	a := NewAxial(0, 0)
	b := NewAxial(3, -1)
	if d := HexDistance(a, b); d != 3 {
		t.Fatalf("expected distance 3, got %d", d)
	}
}

func TestHexagonAreaAndIterPoints(t *testing.T) {
	hex := NewHexagon(NewAxial(0, 0), 3)
	pts := hex.IterPoints()
	want := hex.Area()
	if len(pts) != want {
		t.Fatalf("expected %d points, got %d", want, len(pts))
	}
	seen := make(map[Axial]bool, len(pts))
	for _, p := range pts {
		if seen[p] {
			t.Fatalf("duplicate point %v", p)
		}
		seen[p] = true
		if !hex.Contains(p) {
			t.Fatalf("point %v not contained in hexagon", p)
		}
	}
}

func TestHexagonIterEdge(t *testing.T) {
	center := NewAxial(0, 0)
	radius := int32(4)
	hex := NewHexagon(center, radius)
	edge := hex.IterEdge()
	if len(edge) != int(6*radius) {
		t.Fatalf("expected %d edge points, got %d", 6*radius, len(edge))
	}
	for i, p := range edge {
		if d := HexDistance(p, center); d != uint32(radius) {
			t.Fatalf("edge point #%d %v out of range: dist=%d want=%d", i, p, d, radius)
		}
	}
}

func TestAreaFormula(t *testing.T) {
	hex := NewHexagon(NewAxial(0, 0), 10)
	if hex.Area() != 331 {
		t.Fatalf("expected area 331 for radius 10, got %d", hex.Area())
	}
}
