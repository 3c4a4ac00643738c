package geom

// Hexagon is a bounded hex region: all points within Radius hex-steps of
// Center.
type Hexagon struct {
	Center Axial
	Radius int32
}

// NewHexagon constructs a Hexagon.
func NewHexagon(center Axial, radius int32) Hexagon { return Hexagon{Center: center, Radius: radius} }

// Contains reports whether point lies within h (hex distance <= h.Radius).
func (h Hexagon) Contains(point Axial) bool {
	d := point.Sub(h.Center)
	x, y, z := d.Cube()
	r := h.Radius
	if r < 0 {
		r = -r
	}
	return abs32(x) <= r && abs32(y) <= r && abs32(z) <= r
}

// Area returns the number of hex cells within h: 1 + 3r(r+1).
func (h Hexagon) Area() int {
	r := int64(h.Radius)
	return int(1 + 3*r*(r+1))
}

var edgeStarts = [6]Axial{
	{0, -1}, {1, -1}, {1, 0}, {0, 1}, {-1, 1}, {-1, 0},
}

var edgeDeltas = [6]Axial{
	{1, 0}, {0, 1}, {-1, 1}, {-1, 0}, {0, -1}, {1, -1},
}

// IterEdge returns the 6*Radius points forming the ring at exactly h.Radius
// hex-steps from h.Center. Radius must be > 0.
func (h Hexagon) IterEdge() []Axial {
	if h.Radius <= 0 {
		return nil
	}
	out := make([]Axial, 0, 6*h.Radius)
	for di := 0; di < 6; di++ {
		pos := h.Center.Add(edgeStarts[di].Scale(h.Radius))
		delta := edgeDeltas[di]
		for j := int32(0); j < h.Radius; j++ {
			out = append(out, pos.Add(delta.Scale(j)))
		}
	}
	return out
}

// IterPoints spirals out from Center and yields every point in h exactly
// once, totalling Area() points.
func (h Hexagon) IterPoints() []Axial {
	out := make([]Axial, 0, h.Area())
	out = append(out, h.Center)
	for r := int32(1); r <= h.Radius; r++ {
		out = append(out, NewHexagon(h.Center, r).IterEdge()...)
	}
	return out
}

// WithCenter returns a copy of h with a different center.
func (h Hexagon) WithCenter(center Axial) Hexagon { h.Center = center; return h }

// WithRadius returns a copy of h with a different radius.
func (h Hexagon) WithRadius(radius int32) Hexagon { h.Radius = radius; return h }
