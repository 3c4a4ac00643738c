// Package geom implements the hex-grid spatial primitives from spec 4.D:
// Axial coordinates, cube-distance, and the Hexagon shape (contains,
// iter_edge, iter_points, area) plus float cube-coordinate rounding.
package geom

// Axial is a hex coordinate pair (q, r) on two oblique axes.
type Axial struct {
	Q, R int32
}

// NewAxial constructs an Axial from (q, r).
func NewAxial(q, r int32) Axial { return Axial{Q: q, R: r} }

// Add returns the componentwise sum of a and b.
func (a Axial) Add(b Axial) Axial { return Axial{Q: a.Q + b.Q, R: a.R + b.R} }

// Sub returns the componentwise difference a - b.
func (a Axial) Sub(b Axial) Axial { return Axial{Q: a.Q - b.Q, R: a.R - b.R} }

// Scale returns a scaled by n.
func (a Axial) Scale(n int32) Axial { return Axial{Q: a.Q * n, R: a.R * n} }

// Cube returns the cube-coordinate representation (x, y, z) with x+y+z == 0.
func (a Axial) Cube() (x, y, z int32) {
	x = a.Q
	z = a.R
	y = -x - z
	return
}

// HexDistance returns the cube distance between a and b, the number of hex
// steps separating them.
func HexDistance(a, b Axial) uint32 {
	d := a.Sub(b)
	x, y, z := d.Cube()
	return uint32(max32(abs32(x), abs32(y), abs32(z)))
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func max32(a, b, c int32) int32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

// CubeRound rounds floating cube coordinates to the nearest integer cube
// point, resetting whichever axis has the largest rounding error so that
// x+y+z stays 0.
func CubeRound(x, y, z float64) (int32, int32, int32) {
	rx := roundf(x)
	ry := roundf(y)
	rz := roundf(z)

	dx := absf(rx - x)
	dy := absf(ry - y)
	dz := absf(rz - z)

	switch {
	case dx > dy && dx > dz:
		rx = -ry - rz
	case dy > dz:
		ry = -rx - rz
	default:
		rz = -rx - ry
	}
	return int32(rx), int32(ry), int32(rz)
}

// HexRound rounds a floating (q, r) pair to the nearest Axial hex.
func HexRound(q, r float64) Axial {
	y := -q - r
	x, yy, z := CubeRound(q, y, r)
	_ = yy
	return Axial{Q: x, R: z}
}

func roundf(v float64) float64 {
	if v < 0 {
		return -roundf(-v)
	}
	i := float64(int64(v))
	if v-i >= 0.5 {
		return i + 1
	}
	return i
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
