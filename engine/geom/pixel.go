package geom

import "github.com/go-gl/mathgl/mgl64"

// hexSize is the flat-to-flat radius used when projecting Axial coordinates
// to a Cartesian plane for clients (the tick payload's position "offset").
const hexSize = 1.0

// ToCartesian projects an Axial hex coordinate to a 2D Cartesian point using
// pointy-top hex layout, returned as a mgl64.Vec2 so downstream offset math
// (interpolating a bot's sub-hex render position) can use mathgl's vector
// operations instead of hand-rolled float pairs.
func ToCartesian(a Axial) mgl64.Vec2 {
	x := hexSize * (float64(a.Q) + float64(a.R)/2)
	y := hexSize * (float64(a.R) * 0.8660254037844386) // sqrt(3)/2
	return mgl64.Vec2{x, y}
}

// FromCartesian rounds a Cartesian point back to the nearest Axial hex,
// routing through CubeRound via mgl64's vector type.
func FromCartesian(p mgl64.Vec2) Axial {
	q := p.X() - p.Y()*0.5773502691896258 // inverse of ToCartesian: q = x - r/2
	r := p.Y() * 1.1547005383792515
	return HexRound(q, r)
}
