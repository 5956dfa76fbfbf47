package systems

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	dmath "github.com/yohamta/donburi/features/math"
)

// PetalOutline appends the outline of a blossom centered at c to dst. Point
// k sits at distance radius from the center, rotated by angle + k*2π/points.
func PetalOutline(dst []dmath.Vec2, c dmath.Vec2, angle float64, points int, radius float64) []dmath.Vec2 {
	step := 2 * math.Pi / float64(points)
	for k := 0; k < points; k++ {
		a := angle + float64(k)*step
		// (0, radius) rotated by a
		dst = append(dst, dmath.Vec2{
			X: c.X - radius*math.Sin(a),
			Y: c.Y + radius*math.Cos(a),
		})
	}
	return dst
}

// appendPolygonFan appends a fan-triangulated convex polygon in a flat color.
// Points are in layout units and scaled to backing pixels.
func appendPolygonFan(vs []ebiten.Vertex, is []uint16, points []dmath.Vec2, scale float64, clr color.RGBA) ([]ebiten.Vertex, []uint16) {
	n := len(points)
	if n < 3 {
		return vs, is
	}
	base := uint16(len(vs))
	r, g, b, a := straightColor(clr)
	for _, p := range points {
		vs = append(vs, ebiten.Vertex{
			DstX:   float32(p.X * scale),
			DstY:   float32(p.Y * scale),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: a,
		})
	}
	// Fan triangulation: vertex 0 is the hub
	for i := 0; i < n-2; i++ {
		is = append(is, base, base+uint16(i+1), base+uint16(i+2))
	}
	return vs, is
}

// appendGlowDisc appends a disc of the given radius whose alpha falls
// linearly from opacity at the center to zero at the rim.
func appendGlowDisc(vs []ebiten.Vertex, is []uint16, c dmath.Vec2, radius, opacity float64, segments int, scale float64, clr color.RGBA) ([]ebiten.Vertex, []uint16) {
	if radius <= 0 || opacity <= 0 || segments < 3 {
		return vs, is
	}
	base := uint16(len(vs))
	r, g, b, _ := straightColor(clr)
	cx, cy := c.X*scale, c.Y*scale

	vs = append(vs, ebiten.Vertex{
		DstX:   float32(cx),
		DstY:   float32(cy),
		SrcX:   0.5,
		SrcY:   0.5,
		ColorR: r,
		ColorG: g,
		ColorB: b,
		ColorA: float32(opacity),
	})
	step := 2 * math.Pi / float64(segments)
	for i := 0; i < segments; i++ {
		a := float64(i) * step
		vs = append(vs, ebiten.Vertex{
			DstX:   float32(cx + radius*scale*math.Cos(a)),
			DstY:   float32(cy + radius*scale*math.Sin(a)),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: 0,
		})
	}
	for i := 0; i < segments; i++ {
		next := (i+1)%segments + 1
		is = append(is, base, base+uint16(i+1), base+uint16(next))
	}
	return vs, is
}

// straightColor converts a color to straight-alpha float components
func straightColor(clr color.RGBA) (r, g, b, a float32) {
	return float32(clr.R) / 0xff, float32(clr.G) / 0xff, float32(clr.B) / 0xff, float32(clr.A) / 0xff
}
