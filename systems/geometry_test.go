package systems

import (
	"math"
	"testing"

	"github.com/automoto/sakura/config"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestPetalOutline(t *testing.T) {
	c := dmath.Vec2{X: 100, Y: 50}

	tests := []struct {
		name  string
		angle float64
		first dmath.Vec2
	}{
		{"rest", 0, dmath.Vec2{X: 100, Y: 65}},
		{"quarter turn", math.Pi / 2, dmath.Vec2{X: 85, Y: 50}},
		{"half turn", math.Pi, dmath.Vec2{X: 100, Y: 35}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := PetalOutline(nil, c, tt.angle, 5, 15)
			if len(pts) != 5 {
				t.Fatalf("len = %d, want 5", len(pts))
			}
			if math.Abs(pts[0].X-tt.first.X) > 1e-9 || math.Abs(pts[0].Y-tt.first.Y) > 1e-9 {
				t.Errorf("first point = %v, want %v", pts[0], tt.first)
			}
			for i, p := range pts {
				if d := math.Hypot(p.X-c.X, p.Y-c.Y); math.Abs(d-15) > 1e-9 {
					t.Errorf("point %d at distance %v, want 15", i, d)
				}
			}
		})
	}
}

func TestPetalOutlineReusesBuffer(t *testing.T) {
	buf := make([]dmath.Vec2, 0, 8)
	pts := PetalOutline(buf, dmath.Vec2{}, 0, 5, 15)
	if &pts[0] != &buf[:1][0] {
		t.Error("outline did not reuse the buffer")
	}
}

func TestAppendPolygonFan(t *testing.T) {
	pts := PetalOutline(nil, dmath.Vec2{X: 10, Y: 10}, 0, 5, 15)
	vs, is := appendPolygonFan(nil, nil, pts, 2, config.Pink)

	if len(vs) != 5 {
		t.Errorf("vertices = %d, want 5", len(vs))
	}
	if len(is) != 9 {
		t.Errorf("indices = %d, want 9 (3 triangles)", len(is))
	}
	// Scaled to backing pixels
	if vs[0].DstX != float32(pts[0].X*2) || vs[0].DstY != float32(pts[0].Y*2) {
		t.Errorf("vertex 0 = (%v, %v), want (%v, %v)", vs[0].DstX, vs[0].DstY, pts[0].X*2, pts[0].Y*2)
	}
	if vs[0].ColorA != 1 {
		t.Errorf("alpha = %v, want 1", vs[0].ColorA)
	}
}

func TestAppendPolygonFanOffsetsIndices(t *testing.T) {
	pts := PetalOutline(nil, dmath.Vec2{}, 0, 5, 15)
	vs, is := appendPolygonFan(nil, nil, pts, 1, config.Pink)
	vs, is = appendPolygonFan(vs, is, pts, 1, config.Pink)

	if len(vs) != 10 || len(is) != 18 {
		t.Fatalf("got %d vertices %d indices, want 10 and 18", len(vs), len(is))
	}
	for _, i := range is[9:] {
		if i < 5 {
			t.Errorf("second polygon references vertex %d of the first", i)
		}
	}
}

func TestAppendGlowDisc(t *testing.T) {
	vs, is := appendGlowDisc(nil, nil, dmath.Vec2{X: 50, Y: 50}, 30, 0.4, 16, 1, config.White)

	if len(vs) != 17 {
		t.Fatalf("vertices = %d, want 17", len(vs))
	}
	if len(is) != 48 {
		t.Errorf("indices = %d, want 48", len(is))
	}
	if math.Abs(float64(vs[0].ColorA)-0.4) > 1e-6 {
		t.Errorf("center alpha = %v, want 0.4", vs[0].ColorA)
	}
	for i, v := range vs[1:] {
		if v.ColorA != 0 {
			t.Errorf("rim vertex %d alpha = %v, want 0", i, v.ColorA)
		}
		d := math.Hypot(float64(v.DstX)-50, float64(v.DstY)-50)
		if math.Abs(d-30) > 1e-3 {
			t.Errorf("rim vertex %d at distance %v, want 30", i, d)
		}
	}
}

func TestAppendGlowDiscSkipsInvisible(t *testing.T) {
	tests := []struct {
		name            string
		radius, opacity float64
	}{
		{"zero size", 0, 0.5},
		{"transparent", 30, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vs, is := appendGlowDisc(nil, nil, dmath.Vec2{}, tt.radius, tt.opacity, 16, 1, config.White)
			if len(vs) != 0 || len(is) != 0 {
				t.Errorf("got %d vertices, want none", len(vs))
			}
		})
	}
}
