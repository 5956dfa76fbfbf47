package systems

import (
	"math"

	"github.com/automoto/sakura/archetypes"
	"github.com/automoto/sakura/components"
	"github.com/automoto/sakura/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSurface returns the drawing surface, creating it on first use
func GetOrCreateSurface(ecs *ecs.ECS) *components.SurfaceData {
	entry, ok := components.Surface.First(ecs.World)
	if !ok {
		entry = archetypes.Surface.Spawn(ecs)
		components.Surface.SetValue(entry, components.SurfaceData{Density: 1})
	}
	return components.Surface.Get(entry)
}

// ConfigureSurface sizes the surface for a layout box and pixel density:
// the backing store becomes layout*density pixels and drawing is scaled by
// density, so all positions stay in layout units.
//
// It returns the width and height scale factors relative to the previous
// layout and whether the layout changed. An unusable density falls back to 1,
// a previous dimension of zero yields a factor of 1, and a zero-sized layout
// (e.g. a minimized window) is ignored.
func ConfigureSurface(s *components.SurfaceData, layoutWidth, layoutHeight, density float64) (sx, sy float64, resized bool) {
	sx, sy = 1, 1

	if density <= 0 || math.IsNaN(density) || math.IsInf(density, 0) {
		density = 1
	}
	if layoutWidth <= 0 || layoutHeight <= 0 {
		if !s.Configured {
			s.Density = density
		}
		return sx, sy, false
	}

	if s.Configured && (layoutWidth != s.LayoutWidth || layoutHeight != s.LayoutHeight) {
		resized = true
		if s.LayoutWidth > 0 {
			sx = layoutWidth / s.LayoutWidth
		}
		if s.LayoutHeight > 0 {
			sy = layoutHeight / s.LayoutHeight
		}
	}

	s.LayoutWidth = layoutWidth
	s.LayoutHeight = layoutHeight
	s.Density = density
	s.BackingWidth = int(math.Ceil(layoutWidth * density))
	s.BackingHeight = int(math.Ceil(layoutHeight * density))
	s.Configured = true

	return sx, sy, resized
}

// ToLayout converts a screen position in backing pixels to layout units
func ToLayout(s *components.SurfaceData, x, y int) (float64, float64) {
	d := s.Density
	if d <= 0 {
		d = 1
	}
	return float64(x) / d, float64(y) / d
}

// DeviceScaleFactor returns the pixel density of the current monitor, or 1
// when it cannot be read.
func DeviceScaleFactor() float64 {
	if m := ebiten.Monitor(); m != nil {
		return m.DeviceScaleFactor()
	}
	return 1
}

// RescaleBlossoms multiplies every blossom position by (sx, sy) so blossoms
// keep their relative place in a resized viewport. Nothing else changes.
func RescaleBlossoms(ecs *ecs.ECS, sx, sy float64) {
	tags.Blossom.Each(ecs.World, func(e *donburi.Entry) {
		pos := components.Position.Get(e)
		pos.X *= sx
		pos.Y *= sy
	})
}

// Reposition applies a viewport resize: blossoms are rescaled and the
// hit-test space is rebuilt for the new surface.
func Reposition(ecs *ecs.ECS, sx, sy float64) {
	surface := GetOrCreateSurface(ecs)
	RescaleBlossoms(ecs, sx, sy)
	RebuildHitSpace(ecs, surface.LayoutWidth, surface.LayoutHeight)
}
