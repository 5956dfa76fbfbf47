package systems

import (
	"fmt"

	"github.com/automoto/sakura/components"
	cfg "github.com/automoto/sakura/config"
	"github.com/automoto/sakura/fonts"
	"github.com/automoto/sakura/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DebugStats summarizes the blossom states for the overlay
type DebugStats struct {
	Blossoms int
	Rotating int
	Glowing  int
}

// CollectDebugStats counts blossoms by state
func CollectDebugStats(ecs *ecs.ECS) DebugStats {
	var stats DebugStats
	tags.Blossom.Each(ecs.World, func(e *donburi.Entry) {
		stats.Blossoms++
		if components.Spin.Get(e).Rotating {
			stats.Rotating++
		}
		if m := components.Mist.Get(e); m.Emit || m.Opacity > 0 {
			stats.Glowing++
		}
	})
	return stats
}

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	surface := GetOrCreateSurface(ecs)
	scale := float32(surface.Density)
	c := cfg.Debug.HitBoxColor

	// Hit boxes as indexed in the space
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			if !obj.HasTags(tags.ResolvBlossom) {
				continue
			}
			x, y := float32(obj.X)*scale, float32(obj.Y)*scale
			w, h := float32(obj.W)*scale, float32(obj.H)*scale
			vector.StrokeRect(screen, x, y, w, h, 1, c, false)
		}
	}

	if !fonts.Debug.Loaded() {
		return
	}
	stats := CollectDebugStats(ecs)
	lines := []string{
		fmt.Sprintf("TPS %.0f  FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()),
		fmt.Sprintf("blossoms %d  rotating %d  glowing %d", stats.Blossoms, stats.Rotating, stats.Glowing),
		fmt.Sprintf("layout %.0fx%.0f  density %.2f", surface.LayoutWidth, surface.LayoutHeight, surface.Density),
	}
	if settings.SaveFailed {
		lines = append(lines, "preferences not saved")
	}
	face := fonts.Debug.Get()
	for i, line := range lines {
		text.Draw(screen, line, face, cfg.Debug.MarginLeft, cfg.Debug.MarginTop+i*cfg.Debug.LineHeight, cfg.Debug.TextColor)
	}
}
