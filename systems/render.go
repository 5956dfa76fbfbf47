package systems

import (
	"image/color"

	"github.com/automoto/sakura/components"
	cfg "github.com/automoto/sakura/config"
	"github.com/automoto/sakura/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// Flush before uint16 indices overflow
const maxBatchVertices = 60000

var (
	whitePixel *ebiten.Image
	drawOp     = &ebiten.DrawTrianglesOptions{AntiAlias: true}

	// Reusable buffers to avoid allocations every frame
	batchVertices []ebiten.Vertex
	batchIndices  []uint16
	outline       []dmath.Vec2
)

// DrawBlossoms renders every blossom in collection order: the petal outline
// under its rotation, then its glow if it is emitting. All geometry goes
// into one triangle batch so the draw order is kept.
func DrawBlossoms(ecs *ecs.ECS, screen *ebiten.Image) {
	surface := GetOrCreateSurface(ecs)
	scale := surface.Density
	if scale <= 0 {
		scale = 1
	}

	batchVertices = batchVertices[:0]
	batchIndices = batchIndices[:0]

	tags.Blossom.Each(ecs.World, func(e *donburi.Entry) {
		if len(batchVertices) > maxBatchVertices {
			flushBatch(screen)
		}

		pos := *components.Position.Get(e)
		spin := components.Spin.Get(e)
		mist := components.Mist.Get(e)

		outline = PetalOutline(outline[:0], pos, spin.Angle, cfg.Blossom.PetalCount, cfg.Blossom.PetalRadius)
		batchVertices, batchIndices = appendPolygonFan(batchVertices, batchIndices, outline, scale, cfg.Blossom.PetalColor)

		if mist.Emit && mist.Opacity > 0 {
			batchVertices, batchIndices = appendGlowDisc(batchVertices, batchIndices,
				pos, mist.Size, mist.Opacity, cfg.Mist.Segments, scale, cfg.Mist.Color)
		}
	})

	flushBatch(screen)
}

// ClearSurface fills the screen with the background color
func ClearSurface(screen *ebiten.Image) {
	screen.Fill(cfg.Surface.BackgroundColor)
}

func flushBatch(screen *ebiten.Image) {
	if len(batchIndices) == 0 {
		return
	}
	screen.DrawTriangles(batchVertices, batchIndices, ensureWhitePixel(), drawOp)
	batchVertices = batchVertices[:0]
	batchIndices = batchIndices[:0]
}

// ensureWhitePixel returns a lazily-initialized 1x1 white image used as the
// source of untextured triangles.
func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}
