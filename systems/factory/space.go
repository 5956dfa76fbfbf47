package factory

import (
	"math"

	"github.com/automoto/sakura/archetypes"
	"github.com/automoto/sakura/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the hit-test space covering a width x height surface
func CreateSpace(ecs *ecs.ECS, width, height float64, cellSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.Set(space, NewSpace(width, height, cellSize))
	return space
}

// NewSpace returns a resolv space large enough for a width x height surface.
// One spare cell on each axis keeps hit boxes on the far edges indexed.
func NewSpace(width, height float64, cellSize int) *resolv.Space {
	if cellSize <= 0 {
		cellSize = 1
	}
	w := int(math.Ceil(math.Max(width, 0))) + cellSize
	h := int(math.Ceil(math.Max(height, 0))) + cellSize
	return resolv.NewSpace(w, h, cellSize, cellSize)
}
