package factory

import (
	"math/rand"

	"github.com/automoto/sakura/archetypes"
	"github.com/automoto/sakura/components"
	cfg "github.com/automoto/sakura/config"
	"github.com/automoto/sakura/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// HitBoxPadding widens hit boxes past the hit radius. resolv files an object
// in the cells covering X..X+W-1, so an unpadded box misses the last unit.
const HitBoxPadding = 1

// CreateBlossom creates an idle blossom centered at (x, y) and indexes its
// hit box in the space, if one exists.
func CreateBlossom(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	blossom := archetypes.Blossom.Spawn(ecs)

	components.Position.SetValue(blossom, math.Vec2{X: x, Y: y})
	components.Spin.SetValue(blossom, NewSpinData())
	components.Mist.SetValue(blossom, NewMistData())

	r := cfg.Interaction.HitRadius + HitBoxPadding
	obj := resolv.NewObject(x-r, y-r, 2*r, 2*r, tags.ResolvBlossom)
	obj.Data = blossom
	components.Object.SetValue(blossom, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return blossom
}

// SpawnBlossoms creates count blossoms at uniform random positions inside a
// width x height surface. A zero-sized surface puts every blossom at the origin.
func SpawnBlossoms(ecs *ecs.ECS, count int, width, height float64, rng *rand.Rand) []*donburi.Entry {
	blossoms := make([]*donburi.Entry, 0, count)
	for i := 0; i < count; i++ {
		x := rng.Float64() * width
		y := rng.Float64() * height
		blossoms = append(blossoms, CreateBlossom(ecs, x, y))
	}
	return blossoms
}

// NewSpinData returns the resting rotation state
func NewSpinData() components.SpinData {
	return components.SpinData{
		MaxSpeed:          cfg.Blossom.MaxSpeed,
		SpeedIncrement:    cfg.Blossom.MaxSpeed / cfg.Blossom.AccelerationSteps,
		AccelerationPhase: cfg.Blossom.AccelerationPhase,
	}
}

// NewMistData returns the resting glow state
func NewMistData() components.MistData {
	return components.MistData{
		MaxOpacity: cfg.Mist.MaxOpacity,
		FadeSpeed:  cfg.Mist.FadeSpeed,
		Size:       cfg.Mist.InitialSize,
		ShrinkStep: cfg.Mist.ShrinkStep,
		FadeDelay:  cfg.Mist.FadeDelay,
	}
}
