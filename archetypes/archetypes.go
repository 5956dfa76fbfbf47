package archetypes

import (
	"github.com/automoto/sakura/components"
	cfg "github.com/automoto/sakura/config"
	"github.com/automoto/sakura/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Blossom = newArchetype(
		tags.Blossom,
		components.Position,
		components.Spin,
		components.Mist,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Surface = newArchetype(
		components.Surface,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Input = newArchetype(
		components.Input,
	)
	Settings = newArchetype(
		components.Settings,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
