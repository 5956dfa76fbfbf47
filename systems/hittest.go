package systems

import (
	"github.com/automoto/sakura/components"
	cfg "github.com/automoto/sakura/config"
	"github.com/automoto/sakura/systems/factory"
	"github.com/automoto/sakura/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// blossomsNear returns the blossoms whose hit boxes share a space cell with
// the point (x, y). It is a broad phase: callers still check the distance.
func blossomsNear(ecs *ecs.ECS, x, y float64) []*donburi.Entry {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil
	}
	space := components.Space.Get(spaceEntry)

	probe := resolv.NewObject(x, y, 1, 1, tags.ResolvProbe)
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tags.ResolvBlossom)
	if check == nil {
		return nil
	}

	seen := make(map[donburi.Entity]bool, len(check.Objects))
	entries := make([]*donburi.Entry, 0, len(check.Objects))
	for _, obj := range check.Objects {
		e, ok := obj.Data.(*donburi.Entry)
		if !ok || !e.Valid() || seen[e.Entity()] {
			continue
		}
		seen[e.Entity()] = true
		entries = append(entries, e)
	}
	return entries
}

// syncObject moves a blossom's hit box onto its position
func syncObject(e *donburi.Entry) {
	pos := components.Position.Get(e)
	obj := components.Object.Get(e)
	obj.X = pos.X - obj.W/2
	obj.Y = pos.Y - obj.H/2
	obj.Update()
}

// RebuildHitSpace replaces the hit-test space with one sized for the current
// surface and re-indexes every blossom hit box.
func RebuildHitSpace(ecs *ecs.ECS, width, height float64) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		factory.CreateSpace(ecs, width, height, cfg.Interaction.HitCellSize)
		spaceEntry, _ = components.Space.First(ecs.World)
	}
	old := components.Space.Get(spaceEntry)
	for _, obj := range old.Objects() {
		old.Remove(obj)
	}

	components.Space.Set(spaceEntry, factory.NewSpace(width, height, cfg.Interaction.HitCellSize))
	space := components.Space.Get(spaceEntry)

	tags.Blossom.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		space.Add(obj.Object)
		syncObject(e)
	})
}
