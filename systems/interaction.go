package systems

import (
	"math"
	"time"

	"github.com/automoto/sakura/components"
	cfg "github.com/automoto/sakura/config"
	"github.com/automoto/sakura/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInteraction turns this frame's pointer presses and bloom requests
// into blossom activations. Must run after UpdateInput and before UpdateSpin.
func UpdateInteraction(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs)

	for _, p := range input.Presses {
		ActivateAt(ecs, p.X, p.Y)
	}
	input.Presses = input.Presses[:0]

	if input.BloomRequested || GetAction(input, cfg.ActionBloom).JustPressed {
		ActivateAll(ecs)
	}
	input.BloomRequested = false
}

// ActivateAt activates every resting blossom whose center is closer than the
// hit radius to (x, y), in layout units. Returns the number activated.
func ActivateAt(ecs *ecs.ECS, x, y float64) int {
	now := Now(ecs)
	radius := cfg.Interaction.HitRadius
	activated := 0

	for _, e := range blossomsNear(ecs, x, y) {
		pos := components.Position.Get(e)
		if math.Hypot(pos.X-x, pos.Y-y) >= radius {
			continue
		}
		if Activate(e, now, true) {
			activated++
		}
	}
	return activated
}

// ActivateAll activates every resting blossom. Unless
// cfg.Interaction.ButtonStopsRotation is set, only the glow gets a stop
// deadline; rotation winds down through its own deceleration.
func ActivateAll(ecs *ecs.ECS) int {
	now := Now(ecs)
	activated := 0
	tags.Blossom.Each(ecs.World, func(e *donburi.Entry) {
		if Activate(e, now, cfg.Interaction.ButtonStopsRotation) {
			activated++
		}
	})
	return activated
}

// Activate starts rotation and glow on a resting blossom and schedules the
// glow (and optionally the rotation) to stop after cfg.Interaction.StopDelay.
// A blossom that is already rotating is left untouched.
func Activate(e *donburi.Entry, now time.Time, stopRotation bool) bool {
	spin := components.Spin.Get(e)
	if spin.Rotating {
		return false
	}
	mist := components.Mist.Get(e)

	StartSpin(spin, now)
	StartMist(mist)

	deadline := now.Add(cfg.Interaction.StopDelay)
	mist.StopAt = deadline
	if stopRotation {
		spin.StopAt = deadline
	}
	return true
}
