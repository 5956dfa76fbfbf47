package systems

import (
	"image"

	"github.com/automoto/sakura/archetypes"
	"github.com/automoto/sakura/components"
	cfg "github.com/automoto/sakura/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Reusable slices to avoid allocations
var (
	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID
)

// UpdateInput polls raw input and updates the InputData.
// Must run BEFORE UpdateInteraction and UpdateSettings in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	// Pointer presses: left mouse button and new touches
	surface := GetOrCreateSurface(ecs)
	input.Presses = input.Presses[:0]
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		AddPress(input, surface, x, y)
	}
	touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
	for _, id := range touchIDs {
		x, y := ebiten.TouchPosition(id)
		AddPress(input, surface, x, y)
	}
}

// AddPress records a pointer press at screen position (x, y), unless it
// lands on a blocker such as the control button.
func AddPress(input *components.InputData, surface *components.SurfaceData, x, y int) bool {
	pt := image.Pt(x, y)
	for _, r := range input.Blockers {
		if pt.In(r) {
			return false
		}
	}
	lx, ly := ToLayout(surface, x, y)
	input.Presses = append(input.Presses, math.Vec2{X: lx, Y: ly})
	return true
}

// SetPointerBlockers replaces the screen rectangles that swallow presses
func SetPointerBlockers(ecs *ecs.ECS, rects ...image.Rectangle) {
	input := GetOrCreateInput(ecs)
	input.Blockers = append(input.Blockers[:0], rects...)
}

// RequestBloom asks the interaction system to activate every blossom on
// its next run
func RequestBloom(ecs *ecs.ECS) {
	GetOrCreateInput(ecs).BloomRequested = true
}

// GetOrCreateInput returns the input singleton, creating it on first use
func GetOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = archetypes.Input.Spawn(ecs)
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
