package components

import (
	"image"

	cfg "github.com/automoto/sakura/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state

	// Pointer presses of this frame, in layout units
	Presses []math.Vec2

	// Screen rectangles (backing pixels) that swallow pointer presses
	Blockers []image.Rectangle

	// Set by the control button, consumed by the interaction system
	BloomRequested bool
}

var Input = donburi.NewComponentType[InputData]()
