package components

import (
	"time"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Position is a blossom's center in layout units. Only viewport resizes move it.
var Position = donburi.NewComponentType[math.Vec2]()

// SpinData is the rotation state machine of a blossom
type SpinData struct {
	Angle          float64 // radians, reset to 0 when rotation ends
	Rotating       bool
	Speed          float64 // radians per tick, always in [0, MaxSpeed]
	MaxSpeed       float64
	SpeedIncrement float64

	AccelerationPhase time.Duration // time after StartTime before deceleration
	StartTime         time.Time
	StopAt            time.Time // forced stop deadline (zero = none)
}

var Spin = donburi.NewComponentType[SpinData]()

// MistData is the glow state machine of a blossom
type MistData struct {
	Emit       bool
	Opacity    float64 // always in [0, MaxOpacity]
	MaxOpacity float64
	FadeSpeed  float64 // opacity change per tick
	Size       float64 // glow radius, never negative
	ShrinkStep float64 // size change per tick once shrinking

	FadeDelay     time.Duration // time at full opacity before shrinking
	FadeStartTime time.Time     // latched when Opacity first reaches MaxOpacity
	StopAt        time.Time     // forced emit-off deadline (zero = none)

	// Shrink is created the first tick the glow starts shrinking
	Shrink *gween.Tween
}

var Mist = donburi.NewComponentType[MistData]()
