package config

import (
	"image/color"
	"math"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer; blossoms and the debug overlay share it.
const Default ecs.LayerID = 0

// Config contains window-level configuration values
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int
	Seed   int64 // 0 = seed from the wall clock
}

// BlossomConfig contains the per-blossom shape and rotation constants
type BlossomConfig struct {
	Count       int
	PetalCount  int
	PetalRadius float64
	PetalColor  color.RGBA

	// Rotation
	MaxSpeed          float64       // radians per tick
	AccelerationSteps float64       // ticks from rest to MaxSpeed
	AccelerationPhase time.Duration // wall time before deceleration begins
}

// MistConfig contains the glow effect constants
type MistConfig struct {
	InitialSize    float64 // size before the first activation
	ActivationSize float64 // size set by every activation
	MaxOpacity     float64
	FadeSpeed      float64 // opacity change per tick
	ShrinkStep     float64 // size change per tick once shrinking
	FadeDelay      time.Duration
	Color          color.RGBA
	Segments       int // rim vertices of the glow disc
}

// InteractionConfig contains click and button activation values
type InteractionConfig struct {
	HitRadius float64
	StopDelay time.Duration

	// When true, the button path also schedules a rotation stop like a click does.
	ButtonStopsRotation bool

	// Cell size of the hit-test space, in layout units
	HitCellSize int
}

// SurfaceConfig contains drawing surface values
type SurfaceConfig struct {
	BackgroundColor color.RGBA
}

// UIConfig contains control button values
type UIConfig struct {
	ButtonLabel   string
	ButtonWidth   int
	ButtonHeight  int
	ButtonMargin  int
	FontSize      float64
	ButtonIdle    color.RGBA
	ButtonHover   color.RGBA
	ButtonPressed color.RGBA
	TextColor     color.RGBA
}

// DebugConfig contains debug overlay values
type DebugConfig struct {
	Overlay     bool
	FontSize    float64
	TextColor   color.RGBA
	HitBoxColor color.RGBA
	LineHeight  int
	MarginLeft  int
	MarginTop   int
}

var C *Config
var Blossom BlossomConfig
var Mist MistConfig
var Interaction InteractionConfig
var Surface SurfaceConfig
var UI UIConfig
var Debug DebugConfig

// Common colors
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Pink      = color.RGBA{R: 0xFF, G: 0xB7, B: 0xC5, A: 255}
	NightBlue = color.RGBA{R: 16, G: 24, B: 40, A: 255}
	Cyan      = color.RGBA{R: 0, G: 255, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "Sakura",
		TPS:    60,
	}

	Blossom = BlossomConfig{
		Count:             50,
		PetalCount:        5,
		PetalRadius:       15,
		PetalColor:        Pink,
		MaxSpeed:          math.Pi / 64,
		AccelerationSteps: 20,
		AccelerationPhase: 5000 * time.Millisecond,
	}

	Mist = MistConfig{
		InitialSize:    40,
		ActivationSize: 30,
		MaxOpacity:     0.5,
		FadeSpeed:      0.01,
		ShrinkStep:     0.2,
		FadeDelay:      4000 * time.Millisecond,
		Color:          White,
		Segments:       48,
	}

	Interaction = InteractionConfig{
		HitRadius:           15,
		StopDelay:           6000 * time.Millisecond,
		ButtonStopsRotation: false,
		HitCellSize:         32,
	}

	Surface = SurfaceConfig{
		BackgroundColor: NightBlue,
	}

	UI = UIConfig{
		ButtonLabel:   "Bloom",
		ButtonWidth:   120,
		ButtonHeight:  36,
		ButtonMargin:  24,
		FontSize:      16,
		ButtonIdle:    color.RGBA{R: 90, G: 50, B: 70, A: 230},
		ButtonHover:   color.RGBA{R: 120, G: 70, B: 95, A: 240},
		ButtonPressed: color.RGBA{R: 70, G: 35, B: 55, A: 255},
		TextColor:     White,
	}

	Debug = DebugConfig{
		Overlay:     false,
		FontSize:    12,
		TextColor:   White,
		HitBoxColor: Cyan,
		LineHeight:  16,
		MarginLeft:  8,
		MarginTop:   18,
	}
}
