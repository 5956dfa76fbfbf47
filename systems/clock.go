package systems

import (
	"time"

	"github.com/automoto/sakura/archetypes"
	"github.com/automoto/sakura/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock samples the frame time. Must run first so every later system
// in the tick sees the same Now.
func UpdateClock(ecs *ecs.ECS) {
	clock := GetOrCreateClock(ecs)
	sampleClock(clock)
	clock.Ticks++
}

// Now returns the time sampled at the start of the current tick
func Now(ecs *ecs.ECS) time.Time {
	clock := GetOrCreateClock(ecs)
	if clock.Now.IsZero() {
		// Before the first tick (e.g. activation from setup code)
		sampleClock(clock)
	}
	return clock.Now
}

// GetOrCreateClock returns the frame clock, creating it on first use
func GetOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		entry = archetypes.Clock.Spawn(ecs)
	}
	return components.Clock.Get(entry)
}

// SetClockSource replaces the wall clock, for deterministic runs
func SetClockSource(ecs *ecs.ECS, source func() time.Time) {
	clock := GetOrCreateClock(ecs)
	clock.Source = source
	clock.Now = time.Time{}
}

func sampleClock(clock *components.ClockData) {
	if clock.Source != nil {
		clock.Now = clock.Source()
		return
	}
	clock.Now = time.Now()
}
