package systems

import (
	"testing"
	"time"

	"github.com/automoto/sakura/components"
	cfg "github.com/automoto/sakura/config"
	"github.com/automoto/sakura/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// tickStep divides 5000ms and 6000ms evenly: 250 ticks = 5s, 300 ticks = 6s.
const tickStep = 20 * time.Millisecond

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// newTestWorld returns a world with a stepping clock and an 800x600 hit space.
func newTestWorld(t *testing.T) (*ecs.ECS, *fakeClock) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	clock := &fakeClock{now: time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)}
	SetClockSource(e, clock.Now)
	factory.CreateSpace(e, 800, 600, cfg.Interaction.HitCellSize)
	return e, clock
}

// step advances the clock by one tick and runs the animation systems.
func step(e *ecs.ECS, clock *fakeClock) {
	clock.Advance(tickStep)
	UpdateClock(e)
	UpdateInteraction(e)
	UpdateSpin(e)
	UpdateMist(e)
}

func stepN(e *ecs.ECS, clock *fakeClock, n int) {
	for i := 0; i < n; i++ {
		step(e, clock)
	}
}

func ticksFor(d time.Duration) int {
	return int(d / tickStep)
}

func spinOf(e *donburi.Entry) *components.SpinData { return components.Spin.Get(e) }

func mistOf(e *donburi.Entry) *components.MistData { return components.Mist.Get(e) }
