package systems

import (
	"math"
	"time"

	"github.com/automoto/sakura/components"
	cfg "github.com/automoto/sakura/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMist advances every blossom's glow by one tick
func UpdateMist(ecs *ecs.ECS) {
	now := Now(ecs)
	components.Mist.Each(ecs.World, func(e *donburi.Entry) {
		StepMist(components.Mist.Get(e), now)
	})
}

// StepMist advances one glow state machine by one tick.
//
// While emitting, the opacity eases toward MaxOpacity. The first tick it
// gets there latches FadeStartTime; FadeDelay later the glow starts to
// shrink linearly by ShrinkStep per tick down to zero. When not emitting
// the opacity fades back to zero.
func StepMist(m *components.MistData, now time.Time) {
	if !m.StopAt.IsZero() && !now.Before(m.StopAt) {
		m.StopAt = time.Time{}
		m.Emit = false
	}

	if !m.Emit {
		if m.Opacity > 0 {
			m.Opacity = math.Max(m.Opacity-m.FadeSpeed, 0)
		}
		return
	}

	switch {
	case m.Opacity < m.MaxOpacity:
		m.Opacity = math.Min(m.Opacity+m.FadeSpeed, m.MaxOpacity)
	case m.Opacity > m.MaxOpacity:
		m.Opacity = math.Max(m.Opacity-m.FadeSpeed, m.MaxOpacity)
	}

	if m.FadeStartTime.IsZero() && m.Opacity >= m.MaxOpacity {
		m.FadeStartTime = now
	}

	if !m.FadeStartTime.IsZero() && now.Sub(m.FadeStartTime) > m.FadeDelay {
		shrinkMist(m)
	}
}

// StartMist restarts the glow from transparent at the activation size
func StartMist(m *components.MistData) {
	m.Emit = true
	m.Opacity = 0
	m.Size = cfg.Mist.ActivationSize
	m.FadeStartTime = time.Time{}
	m.StopAt = time.Time{}
	m.Shrink = nil
}

// shrinkMist steps the shrink tween by one tick. The tween runs from the
// size at shrink start to zero over Size/ShrinkStep ticks, which is the
// same as subtracting ShrinkStep every tick.
func shrinkMist(m *components.MistData) {
	if m.Shrink == nil {
		if m.Size <= 0 || m.ShrinkStep <= 0 {
			m.Size = math.Max(m.Size, 0)
			return
		}
		ticks := m.Size / m.ShrinkStep
		m.Shrink = gween.New(float32(m.Size), 0, float32(ticks), ease.Linear)
	}

	size, finished := m.Shrink.Update(1)
	m.Size = math.Max(float64(size), 0)
	if finished {
		m.Size = 0
	}
}
