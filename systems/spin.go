package systems

import (
	"time"

	"github.com/automoto/sakura/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// speedEpsilon absorbs float drift when the speed is stepped in increments
const speedEpsilon = 1e-12

// UpdateSpin advances every blossom's rotation by one tick
func UpdateSpin(ecs *ecs.ECS) {
	now := Now(ecs)
	components.Spin.Each(ecs.World, func(e *donburi.Entry) {
		StepSpin(components.Spin.Get(e), now)
	})
}

// StepSpin advances one rotation state machine by one tick.
//
// While rotating the angle grows by the current speed. For the first
// AccelerationPhase after StartTime the speed climbs by SpeedIncrement per
// tick up to MaxSpeed; afterwards it drops by half that per tick until it
// reaches zero, which ends the rotation and resets the angle.
func StepSpin(s *components.SpinData, now time.Time) {
	if !s.StopAt.IsZero() && !now.Before(s.StopAt) {
		s.StopAt = time.Time{}
		stopSpin(s)
		return
	}

	if !s.Rotating {
		return
	}

	s.Angle += s.Speed

	if now.Sub(s.StartTime) > s.AccelerationPhase {
		if s.Speed > 0 {
			s.Speed -= s.SpeedIncrement / 2
		}
		if s.Speed <= speedEpsilon {
			stopSpin(s)
		}
		return
	}

	if s.Speed < s.MaxSpeed {
		s.Speed += s.SpeedIncrement
		if s.Speed > s.MaxSpeed-speedEpsilon {
			s.Speed = s.MaxSpeed
		}
	}
}

// StartSpin puts a resting blossom into its acceleration phase
func StartSpin(s *components.SpinData, now time.Time) {
	s.Rotating = true
	s.Speed = s.SpeedIncrement
	s.StartTime = now
	s.StopAt = time.Time{}
}

// stopSpin is the terminal transition shared by deceleration and deadlines
func stopSpin(s *components.SpinData) {
	s.Rotating = false
	s.Angle = 0
	s.Speed = 0
}
