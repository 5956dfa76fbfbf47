package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is the frame clock. Now is sampled once per tick so every
// system in a tick sees the same time.
type ClockData struct {
	Now    time.Time
	Ticks  int
	Source func() time.Time // nil = time.Now
}

var Clock = donburi.NewComponentType[ClockData]()
