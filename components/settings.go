package components

import "github.com/yohamta/donburi"

// SettingsData stores window preferences and the quit request
type SettingsData struct {
	Fullscreen bool
	Debug      bool
	Quit       bool

	// Last preference save failed; the toggle still applies this session
	SaveFailed bool
}

var Settings = donburi.NewComponentType[SettingsData]()
