package systems

import (
	"github.com/automoto/sakura/archetypes"
	"github.com/automoto/sakura/components"
	cfg "github.com/automoto/sakura/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the window-level actions: fullscreen, debug
// overlay and quit. Preference changes are saved immediately.
func UpdateSettings(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs)
	settings := GetOrCreateSettings(ecs)

	if GetAction(input, cfg.ActionToggleFullscreen).JustPressed {
		settings.Fullscreen = !settings.Fullscreen
		ebiten.SetFullscreen(settings.Fullscreen)
		settings.SaveFailed = SaveCurrentPreferences(settings) != nil
	}

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
		settings.SaveFailed = SaveCurrentPreferences(settings) != nil
	}

	if GetAction(input, cfg.ActionQuit).JustPressed {
		settings.Quit = true
	}
}

// ApplyPreferences copies loaded preferences into the settings component
// and the window. A nil value keeps the defaults.
func ApplyPreferences(ecs *ecs.ECS, saved *SavedPreferences) {
	if saved == nil {
		return
	}
	settings := GetOrCreateSettings(ecs)
	settings.Fullscreen = saved.Fullscreen
	settings.Debug = saved.Debug
	ebiten.SetFullscreen(saved.Fullscreen)
}

// QuitRequested reports whether the quit action was triggered
func QuitRequested(ecs *ecs.ECS) bool {
	return GetOrCreateSettings(ecs).Quit
}

// GetOrCreateSettings returns the settings singleton, creating it on first use
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = archetypes.Settings.Spawn(ecs)
		components.Settings.SetValue(entry, components.SettingsData{
			Debug: cfg.Debug.Overlay,
		})
	}
	return components.Settings.Get(entry)
}
