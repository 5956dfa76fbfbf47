package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/sakura/components"
	"github.com/quasilyte/gdata"
)

// SavedPreferences represents the window preferences stored on disk.
// Scene state (blossom positions, rotation, glow) is never persisted.
type SavedPreferences struct {
	Fullscreen bool `json:"fullscreen"`
	Debug      bool `json:"debug"`
}

const preferencesKey = "preferences"

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for preference storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "sakura",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadPreferences loads preferences from disk. It returns nil, nil when
// persistence is unavailable or nothing was saved yet.
func LoadPreferences() (*SavedPreferences, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(preferencesKey)
	if err != nil {
		log.Printf("Warning: Could not load preferences: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved preferences yet, use defaults
		return nil, nil
	}

	return decodePreferences(data)
}

// SavePreferences saves preferences to disk
func SavePreferences(p *SavedPreferences) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		log.Printf("Warning: Could not serialize preferences: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(preferencesKey, data); err != nil {
		log.Printf("Warning: Could not save preferences: %v", err)
		return err
	}
	return nil
}

// SaveCurrentPreferences saves the preferences held by the settings component
func SaveCurrentPreferences(s *components.SettingsData) error {
	return SavePreferences(&SavedPreferences{
		Fullscreen: s.Fullscreen,
		Debug:      s.Debug,
	})
}

func decodePreferences(data []byte) (*SavedPreferences, error) {
	var p SavedPreferences
	if err := json.Unmarshal(data, &p); err != nil {
		log.Printf("Warning: Could not parse saved preferences: %v", err)
		return nil, err
	}
	return &p, nil
}
