package systems

import (
	"encoding/json"
	"testing"

	"github.com/automoto/sakura/components"
)

func TestDecodePreferences(t *testing.T) {
	data, err := json.Marshal(&SavedPreferences{Fullscreen: true, Debug: true})
	if err != nil {
		t.Fatal(err)
	}

	p, err := decodePreferences(data)
	if err != nil {
		t.Fatalf("decodePreferences() error = %v", err)
	}
	if !p.Fullscreen || !p.Debug {
		t.Errorf("decodePreferences() = %+v, want both set", p)
	}
}

func TestDecodePreferencesRejectsGarbage(t *testing.T) {
	if _, err := decodePreferences([]byte("{not json")); err == nil {
		t.Error("decodePreferences() accepted invalid data")
	}
}

func TestPreferencesWithoutPersistence(t *testing.T) {
	if gdataInitialized {
		t.Skip("persistence initialized by another test")
	}
	p, err := LoadPreferences()
	if p != nil || err != nil {
		t.Errorf("LoadPreferences() = %v, %v, want nil, nil", p, err)
	}
	if err := SavePreferences(&SavedPreferences{Debug: true}); err != nil {
		t.Errorf("SavePreferences() error = %v", err)
	}
	if err := SaveCurrentPreferences(&components.SettingsData{Fullscreen: true}); err != nil {
		t.Errorf("SaveCurrentPreferences() error = %v", err)
	}
}
