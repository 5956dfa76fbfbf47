package config

import (
	"errors"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sakura.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// restoreDefaults snapshots the package-level config for the test's lifetime
func restoreDefaults(t *testing.T) {
	t.Helper()
	c, b, m, i, s, d := *C, Blossom, Mist, Interaction, Surface, Debug
	t.Cleanup(func() {
		*C, Blossom, Mist, Interaction, Surface, Debug = c, b, m, i, s, d
	})
}

func TestLoadFileApply(t *testing.T) {
	restoreDefaults(t)
	path := writeConfig(t, `
window:
  width: 1600
  title: Hanami
blossom:
  count: 80
  petalColor: "#FF0000"
  accelerationPhaseMs: 3000
mist:
  fadeDelayMs: 2500
interaction:
  hitRadius: 20
  buttonStopsRotation: true
background: "102030"
debug: true
`)

	f, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	f.Apply()

	if C.Width != 1600 || C.Height != 720 || C.Title != "Hanami" {
		t.Errorf("window = %dx%d %q", C.Width, C.Height, C.Title)
	}
	if Blossom.Count != 80 {
		t.Errorf("Count = %d, want 80", Blossom.Count)
	}
	if Blossom.PetalColor != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("PetalColor = %v", Blossom.PetalColor)
	}
	if Blossom.AccelerationPhase != 3*time.Second {
		t.Errorf("AccelerationPhase = %v, want 3s", Blossom.AccelerationPhase)
	}
	if Mist.FadeDelay != 2500*time.Millisecond {
		t.Errorf("FadeDelay = %v, want 2.5s", Mist.FadeDelay)
	}
	if Interaction.HitRadius != 20 || !Interaction.ButtonStopsRotation {
		t.Errorf("Interaction = %+v", Interaction)
	}
	if Interaction.StopDelay != 6*time.Second {
		t.Errorf("unset StopDelay changed to %v", Interaction.StopDelay)
	}
	if Surface.BackgroundColor != (color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 255}) {
		t.Errorf("BackgroundColor = %v", Surface.BackgroundColor)
	}
	if !Debug.Overlay {
		t.Error("debug overlay not enabled")
	}
}

func TestLoadFileErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad yaml", "window: [1, 2"},
		{"negative width", "window:\n  width: -1\n"},
		{"zero tps", "window:\n  tps: 0\n"},
		{"negative count", "blossom:\n  count: -5\n"},
		{"opacity above one", "mist:\n  maxOpacity: 1.5\n"},
		{"zero hit radius", "interaction:\n  hitRadius: 0\n"},
		{"bad color", "blossom:\n  petalColor: pink\n"},
		{"bad background", "background: \"#12345\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadFile(writeConfig(t, tt.body)); err == nil {
				t.Error("LoadFile() accepted invalid config")
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadFile() error = %v, want fs.ErrNotExist", err)
	}
}

func TestEmptyFileKeepsDefaults(t *testing.T) {
	restoreDefaults(t)
	before := Blossom

	f, err := LoadFile(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	f.Apply()

	if Blossom != before {
		t.Errorf("Blossom changed: %+v -> %+v", before, Blossom)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#FFB7C5", color.RGBA{R: 0xFF, G: 0xB7, B: 0xC5, A: 0xFF}, false},
		{"ffb7c5", color.RGBA{R: 0xFF, G: 0xB7, B: 0xC5, A: 0xFF}, false},
		{"#FFFFFF80", color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0x80}, false},
		{" #000000 ", color.RGBA{A: 0xFF}, false},
		{"#FFF", color.RGBA{}, true},
		{"#GGGGGG", color.RGBA{}, true},
		{"", color.RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHexColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
