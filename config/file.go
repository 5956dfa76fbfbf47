package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// File is the optional YAML override file. Every field is optional; unset
// fields keep the defaults from init().
//
// Example:
//
//	window:
//	  width: 1600
//	  height: 900
//	blossom:
//	  count: 80
//	  petalColor: "#FFB7C5"
//	interaction:
//	  hitRadius: 20
//	  buttonStopsRotation: true
type File struct {
	Window      WindowFile      `yaml:"window"`
	Blossom     BlossomFile     `yaml:"blossom"`
	Mist        MistFile        `yaml:"mist"`
	Interaction InteractionFile `yaml:"interaction"`
	Background  *string         `yaml:"background"`
	Debug       *bool           `yaml:"debug"`
}

type WindowFile struct {
	Width  *int    `yaml:"width"`
	Height *int    `yaml:"height"`
	Title  *string `yaml:"title"`
	TPS    *int    `yaml:"tps"`
	Seed   *int64  `yaml:"seed"`
}

type BlossomFile struct {
	Count               *int     `yaml:"count"`
	PetalRadius         *float64 `yaml:"petalRadius"`
	PetalColor          *string  `yaml:"petalColor"`
	AccelerationPhaseMs *int     `yaml:"accelerationPhaseMs"`
}

type MistFile struct {
	MaxOpacity  *float64 `yaml:"maxOpacity"`
	FadeDelayMs *int     `yaml:"fadeDelayMs"`
}

type InteractionFile struct {
	HitRadius           *float64 `yaml:"hitRadius"`
	StopDelayMs         *int     `yaml:"stopDelayMs"`
	ButtonStopsRotation *bool    `yaml:"buttonStopsRotation"`
}

// LoadFile reads and validates a YAML override file
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &f, nil
}

// Validate checks that every set value is usable
func (f *File) Validate() error {
	if f.Window.Width != nil && *f.Window.Width <= 0 {
		return fmt.Errorf("window width must be positive, got %d", *f.Window.Width)
	}
	if f.Window.Height != nil && *f.Window.Height <= 0 {
		return fmt.Errorf("window height must be positive, got %d", *f.Window.Height)
	}
	if f.Window.TPS != nil && *f.Window.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", *f.Window.TPS)
	}
	if f.Blossom.Count != nil && *f.Blossom.Count < 0 {
		return fmt.Errorf("blossom count must not be negative, got %d", *f.Blossom.Count)
	}
	if f.Blossom.PetalRadius != nil && *f.Blossom.PetalRadius <= 0 {
		return fmt.Errorf("petal radius must be positive, got %.1f", *f.Blossom.PetalRadius)
	}
	if f.Blossom.AccelerationPhaseMs != nil && *f.Blossom.AccelerationPhaseMs < 0 {
		return fmt.Errorf("acceleration phase must not be negative, got %d", *f.Blossom.AccelerationPhaseMs)
	}
	if f.Mist.MaxOpacity != nil && (*f.Mist.MaxOpacity <= 0 || *f.Mist.MaxOpacity > 1) {
		return fmt.Errorf("mist max opacity must be in (0, 1], got %.2f", *f.Mist.MaxOpacity)
	}
	if f.Mist.FadeDelayMs != nil && *f.Mist.FadeDelayMs < 0 {
		return fmt.Errorf("mist fade delay must not be negative, got %d", *f.Mist.FadeDelayMs)
	}
	if f.Interaction.HitRadius != nil && *f.Interaction.HitRadius <= 0 {
		return fmt.Errorf("hit radius must be positive, got %.1f", *f.Interaction.HitRadius)
	}
	if f.Interaction.StopDelayMs != nil && *f.Interaction.StopDelayMs < 0 {
		return fmt.Errorf("stop delay must not be negative, got %d", *f.Interaction.StopDelayMs)
	}
	if f.Blossom.PetalColor != nil {
		if _, err := ParseHexColor(*f.Blossom.PetalColor); err != nil {
			return fmt.Errorf("petal color: %w", err)
		}
	}
	if f.Background != nil {
		if _, err := ParseHexColor(*f.Background); err != nil {
			return fmt.Errorf("background: %w", err)
		}
	}
	return nil
}

// Apply writes the set values into the package-level configuration.
// Call Validate first; colors that fail to parse are skipped.
func (f *File) Apply() {
	if f.Window.Width != nil {
		C.Width = *f.Window.Width
	}
	if f.Window.Height != nil {
		C.Height = *f.Window.Height
	}
	if f.Window.Title != nil {
		C.Title = *f.Window.Title
	}
	if f.Window.TPS != nil {
		C.TPS = *f.Window.TPS
	}
	if f.Window.Seed != nil {
		C.Seed = *f.Window.Seed
	}

	if f.Blossom.Count != nil {
		Blossom.Count = *f.Blossom.Count
	}
	if f.Blossom.PetalRadius != nil {
		Blossom.PetalRadius = *f.Blossom.PetalRadius
	}
	if f.Blossom.PetalColor != nil {
		if c, err := ParseHexColor(*f.Blossom.PetalColor); err == nil {
			Blossom.PetalColor = c
		}
	}
	if f.Blossom.AccelerationPhaseMs != nil {
		Blossom.AccelerationPhase = time.Duration(*f.Blossom.AccelerationPhaseMs) * time.Millisecond
	}

	if f.Mist.MaxOpacity != nil {
		Mist.MaxOpacity = *f.Mist.MaxOpacity
	}
	if f.Mist.FadeDelayMs != nil {
		Mist.FadeDelay = time.Duration(*f.Mist.FadeDelayMs) * time.Millisecond
	}

	if f.Interaction.HitRadius != nil {
		Interaction.HitRadius = *f.Interaction.HitRadius
	}
	if f.Interaction.StopDelayMs != nil {
		Interaction.StopDelay = time.Duration(*f.Interaction.StopDelayMs) * time.Millisecond
	}
	if f.Interaction.ButtonStopsRotation != nil {
		Interaction.ButtonStopsRotation = *f.Interaction.ButtonStopsRotation
	}

	if f.Background != nil {
		if c, err := ParseHexColor(*f.Background); err == nil {
			Surface.BackgroundColor = c
		}
	}
	if f.Debug != nil {
		Debug.Overlay = *f.Debug
	}
}

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA" (the leading '#' is optional)
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("color %q must have 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xFF
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
