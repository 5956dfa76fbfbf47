package main

import (
	"testing"

	"github.com/automoto/sakura/config"
)

func TestGardenOptionsSeed(t *testing.T) {
	defer func(seed int64) { config.C.Seed = seed }(config.C.Seed)
	config.C.Seed = 1234

	tests := []struct {
		name string
		args []string
		want int64
	}{
		{"config seed", nil, 1234},
		{"flag seed", []string{"-seed", "7"}, 7},
		{"explicit zero", []string{"-seed", "0"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, err := parseFlags(tt.args)
			if err != nil {
				t.Fatalf("parseFlags(%v) error = %v", tt.args, err)
			}
			if got := gardenOptions(flags).Seed; got != tt.want {
				t.Errorf("Seed = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGardenOptionsCount(t *testing.T) {
	defer func(count int) { config.Blossom.Count = count }(config.Blossom.Count)
	config.Blossom.Count = 80

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"config count", nil, 80},
		{"flag count", []string{"-count", "12"}, 12},
		{"explicit zero", []string{"-count", "0"}, 0},
		{"negative ignored", []string{"-count", "-3"}, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, err := parseFlags(tt.args)
			if err != nil {
				t.Fatalf("parseFlags(%v) error = %v", tt.args, err)
			}
			if got := gardenOptions(flags).Count; got != tt.want {
				t.Errorf("Count = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseFlagsRejectsUnknown(t *testing.T) {
	if _, err := parseFlags([]string{"-bogus"}); err == nil {
		t.Error("parseFlags() accepted an unknown flag")
	}
}
