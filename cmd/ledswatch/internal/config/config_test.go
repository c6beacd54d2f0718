package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/ledcolor"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "strip.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if d := cmp.Diff(Default(), cfg); d != "" {
		t.Errorf("Load(\"\") mismatch (-want +got):\n%s", d)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
pixels: 30
space: hsb
hue: Clockwise
from: "#00ff00"
to: "#f0f"
white: 40
limit: 5000
current:
  red: 160
  green: 170
  blue: 180
  white: 250
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := &Config{
		Pixels:  30,
		Space:   SpaceHSB,
		Hue:     "Clockwise",
		From:    "#00ff00",
		To:      "#f0f",
		White:   40,
		Limit:   5000,
		Current: Current{Red: 160, Green: 170, Blue: 180, White: 250},
	}
	if d := cmp.Diff(want, cfg); d != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", d)
	}

	from, to, err := cfg.Endpoints()
	if err != nil {
		t.Fatalf("Endpoints() error = %v", err)
	}
	if from != (ledcolor.RGBColor{G: 255}) || to != (ledcolor.RGBColor{R: 255, B: 255}) {
		t.Errorf("Endpoints() = %v, %v", from, to)
	}
	if got := cfg.RGBWSettings(); got != ledcolor.NewRGBWCurrentSettings(160, 170, 180, 250) {
		t.Errorf("RGBWSettings() = %+v", got)
	}
	if got := cfg.RGBSettings(); got != ledcolor.NewRGBCurrentSettings(160, 170, 180) {
		t.Errorf("RGBSettings() = %+v", got)
	}
	// Hue names are case-insensitive.
	if got := cfg.HueBlend()(0.3, 0.1, 0.5); got != ledcolor.HueBlendClockwise(0.3, 0.1, 0.5) {
		t.Errorf("HueBlend() did not select clockwise, got %v", got)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "pixels: 8\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := Default()
	want.Pixels = 8
	if d := cmp.Diff(want, cfg); d != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", d)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad yaml", "pixels: [", "failed to parse"},
		{"zero pixels", "pixels: 0", "pixels must be between"},
		{"too many pixels", "pixels: 5000", "pixels must be between"},
		{"unknown space", "space: cmyk", `unknown space "cmyk"`},
		{"unknown hue", "hue: sideways", `unknown hue blend "sideways"`},
		{"bad from", "from: red", "from:"},
		{"bad to", "to: '#12'", "to:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("Load() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want os.ErrNotExist", err)
	}
}

func TestValidateWrapsHexError(t *testing.T) {
	cfg := Default()
	cfg.From = "nope"
	if err := cfg.Validate(); !errors.Is(err, ledcolor.ErrInvalidHex) {
		t.Errorf("Validate() = %v, want ErrInvalidHex", err)
	}
}

func TestHueBlendFallback(t *testing.T) {
	cfg := Default()
	cfg.Hue = "unknown"
	if got, want := cfg.HueBlend()(0.3, 0.1, 0.5), ledcolor.HueBlendShortest(0.3, 0.1, 0.5); got != want {
		t.Errorf("HueBlend() fallback = %v, want shortest result %v", got, want)
	}
}
