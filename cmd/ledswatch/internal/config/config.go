// Package config loads the strip description used by ledswatch.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/ledcolor"
)

// Space selects the color model a strip is blended in.
type Space string

// Supported blend spaces.
const (
	SpaceRGB  Space = "rgb"
	SpaceRGBW Space = "rgbw"
	SpaceHSL  Space = "hsl"
	SpaceHSB  Space = "hsb"
)

// MaxPixels bounds the strip length accepted from a config file.
const MaxPixels = 4096

var hueBlends = map[string]ledcolor.HueBlend{
	"shortest":         ledcolor.HueBlendShortest,
	"longest":          ledcolor.HueBlendLongest,
	"clockwise":        ledcolor.HueBlendClockwise,
	"counterclockwise": ledcolor.HueBlendCounterClockwise,
}

// Config describes a strip blended from one color to another.
type Config struct {
	Pixels  int     `yaml:"pixels"`
	Space   Space   `yaml:"space"`
	Hue     string  `yaml:"hue"`
	From    string  `yaml:"from"`
	To      string  `yaml:"to"`
	White   uint8   `yaml:"white,omitempty"`
	Limit   uint32  `yaml:"limit,omitempty"`
	Current Current `yaml:"current"`
}

// Current holds the per-channel ratings in tenths of a milliampere.
type Current struct {
	Red   uint16 `yaml:"red"`
	Green uint16 `yaml:"green"`
	Blue  uint16 `yaml:"blue"`
	White uint16 `yaml:"white"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Pixels: 60,
		Space:  SpaceRGB,
		Hue:    "shortest",
		From:   "#ff0000",
		To:     "#0000ff",
		Current: Current{
			Red:   200,
			Green: 200,
			Blue:  200,
			White: 200,
		},
	}
}

// Load reads a YAML strip description. Fields missing from the file keep
// their defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	var errs []error
	if c.Pixels < 1 || c.Pixels > MaxPixels {
		errs = append(errs, fmt.Errorf("pixels must be between 1 and %d, got %d", MaxPixels, c.Pixels))
	}
	switch c.Space {
	case SpaceRGB, SpaceRGBW, SpaceHSL, SpaceHSB:
	default:
		errs = append(errs, fmt.Errorf("unknown space %q", c.Space))
	}
	if _, ok := hueBlends[strings.ToLower(c.Hue)]; !ok {
		errs = append(errs, fmt.Errorf("unknown hue blend %q", c.Hue))
	}
	if _, err := ledcolor.ParseHex(c.From); err != nil {
		errs = append(errs, fmt.Errorf("from: %w", err))
	}
	if _, err := ledcolor.ParseHex(c.To); err != nil {
		errs = append(errs, fmt.Errorf("to: %w", err))
	}
	return errors.Join(errs...)
}

// Endpoints returns the parsed from and to colors.
func (c *Config) Endpoints() (from, to ledcolor.RGBColor, err error) {
	if from, err = ledcolor.ParseHex(c.From); err != nil {
		return from, to, err
	}
	to, err = ledcolor.ParseHex(c.To)
	return from, to, err
}

// HueBlend returns the hue strategy named by Hue, or shortest when the name
// is unknown.
func (c *Config) HueBlend() ledcolor.HueBlend {
	if blend, ok := hueBlends[strings.ToLower(c.Hue)]; ok {
		return blend
	}
	return ledcolor.HueBlendShortest
}

// RGBSettings returns the RGB channel ratings.
func (c *Config) RGBSettings() ledcolor.RGBCurrentSettings {
	return ledcolor.NewRGBCurrentSettings(c.Current.Red, c.Current.Green, c.Current.Blue)
}

// RGBWSettings returns the RGBW channel ratings.
func (c *Config) RGBWSettings() ledcolor.RGBWCurrentSettings {
	return ledcolor.NewRGBWCurrentSettings(c.Current.Red, c.Current.Green, c.Current.Blue, c.Current.White)
}
