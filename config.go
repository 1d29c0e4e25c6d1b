package neongrid

import (
	"fmt"
	"os"

	"github.com/edwinsyarief/neongrid/surface"
	"github.com/edwinsyarief/neongrid/tracker"
	"github.com/edwinsyarief/neongrid/utils"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Runtime configuration, usually loaded from a YAML file with
// [LoadConfig](). Zero fields take the values of [DefaultConfig]().
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Grid    GridConfig    `yaml:"grid"`
	Pointer PointerConfig `yaml:"pointer"`
	Render  RenderConfig  `yaml:"render"`
	Camera  CameraConfig  `yaml:"camera"`
	Palette PaletteConfig `yaml:"palette,omitempty"`
	Reveal  RevealConfig  `yaml:"reveal"`
	Hero    HeroConfig    `yaml:"hero"`
	Contact ContactConfig `yaml:"contact,omitempty"`
}

type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen,omitempty"`
}

type GridConfig struct {
	SegmentsX int     `yaml:"segmentsX"`
	SegmentsZ int     `yaml:"segmentsZ"`
	Width     float64 `yaml:"width"`
	Depth     float64 `yaml:"depth"`
}

type PointerConfig struct {
	Smoothing  float64 `yaml:"smoothing"`
	WorldScale float64 `yaml:"worldScale"`
}

type RenderConfig struct {
	MaxDeviceScale float64 `yaml:"maxDeviceScale"`
}

// Angles are in degrees.
type CameraConfig struct {
	Height        float64 `yaml:"height"`
	Distance      float64 `yaml:"distance"`
	Pitch         float64 `yaml:"pitch"`
	FOV           float64 `yaml:"fov"`
	ParallaxRange float64 `yaml:"parallaxRange"`
	ParallaxStep  float64 `yaml:"parallaxStep"`
}

// Hex colors ("#rrggbb"). Empty entries use [surface.DefaultPalette].
type PaletteConfig struct {
	Base    string `yaml:"base,omitempty"`
	Accent  string `yaml:"accent,omitempty"`
	Neon    string `yaml:"neon,omitempty"`
	Horizon string `yaml:"horizon,omitempty"`
}

type RevealConfig struct {
	FadeInTicks TicksDuration `yaml:"fadeInTicks"`
}

// Text drawn over the surface. The tagline is typed out one character
// at a time once the reveal has started.
type HeroConfig struct {
	Title   string `yaml:"title"`
	Tagline string `yaml:"tagline"`
}

type ContactConfig struct {
	Recipient string `yaml:"recipient,omitempty"`
}

func DefaultConfig() Config {
	var cfg Config
	cfg.normalize()
	return cfg
}

func (self *Config) normalize() {
	if self.Window.Title == "" {
		self.Window.Title = "neongrid"
	}
	if self.Window.Width == 0 {
		self.Window.Width = 1280
	}
	if self.Window.Height == 0 {
		self.Window.Height = 720
	}
	if self.Grid.SegmentsX == 0 {
		self.Grid.SegmentsX = 160
	}
	if self.Grid.SegmentsZ == 0 {
		self.Grid.SegmentsZ = 120
	}
	if self.Grid.Width == 0 {
		self.Grid.Width = 80
	}
	if self.Grid.Depth == 0 {
		self.Grid.Depth = 40
	}
	if self.Pointer.Smoothing == 0 {
		self.Pointer.Smoothing = tracker.DefaultFactor
	}
	if self.Pointer.WorldScale == 0 {
		self.Pointer.WorldScale = surface.PointerWorldScale
	}
	if self.Render.MaxDeviceScale == 0 {
		self.Render.MaxDeviceScale = 2
	}
	if self.Camera.Height == 0 {
		self.Camera.Height = 3
	}
	if self.Camera.Distance == 0 {
		self.Camera.Distance = 22
	}
	if self.Camera.Pitch == 0 {
		self.Camera.Pitch = 7
	}
	if self.Camera.FOV == 0 {
		self.Camera.FOV = 60
	}
	if self.Camera.ParallaxRange == 0 {
		self.Camera.ParallaxRange = 1.5
	}
	if self.Camera.ParallaxStep == 0 {
		self.Camera.ParallaxStep = 0.1
	}
	if self.Reveal.FadeInTicks == 0 {
		self.Reveal.FadeInTicks = 90
	}
	if self.Hero.Title == "" {
		self.Hero.Title = "neongrid"
	}
	if self.Hero.Tagline == "" {
		self.Hero.Tagline = "Creating Interactive UI..."
	}
}

// Checks ranges that normalize can't fix on its own.
func (self *Config) validate() error {
	if self.Window.Width < 1 || self.Window.Height < 1 {
		return fmt.Errorf("window size must be at least 1x1, got %dx%d", self.Window.Width, self.Window.Height)
	}
	if self.Pointer.Smoothing <= 0 || self.Pointer.Smoothing > 1 {
		return fmt.Errorf("pointer smoothing must be in (0, 1], got %g", self.Pointer.Smoothing)
	}
	if self.Render.MaxDeviceScale < 1 {
		return fmt.Errorf("render maxDeviceScale must be >= 1, got %g", self.Render.MaxDeviceScale)
	}
	if self.Camera.FOV <= 0 || self.Camera.FOV >= 180 {
		return fmt.Errorf("camera fov must be in (0, 180), got %g", self.Camera.FOV)
	}
	if _, err := self.SurfacePalette(); err != nil {
		return err
	}
	return nil
}

// Resolves the configured palette, falling back to the default
// color for every empty entry.
func (self *Config) SurfacePalette() (surface.Palette, error) {
	palette := surface.DefaultPalette
	entries := []struct {
		name string
		hex  string
		dst  *surface.RGB
	}{
		{"base", self.Palette.Base, &palette.Base},
		{"accent", self.Palette.Accent, &palette.Accent},
		{"neon", self.Palette.Neon, &palette.Neon},
		{"horizon", self.Palette.Horizon, &palette.Horizon},
	}
	for _, entry := range entries {
		if entry.hex == "" {
			continue
		}
		clr, err := colorful.Hex(entry.hex)
		if err != nil {
			return surface.Palette{}, fmt.Errorf("palette %s %q: %w", entry.name, entry.hex, err)
		}
		*entry.dst = utils.FromColor(clr)
	}
	return palette, nil
}

func (self *Config) pointerTracker() tracker.Tracker {
	if self.Pointer.Smoothing == tracker.DefaultFactor {
		return tracker.Smooth
	}
	return tracker.Exponential{Factor: self.Pointer.Smoothing}
}

// Parses a YAML configuration. Missing fields take default values.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.normalize()
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// Writes the configuration as YAML, creating or truncating the file.
func WriteConfig(path string, cfg Config) error {
	cfg.normalize()
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(&cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("close config encoder: %w", err)
	}
	return nil
}
