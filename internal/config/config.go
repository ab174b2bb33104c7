// Package config loads floor-plan engine settings from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/elektrokombinacija/floorplan/internal/core"
	"github.com/elektrokombinacija/floorplan/internal/grid"
	"github.com/elektrokombinacija/floorplan/internal/interact"
)

// Profile names.
const (
	ProfileDesktop = "desktop"
	ProfileTouch   = "touch"
)

// Config holds all engine configuration
type Config struct {
	Profile string        `yaml:"profile"`
	Grid    GridConfig    `yaml:"grid"`
	Zoom    ZoomConfig    `yaml:"zoom"`
	Palette PaletteConfig `yaml:"palette"`
	Log     LogConfig     `yaml:"log"`
	Window  WindowConfig  `yaml:"window"`
}

// GridConfig holds grid and snapping settings
type GridConfig struct {
	Resolution     float64 `yaml:"resolution"`
	SnapRange      float64 `yaml:"snap_range"`
	AngleStep      float64 `yaml:"angle_step"`
	AngleThreshold float64 `yaml:"angle_threshold"`
	MinDimension   float64 `yaml:"min_dimension"`
	ShowOnStart    *bool   `yaml:"show_on_start"`
}

// ZoomConfig holds zoom controller settings
type ZoomConfig struct {
	MaxSteps      int     `yaml:"max_steps"`
	StepFactor    float64 `yaml:"step_factor"`
	WheelDeadZone float64 `yaml:"wheel_dead_zone"`
}

// PaletteConfig holds live-mode table colours
type PaletteConfig struct {
	Free      string `yaml:"free"`
	Pending   string `yaml:"pending"`
	Confirmed string `yaml:"confirmed"`
	Selected  string `yaml:"selected"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// WindowConfig holds the initial window size of the visualizer
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Default returns the desktop profile.
func Default() *Config {
	return ForProfile(ProfileDesktop)
}

// ForProfile returns defaults for a named profile. Touch devices get a coarser grid.
func ForProfile(name string) *Config {
	cfg := &Config{Profile: name}
	if name == ProfileTouch {
		cfg.Grid.Resolution = 50
	}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration and fills defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.Profile == "" {
		cfg.Profile = ProfileDesktop
	}
	if cfg.Profile == ProfileTouch && cfg.Grid.Resolution == 0 {
		cfg.Grid.Resolution = 50
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Grid.Resolution == 0 {
		c.Grid.Resolution = grid.DefaultResolution
	}
	if c.Grid.SnapRange == 0 {
		c.Grid.SnapRange = grid.DefaultSnapRange
	}
	if c.Grid.AngleStep == 0 {
		c.Grid.AngleStep = grid.DefaultAngleStep
	}
	if c.Grid.AngleThreshold == 0 {
		c.Grid.AngleThreshold = grid.DefaultAngleThreshold
	}
	if c.Grid.MinDimension == 0 {
		c.Grid.MinDimension = c.Grid.Resolution
	}
	if c.Grid.ShowOnStart == nil {
		show := true
		c.Grid.ShowOnStart = &show
	}
	if c.Zoom.MaxSteps == 0 {
		c.Zoom.MaxSteps = interact.DefaultZoomConfig.MaxSteps
	}
	if c.Zoom.StepFactor == 0 {
		c.Zoom.StepFactor = interact.DefaultZoomConfig.StepFactor
	}
	if c.Zoom.WheelDeadZone == 0 {
		c.Zoom.WheelDeadZone = interact.DefaultZoomConfig.WheelDeadZone
	}
	if c.Palette.Free == "" {
		c.Palette.Free = core.DefaultPalette.Free
	}
	if c.Palette.Pending == "" {
		c.Palette.Pending = core.DefaultPalette.Pending
	}
	if c.Palette.Confirmed == "" {
		c.Palette.Confirmed = core.DefaultPalette.Confirmed
	}
	if c.Palette.Selected == "" {
		c.Palette.Selected = "#ffc850"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
	if c.Window.Width == 0 {
		c.Window.Width = 1400
	}
	if c.Window.Height == 0 {
		c.Window.Height = 900
	}
}

// Snapper builds the snapper described by the grid section.
func (c *Config) Snapper() *grid.Snapper {
	return &grid.Snapper{
		Resolution:     c.Grid.Resolution,
		SnapRange:      c.Grid.SnapRange,
		AngleStep:      c.Grid.AngleStep,
		AngleThreshold: c.Grid.AngleThreshold,
		MinDimension:   c.Grid.MinDimension,
	}
}

// ZoomSettings converts the zoom section.
func (c *Config) ZoomSettings() interact.ZoomConfig {
	return interact.ZoomConfig{
		MaxSteps:      c.Zoom.MaxSteps,
		StepFactor:    c.Zoom.StepFactor,
		WheelDeadZone: c.Zoom.WheelDeadZone,
	}
}

// TablePalette converts the palette section.
func (c *Config) TablePalette() core.Palette {
	return core.Palette{Free: c.Palette.Free, Pending: c.Palette.Pending, Confirmed: c.Palette.Confirmed}
}
