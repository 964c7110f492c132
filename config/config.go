package config

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned (wrapped) when a configuration fails validation.
var ErrInvalidConfig = errors.New("invalid engine configuration")

// maxConfigSize bounds how much of a config file is read (1MB).
const maxConfigSize = 1024 * 1024

// Config holds application-level engine configuration. It can be constructed
// programmatically or loaded from a YAML file.
type Config struct {
	// Name is the application name shown in the window title.
	Name string `yaml:"name"`

	// Version is the application version as a semantic version string
	// with a leading "v" (e.g. "v0.1.0").
	Version string `yaml:"version"`

	// WindowWidth and WindowHeight are the initial window dimensions in pixels.
	WindowWidth  int `yaml:"window_width"`
	WindowHeight int `yaml:"window_height"`

	// TickRate is the fixed game logic update rate in ticks per second.
	// Zero selects the engine default (60Hz).
	TickRate float64 `yaml:"tick_rate"`

	// RenderFrameLimit caps the render loop in frames per second.
	// Zero leaves the render loop uncapped.
	RenderFrameLimit float64 `yaml:"render_frame_limit"`

	// MSAASampleCount selects the multisample count for the render surface.
	// Valid values are 1 (off) and 4. Zero selects 4.
	MSAASampleCount int `yaml:"msaa_sample_count"`

	// VSync selects the Fifo present mode when true, Immediate when false.
	VSync bool `yaml:"vsync"`

	// Profiling enables periodic frame and memory statistics in the log.
	Profiling bool `yaml:"profiling"`
}

// Default returns a Config with sensible defaults for a windowed application.
//
// Returns:
//   - Config: the default configuration
func Default() Config {
	return Config{
		Name:            "Titan",
		Version:         "v0.1.0",
		WindowWidth:     800,
		WindowHeight:    600,
		TickRate:        60,
		MSAASampleCount: 4,
		VSync:           true,
	}
}

// Load reads and parses a YAML configuration file, fills unset fields from
// Default, and validates the result.
//
// Parameters:
//   - path: the path to the YAML configuration file
//
// Returns:
//   - Config: the parsed configuration
//   - error: an error if the file cannot be read, parsed, or validated
func Load(path string) (Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if info.Size() > maxConfigSize {
		return Config{}, fmt.Errorf("config: %w: file %q exceeds %d bytes", ErrInvalidConfig, path, maxConfigSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %q: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for out-of-range values.
// All errors wrap ErrInvalidConfig.
//
// Returns:
//   - error: an error describing the first invalid field, or nil
func (c Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("config: %w: name must not be empty", ErrInvalidConfig)
	}
	if !semver.IsValid(c.Version) {
		return fmt.Errorf("config: %w: version %q is not a valid semantic version", ErrInvalidConfig, c.Version)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("config: %w: window size %dx%d must be positive", ErrInvalidConfig, c.WindowWidth, c.WindowHeight)
	}
	if c.TickRate < 0 {
		return fmt.Errorf("config: %w: tick rate %.2f must not be negative", ErrInvalidConfig, c.TickRate)
	}
	if c.RenderFrameLimit < 0 {
		return fmt.Errorf("config: %w: render frame limit %.2f must not be negative", ErrInvalidConfig, c.RenderFrameLimit)
	}
	switch c.MSAASampleCount {
	case 0, 1, 4:
	default:
		return fmt.Errorf("config: %w: msaa sample count %d must be 1 or 4", ErrInvalidConfig, c.MSAASampleCount)
	}
	return nil
}

// Title formats the window title from the application name and version.
//
// Returns:
//   - string: the formatted window title
func (c Config) Title() string {
	return fmt.Sprintf("%s %s", c.Name, c.Version)
}
