package treefx

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalidConfig is wrapped by every configuration validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds every scene construction parameter.
type Config struct {
	Seed   uint64       `yaml:"seed"`
	Screen ScreenConfig `yaml:"screen"`
	Tree   TreeConfig   `yaml:"tree"`
	Grass  GrassConfig  `yaml:"grass"`
	Timing TimingConfig `yaml:"timing"`
}

// ScreenConfig holds the host window size in pixels.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TreeConfig controls TreeGenerator.
type TreeConfig struct {
	Generations  int     `yaml:"generations"`   // breadth-first layers, root included
	RootLength   float64 `yaml:"root_length"`   // trunk length
	RootOffset   float64 `yaml:"root_offset"`   // trunk base height above the ground line
	RootAngle    float64 `yaml:"root_angle"`    // trunk heading in degrees (90 = up)
	FlowerChance float64 `yaml:"flower_chance"` // per last-generation branch
	// SwayPerGeneration is the wind sway amplitude in degrees, multiplied by
	// the generation index.
	SwayPerGeneration float64 `yaml:"sway_per_generation"`
}

// GrassConfig controls GrassGenerator.
type GrassConfig struct {
	Count      int     `yaml:"count"`
	Width      float64 `yaml:"width"`       // half-width of the ground strip
	Band       float64 `yaml:"band"`        // vertical jitter of blade roots
	Base       float64 `yaml:"base"`        // vertical centre of blade roots
	Height     float64 `yaml:"height"`      // nominal blade height
	BladeWidth float64 `yaml:"blade_width"` // width of a blade at its root
}

// TimingConfig holds schedule durations in seconds.
type TimingConfig struct {
	BranchGrowing     float64 `yaml:"branch_growing"`
	GrassGreen        float64 `yaml:"grass_green"`
	GrassYellow       float64 `yaml:"grass_yellow"`
	GrassYellowJitter float64 `yaml:"grass_yellow_jitter"`
	LeafYellow        float64 `yaml:"leaf_yellow"`
	LeafAppearing     float64 `yaml:"leaf_appearing"`
	FlowerAppearing   float64 `yaml:"flower_appearing"`
	WindCycle         float64 `yaml:"wind_cycle"`
	GrassWindCycle    float64 `yaml:"grass_wind_cycle"`
	Fall              float64 `yaml:"fall"`
	FallHold          float64 `yaml:"fall_hold"`
	Fade              float64 `yaml:"fade"`
}

// Default returns the embedded default configuration.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultsYAML, &cfg); err != nil {
		panic(fmt.Sprintf("treefx: embedded defaults: %v", err))
	}
	return cfg
}

// Load reads a YAML file and overlays it on the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("treefx: read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse overlays YAML data on the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("treefx: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every section.
func (c Config) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return invalidf("screen size %dx%d must be positive", c.Screen.Width, c.Screen.Height)
	}
	if err := c.Tree.Validate(); err != nil {
		return err
	}
	if err := c.Grass.Validate(); err != nil {
		return err
	}
	return c.Timing.Validate()
}

// Validate rejects negative counts and non-positive lengths. Zero
// generations is a valid, empty tree.
func (c TreeConfig) Validate() error {
	switch {
	case c.Generations < 0:
		return invalidf("tree generations %d is negative", c.Generations)
	case c.RootLength <= 0:
		return invalidf("tree root_length %v must be positive", c.RootLength)
	case c.RootOffset < 0:
		return invalidf("tree root_offset %v is negative", c.RootOffset)
	case c.FlowerChance < 0 || c.FlowerChance > 1:
		return invalidf("tree flower_chance %v outside [0, 1]", c.FlowerChance)
	case c.SwayPerGeneration < 0:
		return invalidf("tree sway_per_generation %v is negative", c.SwayPerGeneration)
	}
	return nil
}

// Validate rejects a negative count and non-positive ground dimensions.
// Zero blades is a valid, empty field.
func (c GrassConfig) Validate() error {
	switch {
	case c.Count < 0:
		return invalidf("grass count %d is negative", c.Count)
	case c.Width <= 0:
		return invalidf("grass width %v must be positive", c.Width)
	case c.Band <= 0:
		return invalidf("grass band %v must be positive", c.Band)
	case c.Base < 0:
		return invalidf("grass base %v is negative", c.Base)
	case c.Height <= 0:
		return invalidf("grass height %v must be positive", c.Height)
	case c.BladeWidth <= 0:
		return invalidf("grass blade_width %v must be positive", c.BladeWidth)
	}
	return nil
}

// Validate rejects negative durations.
func (c TimingConfig) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"branch_growing", c.BranchGrowing},
		{"grass_green", c.GrassGreen},
		{"grass_yellow", c.GrassYellow},
		{"grass_yellow_jitter", c.GrassYellowJitter},
		{"leaf_yellow", c.LeafYellow},
		{"leaf_appearing", c.LeafAppearing},
		{"flower_appearing", c.FlowerAppearing},
		{"wind_cycle", c.WindCycle},
		{"grass_wind_cycle", c.GrassWindCycle},
		{"fall", c.Fall},
		{"fall_hold", c.FallHold},
		{"fade", c.Fade},
	}
	for _, f := range fields {
		if f.v < 0 {
			return invalidf("timing %s %v is negative", f.name, f.v)
		}
	}
	return nil
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("treefx: %s: %w", fmt.Sprintf(format, args...), ErrInvalidConfig)
}
