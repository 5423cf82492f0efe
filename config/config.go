// Package config provides configuration loading and access for the
// terrain generator.
package config

import (
	_ "embed"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all generator configuration parameters.
type Config struct {
	Generator GeneratorConfig `yaml:"generator"`
	Caves     CavesConfig     `yaml:"caves"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// GeneratorConfig holds the terrain density parameters.
type GeneratorConfig struct {
	SelectorOctaves int     `yaml:"selector_octaves"` // octaves of the low/high selector noise
	SelectorCoeff   float64 `yaml:"selector_coeff"`   // raw frequency coefficient of the selector
	TerrainOctaves  int     `yaml:"terrain_octaves"`  // octaves of the low/high terrain noise
	TerrainCoeff    float64 `yaml:"terrain_coeff"`
	HeightOctaves   int     `yaml:"height_octaves"` // octaves of the 2D height perturbation
	HeightCoeff     float64 `yaml:"height_coeff"`

	MaxElev        float64 `yaml:"max_elev"`        // elevation range the field is scaled to
	BaseHeight     float64 `yaml:"base_height"`     // density offset anchoring the ground surface
	HeightGradient float64 `yaml:"height_gradient"` // density lost per voxel of altitude
	SeaLevel       int     `yaml:"sea_level"`
	DirtDepth      float64 `yaml:"dirt_depth"` // shallow-depth threshold for the filler heuristic

	StrideX int `yaml:"stride_x"` // coarse lattice spacing per axis
	StrideY int `yaml:"stride_y"`
	StrideZ int `yaml:"stride_z"`

	SmoothRadius int `yaml:"smooth_radius"` // biome boundary smoothing radius, in columns
}

// CavesConfig holds cave and ravine tunables. The density core does not
// consume these; they are loaded here for the cave-carving stage that runs
// after terrain materialization.
type CavesConfig struct {
	Enabled      bool    `yaml:"enabled"`
	Frequency    float64 `yaml:"frequency"`
	Threshold    float64 `yaml:"threshold"`
	RavineRarity float64 `yaml:"ravine_rarity"`
	RavineDepth  float64 `yaml:"ravine_depth"`
}

// DerivedConfig holds values computed from the loaded configuration.
type DerivedConfig struct {
	SelectorFreq float64 // effective base frequency of the selector noise
	TerrainFreq  float64 // effective base frequency of the low/high noise
	HeightFreq   float64 // effective base frequency of the 2D perturbation
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults
// if path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects parameters the generator constructors would refuse, so
// a bad config fails at load time rather than deep inside pipeline
// construction.
func (c *Config) validate() error {
	g := &c.Generator
	if g.SelectorOctaves < 1 || g.TerrainOctaves < 1 || g.HeightOctaves < 1 {
		return fmt.Errorf("config: octave counts must be >= 1 (selector=%d terrain=%d height=%d)",
			g.SelectorOctaves, g.TerrainOctaves, g.HeightOctaves)
	}
	if g.StrideX < 1 || g.StrideY < 1 || g.StrideZ < 1 {
		return fmt.Errorf("config: strides must be >= 1 (got %d,%d,%d)", g.StrideX, g.StrideY, g.StrideZ)
	}
	if g.MaxElev <= 0 {
		return fmt.Errorf("config: max_elev must be positive, got %v", g.MaxElev)
	}
	if g.SmoothRadius < 0 {
		return fmt.Errorf("config: smooth_radius must be >= 0, got %d", g.SmoothRadius)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	g := &c.Generator
	elevScale := g.MaxElev / 64.0
	c.Derived.SelectorFreq = g.SelectorCoeff / math.Pow(2, float64(g.SelectorOctaves)) / elevScale
	c.Derived.TerrainFreq = g.TerrainCoeff / math.Pow(2, float64(g.TerrainOctaves)) / elevScale
	c.Derived.HeightFreq = g.HeightCoeff / math.Pow(2, float64(g.HeightOctaves)) / elevScale
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
