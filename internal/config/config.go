package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"gridterrain/internal/input"
	"gridterrain/internal/noise"
	"gridterrain/internal/terrain"
)

// ErrInvalid wraps every validation problem.
var ErrInvalid = errors.New("invalid config")

// maxOctaves matches the engine's fractal noise limit.
const maxOctaves = 9

// Config is the full simulation configuration as read from YAML.
type Config struct {
	Terrain TerrainConfig `yaml:"terrain"`
	Noise   NoiseConfig   `yaml:"noise"`
	Loop    LoopConfig    `yaml:"loop"`
	Input   InputConfig   `yaml:"input"`
}

// TerrainConfig sets up chunk streaming and custom block policy.
type TerrainConfig struct {
	// Seed 0 picks a random seed at startup.
	Seed               int64   `yaml:"seed"`
	ChunkRadius        int     `yaml:"chunk_radius"`
	RegenMargin        int     `yaml:"regen_margin"`
	CellSize           float32 `yaml:"cell_size"`
	PruneCustomBlocks  bool    `yaml:"prune_custom_blocks"`
	DedupeCustomBlocks bool    `yaml:"dedupe_custom_blocks"`
}

// NoiseConfig selects the height noise backend and its fractal parameters.
// Value is only read by the constant backend.
type NoiseConfig struct {
	Backend     string  `yaml:"backend"`
	Octaves     int     `yaml:"octaves"`
	Period      float64 `yaml:"period"`
	Persistence float64 `yaml:"persistence"`
	Lacunarity  float64 `yaml:"lacunarity"`
	Value       float64 `yaml:"value"`
}

// LoopConfig paces the update loop.
type LoopConfig struct {
	TimerInterval time.Duration `yaml:"timer_interval"`
	PhysicsRate   float64       `yaml:"physics_rate"`
	// FrameRate 0 runs frames unpaced.
	FrameRate int `yaml:"frame_rate"`
}

// InputConfig rebinds keys. Each entry replaces every default action of
// its key with the named action.
type InputConfig struct {
	Bindings map[string]string `yaml:"bindings"`
}

// Apply rebinds m according to the configured bindings.
func (c InputConfig) Apply(m *input.Manager) error {
	for key, name := range c.Bindings {
		action, err := input.ParseAction(name)
		if err != nil {
			return fmt.Errorf("%w: input.bindings.%s: %w", ErrInvalid, key, err)
		}
		m.UnbindKey(key)
		m.BindKey(key, action)
	}
	return nil
}

// Default returns the built-in configuration. Seed 0 means a random seed.
func Default() Config {
	p := noise.DefaultParams()
	return Config{
		Terrain: TerrainConfig{
			ChunkRadius: terrain.ChunkRadius,
			RegenMargin: terrain.RegenMargin,
			CellSize:    1,
		},
		Noise: NoiseConfig{
			Backend:     noise.BackendSimplex,
			Octaves:     p.Octaves,
			Period:      p.Period,
			Persistence: p.Persistence,
			Lacunarity:  p.Lacunarity,
		},
		Loop: LoopConfig{
			TimerInterval: time.Second,
			PhysicsRate:   60,
			FrameRate:     60,
		},
	}
}

// Load reads a YAML file over Default, checks the raw document against the
// embedded schema and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := checkSchema(raw); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every problem at once, each wrapping ErrInvalid.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	t := c.Terrain
	if t.Seed < 0 || t.Seed >= terrain.MaxSeed {
		bad("terrain.seed %d outside [0, %d)", t.Seed, terrain.MaxSeed)
	}
	if t.ChunkRadius <= 0 {
		bad("terrain.chunk_radius must be positive, got %d", t.ChunkRadius)
	}
	if t.RegenMargin < 0 || t.RegenMargin >= t.ChunkRadius {
		bad("terrain.regen_margin %d must be in [0, chunk_radius)", t.RegenMargin)
	}
	if t.CellSize <= 0 {
		bad("terrain.cell_size must be positive, got %v", t.CellSize)
	}

	n := c.Noise
	switch n.Backend {
	case noise.BackendSimplex, noise.BackendPerlin, noise.BackendValue, noise.BackendConstant:
	default:
		bad("noise.backend %q unknown", n.Backend)
	}
	if n.Octaves < 1 || n.Octaves > maxOctaves {
		bad("noise.octaves %d outside [1, %d]", n.Octaves, maxOctaves)
	}
	if n.Period <= 0 {
		bad("noise.period must be positive, got %v", n.Period)
	}
	if n.Persistence < 0 || n.Persistence > 1 {
		bad("noise.persistence %v outside [0, 1]", n.Persistence)
	}
	if n.Lacunarity <= 0 {
		bad("noise.lacunarity must be positive, got %v", n.Lacunarity)
	}

	l := c.Loop
	if l.TimerInterval <= 0 {
		bad("loop.timer_interval must be positive, got %v", l.TimerInterval)
	}
	if l.PhysicsRate <= 0 {
		bad("loop.physics_rate must be positive, got %v", l.PhysicsRate)
	}
	if l.FrameRate < 0 {
		bad("loop.frame_rate must not be negative, got %d", l.FrameRate)
	}

	for key, name := range c.Input.Bindings {
		if _, err := input.ParseAction(name); err != nil {
			bad("input.bindings.%s: %v", key, err)
		}
	}

	return errors.Join(errs...)
}

// Merge copies values from fromFile into cfg except those whose flag was
// set explicitly on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	flagged := cfg.Terrain
	backend := cfg.Noise.Backend
	*cfg = *fromFile
	if explicitFlags["noise"] {
		cfg.Noise.Backend = backend
	}
	if explicitFlags["seed"] {
		cfg.Terrain.Seed = flagged.Seed
	}
	if explicitFlags["radius"] {
		cfg.Terrain.ChunkRadius = flagged.ChunkRadius
	}
	if explicitFlags["margin"] {
		cfg.Terrain.RegenMargin = flagged.RegenMargin
	}
	if explicitFlags["cell-size"] {
		cfg.Terrain.CellSize = flagged.CellSize
	}
}
