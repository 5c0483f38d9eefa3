// Package config provides YAML-based configuration loading and presets
// for the grid simulation.
package config

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-grid/internal/core"
	"github.com/vovakirdan/tui-grid/internal/registry"
)

// Config contains all user-tunable settings.
// Map dimensions and the tick rate are compiled in and deliberately absent.
type Config struct {
	Rule            string      `yaml:"rule"`
	Density         float64     `yaml:"density"`
	Seed            int64       `yaml:"seed"`
	GenerationTicks int         `yaml:"generation_ticks"`
	Wrap            bool        `yaml:"wrap"`
	Colors          ColorConfig `yaml:"colors"`
	Log             LogConfig   `yaml:"log"`
	DBPath          string      `yaml:"db_path"`

	// Source records where the config was loaded from.
	Source string `yaml:"-"`
}

// ColorConfig names the colors used when drawing (see core.ParseColor).
type ColorConfig struct {
	Alive  string `yaml:"alive"`
	Dead   string `yaml:"dead"`
	Edge   string `yaml:"edge"`
	Status string `yaml:"status"`
}

// LogConfig controls the file logger.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Palette is the resolved form of ColorConfig.
type Palette struct {
	Alive  core.Color
	Dead   core.Color
	Edge   core.Color
	Status core.Color
}

// Preset represents a named starting density.
type Preset string

const (
	PresetEmpty  Preset = "empty"
	PresetSparse Preset = "sparse"
	PresetNormal Preset = "normal"
	PresetDense  Preset = "dense"
)

// DensityForPreset returns the initial density for a preset.
func DensityForPreset(p Preset) (float64, error) {
	switch p {
	case PresetEmpty:
		return 0.0, nil
	case PresetSparse:
		return 0.1, nil
	case PresetNormal:
		return 0.25, nil
	case PresetDense:
		return 0.5, nil
	default:
		return 0, fmt.Errorf("config: unknown preset %q (want empty, sparse, normal or dense)", p)
	}
}

// ApplyPreset modifies the config based on a preset. An empty preset is a no-op.
func ApplyPreset(cfg *Config, p Preset) error {
	if p == "" {
		return nil
	}
	d, err := DensityForPreset(p)
	if err != nil {
		return err
	}
	cfg.Density = d
	return nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, err := registry.Resolve(c.Rule); err != nil {
		return fmt.Errorf("config: rule: %w", err)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("config: density %.2f out of range [0, 1]", c.Density)
	}
	if c.GenerationTicks < 1 {
		return fmt.Errorf("config: generation_ticks must be at least 1, got %d", c.GenerationTicks)
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	if c.Log.Level != "" {
		if _, err := log.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("config: log.level: %w", err)
		}
	}
	return nil
}

// Palette resolves the configured color names.
func (c Config) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		val  string
		dst  *core.Color
	}{
		{"alive", c.Colors.Alive, &p.Alive},
		{"dead", c.Colors.Dead, &p.Dead},
		{"edge", c.Colors.Edge, &p.Edge},
		{"status", c.Colors.Status, &p.Status},
	}
	for _, f := range fields {
		col, err := core.ParseColor(f.val)
		if err != nil {
			return p, fmt.Errorf("config: colors.%s: %w", f.name, err)
		}
		*f.dst = col
	}
	return p, nil
}

// Runtime builds the game's runtime config for a terminal of the given size.
func (c Config) Runtime(screenW, screenH int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:         screenW,
		ScreenH:         screenH,
		Seed:            c.Seed,
		Density:         c.Density,
		GenerationTicks: c.GenerationTicks,
		Wrap:            c.Wrap,
	}
}
