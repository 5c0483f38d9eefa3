package config

import (
	_ "embed"
)

//go:embed defaults/grid.yaml
var defaultYAML []byte

// Default returns the hard-coded configuration, used when even the embedded
// YAML cannot be parsed.
func Default() Config {
	return Config{
		Rule:            "life",
		Density:         0.25,
		Seed:            0,
		GenerationTicks: 50,
		Wrap:            true,
		Colors: ColorConfig{
			Alive:  "bright_green",
			Dead:   "default",
			Edge:   "gray",
			Status: "status",
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.grid/grid.log",
		},
		DBPath: "~/.grid/sessions.db",
		Source: "builtin",
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
