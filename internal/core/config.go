package core

import "time"

// Compiled-in simulation constants. None of these are configurable at runtime.
const (
	// TicksPerSecond is the fixed simulation rate.
	TicksPerSecond = 1000

	// TickDuration is the length of one tick (1ms at 1000 ticks/sec).
	TickDuration = time.Second / TicksPerSecond

	// MapWidth and MapHeight are the dimensions of the simulated grid.
	MapWidth  = 500
	MapHeight = 500

	// StatusLines is the number of terminal rows reserved for the status line.
	StatusLines = 1

	// PollTimeout is the ceiling for a single input poll.
	PollTimeout = 10 * time.Millisecond
)

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW         int     // Terminal width in characters
	ScreenH         int     // Terminal height in characters
	Seed            int64   // RNG seed for the initial map (0 = time based)
	Density         float64 // Fraction of cells alive after randomizing
	GenerationTicks int     // Ticks per map generation
	Wrap            bool    // Toroidal map edges
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:         80,
		ScreenH:         24,
		Seed:            0, // 0 means use current time in platform layer
		Density:         0.25,
		GenerationTicks: 50,
		Wrap:            true,
	}
}
