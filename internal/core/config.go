package core

// RuntimeConfig contains configuration passed to the simulation at
// initialization. The simulation runs in continuous world units (pixels)
// while the terminal renders cells; the platform derives the world size
// from the terminal size and a fixed cell scale.
type RuntimeConfig struct {
	ScreenW  int     // Screen width in characters
	ScreenH  int     // Screen height in characters
	WorldW   float64 // World width in pixels
	WorldH   float64 // World height in pixels
	TickRate int     // Simulation ticks per second (default 60)
	Seed     int64   // RNG seed for deterministic gameplay
}

// Cell scale used to derive world dimensions from terminal cells.
// Terminal cells are roughly twice as tall as wide, so the vertical scale
// doubles the horizontal one to keep the world close to square pixels.
const (
	CellPxX = 8.0
	CellPxY = 16.0
)

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	cfg := RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
	cfg.WorldW = float64(cfg.ScreenW) * CellPxX
	cfg.WorldH = float64(cfg.ScreenH) * CellPxY
	return cfg
}

// WithDerivedWorld fills WorldW/WorldH from the screen dimensions when they
// are unset, and returns the updated config.
func (c RuntimeConfig) WithDerivedWorld() RuntimeConfig {
	if c.WorldW <= 0 {
		c.WorldW = float64(c.ScreenW) * CellPxX
	}
	if c.WorldH <= 0 {
		c.WorldH = float64(c.ScreenH) * CellPxY
	}
	return c
}

// RunState summarizes the simulation status for the platform layer.
type RunState struct {
	Score    int  // Current score
	Coins    int  // Coins collected this run
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the run is paused
}
