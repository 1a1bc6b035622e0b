package core

import "time"

// RuntimeConfig carries per-session settings that are not part of the game
// rules: the terminal cell size and the seed.
type RuntimeConfig struct {
	ScreenW int   // Terminal width in cells
	ScreenH int   // Terminal height in cells
	FPS     int   // Frontend frame rate
	Seed    int64 // RNG seed; 0 means the platform picks one
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		FPS:     30,
	}
}

// Seeded returns c with a seed taken from now when none was given.
func (c RuntimeConfig) Seeded(now time.Time) RuntimeConfig {
	if c.Seed == 0 {
		c.Seed = now.UnixNano()
	}
	return c
}
