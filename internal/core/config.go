package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int     // Screen width in characters
	ScreenH  int     // Screen height in characters
	ViewW    float64 // Logical canvas width in world units
	ViewH    float64 // Logical canvas height in world units
	TickRate int     // Simulation ticks per second (default 60)
	Seed     int64   // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		ViewW:    1280,
		ViewH:    720,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickDuration returns the wall-clock length of one simulation tick.
func (c RuntimeConfig) TickDuration() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// TickMillis returns the tick length in milliseconds, the unit the level
// generator's speed ramp is calibrated in.
func (c RuntimeConfig) TickMillis() float64 {
	return float64(c.TickDuration()) / float64(time.Millisecond)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int     // Current score
	GameOver bool    // Whether the game has ended
	Paused   bool    // Whether the game is paused
	Speed    float64 // Current scroll speed in units per second
	Ticks    int     // Simulation ticks since the last reset
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	Spawned   int // Platform segments created this tick
	Destroyed int // Platform segments removed this tick
}
