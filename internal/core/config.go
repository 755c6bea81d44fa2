package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic world generation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State GameState
}

// RunStats describes a finished (or in-progress) mining run beyond the
// raw score. Used by the platform when persisting runs to storage.
type RunStats struct {
	Depth      int    // Deepest row reached, in tiles
	TilesMined int    // Total tiles broken
	Copper     int    // Lifetime mined counts per ore kind
	Iron       int
	Gold       int
	Diamond    int
	Pickaxe    string // Final pickaxe name
}

// RunStatsSource is implemented by games that can report run statistics.
// The platform checks for it when saving a finished run.
type RunStatsSource interface {
	RunStats() RunStats
}
