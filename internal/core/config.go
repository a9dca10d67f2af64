package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The platform layer uses it to size the screen and pace ticks.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState summarizes the game for the platform layer.
type GameState struct {
	Score     int  // Current session score
	HighScore int  // Best score across sessions
	GameOver  bool // Whether the last session has ended
	Paused    bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
