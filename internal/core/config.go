package core

import "time"

// Board and timing defaults.
const (
	DefaultRows         = 20
	DefaultCols         = 10
	DefaultDropInterval = 500 * time.Millisecond
)

// RuntimeConfig is passed to a game when it starts.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed; 0 means the platform picks one from the clock

	Rows         int           // Board height in cells
	Cols         int           // Board width in cells
	DropInterval time.Duration // Time between gravity ticks

	// Palette holds one color per piece kind, in catalog order.
	// Nil means the game's built-in palette.
	Palette []Color
}

// DefaultConfig returns a RuntimeConfig for a standard 20x10 game.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		Rows:         DefaultRows,
		Cols:         DefaultCols,
		DropInterval: DefaultDropInterval,
	}
}

// GameState is reported by a game to the platform after every update.
type GameState struct {
	Running  bool // A piece is in play
	GameOver bool // The game has reached its terminal state
	Paused   bool
	Pieces   int // Pieces spawned this game
}

// StepResult is returned after each tick or handled action.
type StepResult struct {
	State   GameState
	Locked  bool // The active piece merged into the board
	Cleared int  // Rows removed by the lock
}
