package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and tick timing.
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

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Dragging     bool // A disk is following the pointer
	SettingsOpen bool // The settings overlay is shown
	TooSmall     bool // The terminal cannot fit the board
	Exit         bool // The player asked to leave the game
	Restarts     int  // Restarts since the game was created
}
