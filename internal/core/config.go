package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW      int   // Screen width in characters
	ScreenH      int   // Screen height in characters
	TickRate     int   // Simulation ticks per second (default 60)
	Seed         int64 // RNG seed for deterministic gameplay
	ShowHitboxes bool  // Draw hitboxes and the safe circle outline
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

// GameState is the platform-facing summary of a game session.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase     string // Current phase name
	Lives     int    // Lives left in the session
	Remaining int64  // Countdown in milliseconds, never negative
	Paused    bool   // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Transitions lists the phase changes applied during this tick, oldest first.
	Transitions []PhaseChange
}

// PhaseChange describes one applied state-machine transition.
type PhaseChange struct {
	From, To  string
	Lives     int
	Remaining int64 // Countdown shown when the change happened, in milliseconds
	At        int64 // Tick timestamp in milliseconds
}
