package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 20, i.e. 50ms per tick)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 20,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Event marks a notable moment inside a simulation step. The platform
// layers (sound, logging) react to events without inspecting game
// internals.
type Event uint8

const (
	EventNone Event = iota
	EventFire
	EventTankHit
	EventObstacleHit
	EventVictory
)

func (e Event) String() string {
	switch e {
	case EventFire:
		return "fire"
	case EventTankHit:
		return "tank-hit"
	case EventObstacleHit:
		return "obstacle-hit"
	case EventVictory:
		return "victory"
	default:
		return "none"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	GameOver bool     // Whether the game has ended
	Paused   bool     // Whether the game is paused
	Winner   PlayerID // PlayerNone until decided, and for aborted games
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
