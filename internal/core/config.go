package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW int // Screen width in characters
	ScreenH int // Screen height in characters
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// GameState represents the current state of a game.
type GameState struct {
	Score  int  // Bricks destroyed so far
	Bricks int  // Live bricks remaining
	Paused bool // Whether the simulation is paused
}

// EventType classifies side-effect requests produced by a tick.
type EventType int

const (
	EventSound   EventType = iota // Play the one-shot collision sound
	EventDespawn                  // An entity was removed from the world
)

// String returns the event type name.
func (t EventType) String() string {
	switch t {
	case EventSound:
		return "sound"
	case EventDespawn:
		return "despawn"
	default:
		return "unknown"
	}
}

// Event is a side-effect request emitted during a tick.
type Event struct {
	Type   EventType
	Entity uint64 // Packed entity handle, zero for sounds
	Detail string // Collision side or entity kind, for logging
}

// StepResult is returned by Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Sounds counts the sound requests in the result.
func (r StepResult) Sounds() int {
	n := 0
	for _, e := range r.Events {
		if e.Type == EventSound {
			n++
		}
	}
	return n
}
