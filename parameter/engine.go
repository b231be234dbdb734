package parameter

import "time"

// Simulation Loop Timing
const (
	// FrameUpdateInterval is the HUD redraw interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// GameUpdateInterval is the fixed combat tick
	GameUpdateInterval = 16 * time.Millisecond

	// MaxTickDelta caps a single tick after a stall so timers cannot skip whole states
	MaxTickDelta = 100 * time.Millisecond
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023
)

// Persistence
const (
	// DefaultDatabasePath is the SQLite file used when no override is configured
	DefaultDatabasePath = "nazarene.db"

	// SaveSlotCount is the number of user-visible save slots
	SaveSlotCount = 3
)

// Logging
const (
	// DefaultLogPath is the zap output file when debug logging is enabled
	DefaultLogPath = "logs/nazarene.log"
)
