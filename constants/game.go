package constants

import "time"

// Maze Constants
const (
	// DefaultMazeSize is the cube edge length when no config overrides it
	DefaultMazeSize = 9
)

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// EventQueueSize bounds terminal events buffered between poller and game loop
	EventQueueSize = 100
)

// Logging Constants
const (
	LogDir      = "logs"
	LogFileName = "tesseract.log"

	// MaxLogSize triggers rotation of the previous log at startup (10 MiB)
	MaxLogSize = 10 * 1024 * 1024
)
