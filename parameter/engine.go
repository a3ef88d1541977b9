package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the simulation + render interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxDeltaSeconds caps a single simulation step after a stall
	MaxDeltaSeconds = 0.1

	// EventPollInterval bounds how long the loop waits on an empty input channel
	EventPollInterval = 4 * time.Millisecond

	// InputChannelSize is the buffered capacity between the terminal poller and the loop
	InputChannelSize = 256
)

// Logging
const (
	// LogDir is the default directory for the debug log
	LogDir = "logs"

	// LogFileName is the active log file inside LogDir
	LogFileName = "hexfire.log"

	// MaxLogSize triggers rotation of the previous log on startup
	MaxLogSize = 10 * 1024 * 1024
)
