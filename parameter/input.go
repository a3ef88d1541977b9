package parameter

import "time"

// Key Hold Inference
// Terminals report presses and auto-repeats but never releases; a key counts
// as held until no repeat arrives within the window
const (
	// HoldInitialWindow covers the delay before the terminal starts repeating
	HoldInitialWindow = 550 * time.Millisecond

	// HoldRepeatWindow applies once repeats are flowing
	HoldRepeatWindow = 150 * time.Millisecond
)

// HoldTapSeconds is the attack duration reported for a single press with no repeats
const HoldTapSeconds = 0.05
