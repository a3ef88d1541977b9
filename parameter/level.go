package parameter

// Background Scroll
const (
	ScrollDistance   = 132.6
	ScrollDuration   = 60.0
	ScrollEaseIn     = 3.0
	ScrollEaseOut    = 5.0
	ScrollStartX     = -2.4
	ScrollTileWidth  = 9.0
	ScrollTileCount  = 16
	ScrollEaseOutEnd = ScrollDuration - ScrollEaseOut
)

// Stage Outcomes
const (
	// VictoryDelay is the "Victory!!" banner time before the outcome is emitted
	VictoryDelay = 5.0

	// GameOverDelay is the wait after the last life before the outcome is emitted
	GameOverDelay = 3.0

	// DefaultDifficulty is the factor applied to enemy hp and spawn chance
	DefaultDifficulty = 1.0
)

// HUD
const (
	ScoreTickFraction  = 0.1
	HealthWarnHP       = 30.0
	HealthCriticalHP   = 10.0
	HealthBlinkRateSec = 10.0 // sin(t*rate) > 0 shows the bar
)
