package parameter

// Layout
const (
	// TopMargin is the HUD row above the field
	TopMargin = 1

	// BottomMargin is the status row below the field (boss bar, hints)
	BottomMargin = 1

	// BarWidth is the cell width of the hp and magic bars
	BarWidth = 10

	// BossBarWidth is the cell width of the boss bar
	BossBarWidth = 30

	// StarCount is the number of parallax background stars
	StarCount = 48

	// StarParallax slows stars relative to the scroll offset
	StarParallax = 0.25
)

// Text
const (
	TitleText     = "H E X F I R E"
	TitleHint     = "enter: start   esc: quit"
	ResultHint    = "enter: title"
	VictoryBanner = "Victory!!"
	GameOverText  = "GAME OVER"
	PausedText    = "PAUSED"
)
