package core

// View selects what the presentation sink draws this frame
type View uint8

const (
	ViewTitle View = iota
	ViewStage
	ViewResult
)

// Frame is everything the presentation sink needs for one redraw
type Frame struct {
	View    View
	HUD     HUD
	Sprites []Sprite
	Outcome Outcome // ViewResult
	Score   int     // ViewResult and ViewTitle (best score)
	Time    float64 // seconds since start, drives blinking
}
