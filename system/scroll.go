package system

import "github.com/lixenwraith/hexfire/parameter"

// ScrollMaxSpeed covers ScrollDistance with half-weighted ease segments
const ScrollMaxSpeed = parameter.ScrollDistance / (parameter.ScrollDuration - (parameter.ScrollEaseIn+parameter.ScrollEaseOut)*0.5)

// Scroller paces the background: ease-in, constant, ease-out, then stop
type Scroller struct {
	time   float64
	offset float64
}

func NewScroller() *Scroller {
	return &Scroller{offset: parameter.ScrollStartX}
}

// ScrollSpeed returns the background speed at stage time t
func ScrollSpeed(t float64) float64 {
	switch {
	case t < 0:
		return 0
	case t < parameter.ScrollEaseIn:
		return ScrollMaxSpeed * (t / parameter.ScrollEaseIn)
	case t < parameter.ScrollEaseOutEnd:
		return ScrollMaxSpeed
	case t < parameter.ScrollDuration:
		return ScrollMaxSpeed * ((parameter.ScrollDuration - t) / parameter.ScrollEaseOut)
	}
	return 0
}

// Update advances the scroll clock and offset; the offset never passes -ScrollDistance
func (s *Scroller) Update(dt float64) {
	s.time += dt
	if s.offset > -parameter.ScrollDistance {
		s.offset = max(s.offset-ScrollSpeed(s.time)*dt, -parameter.ScrollDistance)
	}
}

func (s *Scroller) Offset() float64 { return s.offset }
func (s *Scroller) Time() float64   { return s.time }
