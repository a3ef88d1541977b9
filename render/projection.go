package render

import (
	"math"

	"github.com/lixenwraith/hexfire/parameter"
)

// Projection maps world units onto the field rectangle of the screen
// World y grows upward, screen rows grow downward
type Projection struct {
	X, Y          int // top-left cell of the field
	Width, Height int
}

// NewProjection fits the field between the HUD and status rows
func NewProjection(screenW, screenH int) Projection {
	return Projection{
		X:      0,
		Y:      parameter.TopMargin,
		Width:  max(screenW, 1),
		Height: max(screenH-parameter.TopMargin-parameter.BottomMargin, 1),
	}
}

// ScaleX returns cells per world unit horizontally
func (p Projection) ScaleX() float64 {
	return float64(p.Width) / (2 * parameter.FieldHalfWidth)
}

// ScaleY returns cells per world unit vertically
func (p Projection) ScaleY() float64 {
	return float64(p.Height) / (2 * parameter.FieldHalfHeight)
}

// Cell returns the fractional cell coordinates of a world point
func (p Projection) Cell(wx, wy float64) (float64, float64) {
	cx := float64(p.X) + (wx+parameter.FieldHalfWidth)*p.ScaleX()
	cy := float64(p.Y) + (parameter.FieldHalfHeight-wy)*p.ScaleY()
	return cx, cy
}

// Contains reports whether a cell lies in the field
func (p Projection) Contains(x, y int) bool {
	return x >= p.X && x < p.X+p.Width && y >= p.Y && y < p.Y+p.Height
}

// Ellipse calls fn for every field cell covered by a circle of world radius r
// centred on (wx, wy); a visible circle always covers at least its centre cell
func (p Projection) Ellipse(wx, wy, r float64, fn func(x, y int)) {
	cx, cy := p.Cell(wx, wy)
	rx, ry := r*p.ScaleX(), r*p.ScaleY()

	x0, x1 := int(math.Floor(cx-rx)), int(math.Floor(cx+rx))
	y0, y1 := int(math.Floor(cy-ry)), int(math.Floor(cy+ry))
	hit := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !p.Contains(x, y) {
				continue
			}
			dx := (float64(x) + 0.5 - cx) / max(rx, 0.5)
			dy := (float64(y) + 0.5 - cy) / max(ry, 0.5)
			if dx*dx+dy*dy <= 1 {
				fn(x, y)
				hit = true
			}
		}
	}
	if !hit {
		x, y := int(math.Floor(cx)), int(math.Floor(cy))
		if p.Contains(x, y) {
			fn(x, y)
		}
	}
}
